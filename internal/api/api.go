package api

import (
	"context"
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/autocatalog/internal/api/controller"
	"github.com/ougirez/autocatalog/internal/service/catalog"
	"net/http"
)

const maxCatalogBody = "64M"

type APIService struct {
	router         *echo.Echo
	catalogService *catalog.Service
}

// Serve blocks until the server stops. A graceful Shutdown is not an error.
func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(catalogService *catalog.Service) (*APIService, error) {
	svc := &APIService{router: echo.New(), catalogService: catalogService}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.INFO)
	svc.router.Validator = NewValidator()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.HTTPErrorHandler = httpErrorHandler

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.catalogService)

	modifications := api.Group("/catalog/modifications")
	modifications.GET("", cntrl.ListModifications)
	modifications.GET("/:id", cntrl.GetModification)

	bodyLimit := middleware.BodyLimit(maxCatalogBody)
	modifications.POST("/sync", cntrl.SyncModifications, svc.AdminMiddleware, bodyLimit)
	modifications.POST("/preview", cntrl.PreviewModifications, svc.AdminMiddleware, bodyLimit)

	return svc, nil
}
