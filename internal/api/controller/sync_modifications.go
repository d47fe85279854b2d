package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/ougirez/autocatalog/internal/domain/dto"
	"github.com/ougirez/autocatalog/internal/service/catalog"
	"net/http"
)

type syncModificationsRequest struct {
	Records []*dto.ModificationRecord `json:"records" validate:"required,min=1"`
}

func (c *Controller) bindRecords(ctx echo.Context) ([]*dto.ModificationRecord, error) {
	var req syncModificationsRequest
	if err := ctx.Bind(&req); err != nil {
		return nil, err
	}
	if err := ctx.Validate(&req); err != nil {
		return nil, err
	}
	return req.Records, nil
}

func (c *Controller) SyncModifications(ctx echo.Context) error {
	records, err := c.bindRecords(ctx)
	if err != nil {
		return err
	}

	_, summary, err := c.service.SyncModifications(ctx.Request().Context(), records, catalog.SyncOpts{})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}

// PreviewModifications maps the records like SyncModifications but saves nothing
// and returns the full mapping result.
func (c *Controller) PreviewModifications(ctx echo.Context) error {
	records, err := c.bindRecords(ctx)
	if err != nil {
		return err
	}

	res, summary, err := c.service.SyncModifications(ctx.Request().Context(), records, catalog.SyncOpts{DryRun: true})
	if err != nil {
		return err
	}

	type response struct {
		Summary *domain.SyncSummary   `json:"summary"`
		Result  *domain.MappingResult `json:"result"`
	}

	return ctx.JSON(http.StatusOK, response{Summary: summary, Result: res})
}
