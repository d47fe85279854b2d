package api

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/autocatalog/internal/pkg/constants"
	"github.com/ougirez/autocatalog/internal/pkg/utils"
	"github.com/spf13/viper"
	"strings"
)

// AdminMiddleware admits requests carrying a token whose secret matches auth.secret,
// either in the secret_token cookie or as a bearer token.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := ""
		if cookie, err := ctx.Cookie(constants.CookieKeySecretToken); err == nil {
			raw = cookie.Value
		} else if auth := ctx.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
			raw = strings.TrimPrefix(auth, "Bearer ")
		}
		if raw == "" {
			return constants.ErrUnauthorized
		}

		token, err := utils.ParseAuthToken(raw)
		if err != nil {
			return err
		}

		secret := viper.GetString(constants.ViperSecretKey)
		if secret == "" || token.Secret != secret {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
