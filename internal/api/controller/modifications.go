package controller

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"strconv"
)

func (c *Controller) ListModifications(ctx echo.Context) error {
	modifications, err := c.service.ListModifications(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, modifications)
}

func (c *Controller) GetModification(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid modification id")
	}

	modification, err := c.service.GetModification(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, modification)
}
