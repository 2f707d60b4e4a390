package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) StatistikDusun(ctx echo.Context) error {
	id, err := dusunIDParam(ctx)
	if err != nil {
		return err
	}

	stats, err := c.statistikService.StatistikDusun(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (c *Controller) Laporan(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	laporan, err := c.statistikService.Laporan(ctx.Request().Context(), caller.Role)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, laporan)
}
