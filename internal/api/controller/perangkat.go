package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
)

func (c *Controller) ListPerangkat(ctx echo.Context) error {
	raw := ctx.QueryParams().Get("dusun_id")
	dusunID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return constants.ErrDusunIDTidakValid
	}

	listed, err := c.perangkatService.ListByDusun(ctx.Request().Context(), dusunID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, listed)
}

func (c *Controller) GetPerangkat(ctx echo.Context) error {
	selected, err := c.perangkatService.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, selected)
}

func (c *Controller) DeletePerangkat(ctx echo.Context) error {
	if err := c.perangkatService.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.MessageResponse{Message: "Perangkat desa berhasil dihapus"})
}
