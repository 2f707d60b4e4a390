package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
)

func (c *Controller) CreateAduan(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateAduanRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	created, err := c.aduanService.Create(ctx.Request().Context(), caller, req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) ListAduanSaya(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	listed, err := c.aduanService.ListSaya(ctx.Request().Context(), caller)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, listed)
}

func (c *Controller) ListAduan(ctx echo.Context) error {
	listed, err := c.aduanService.ListAll(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, listed)
}

func (c *Controller) GetAduan(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	selected, err := c.aduanService.Get(ctx.Request().Context(), caller, ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, selected)
}

func (c *Controller) UpdateStatusAduan(ctx echo.Context) error {
	var req dto.UpdateStatusAduanRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	if err := c.aduanService.UpdateStatus(ctx.Request().Context(), ctx.Param("id"), req.Status); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.MessageResponse{Message: "Status aduan berhasil diperbarui"})
}

func (c *Controller) CreateTanggapan(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.TanggapanRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	created, err := c.aduanService.AddTanggapan(ctx.Request().Context(), caller, ctx.Param("id"), req.IsiTanggapan)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}
