package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
)

func (c *Controller) CreateDusun(ctx echo.Context) error {
	var req dto.CreateDusunRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	created, err := c.dusunService.Create(ctx.Request().Context(), req.NamaDusun)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) ListDusun(ctx echo.Context) error {
	listed, err := c.dusunService.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, listed)
}

func (c *Controller) GetDusun(ctx echo.Context) error {
	id, err := dusunIDParam(ctx)
	if err != nil {
		return err
	}

	selected, err := c.dusunService.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, selected)
}

func (c *Controller) UpdateDusun(ctx echo.Context) error {
	id, err := dusunIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateDusunRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.dusunService.Update(ctx.Request().Context(), id, req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.MessageResponse{Message: "Dusun berhasil diperbarui"})
}

func (c *Controller) DeleteDusun(ctx echo.Context) error {
	id, err := dusunIDParam(ctx)
	if err != nil {
		return err
	}

	if err := c.dusunService.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.MessageResponse{Message: "Dusun berhasil dihapus"})
}

func (c *Controller) GetDusunTokens(ctx echo.Context) error {
	id, err := dusunIDParam(ctx)
	if err != nil {
		return err
	}

	tokens, err := c.dusunService.Tokens(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, tokens)
}
