package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
)

func (c *Controller) CreateSurat(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSuratRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	created, err := c.suratService.Create(ctx.Request().Context(), caller, req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) ListSurat(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var dusunFilter *int64
	if raw := ctx.QueryParams().Get("dusun_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return constants.ErrDusunIDTidakValid
		}
		dusunFilter = &id
	}

	listed, err := c.suratService.List(ctx.Request().Context(), caller, dusunFilter)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, listed)
}

func (c *Controller) GetSurat(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	selected, err := c.suratService.Get(ctx.Request().Context(), caller, ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, selected)
}

func (c *Controller) UpdateSurat(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSuratRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.suratService.Update(ctx.Request().Context(), caller, ctx.Param("id"), req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.MessageResponse{Message: "Surat PBB berhasil diperbarui"})
}

func (c *Controller) DeleteSurat(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	if err := c.suratService.Delete(ctx.Request().Context(), caller, ctx.Param("id")); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.MessageResponse{Message: "Surat PBB berhasil dihapus"})
}
