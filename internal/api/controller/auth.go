package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andika-123140096/website-desa/internal/domain/dto"
)

func (c *Controller) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, err := c.authService.RegisterMasyarakat(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, result)
}

func (c *Controller) RegisterPerangkat(ctx echo.Context) error {
	var req dto.RegisterPerangkatRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, err := c.authService.RegisterPerangkat(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, result)
}

func (c *Controller) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, err := c.authService.Login(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) Me(ctx echo.Context) error {
	caller, err := currentUser(ctx)
	if err != nil {
		return err
	}

	pengguna, err := c.authService.Me(ctx.Request().Context(), caller.UserID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, pengguna)
}
