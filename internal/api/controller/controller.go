package controller

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/utils"
	"github.com/andika-123140096/website-desa/internal/service/aduan"
	"github.com/andika-123140096/website-desa/internal/service/auth"
	"github.com/andika-123140096/website-desa/internal/service/dusun"
	"github.com/andika-123140096/website-desa/internal/service/perangkat"
	"github.com/andika-123140096/website-desa/internal/service/statistik"
	"github.com/andika-123140096/website-desa/internal/service/surat"
)

type Controller struct {
	authService      *auth.Service
	dusunService     *dusun.Service
	statistikService *statistik.Service
	suratService     *surat.Service
	aduanService     *aduan.Service
	perangkatService *perangkat.Service
}

func NewController(
	authService *auth.Service,
	dusunService *dusun.Service,
	statistikService *statistik.Service,
	suratService *surat.Service,
	aduanService *aduan.Service,
	perangkatService *perangkat.Service,
) *Controller {
	return &Controller{
		authService:      authService,
		dusunService:     dusunService,
		statistikService: statistikService,
		suratService:     suratService,
		aduanService:     aduanService,
		perangkatService: perangkatService,
	}
}

// currentUser returns the claims set by the auth middleware.
func currentUser(ctx echo.Context) (*utils.AuthClaims, error) {
	claims, _ := ctx.Get(constants.CtxKeyUser).(*utils.AuthClaims)
	if claims == nil {
		return nil, constants.ErrUnauthorized
	}
	return claims, nil
}

// dusunIDParam parses the :id path segment as a dusun id.
func dusunIDParam(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, constants.ErrDusunIDTidakValid
	}
	return id, nil
}
