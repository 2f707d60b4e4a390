package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/andika-123140096/website-desa/internal/api/controller"
	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/store"
	"github.com/andika-123140096/website-desa/internal/pkg/tokenstore"
	"github.com/andika-123140096/website-desa/internal/service/aduan"
	"github.com/andika-123140096/website-desa/internal/service/auth"
	"github.com/andika-123140096/website-desa/internal/service/dusun"
	"github.com/andika-123140096/website-desa/internal/service/perangkat"
	"github.com/andika-123140096/website-desa/internal/service/statistik"
	"github.com/andika-123140096/website-desa/internal/service/surat"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) error {
	return svc.router.Start(addr)
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, tokens tokenstore.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(
		auth.NewAuthService(st, tokens),
		dusun.NewDusunService(st, tokens),
		statistik.NewStatistikService(st, st),
		surat.NewSuratService(st, st),
		aduan.NewAduanService(st),
		perangkat.NewPerangkatService(st),
	)

	api := svc.router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", cntrl.Register)
	authGroup.POST("/register-perangkat", cntrl.RegisterPerangkat)
	authGroup.POST("/login", cntrl.Login)
	authGroup.GET("/me", cntrl.Me, svc.AuthMiddleware)

	dusunGroup := api.Group("/dusun", svc.AuthMiddleware, RequireRole(domain.RoleSuperadmin))
	dusunGroup.POST("", cntrl.CreateDusun)
	dusunGroup.GET("", cntrl.ListDusun)
	dusunGroup.GET("/:id", cntrl.GetDusun)
	dusunGroup.PUT("/:id", cntrl.UpdateDusun)
	dusunGroup.DELETE("/:id", cntrl.DeleteDusun)
	dusunGroup.GET("/:id/tokens", cntrl.GetDusunTokens)

	statistikGroup := api.Group("/statistik", svc.AuthMiddleware)
	statistikGroup.GET("/dusun/:id", cntrl.StatistikDusun)
	statistikGroup.GET("/laporan", cntrl.Laporan)

	suratGroup := api.Group("/surat-pbb", svc.AuthMiddleware)
	suratGroup.POST("", cntrl.CreateSurat)
	suratGroup.GET("", cntrl.ListSurat)
	suratGroup.GET("/:id", cntrl.GetSurat)
	suratGroup.PUT("/:id", cntrl.UpdateSurat)
	suratGroup.DELETE("/:id", cntrl.DeleteSurat, RequireRole(domain.RoleSuperadmin))

	aduanGroup := api.Group("/aduan", svc.AuthMiddleware)
	aduanGroup.POST("", cntrl.CreateAduan, RequireRole(domain.RoleMasyarakat))
	aduanGroup.GET("/saya", cntrl.ListAduanSaya, RequireRole(domain.RoleMasyarakat))
	aduanGroup.GET("", cntrl.ListAduan, RequireRole(domain.RoleSuperadmin))
	aduanGroup.GET("/:id", cntrl.GetAduan)
	aduanGroup.PUT("/:id/status", cntrl.UpdateStatusAduan, RequireRole(domain.RoleSuperadmin))
	aduanGroup.POST("/:id/tanggapan", cntrl.CreateTanggapan, RequireRole(domain.RoleSuperadmin))

	perangkatGroup := api.Group("/perangkat-desa", svc.AuthMiddleware)
	perangkatGroup.GET("", cntrl.ListPerangkat)
	perangkatGroup.GET("/:id", cntrl.GetPerangkat)
	perangkatGroup.DELETE("/:id", cntrl.DeletePerangkat, RequireRole(domain.RoleSuperadmin))

	return svc, nil
}
