package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/utils"
)

func newTestRouter(t *testing.T) *APIService {
	t.Helper()

	viper.Set(constants.ViperJWTSecret, "test-secret")

	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler

	return svc
}

func do(svc *APIService, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)
	return rec
}

func bearer(t *testing.T, role domain.Role, idDusun *int64) string {
	t.Helper()

	token, err := utils.NewAuthToken("user-1", role, idDusun, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	svc := newTestRouter(t)
	svc.router.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, svc.AuthMiddleware)

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Tidak terautentikasi"}`, rec.Body.String())
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	svc := newTestRouter(t)
	svc.router.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, svc.AuthMiddleware)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")

	rec := do(svc, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Token tidak valid"}`, rec.Body.String())
}

func TestAuthMiddlewareSetsClaims(t *testing.T) {
	svc := newTestRouter(t)
	svc.router.GET("/protected", func(c echo.Context) error {
		claims, ok := c.Get(constants.CtxKeyUser).(*utils.AuthClaims)
		require.True(t, ok)
		require.Equal(t, "user-1", claims.UserID)
		return c.NoContent(http.StatusOK)
	}, svc.AuthMiddleware)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, domain.RoleMasyarakat, nil))

	rec := do(svc, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	svc := newTestRouter(t)
	svc.router.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, svc.AuthMiddleware, RequireRole(domain.RoleSuperadmin))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, domain.RoleMasyarakat, nil))
	rec := do(svc, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"Akses ditolak"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, domain.RoleSuperadmin, nil))
	rec = do(svc, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBinderRejectsMalformedJSON(t *testing.T) {
	svc := newTestRouter(t)
	svc.router.POST("/echo", func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, req)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{broken"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := do(svc, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Format request tidak valid"}`, rec.Body.String())
}

func TestValidatorRejectsMissingFields(t *testing.T) {
	svc := newTestRouter(t)
	svc.router.POST("/login", func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := c.Validate(&req); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"budi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := do(svc, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Data tidak valid")
}

func TestErrorHandlerKeepsHTTPErrors(t *testing.T) {
	svc := newTestRouter(t)
	svc.router.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "teapot")
	})

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.JSONEq(t, `{"error":"teapot"}`, rec.Body.String())
}

func TestErrorHandlerFlattensUnknownErrors(t *testing.T) {
	svc := newTestRouter(t)
	svc.router.GET("/crash", func(c echo.Context) error {
		return errors.New("pgx: connection refused")
	})

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/crash", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Terjadi kesalahan server"}`, rec.Body.String())
}
