package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/utils"
)

// AuthMiddleware validates the bearer token and stores the parsed
// claims on the request context.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return constants.ErrUnauthorized
		}

		claims, err := utils.ParseAuthToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUser, claims)

		return next(ctx)
	}
}

// RequireRole allows only the listed roles past; must run after
// AuthMiddleware.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, _ := ctx.Get(constants.CtxKeyUser).(*utils.AuthClaims)
			if claims == nil {
				return constants.ErrUnauthorized
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(ctx)
				}
			}
			return constants.ErrForbidden
		}
	}
}
