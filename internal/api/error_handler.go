package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/logger"
)

const msgServerError = "Terjadi kesalahan server"

// httpErrorHandler reports CodedErrors with their status and message;
// anything else is logged and flattened to a generic 500 so storage
// details never leak to callers.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := msgServerError

	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			code = ce.Code()
			msg = ce.Error()
			break
		}
		var he *echo.HTTPError
		if errors.As(e, &he) {
			code = he.Code
			msg = fmt.Sprintf("%v", he.Message)
			break
		}
	}

	if code == http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Path(), err.Error())
	}

	_ = c.JSON(code, domain.ErrorResponse{Error: msg})
}
