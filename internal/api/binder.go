package api

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/andika-123140096/website-desa/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic; everything else falls back to
// echo's default binder.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength != 0 &&
		strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(i); err != nil {
			return constants.ErrBadRequestBody
		}
		return nil
	}

	return b.fallback.Bind(i, c)
}
