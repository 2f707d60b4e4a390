package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/andika-123140096/website-desa/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "Data tidak valid: "+err.Error())
	}
	return nil
}
