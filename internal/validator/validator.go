// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pembukuan/internal/models"
)

// DateLayout is the calendar date layout accepted by request payloads.
const DateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	_, ok := models.ParseKind(fl.Field().String())
	return ok
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
