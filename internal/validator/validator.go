// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_direction", validateTransactionDirection)
		_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
		_ = v.RegisterValidation("report_month", validateReportMonth)
		_ = v.RegisterValidation("report_year", validateReportYear)
	}
}

func validateTransactionDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "paid", "pending":
		return true
	}
	return false
}

func validateReportMonth(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= 1 && m <= 12
}

func validateReportYear(fl validator.FieldLevel) bool {
	y := fl.Field().Int()
	return y >= 2000 && y <= 2100
}
