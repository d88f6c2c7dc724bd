package utils

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("clock12", validateClock12)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// 12 saatlik "H:MM AM|PM" biçimini kontrol et
func validateClock12(fl validator.FieldLevel) bool {
	_, err := To24Hour(fl.Field().String())
	return err == nil
}
