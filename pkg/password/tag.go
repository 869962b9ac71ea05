package password

import (
	playground "github.com/go-playground/validator/v10"
)

// Struct tags registered by RegisterValidation.
const (
	TagPassword         = "password"
	TagPasswordOptional = "password_optional"
)

// RegisterValidation installs the password tags on v:
//
//	type ChangePasswordRequest struct {
//		Current string `validate:"required"`
//		New     string `validate:"password_optional"`
//	}
func RegisterValidation(v *playground.Validate) error {
	if err := v.RegisterValidation(TagPassword, func(fl playground.FieldLevel) bool {
		return Validate(fl.Field().String()).Valid
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagPasswordOptional, func(fl playground.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || Validate(value).Valid
	})
}
