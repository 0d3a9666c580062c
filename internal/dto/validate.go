package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs the struct validation tags declared on the DTOs.
func Validate(s any) error {
	return validate.Struct(s)
}
