package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest checks a DTO against its `validate` tags and converts the
// failure into the 400-mapped taxonomy.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}
