package httpserver

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct returns field -> failed tag, or nil when v is valid.
func validateStruct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(ves))
	for _, fe := range ves {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
