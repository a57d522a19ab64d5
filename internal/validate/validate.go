// internal/validate/validate.go
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"medadmin/internal/model"
)

// Validator is the shared instance used to check request payloads before
// they are submitted. Field names in messages come from the json tags.
var Validator *validator.Validate

func init() {
	Validator = validator.New()
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Struct validates a payload and flattens any violations into a single
// message wrapped in ErrInvalidInput. Errors are surfaced as one string, not
// field-by-field.
func Struct(payload any) error {
	err := Validator.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", model.ErrInvalidInput, strings.Join(messages, "; "))
}
