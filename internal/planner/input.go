package planner

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// GuestInput is the user-supplied data for a new guest.
type GuestInput struct {
	Name    string `yaml:"name" validate:"required"`
	Contact string `yaml:"contact"`
}

// ItemInput is the user-supplied data for a new goody bag item.
type ItemInput struct {
	Name     string `yaml:"name" validate:"required"`
	Quantity int    `yaml:"quantity" validate:"min=1"`
}

// InputError reports which fields of a user input failed validation.
type InputError struct {
	Fields map[string]string // field name -> message
}

func (e *InputError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// ValidateInput checks a GuestInput or ItemInput. Names are checked after
// trimming surrounding whitespace. Returns *InputError on failure.
func ValidateInput(in any) error {
	switch v := in.(type) {
	case GuestInput:
		v.Name = strings.TrimSpace(v.Name)
		in = v
	case ItemInput:
		v.Name = strings.TrimSpace(v.Name)
		in = v
	}

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = formatFieldError(fe)
	}
	return &InputError{Fields: fields}
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	default:
		return fmt.Sprintf("failed on '%s'", e.Tag())
	}
}
