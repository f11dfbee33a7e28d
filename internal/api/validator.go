package api

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yourorg/productsvc/internal/apperrors"
	"github.com/yourorg/productsvc/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterCustomTypeFunc(optionalValue,
		models.Optional[string]{},
		models.Optional[float64]{},
		models.Optional[bool]{},
	)
}

func optionalValue(field reflect.Value) any {
	if o, ok := field.Interface().(interface{ OrNil() any }); ok {
		return o.OrNil()
	}
	return nil
}

// ValidateStruct returns a *apperrors.ValidationError listing every failing
// field, or nil.
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			fields := make(map[string]string, len(validationErrors))
			for _, fieldError := range validationErrors {
				if _, seen := fields[fieldError.Field()]; !seen {
					fields[fieldError.Field()] = formatValidationError(fieldError)
				}
			}
			return apperrors.NewFieldsValidationError(fields)
		}
		return err
	}
	return nil
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
