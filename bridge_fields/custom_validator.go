package bridge_fields

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once
var validate *validator.Validate

// Validator returns the shared validator used for structural binding checks.
// Field names in validation errors are reported by their json tag so the
// messages line up with what the caller actually sent.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

func ValidateStruct(obj any) error {
	if kindOfData(obj) == reflect.Struct {
		if err := Validator().Struct(obj); err != nil {
			return err
		}
	}
	return nil
}

func kindOfData(data any) reflect.Kind {
	value := reflect.ValueOf(data)
	valueType := value.Kind()
	if valueType == reflect.Ptr {
		valueType = value.Elem().Kind()
	}
	return valueType
}

// DefaultValidator plugs the shared validator into gin's binding machinery.
type DefaultValidator struct{}

func (v *DefaultValidator) ValidateStruct(obj any) error {
	return ValidateStruct(obj)
}

func (v *DefaultValidator) Engine() any {
	return Validator()
}

// BindingErrorMessage turns a structural binding failure into one
// caller-facing sentence, mirroring the single-message contract of the
// business validators.
func BindingErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", e.Field())
		case "min":
			return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
		case "max":
			return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
		case "len":
			return fmt.Sprintf("%s must be %s characters long", e.Field(), e.Param())
		default:
			return fmt.Sprintf("%s is not valid", e.Field())
		}
	}
	return "Unable to parse the request"
}
