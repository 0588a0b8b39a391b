package helpers

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	couponCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)
	metaNamePattern   = regexp.MustCompile(`^[a-z_]+$`)
)

// RegisterValidators installs the console's custom field rules on gin's
// binding engine and makes validation errors report json field names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("couponcode", func(fl validator.FieldLevel) bool {
		return couponCodePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("metaname", func(fl validator.FieldLevel) bool {
		return metaNamePattern.MatchString(fl.Field().String())
	})
}

func fieldName(fe validator.FieldError) string {
	return fe.Field()
}

// FieldMessage renders a human-readable message for one failed rule.
func FieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid URL."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	case "couponcode":
		return "Coupon code must contain only uppercase letters and numbers."
	case "metaname":
		return "Configuration name must contain only lowercase letters and underscores."
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
