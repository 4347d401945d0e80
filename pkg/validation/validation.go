package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	dateTag     = "date"
	progressTag = "progress"
	dateLayout  = "2006-01-02"
)

// Register installs the json/form tag name func and the custom validations on
// gin's default validator engine. It is safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Setup(v)
}

// Setup configures v with the custom tags used by request DTOs.
func Setup(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	if err := v.RegisterValidation(dateTag, isDate); err != nil {
		return err
	}
	return v.RegisterValidation(progressTag, isProgress)
}

// isDate accepts empty strings and YYYY-MM-DD dates.
func isDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// isProgress accepts whole percentages within 0..100.
func isProgress(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.Int() >= 0 && f.Int() <= 100
	case reflect.Float32, reflect.Float64:
		return f.Float() >= 0 && f.Float() <= 100
	default:
		return false
	}
}
