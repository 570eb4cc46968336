package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator. Later calls are no-ops.
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("cropname", validateCropName)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lowercased field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := toSnake(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "cropname":
			errs[field] = ErrMsgInvalidCropName
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// toSnake turns a Go field name like PlotID into plot_id
func toSnake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// validateCropName accepts letters, spaces and the punctuation found in
// catalog display names ("Rape / Covo", "Maize (Chibage)").
// Empty is allowed; the required tag covers that.
func validateCropName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' && !strings.ContainsRune(cropNamePunctuation, r) {
			return false
		}
	}
	return true
}

const cropNamePunctuation = "-'/()"
