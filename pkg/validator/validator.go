package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
	gstinRegex   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	phoneRegex   = regexp.MustCompile(`^\+?[0-9]+$`)

	nonDigit     = regexp.MustCompile(`[^0-9]`)
	nonPhoneChar = regexp.MustCompile(`[^0-9+]`)
)

// Init registers custom validators on gin's binding engine and makes
// validation errors report json field names instead of struct fields.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return gstinRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("indianphone", func(fl validator.FieldLevel) bool {
		return ValidPhone(NormalizePhone(fl.Field().String()))
	})
}

// NormalizePhone strips everything except digits and a leading "+".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	keepPlus := strings.HasPrefix(phone, "+")
	cleaned := nonPhoneChar.ReplaceAllString(phone, "")
	cleaned = strings.ReplaceAll(cleaned, "+", "")
	if keepPlus {
		return "+" + cleaned
	}
	return cleaned
}

// NormalizePincode strips non-digits before the exact-6 check.
func NormalizePincode(pincode string) string {
	return nonDigit.ReplaceAllString(pincode, "")
}

// ValidPincode reports whether s is exactly six digits.
func ValidPincode(s string) bool {
	return pincodeRegex.MatchString(s)
}

// ValidGSTIN reports whether s matches the 15-character GST pattern.
func ValidGSTIN(s string) bool {
	return gstinRegex.MatchString(s)
}

// ValidPhone reports whether a normalized phone is digits with an
// optional leading "+", 10 to 15 characters in total. The total length
// bound matches the 15-character phone column.
func ValidPhone(s string) bool {
	return len(s) >= 10 && len(s) <= 15 && phoneRegex.MatchString(s)
}

// FormatValidationErrors converts validator errors into the field ->
// messages map used by the 422 envelope.
func FormatValidationErrors(err error) map[string][]string {
	fields := map[string][]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["request"] = []string{err.Error()}
		return fields
	}

	for _, fe := range validationErrors {
		field := fe.Field()
		fields[field] = append(fields[field], fieldErrorMessage(fe))
	}
	return fields
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")

	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("The %s field is required.", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s may not be greater than %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", field)
	case "pincode":
		return "Pincode must be exactly 6 digits."
	case "gstin":
		return "Please enter a valid GST number."
	case "indianphone":
		return "Phone number must be between 10 and 15 digits."
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
