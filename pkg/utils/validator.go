package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate   *validator.Validate
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\- ()]{5,18}$`)
)

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("phone", validatePhone); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("maxbytes", validateMaxBytes); err != nil {
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// validateMaxBytes bounds the encoded length; bcrypt rejects passwords over 72 bytes.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
