// Package validation provides custom validators for the application
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with all custom validators registered
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		for tag, fn := range map[string]validator.Func{
			"nospaces": validateNoSpaces,
			"port":     validatePort,
		} {
			if err := validate.RegisterValidation(tag, fn); err != nil {
				panic(err)
			}
		}
	})
	return validate
}

// Struct validates s against its validate tags
func Struct(s any) error {
	if err := Validator().Struct(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateNoSpaces checks if a string contains non-space characters
func validateNoSpaces(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.TrimSpace(value) != ""
}

// validatePort checks that a string is a decimal TCP port. 0 asks the kernel for any free port.
func validatePort(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" || strings.TrimLeft(value, "0123456789") != "" {
		return false
	}
	port, err := strconv.Atoi(value)
	return err == nil && port <= 65535
}
