// Package validate provides shared validation functions.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/hay-kot/criterio"
)

// PropertyName validates a property key: non-empty and free of whitespace.
func PropertyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("name %q must not contain whitespace", name)
	}
	return nil
}

// PropertyNameField returns a criterio validator for property names.
func PropertyNameField(field, name string) error {
	return criterio.Run(field, name, PropertyName)
}
