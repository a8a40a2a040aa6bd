package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the struct-level constraints of the model and that zone
// names are unique. It does not check references into the definition
// library; those are resolved, and reported, during assembly.
func Validate(m *Model) error {
	if m == nil {
		return fmt.Errorf("building description is empty")
	}
	if err := structValidator().Struct(m); err != nil {
		return fmt.Errorf("invalid building description: %w", err)
	}
	seen := make(map[string]struct{}, len(m.Zones))
	for _, z := range m.Zones {
		key := strings.ToLower(z.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("invalid building description: zone '%s' is defined more than once", z.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
