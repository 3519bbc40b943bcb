package app

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPaths []string `validate:"required,dive,required"` // hcl and yaml files or directories

	// Mode overrides the mode declared by the files when set.
	Mode string `validate:"omitempty,oneof=directed undirected"`

	// From and To request a shortest-path query. Both or neither.
	From string `validate:"required_with=To"`
	To   string `validate:"required_with=From"`

	Output    string `validate:"oneof=text json"`
	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, fmt.Errorf("invalid configuration: %s failed on the '%s' rule", fe.Field(), fe.Tag())
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
