package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BuildingPath string   `validate:"required"`
	LibraryPaths []string `validate:"min=1,dive,required"`
	WeatherPath  string   `validate:"required_if=RunEngine true"`
	DDYPath      string
	OutPath      string `validate:"required"`
	WorkDir      string `validate:"required"`

	RunEngine      bool
	EnergyPlusDir  string
	CheckpointPath string

	PublishBucket   string
	PublishPrefix   string
	PublishRegion   string
	PublishEndpoint string `validate:"omitempty,url"`
	PublishURL      string `validate:"omitempty,url"`

	LogFormat       string `validate:"oneof=text json"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	HealthcheckPort int    `validate:"gte=0,lte=65535"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig fills derived defaults and validates cfg. The model file defaults
// to <building>.idf next to the building description, and the work directory
// to the model file's directory.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BuildingPath == "" {
		return nil, errors.New("BuildingPath is a required configuration field and cannot be empty")
	}
	if cfg.OutPath == "" {
		cfg.OutPath = defaultOutPath(cfg.BuildingPath)
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = filepath.Dir(cfg.OutPath)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := validate.Struct(&cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("invalid configuration: %s", describe(verrs))
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func defaultOutPath(building string) string {
	ext := filepath.Ext(building)
	if ext == "" {
		clean := filepath.Clean(building)
		return filepath.Join(clean, filepath.Base(clean)+".idf")
	}
	return strings.TrimSuffix(building, ext) + ".idf"
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
