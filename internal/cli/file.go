package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type publishFile struct {
	Bucket   string `toml:"bucket"`
	Prefix   string `toml:"prefix"`
	Region   string `toml:"region"`
	Endpoint string `toml:"endpoint"`
	URL      string `toml:"url"`
}

// fileConfig mirrors the command-line options in a TOML file.
type fileConfig struct {
	Building        string      `toml:"building"`
	Libraries       []string    `toml:"libraries"`
	Weather         string      `toml:"weather"`
	DDY             string      `toml:"ddy"`
	Out             string      `toml:"out"`
	WorkDir         string      `toml:"work_dir"`
	Run             bool        `toml:"run"`
	EnergyPlusDir   string      `toml:"energyplus_dir"`
	Checkpoint      string      `toml:"checkpoint"`
	HealthcheckPort int         `toml:"healthcheck_port"`
	LogFormat       string      `toml:"log_format"`
	LogLevel        string      `toml:"log_level"`
	Publish         publishFile `toml:"publish"`
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return &cfg, nil
}
