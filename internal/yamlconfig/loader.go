// Package yamlconfig implements config.Loader for YAML building descriptions.
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader reads .yaml and .yml files.
type Loader struct{}

// NewLoader creates a new YAML building description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every YAML file under paths, in sorted order, and merges them.
// A file may hold several documents. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := &config.Model{}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		files, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if err := decodeFile(file, model); err != nil {
				return nil, err
			}
			logger.Debug("Loaded YAML building description.", "file", file)
		}
	}

	if err := config.Validate(model); err != nil {
		return nil, err
	}
	logger.Debug("YAML loading complete.", "zones", len(model.Zones))
	return model, nil
}

func decodeFile(file string, model *config.Model) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	for {
		var doc config.Model
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		model.Zones = append(model.Zones, doc.Zones...)
		model.Shading = append(model.Shading, doc.Shading...)
		model.Outputs = append(model.Outputs, doc.Outputs...)
		if doc.Simulation != nil {
			model.Simulation = doc.Simulation
		}
	}
}
