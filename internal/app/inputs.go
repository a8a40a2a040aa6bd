package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/osmforge/internal/assembler"
	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
)

func requireFile(path, what string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s '%s' does not exist", assembler.ErrMissingRequiredInput, what, path)
		}
		return fmt.Errorf("error accessing %s '%s': %w", what, path, err)
	}
	return nil
}

// loadBuilding reads the building description with the loader for its
// extension.
func (a *App) loadBuilding(ctx context.Context) (*config.Model, error) {
	path := a.config.BuildingPath
	if err := requireFile(path, "building description"); err != nil {
		return nil, err
	}
	building, err := loaderFor(path).Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load building description: %w", err)
	}
	ctxlog.FromContext(ctx).Info("Building description loaded.", "path", path, "zones", len(building.Zones))
	return building, nil
}

func (a *App) loadLibrary(ctx context.Context) (*idf.Library, error) {
	lib, err := idf.LoadLibrary(ctx, a.config.LibraryPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load definition library: %w", err)
	}
	if lib.Len() == 0 {
		return nil, fmt.Errorf("%w: no definitions found in %v", assembler.ErrMissingRequiredInput, a.config.LibraryPaths)
	}
	ctxlog.FromContext(ctx).Info("Definition library loaded.", "rows", lib.Len())
	return lib, nil
}

// designDayPath is the explicit design-day file, or the one next to the
// weather file. derived reports the latter.
func (a *App) designDayPath() (path string, derived bool) {
	if a.config.DDYPath != "" {
		return a.config.DDYPath, false
	}
	w := a.config.WeatherPath
	if w == "" {
		return "", false
	}
	return strings.TrimSuffix(w, filepath.Ext(w)) + ".ddy", true
}

// loadDesignDays returns the rows of the design-day file. An explicit file
// that is missing is fatal; a derived one is only a warning.
func (a *App) loadDesignDays(ctx context.Context) ([]idf.Row, error) {
	logger := ctxlog.FromContext(ctx)
	path, derived := a.designDayPath()
	if path == "" {
		return nil, nil
	}
	if err := requireFile(path, "design day file"); err != nil {
		if derived && errors.Is(err, assembler.ErrMissingRequiredInput) {
			logger.Warn("No design day file next to the weather file; sizing periods are omitted.", "path", path)
			return nil, nil
		}
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design day file: %w", err)
	}
	rows, err := idf.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse design day file %s: %w", path, err)
	}
	logger.Debug("Design day file loaded.", "path", path, "rows", len(rows))
	return rows, nil
}
