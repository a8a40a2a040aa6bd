package idf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/fsutil"
)

// Family groups definition tags that share one name space.
type Family int

const (
	FamilyOther Family = iota
	FamilyMaterial
	FamilyConstruction
	FamilySchedule
	FamilyTypeLimits
)

func (f Family) String() string {
	switch f {
	case FamilyMaterial:
		return "material"
	case FamilyConstruction:
		return "construction"
	case FamilySchedule:
		return "schedule"
	case FamilyTypeLimits:
		return "schedule type limits"
	default:
		return "other"
	}
}

// FamilyOf classifies a tag. Unknown material or schedule sub-types still land
// in their family so the builders can report them as unsupported.
func FamilyOf(tag string) Family {
	t := strings.ToLower(tag)
	switch {
	case t == "scheduletypelimits":
		return FamilyTypeLimits
	case strings.HasPrefix(t, "schedule:"):
		return FamilySchedule
	case t == "construction" || strings.HasPrefix(t, "construction:"):
		return FamilyConstruction
	case t == "material" || strings.HasPrefix(t, "material:") || strings.HasPrefix(t, "windowmaterial:"):
		return FamilyMaterial
	default:
		return FamilyOther
	}
}

// Library is a name-indexed set of definition rows. Names are matched
// case-insensitively inside a family. When a name is defined twice the later
// row wins, so project libraries loaded after the defaults override them.
type Library struct {
	byFamily map[Family]map[string]Row
	rows     []Row
}

// NewLibrary indexes rows in order.
func NewLibrary(rows ...Row) *Library {
	l := &Library{byFamily: make(map[Family]map[string]Row)}
	l.Add(rows...)
	return l
}

// Add indexes more rows.
func (l *Library) Add(rows ...Row) {
	for _, row := range rows {
		l.rows = append(l.rows, row)
		name := row.Name()
		if name == "" {
			continue
		}
		fam := FamilyOf(row.Tag)
		if l.byFamily[fam] == nil {
			l.byFamily[fam] = make(map[string]Row)
		}
		l.byFamily[fam][strings.ToLower(name)] = row
	}
}

// Lookup finds the definition named name in family.
func (l *Library) Lookup(fam Family, name string) (Row, bool) {
	row, ok := l.byFamily[fam][strings.ToLower(strings.TrimSpace(name))]
	return row, ok
}

// Rows returns every row in load order, including unnamed ones.
func (l *Library) Rows() []Row {
	return l.rows
}

// Len is the number of named definitions across all families.
func (l *Library) Len() int {
	n := 0
	for _, byName := range l.byFamily {
		n += len(byName)
	}
	return n
}

// LoadLibrary parses every .idf file found under the given paths, in order.
// Paths that do not exist are skipped with a warning.
func LoadLibrary(ctx context.Context, paths ...string) (*Library, error) {
	logger := ctxlog.FromContext(ctx)
	lib := NewLibrary()

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("Definition library path does not exist, skipping.", "path", path)
				continue
			}
			return nil, fmt.Errorf("error accessing library path %s: %w", path, err)
		}

		files, err := fsutil.FindFilesByExtension(path, ".idf")
		if err != nil {
			return nil, fmt.Errorf("failed to find library files in %s: %w", path, err)
		}
		for _, file := range files {
			src, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read library file %s: %w", file, err)
			}
			rows, err := Parse(src)
			if err != nil {
				return nil, fmt.Errorf("failed to parse library file %s: %w", file, err)
			}
			lib.Add(rows...)
			logger.Debug("Loaded definition library file.", "file", file, "rows", len(rows))
		}
	}

	logger.Info("Definition library loaded.", "definitions", lib.Len())
	return lib, nil
}
