package assembler

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/hcl"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
	"github.com/specialistvlad/osmforge/internal/testutil"
	"github.com/stretchr/testify/require"
)

func fixtureLibrary(t *testing.T) *idf.Library {
	t.Helper()
	rows, err := idf.Parse([]byte(testutil.LibraryIDF))
	require.NoError(t, err)
	return idf.NewLibrary(rows...)
}

func fixtureBuilding(t *testing.T) *config.Model {
	t.Helper()
	ctx := ctxlog.Discard(context.Background())
	dir := testutil.WriteFiles(t, map[string]string{"building.hcl": testutil.BuildingHCL})
	m, err := hcl.NewLoader().Load(ctx, filepath.Join(dir, "building.hcl"))
	require.NoError(t, err)
	return m
}

func assemble(t *testing.T, building *config.Model) (*osm.Model, *Report) {
	t.Helper()
	ctx := ctxlog.Discard(context.Background())
	m, report, err := New().Assemble(ctx, Input{Building: building, Library: fixtureLibrary(t)})
	require.NoError(t, err)
	return m, report
}

func box(x0, y0, x1, y1 float64) config.Loop {
	return config.Loop{{x0, y0, 0}, {x0, y1, 0}, {x1, y1, 0}, {x1, y0, 0}}
}

func wall(x0, y0, x1, y1, h float64) config.Loop {
	return config.Loop{{x0, y0, 0}, {x1, y1, 0}, {x1, y1, h}, {x0, y0, h}}
}

func surfaceByName(t *testing.T, m *osm.Model, name string) *osm.Surface {
	t.Helper()
	for _, s := range osm.All[*osm.Surface](m) {
		if s.Name() == name {
			return s
		}
	}
	require.Failf(t, "surface not found", "%s", name)
	return nil
}

func names[T osm.Object](m *osm.Model) []string {
	var out []string
	for _, o := range osm.All[T](m) {
		out = append(out, o.Name())
	}
	return out
}
