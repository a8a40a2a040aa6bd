package energyplus

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/osmforge/internal/assembler"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/hcl"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
	"github.com/specialistvlad/osmforge/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fixtureModel assembles the shared two-zone building.
func fixtureModel(t *testing.T) *osm.Model {
	t.Helper()
	ctx := ctxlog.Discard(context.Background())
	dir := testutil.WriteFiles(t, map[string]string{"building.hcl": testutil.BuildingHCL})
	building, err := hcl.NewLoader().Load(ctx, filepath.Join(dir, "building.hcl"))
	require.NoError(t, err)

	rows, err := idf.Parse([]byte(testutil.LibraryIDF))
	require.NoError(t, err)
	m, report, err := assembler.New().Assemble(ctx, assembler.Input{Building: building, Library: idf.NewLibrary(rows...)})
	require.NoError(t, err)
	require.Empty(t, report.Warnings)
	return m
}

func rowsTagged(rows []idf.Row, tag string) []idf.Row {
	var out []idf.Row
	for _, r := range rows {
		if r.Is(tag) {
			out = append(out, r)
		}
	}
	return out
}

func rowNamed(t *testing.T, rows []idf.Row, tag, name string) idf.Row {
	t.Helper()
	for _, r := range rowsTagged(rows, tag) {
		if r.Name() == name {
			return r
		}
	}
	require.Failf(t, "row not found", "%s %q", tag, name)
	return idf.Row{}
}
