package idf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `
! library header
Material,
  Generic Brick,   !- Name
  MediumRough,     !- Roughness
  0.1;             !- Thickness {m}

Schedule:Day:Interval, Office Day, Fraction, No, 08:00, 0.0, 18:00, 1.0;
Construction,Wall,,Brick;
`
	rows, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Material", rows[0].Tag)
	assert.Equal(t, []string{"Generic Brick", "MediumRough", "0.1"}, rows[0].Fields)
	assert.Equal(t, 3, rows[0].Line)
	assert.Equal(t, "Generic Brick", rows[0].Name())

	assert.True(t, rows[1].Is("schedule:day:interval"))
	assert.Equal(t, []string{"Schedule:Day:Interval", "Fraction", "No", "08:00", "0.0", "18:00", "1.0"}, rows[1].Values())

	// Empty positional fields are kept.
	assert.Equal(t, []string{"Wall", "", "Brick"}, rows[2].Fields)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "unterminated row", src: "Material, Brick, Rough"},
		{name: "empty tag", src: ", Brick;"},
		{name: "unterminated after comment", src: "Material, ! comment\n Brick"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			require.Error(t, err)
		})
	}
}

func TestRowAccessors(t *testing.T) {
	row := NewRow("Version")
	assert.Equal(t, "", row.Name())
	assert.Equal(t, "", row.Field(3))
	assert.Equal(t, []string{"Version"}, row.Values())
}

func TestWrite_RoundTripsThroughParse(t *testing.T) {
	rows := []Row{
		NewRow("Version", "23.2"),
		NewRow("Material", "Brick", "Rough", "0.1"),
		NewRow("SimulationControl"),
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))
	assert.Contains(t, buf.String(), "Material,\n  Brick,\n  Rough,\n  0.1;\n")

	parsed, err := Parse(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, parsed, 3)
	for i := range rows {
		assert.Equal(t, rows[i].Tag, parsed[i].Tag)
		assert.Equal(t, len(rows[i].Fields), len(parsed[i].Fields))
	}
}

func TestWrite_RejectsReservedCharacters(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []Row{NewRow("Material", "Brick; Red")})
	require.Error(t, err)
}

func TestLibrary_LookupByFamily(t *testing.T) {
	lib := NewLibrary(
		NewRow("Material", "Shared Name", "Rough", "0.1"),
		NewRow("Schedule:Constant", "Shared Name", "Fraction", "1"),
		NewRow("ScheduleTypeLimits", "Fraction", "0", "1", "Continuous"),
		NewRow("Construction", "Wall", "Shared Name"),
		NewRow("Version", "23.2"),
	)

	row, ok := lib.Lookup(FamilyMaterial, "shared name")
	require.True(t, ok)
	assert.Equal(t, "Material", row.Tag)

	row, ok = lib.Lookup(FamilySchedule, "SHARED NAME")
	require.True(t, ok)
	assert.Equal(t, "Schedule:Constant", row.Tag)

	_, ok = lib.Lookup(FamilyTypeLimits, "Fraction")
	assert.True(t, ok)
	_, ok = lib.Lookup(FamilyConstruction, "Missing")
	assert.False(t, ok)

	assert.Equal(t, 5, lib.Len())
	assert.Len(t, lib.Rows(), 5)
}

func TestLibrary_LaterDefinitionWins(t *testing.T) {
	lib := NewLibrary(NewRow("Material", "Brick", "Rough", "0.1"))
	lib.Add(NewRow("Material", "BRICK", "Smooth", "0.2"))

	row, ok := lib.Lookup(FamilyMaterial, "brick")
	require.True(t, ok)
	assert.Equal(t, "Smooth", row.Field(1))
}

func TestFamilyOf(t *testing.T) {
	assert.Equal(t, FamilyMaterial, FamilyOf("WindowMaterial:Glazing"))
	assert.Equal(t, FamilyMaterial, FamilyOf("Material:RoofVegetation"))
	assert.Equal(t, FamilySchedule, FamilyOf("Schedule:Compact"))
	assert.Equal(t, FamilyTypeLimits, FamilyOf("ScheduleTypeLimits"))
	assert.Equal(t, FamilyConstruction, FamilyOf("construction"))
	assert.Equal(t, FamilyOther, FamilyOf("SizingPeriod:DesignDay"))
}

func TestLoadLibrary(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a_defaults.idf"), []byte("Material, Brick, Rough, 0.1;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b_project.idf"), []byte("Material, Brick, Smooth, 0.2;"), 0o644))

	lib, err := LoadLibrary(ctx, root, filepath.Join(root, "missing"))
	require.NoError(t, err)

	row, ok := lib.Lookup(FamilyMaterial, "Brick")
	require.True(t, ok)
	assert.Equal(t, "Smooth", row.Field(1))
}

func TestLoadLibrary_ParseError(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	path := filepath.Join(t.TempDir(), "bad.idf")
	require.NoError(t, os.WriteFile(path, []byte("Material, Brick"), 0o644))

	_, err := LoadLibrary(ctx, path)
	require.ErrorContains(t, err, "failed to parse library file")
}
