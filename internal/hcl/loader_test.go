package hcl

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	ctx, _ := testutil.LoggerContext(t)
	dir := testutil.WriteFiles(t, map[string]string{"building/main.hcl": testutil.BuildingHCL})

	model, err := NewLoader().Load(ctx, filepath.Join(dir, "building"))
	require.NoError(t, err)

	require.Len(t, model.Zones, 2)
	west := model.Zones[0]
	assert.Equal(t, "West", west.Name)
	assert.Equal(t, "OpenOffice", west.ZoneProgram)
	require.NotNil(t, west.HeatingSetpoint)
	assert.Equal(t, 20.0, *west.HeatingSetpoint)
	assert.Nil(t, west.CoolingSetpoint)

	require.Len(t, west.Surfaces, 3)
	floor := west.Surfaces[0]
	assert.Equal(t, "Exterior Wall", floor.Construction)
	assert.Equal(t, []config.Loop{{{0, 0, 0}, {0, 5, 0}, {5, 5, 0}, {5, 0, 0}}}, floor.Loops)

	wall := west.Surfaces[1]
	assert.Equal(t, config.Point{5, 0, 3}, wall.Loops[0][2])
	require.Len(t, wall.Openings, 1)
	assert.Equal(t, "Window", wall.Openings[0].Construction)

	east := model.Zones[1]
	assert.Equal(t, "EXTERIOR WALL", east.Surfaces[2].Construction)
	assert.Equal(t, "West_WallE", east.Surfaces[1].Partner)

	assert.Len(t, model.Outputs, 2)
	require.NotNil(t, model.Simulation)
	assert.Equal(t, 4, model.Simulation.TimestepsPerHour)
}

func TestLoader_LocalsReferenceEachOther(t *testing.T) {
	ctx, _ := testutil.LoggerContext(t)
	dir := testutil.WriteFiles(t, map[string]string{"b.hcl": `
locals {
  name = format("%s_%s", local.prefix, "Zone")
}
locals {
  prefix = "North"
}
zone "Z" {
  zone_program = local.name
}
`})

	model, err := NewLoader().Load(ctx, filepath.Join(dir, "b.hcl"))
	require.NoError(t, err)
	require.Len(t, model.Zones, 1)
	assert.Equal(t, "North_Zone", model.Zones[0].ZoneProgram)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "syntax", src: `zone "Z" {`, wantErr: "failed to parse"},
		{name: "unknown local", src: "locals {\n a = local.b\n}\n", wantErr: "failed to evaluate locals"},
		{name: "unknown block", src: `room "Z" {}`, wantErr: "failed to decode"},
		{
			name:    "two-coordinate vertex",
			src:     "zone \"Z\" {\n surface \"S\" {\n loops = [[[0, 0], [1, 0], [1, 1]]]\n }\n}\n",
			wantErr: "has 2 coordinates",
		},
		{
			name:    "validation",
			src:     "zone \"Z\" {\n surface \"S\" {\n loops = [[[0, 0, 0], [1, 0, 0]]]\n }\n}\n",
			wantErr: "invalid building description",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.LoggerContext(t)
			dir := testutil.WriteFiles(t, map[string]string{"b.hcl": tc.src})
			_, err := NewLoader().Load(ctx, dir)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoader_MissingPathIsSkipped(t *testing.T) {
	ctx, _ := testutil.LoggerContext(t)
	model, err := NewLoader().Load(ctx, filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, model.Zones)
}
