package builder

import (
	"context"
	"testing"

	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
	"github.com/specialistvlad/osmforge/internal/registry"
	"github.com/stretchr/testify/require"
)

const testLibrary = `
ScheduleTypeLimits, Fraction, 0, 1, Continuous;
ScheduleTypeLimits, Any Number, , , Continuous;
ScheduleTypeLimits, Temperature, -60, abc, Continuous, Temperature;

Schedule:Constant, Always 21, Temperature, 21.0;
Schedule:Day:Interval, Office Day, Fraction, No, 08:00, 0.0, 18:00, 1.0;
Schedule:Day:Interval, Off Day, Fraction, No, 24:00, 0.0;
Schedule:Day:Interval, Bad Day, Fraction, No, 8am, 0.0;
Schedule:Week:Daily, Office Week,
  Off Day, Office Day, Office Day, Office Day, Office Day, Office Day, Off Day,
  Off Day, Office Day, Off Day, Off Day, Off Day;
Schedule:Week:Daily, Short Week, Off Day, Office Day;
Schedule:Week:Daily, Broken Week,
  Off Day, Office Day, Office Day, Office Day, Office Day, Office Day, Off Day,
  Off Day, Office Day, Off Day, Off Day, Missing Day;
Schedule:Year, Office Year, Fraction,
  Office Week, 1, 1, 6, 30,
  Office Week, 7, 1, 12, 31;
Schedule:Compact, Compact Sch, Fraction, Through: 12/31, For: AllDays, Until: 24:00, 1;
Schedule:Day:Interval, Loop A, Fraction, No, 24:00, 1;
Schedule:Week:Daily, Cycle Week,
  Cycle Week, Cycle Week, Cycle Week, Cycle Week, Cycle Week, Cycle Week, Cycle Week,
  Cycle Week, Cycle Week, Cycle Week, Cycle Week, Cycle Week;
Schedule:Constant, Unlimited, , 5;

Material, Brick, MediumRough, 0.1, 0.89, 1920, 790, 0.9, 0.7, 0.7;
Material, Insulation, Rough, 0.05, 0.03, 43, 1210;
Material:NoMass, Carpet, VeryRough, 0.2;
Material:AirGap, Gap, 0.15;
WindowMaterial:SimpleGlazingSystem, Simple Glass, 2.7, 0.4, 0.6;
WindowMaterial:Glazing, Clear 3mm, SpectralAverage, , 0.003, 0.837, 0.075, 0.075, 0.898, 0.081, 0.081, 0, 0.84, 0.84, 0.9;
WindowMaterial:Gas, Air 13mm, Air, 0.0127;
WindowMaterial:Shade, Roller, 0.3;
Material, Bad Brick, Rough, thick, 0.89, 1920, 790;

Construction, Exterior Wall, Brick, Insulation;
Construction, Shaded Window, Clear 3mm, Roller;
Construction, Double Pane, Clear 3mm, Air 13mm, Clear 3mm;
`

func newTestBuilder(t *testing.T) (*Builder, context.Context) {
	t.Helper()
	rows, err := idf.Parse([]byte(testLibrary))
	require.NoError(t, err)
	b := New(idf.NewLibrary(rows...), osm.New(), registry.NewSet())
	return b, ctxlog.Discard(context.Background())
}
