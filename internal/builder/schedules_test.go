package builder

import (
	"context"
	"testing"
	"time"

	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
	"github.com/specialistvlad/osmforge/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchedule_DayBreakpoints(t *testing.T) {
	b, ctx := newTestBuilder(t)

	s, err := b.ResolveSchedule(ctx, "office day")
	require.NoError(t, err)
	day, ok := s.(*osm.ScheduleDay)
	require.True(t, ok)

	bps := day.Breakpoints()
	require.Len(t, bps, 2)
	assert.InDelta(t, 0.3333, bps[0].Until, 1e-4)
	assert.Equal(t, 0.0, bps[0].Value)
	assert.InDelta(t, 0.75, bps[1].Until, 1e-9)
	assert.Equal(t, 1.0, bps[1].Value)

	require.NotNil(t, day.Limits())
	assert.Equal(t, "Fraction", day.Limits().Name())
	assert.Equal(t, "Office Day", day.Name())
}

func TestResolveSchedule_Constant(t *testing.T) {
	b, ctx := newTestBuilder(t)

	s, err := b.ResolveSchedule(ctx, "Always 21")
	require.NoError(t, err)
	c, ok := s.(*osm.ScheduleConstant)
	require.True(t, ok)
	assert.Equal(t, 21.0, c.Value)

	// Malformed bounds are left unset.
	limits := c.Limits()
	require.NotNil(t, limits.Lower)
	assert.Equal(t, -60.0, *limits.Lower)
	assert.Nil(t, limits.Upper)
	assert.Equal(t, "Temperature", limits.UnitType)
}

func TestResolveSchedule_IsIdempotent(t *testing.T) {
	b, ctx := newTestBuilder(t)

	first, err := b.ResolveSchedule(ctx, "Office Year")
	require.NoError(t, err)
	before := b.Model().Len()
	second, err := b.ResolveSchedule(ctx, "OFFICE YEAR")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, before, b.Model().Len())
}

func TestResolveSchedule_WeekIsComplete(t *testing.T) {
	b, ctx := newTestBuilder(t)

	s, err := b.ResolveSchedule(ctx, "Office Week")
	require.NoError(t, err)
	week, ok := s.(*osm.ScheduleWeek)
	require.True(t, ok)

	office, _ := b.Registries().Schedules.Lookup("Office Day")
	off, _ := b.Registries().Schedules.Lookup("Off Day")
	for i, d := range week.Days() {
		require.NotNil(t, d, osm.DayCategory(i).String())
	}
	assert.Same(t, off, week.Day(osm.Sunday))
	assert.Same(t, office, week.Day(osm.Monday))
	assert.Same(t, office, week.Day(osm.SummerDesignDay))
	assert.Same(t, off, week.Day(osm.CustomDay2))
	// Day profiles are shared, not copied per slot.
	assert.Len(t, osm.All[*osm.ScheduleDay](b.Model()), 2)
}

func TestResolveSchedule_Year(t *testing.T) {
	b, ctx := newTestBuilder(t)

	s, err := b.ResolveSchedule(ctx, "Office Year")
	require.NoError(t, err)
	year, ok := s.(*osm.ScheduleYear)
	require.True(t, ok)

	ranges := year.Ranges()
	require.Len(t, ranges, 2)
	assert.Equal(t, osm.Date{Month: time.June, Day: 30}, ranges[0].End)
	assert.Equal(t, osm.Date{Month: time.December, Day: 31}, ranges[1].End)
	assert.Same(t, ranges[0].Week, ranges[1].Week)
}

func TestResolveSchedule_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		sched   string
		wantErr error
	}{
		{name: "unsupported tag", sched: "Compact Sch", wantErr: ErrUnsupportedType},
		{name: "unknown name", sched: "Nope", wantErr: ErrDefinitionNotFound},
		{name: "bad clock time", sched: "Bad Day", wantErr: ErrMalformedDefinition},
		{name: "week with too few days", sched: "Short Week", wantErr: ErrMalformedDefinition},
		{name: "week with a missing day", sched: "Broken Week", wantErr: ErrDefinitionNotFound},
		{name: "self-referencing week", sched: "Cycle Week", wantErr: ErrMalformedDefinition},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, ctx := newTestBuilder(t)

			s, err := b.ResolveSchedule(ctx, tc.sched)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, s)
			_, ok := b.Registries().Schedules.Lookup(tc.sched)
			assert.False(t, ok)
			assert.Empty(t, osm.All[*osm.ScheduleWeek](b.Model()))
		})
	}
}

func TestResolveSchedule_EmptyName(t *testing.T) {
	b, ctx := newTestBuilder(t)
	s, err := b.ResolveSchedule(ctx, " ")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestParseUntil(t *testing.T) {
	testCases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "06:30", want: 6.5 / 24},
		{in: "24:00", want: 1},
		{in: "24:01", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1200", wantErr: true},
		{in: "ab:00", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseUntil(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestSetpointSchedule_SharesEqualValues(t *testing.T) {
	b, ctx := newTestBuilder(t)

	h1, err := b.SetpointSchedule(ctx, "Heating", 20)
	require.NoError(t, err)
	h2, err := b.SetpointSchedule(ctx, "Heating", 20)
	require.NoError(t, err)
	c, err := b.SetpointSchedule(ctx, "Cooling", 24.5)
	require.NoError(t, err)

	assert.Same(t, h1, h2)
	assert.Equal(t, "Heating Sch 20", h1.Name())
	assert.Equal(t, "Cooling Sch 24.5", c.Name())

	rs, ok := h1.(*osm.ScheduleRuleset)
	require.True(t, ok)
	assert.Equal(t, []osm.Breakpoint{{Until: 1, Value: 20}}, rs.DefaultDay.Breakpoints())
	// The library's Temperature limits are reused.
	assert.Same(t, rs.Limits(), c.Limits())
	require.NotNil(t, rs.Limits().Lower)
}

func TestResolveSchedule_DepthGuard(t *testing.T) {
	b, ctx := newTestBuilder(t)

	_, err := b.ResolveSchedule(ctx, "Cycle Week")
	require.ErrorIs(t, err, ErrMalformedDefinition)
	assert.ErrorContains(t, err, "nests deeper than 8 levels")
	assert.Zero(t, b.Model().Len())
}

func TestResolveSchedule_WithoutTypeLimits(t *testing.T) {
	b, ctx := newTestBuilder(t)

	s, err := b.ResolveSchedule(ctx, "Unlimited")
	require.NoError(t, err)
	c, ok := s.(*osm.ScheduleConstant)
	require.True(t, ok)
	assert.Equal(t, 5.0, c.Value)
	assert.Nil(t, c.Limits())
	assert.Zero(t, b.Registries().TypeLimits.Len())
}

func TestSetpointSchedule_SynthesizedLimitsStayPrivate(t *testing.T) {
	lib := idf.NewLibrary(idf.NewRow("Schedule:Constant", "HeatSch", "Temperature", "20"))
	b := New(lib, osm.New(), registry.NewSet())
	ctx := ctxlog.Discard(context.Background())

	h, err := b.SetpointSchedule(ctx, "Heating", 21)
	require.NoError(t, err)
	c, err := b.SetpointSchedule(ctx, "Cooling", 24)
	require.NoError(t, err)
	require.NotNil(t, h.Limits())
	assert.Equal(t, "Setpoint Temperature", h.Limits().Name())
	assert.Same(t, h.Limits(), c.Limits())
	assert.Len(t, osm.All[*osm.ScheduleTypeLimits](b.Model()), 1)

	// The library still cannot resolve what it never defined.
	_, err = b.ResolveSchedule(ctx, "HeatSch")
	require.ErrorIs(t, err, ErrDefinitionNotFound)
	assert.Zero(t, b.Registries().TypeLimits.Len())
	_, ok := b.Registries().Schedules.Lookup("Heating Sch 21")
	assert.False(t, ok)
}
