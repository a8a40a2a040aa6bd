package builder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
)

// maxScheduleDepth bounds Year -> Week -> Day nesting. Well-formed input
// needs three levels.
const maxScheduleDepth = 8

const (
	tagScheduleConstant    = "schedule:constant"
	tagScheduleDayInterval = "schedule:day:interval"
	tagScheduleWeekDaily   = "schedule:week:daily"
	tagScheduleYear        = "schedule:year"
)

// ResolveSchedule returns the schedule named name, building it and its
// parts on first use. An empty name resolves to no schedule and no error.
func (b *Builder) ResolveSchedule(ctx context.Context, name string) (osm.Schedule, error) {
	s, err := b.resolveSchedule(ctx, name, 0)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Schedule could not be built.", "schedule", name, "error", err)
	}
	return s, err
}

func (b *Builder) resolveSchedule(ctx context.Context, name string, depth int) (osm.Schedule, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	if s, ok := b.reg.Schedules.Lookup(name); ok {
		return s, nil
	}
	if depth >= maxScheduleDepth {
		return nil, fmt.Errorf("%w: schedule %q nests deeper than %d levels", ErrMalformedDefinition, name, maxScheduleDepth)
	}
	row, err := b.lookup(idf.FamilySchedule, name)
	if err != nil {
		return nil, err
	}
	values := row.Values()
	tag := strings.ToLower(row.Tag)
	switch tag {
	case tagScheduleConstant, tagScheduleDayInterval, tagScheduleWeekDaily, tagScheduleYear:
	default:
		return nil, fmt.Errorf("%w: schedule %q has tag %q", ErrUnsupportedType, name, row.Tag)
	}

	var limits *osm.ScheduleTypeLimits
	if tag != tagScheduleWeekDaily {
		limits, err = b.ResolveTypeLimits(ctx, field(values, 1))
		if err != nil {
			return nil, fmt.Errorf("schedule %q: %w", name, err)
		}
	}

	return b.reg.Schedules.GetOrBuild(name, func() (osm.Schedule, error) {
		switch tag {
		case tagScheduleConstant:
			return b.buildConstant(row, values, limits)
		case tagScheduleDayInterval:
			return b.buildDay(row, values, limits)
		case tagScheduleWeekDaily:
			return b.buildWeek(ctx, row, values, depth)
		default:
			return b.buildYear(ctx, row, values, limits, depth)
		}
	})
}

func (b *Builder) buildConstant(row idf.Row, values []string, limits *osm.ScheduleTypeLimits) (osm.Schedule, error) {
	v, err := requiredFloat(row, values, 2, "value")
	if err != nil {
		return nil, err
	}
	return osm.Add(b.model, row.Name(), osm.NewScheduleConstant(v, limits)), nil
}

// buildDay reads (until, value) pairs starting after the interpolate field.
// Pairs are appended in declared order without sorting.
func (b *Builder) buildDay(row idf.Row, values []string, limits *osm.ScheduleTypeLimits) (osm.Schedule, error) {
	const first = 3
	n := (len(values) - first) / 2
	if n < 1 {
		return nil, fmt.Errorf("%w: %s %q has no intervals", ErrMalformedDefinition, row.Tag, row.Name())
	}
	day := osm.NewScheduleDay(limits)
	for i := 0; i < n; i++ {
		until, err := parseUntil(field(values, first+2*i))
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q interval %d: %v", ErrMalformedDefinition, row.Tag, row.Name(), i+1, err)
		}
		v, err := requiredFloat(row, values, first+2*i+1, "interval value")
		if err != nil {
			return nil, err
		}
		day.AddValue(until, v)
	}
	return osm.Add(b.model, row.Name(), day), nil
}

// parseUntil converts "hh:mm" to a fraction of 24 hours.
func parseUntil(s string) (float64, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("time %q is not hh:mm", s)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, fmt.Errorf("time %q has a bad hour", s)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0, fmt.Errorf("time %q has a bad minute", s)
	}
	if hours < 0 || minutes < 0 || minutes > 59 || hours*60+minutes > 24*60 {
		return 0, fmt.Errorf("time %q is outside the day", s)
	}
	return (float64(hours) + float64(minutes)/60) / 24, nil
}

// buildWeek resolves all twelve day profiles. The week is not built unless
// every one of them resolves.
func (b *Builder) buildWeek(ctx context.Context, row idf.Row, values []string, depth int) (osm.Schedule, error) {
	if len(values) < 1+osm.NumDayCategories {
		return nil, fmt.Errorf("%w: %s %q names %d of %d day schedules",
			ErrMalformedDefinition, row.Tag, row.Name(), len(values)-1, osm.NumDayCategories)
	}
	var days [osm.NumDayCategories]*osm.ScheduleDay
	for i := range days {
		dayName := values[1+i]
		s, err := b.resolveSchedule(ctx, dayName, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%s %q %s: %w", row.Tag, row.Name(), osm.DayCategory(i), err)
		}
		day, ok := s.(*osm.ScheduleDay)
		if !ok {
			return nil, fmt.Errorf("%w: %s %q %s: %q is not a day schedule",
				ErrMalformedDefinition, row.Tag, row.Name(), osm.DayCategory(i), dayName)
		}
		days[i] = day
	}
	week, err := osm.NewScheduleWeek(days)
	if err != nil {
		return nil, errors.Join(ErrMalformedDefinition, err)
	}
	return osm.Add(b.model, row.Name(), week), nil
}

// buildYear reads (week, start month, start day, end month, end day)
// quintuples. Only the end date is kept; ranges are appended in declared
// order.
func (b *Builder) buildYear(ctx context.Context, row idf.Row, values []string, limits *osm.ScheduleTypeLimits, depth int) (osm.Schedule, error) {
	const first = 2
	n := (len(values) - first) / 5
	if n < 1 {
		return nil, fmt.Errorf("%w: %s %q has no week ranges", ErrMalformedDefinition, row.Tag, row.Name())
	}
	type weekRange struct {
		end  osm.Date
		week *osm.ScheduleWeek
	}
	ranges := make([]weekRange, 0, n)
	for i := 0; i < n; i++ {
		at := first + 5*i
		weekName := values[at]
		month, err := requiredInt(row, values, at+3, "end month")
		if err != nil {
			return nil, err
		}
		day, err := requiredInt(row, values, at+4, "end day")
		if err != nil {
			return nil, err
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return nil, fmt.Errorf("%w: %s %q range %d ends on %d/%d", ErrMalformedDefinition, row.Tag, row.Name(), i+1, month, day)
		}
		s, err := b.resolveSchedule(ctx, weekName, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%s %q range %d: %w", row.Tag, row.Name(), i+1, err)
		}
		week, ok := s.(*osm.ScheduleWeek)
		if !ok {
			return nil, fmt.Errorf("%w: %s %q range %d: %q is not a week schedule",
				ErrMalformedDefinition, row.Tag, row.Name(), i+1, weekName)
		}
		ranges = append(ranges, weekRange{end: osm.Date{Month: time.Month(month), Day: day}, week: week})
	}
	year := osm.NewScheduleYear(limits)
	for _, r := range ranges {
		year.AddWeek(r.end, r.week)
	}
	return osm.Add(b.model, row.Name(), year), nil
}

// ResolveTypeLimits returns the type limits named name. Bounds that do not
// parse are left unset. An empty name resolves to no limits.
func (b *Builder) ResolveTypeLimits(ctx context.Context, name string) (*osm.ScheduleTypeLimits, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	return b.reg.TypeLimits.GetOrBuild(name, func() (*osm.ScheduleTypeLimits, error) {
		row, err := b.lookup(idf.FamilyTypeLimits, name)
		if err != nil {
			return nil, err
		}
		values := row.Values()
		limits := &osm.ScheduleTypeLimits{
			NumericType: field(values, 3),
			UnitType:    field(values, 4),
		}
		if v, ok := optionalFloat(values, 1); ok {
			limits.Lower = &v
		}
		if v, ok := optionalFloat(values, 2); ok {
			limits.Upper = &v
		}
		ctxlog.FromContext(ctx).Debug("Built schedule type limits.", "name", row.Name())
		return osm.Add(b.model, row.Name(), limits), nil
	})
}

const (
	// temperatureLimits is reused for setpoint schedules when the library
	// defines it.
	temperatureLimits = "Temperature"
	// setpointLimits names the limits synthesized when it does not.
	setpointLimits = "Setpoint Temperature"
)

// SetpointSchedule returns a schedule holding value for the whole day, named
// "<kind> Sch <value>". Equal setpoints share one schedule. These schedules
// are not registered, so a library schedule of the same name stays distinct.
func (b *Builder) SetpointSchedule(ctx context.Context, kind string, value float64) (osm.Schedule, error) {
	name := fmt.Sprintf("%s Sch %s", kind, strconv.FormatFloat(value, 'f', -1, 64))
	if s, ok := b.setpoints[strings.ToLower(name)]; ok {
		return s, nil
	}
	limits, err := b.temperatureLimits(ctx)
	if err != nil {
		return nil, err
	}
	day := osm.Add(b.model, name+" Default", osm.NewScheduleDay(limits))
	day.AddValue(1, value)
	s := osm.Add(b.model, name, osm.NewScheduleRuleset(day))
	b.setpoints[strings.ToLower(name)] = s
	ctxlog.FromContext(ctx).Debug("Built setpoint override schedule.", "name", name)
	return s, nil
}

// temperatureLimits prefers the library's Temperature limits and otherwise
// synthesizes one private object under a name no library lookup resolves.
func (b *Builder) temperatureLimits(ctx context.Context) (*osm.ScheduleTypeLimits, error) {
	limits, err := b.ResolveTypeLimits(ctx, temperatureLimits)
	if err == nil {
		return limits, nil
	}
	if !errors.Is(err, ErrDefinitionNotFound) {
		return nil, err
	}
	if b.setpointLimits == nil {
		b.setpointLimits = osm.Add(b.model, setpointLimits, &osm.ScheduleTypeLimits{NumericType: "Continuous", UnitType: "Temperature"})
	}
	return b.setpointLimits, nil
}
