package osm

import (
	"fmt"
	"time"
)

// ScheduleTypeLimits bounds the values of the schedules that share it.
// Unset bounds are nil.
type ScheduleTypeLimits struct {
	Base
	Lower       *float64
	Upper       *float64
	NumericType string
	UnitType    string
}

// Schedule is one of the closed set of schedule variants.
type Schedule interface {
	Object
	Limits() *ScheduleTypeLimits
	isSchedule()
}

type scheduleBase struct {
	Base
	limits *ScheduleTypeLimits
}

func (s *scheduleBase) Limits() *ScheduleTypeLimits { return s.limits }
func (s *scheduleBase) isSchedule()                 {}

// SetLimits replaces the type limits of the schedule.
func (s *scheduleBase) SetLimits(l *ScheduleTypeLimits) { s.limits = l }

// ScheduleConstant holds one value all year.
type ScheduleConstant struct {
	scheduleBase
	Value float64
}

// NewScheduleConstant creates a constant schedule.
func NewScheduleConstant(value float64, limits *ScheduleTypeLimits) *ScheduleConstant {
	return &ScheduleConstant{scheduleBase: scheduleBase{limits: limits}, Value: value}
}

// Breakpoint is one step of a day profile: Value holds until Until, a
// fraction of 24 hours.
type Breakpoint struct {
	Until float64
	Value float64
}

// ScheduleDay is a 24 hour profile.
type ScheduleDay struct {
	scheduleBase
	breakpoints []Breakpoint
}

// NewScheduleDay creates an empty day profile.
func NewScheduleDay(limits *ScheduleTypeLimits) *ScheduleDay {
	return &ScheduleDay{scheduleBase: scheduleBase{limits: limits}}
}

// AddValue appends a breakpoint. Breakpoints keep the order they are added in.
func (d *ScheduleDay) AddValue(until, value float64) {
	d.breakpoints = append(d.breakpoints, Breakpoint{Until: until, Value: value})
}

// Breakpoints returns a copy of the profile.
func (d *ScheduleDay) Breakpoints() []Breakpoint {
	return append([]Breakpoint(nil), d.breakpoints...)
}

// DayCategory indexes the twelve day slots of a week schedule.
type DayCategory int

const (
	Sunday DayCategory = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Holiday
	SummerDesignDay
	WinterDesignDay
	CustomDay1
	CustomDay2

	NumDayCategories = 12
)

var dayCategoryNames = [NumDayCategories]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	"Holiday", "SummerDesignDay", "WinterDesignDay", "CustomDay1", "CustomDay2",
}

func (c DayCategory) String() string {
	if c < 0 || c >= NumDayCategories {
		return fmt.Sprintf("DayCategory(%d)", int(c))
	}
	return dayCategoryNames[c]
}

// ScheduleWeek assigns a day profile to every day category.
type ScheduleWeek struct {
	scheduleBase
	days [NumDayCategories]*ScheduleDay
}

// NewScheduleWeek creates a week schedule. All twelve slots must be filled;
// the limits are taken from the Sunday profile.
func NewScheduleWeek(days [NumDayCategories]*ScheduleDay) (*ScheduleWeek, error) {
	for i, d := range days {
		if d == nil {
			return nil, fmt.Errorf("week schedule is missing the %s profile", DayCategory(i))
		}
	}
	return &ScheduleWeek{scheduleBase: scheduleBase{limits: days[Sunday].Limits()}, days: days}, nil
}

// Day returns the profile for category c.
func (w *ScheduleWeek) Day(c DayCategory) *ScheduleDay {
	return w.days[c]
}

// Days returns all twelve profiles in category order.
func (w *ScheduleWeek) Days() [NumDayCategories]*ScheduleDay {
	return w.days
}

// Date is a month and day without a year.
type Date struct {
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d", int(d.Month), d.Day)
}

// WeekRange applies Week up to and including End.
type WeekRange struct {
	End  Date
	Week *ScheduleWeek
}

// ScheduleYear is an ordered sequence of week ranges.
type ScheduleYear struct {
	scheduleBase
	ranges []WeekRange
}

// NewScheduleYear creates an empty year schedule.
func NewScheduleYear(limits *ScheduleTypeLimits) *ScheduleYear {
	return &ScheduleYear{scheduleBase: scheduleBase{limits: limits}}
}

// AddWeek appends a range ending at end.
func (y *ScheduleYear) AddWeek(end Date, w *ScheduleWeek) {
	y.ranges = append(y.ranges, WeekRange{End: end, Week: w})
}

// Ranges returns a copy of the ranges in declared order.
func (y *ScheduleYear) Ranges() []WeekRange {
	return append([]WeekRange(nil), y.ranges...)
}

// ScheduleRuleset is a schedule with one default day profile. Setpoint
// overrides are rulesets whose default day has a single breakpoint.
type ScheduleRuleset struct {
	scheduleBase
	DefaultDay *ScheduleDay
}

// NewScheduleRuleset creates a ruleset around its default day.
func NewScheduleRuleset(day *ScheduleDay) *ScheduleRuleset {
	return &ScheduleRuleset{scheduleBase: scheduleBase{limits: day.Limits()}, DefaultDay: day}
}
