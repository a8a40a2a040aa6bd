package config

// Model is the unified, format-agnostic description of one building.
type Model struct {
	Zones   []*Zone           `yaml:"zones" validate:"dive"`
	Shading []*ShadingSurface `yaml:"shading" validate:"dive"`
	// Outputs are raw directive rows such as
	// "Output:Variable,*,Zone Air Temperature,hourly;".
	Outputs    []string    `yaml:"outputs"`
	Simulation *Simulation `yaml:"simulation"`
}

// Point is an (x, y, z) vertex in meters.
type Point [3]float64

// Loop is an ordered, implicitly closed vertex loop.
type Loop []Point

// Zone is one thermal zone of the building.
type Zone struct {
	Name            string `yaml:"name" validate:"required"`
	BuildingProgram string `yaml:"building_program"`
	ZoneProgram     string `yaml:"zone_program"`

	// FloorArea overrides the area derived from the zone's floor surfaces.
	FloorArea float64 `yaml:"floor_area" validate:"gte=0"`

	PeoplePerArea           float64 `yaml:"people_per_area" validate:"gte=0"`
	LightingDensityPerArea  float64 `yaml:"lighting_density_per_area" validate:"gte=0"`
	EquipmentLoadPerArea    float64 `yaml:"equipment_load_per_area" validate:"gte=0"`
	InfiltrationRatePerArea float64 `yaml:"infiltration_rate_per_area" validate:"gte=0"`
	VentilationPerPerson    float64 `yaml:"ventilation_per_person" validate:"gte=0"`
	VentilationPerArea      float64 `yaml:"ventilation_per_area" validate:"gte=0"`
	// DaylightThreshold switches lighting to the level-based method.
	DaylightThreshold *float64 `yaml:"daylight_threshold"`

	// Setpoint literals override the declared setpoint schedules.
	HeatingSetpoint         *float64 `yaml:"heating_setpoint"`
	CoolingSetpoint         *float64 `yaml:"cooling_setpoint"`
	HeatingSetpointSchedule string   `yaml:"heating_setpoint_schedule"`
	CoolingSetpointSchedule string   `yaml:"cooling_setpoint_schedule"`

	OccupancySchedule         string `yaml:"occupancy_schedule"`
	OccupancyActivitySchedule string `yaml:"occupancy_activity_schedule"`
	LightingSchedule          string `yaml:"lighting_schedule"`
	EquipmentSchedule         string `yaml:"equipment_schedule"`
	InfiltrationSchedule      string `yaml:"infiltration_schedule"`

	// HVACGroup clusters zones that share one system; -1 means no group.
	HVACGroup  int `yaml:"hvac_group"`
	HVACSystem int `yaml:"hvac_system"`

	Surfaces []*Surface `yaml:"surfaces" validate:"dive"`
}

// Surface is one zone surface. More than one loop marks a non-planar surface
// that was triangulated upstream.
type Surface struct {
	Name         string `yaml:"name" validate:"required"`
	Type         string `yaml:"type" validate:"omitempty,oneof=wall Wall floor Floor roof Roof ceiling Ceiling roofceiling RoofCeiling"`
	Boundary     string `yaml:"boundary" validate:"omitempty,oneof=outdoors Outdoors ground Ground surface Surface adiabatic Adiabatic"`
	Partner      string `yaml:"partner"`
	Construction string `yaml:"construction"`
	SunExposed   *bool  `yaml:"sun_exposed"`
	WindExposed  *bool  `yaml:"wind_exposed"`
	Loops        []Loop `yaml:"loops" validate:"min=1,dive,min=3"`

	Openings []*Opening `yaml:"openings" validate:"dive"`
}

// Opening is a window, door or skylight carried by a surface.
type Opening struct {
	Name         string `yaml:"name" validate:"required"`
	Type         string `yaml:"type"`
	Construction string `yaml:"construction"`
	Loops        []Loop `yaml:"loops" validate:"min=1,dive,min=3"`
}

// ShadingSurface is a context surface that only casts shadows.
type ShadingSurface struct {
	Loops []Loop `yaml:"loops" validate:"min=1,dive,min=3"`
}

// Simulation holds run-wide settings. Zero values are replaced by the
// defaults in DefaultSimulation.
type Simulation struct {
	TimestepsPerHour     int     `yaml:"timesteps_per_hour" validate:"gte=0,lte=60"`
	ShadowMethod         string  `yaml:"shadow_method"`
	ShadowFrequency      int     `yaml:"shadow_frequency" validate:"gte=0"`
	ShadowMaxFigures     int     `yaml:"shadow_max_figures" validate:"gte=0"`
	SolarDistribution    string  `yaml:"solar_distribution"`
	DoZoneSizing         *bool   `yaml:"do_zone_sizing"`
	DoSystemSizing       *bool   `yaml:"do_system_sizing"`
	DoPlantSizing        *bool   `yaml:"do_plant_sizing"`
	RunForSizingPeriods  *bool   `yaml:"run_for_sizing_periods"`
	RunForWeatherPeriods *bool   `yaml:"run_for_weather_periods"`
	StartMonth           int     `yaml:"start_month" validate:"gte=0,lte=12"`
	StartDay             int     `yaml:"start_day" validate:"gte=0,lte=31"`
	EndMonth             int     `yaml:"end_month" validate:"gte=0,lte=12"`
	EndDay               int     `yaml:"end_day" validate:"gte=0,lte=31"`
	NorthAngle           float64 `yaml:"north_angle"`
}

// DefaultSimulation returns the settings used for anything left unset.
func DefaultSimulation() Simulation {
	f, t := false, true
	return Simulation{
		TimestepsPerHour:     6,
		ShadowMethod:         "AverageOverDaysInFrequency",
		ShadowFrequency:      20,
		ShadowMaxFigures:     15000,
		SolarDistribution:    "FullExteriorWithReflections",
		DoZoneSizing:         &f,
		DoSystemSizing:       &f,
		DoPlantSizing:        &f,
		RunForSizingPeriods:  &f,
		RunForWeatherPeriods: &t,
		StartMonth:           1,
		StartDay:             1,
		EndMonth:             12,
		EndDay:               31,
	}
}

// WithDefaults returns a copy of s with every unset field taken from
// DefaultSimulation. A nil receiver yields the defaults.
func (s *Simulation) WithDefaults() Simulation {
	d := DefaultSimulation()
	if s == nil {
		return d
	}
	out := *s
	if out.TimestepsPerHour == 0 {
		out.TimestepsPerHour = d.TimestepsPerHour
	}
	if out.ShadowMethod == "" {
		out.ShadowMethod = d.ShadowMethod
	}
	if out.ShadowFrequency == 0 {
		out.ShadowFrequency = d.ShadowFrequency
	}
	if out.ShadowMaxFigures == 0 {
		out.ShadowMaxFigures = d.ShadowMaxFigures
	}
	if out.SolarDistribution == "" {
		out.SolarDistribution = d.SolarDistribution
	}
	for _, p := range []struct {
		dst **bool
		def *bool
	}{
		{&out.DoZoneSizing, d.DoZoneSizing},
		{&out.DoSystemSizing, d.DoSystemSizing},
		{&out.DoPlantSizing, d.DoPlantSizing},
		{&out.RunForSizingPeriods, d.RunForSizingPeriods},
		{&out.RunForWeatherPeriods, d.RunForWeatherPeriods},
	} {
		if *p.dst == nil {
			*p.dst = p.def
		}
	}
	if out.StartMonth == 0 {
		out.StartMonth, out.StartDay = d.StartMonth, d.StartDay
	}
	if out.EndMonth == 0 {
		out.EndMonth, out.EndDay = d.EndMonth, d.EndDay
	}
	if out.StartDay == 0 {
		out.StartDay = 1
	}
	if out.EndDay == 0 {
		out.EndDay = d.EndDay
	}
	return out
}
