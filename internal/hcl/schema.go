package hcl

// fileRoot is decoded from each file after locals are removed from its body.
type fileRoot struct {
	Simulation *simulationBlock `hcl:"simulation,block"`
	Zones      []*zoneBlock     `hcl:"zone,block"`
	Shading    []*shadingBlock  `hcl:"shading,block"`
	Outputs    []string         `hcl:"outputs,optional"`
}

// rawLoops is decoded as nested lists; gohcl cannot target Go arrays.
type rawLoops = [][][]float64

type zoneBlock struct {
	Name            string  `hcl:"name,label"`
	BuildingProgram string  `hcl:"building_program,optional"`
	ZoneProgram     string  `hcl:"zone_program,optional"`
	FloorArea       float64 `hcl:"floor_area,optional"`

	PeoplePerArea           float64  `hcl:"people_per_area,optional"`
	LightingDensityPerArea  float64  `hcl:"lighting_density_per_area,optional"`
	EquipmentLoadPerArea    float64  `hcl:"equipment_load_per_area,optional"`
	InfiltrationRatePerArea float64  `hcl:"infiltration_rate_per_area,optional"`
	VentilationPerPerson    float64  `hcl:"ventilation_per_person,optional"`
	VentilationPerArea      float64  `hcl:"ventilation_per_area,optional"`
	DaylightThreshold       *float64 `hcl:"daylight_threshold,optional"`

	HeatingSetpoint         *float64 `hcl:"heating_setpoint,optional"`
	CoolingSetpoint         *float64 `hcl:"cooling_setpoint,optional"`
	HeatingSetpointSchedule string   `hcl:"heating_setpoint_schedule,optional"`
	CoolingSetpointSchedule string   `hcl:"cooling_setpoint_schedule,optional"`

	OccupancySchedule         string `hcl:"occupancy_schedule,optional"`
	OccupancyActivitySchedule string `hcl:"occupancy_activity_schedule,optional"`
	LightingSchedule          string `hcl:"lighting_schedule,optional"`
	EquipmentSchedule         string `hcl:"equipment_schedule,optional"`
	InfiltrationSchedule      string `hcl:"infiltration_schedule,optional"`

	HVACGroup  int `hcl:"hvac_group,optional"`
	HVACSystem int `hcl:"hvac_system,optional"`

	Surfaces []*surfaceBlock `hcl:"surface,block"`
}

type surfaceBlock struct {
	Name         string   `hcl:"name,label"`
	Type         string   `hcl:"type,optional"`
	Boundary     string   `hcl:"boundary,optional"`
	Partner      string   `hcl:"partner,optional"`
	Construction string   `hcl:"construction,optional"`
	SunExposed   *bool    `hcl:"sun_exposed,optional"`
	WindExposed  *bool    `hcl:"wind_exposed,optional"`
	Loops        rawLoops `hcl:"loops"`

	Openings []*openingBlock `hcl:"opening,block"`
}

type openingBlock struct {
	Name         string   `hcl:"name,label"`
	Type         string   `hcl:"type,optional"`
	Construction string   `hcl:"construction,optional"`
	Loops        rawLoops `hcl:"loops"`
}

type shadingBlock struct {
	Loops rawLoops `hcl:"loops"`
}

type simulationBlock struct {
	TimestepsPerHour     int     `hcl:"timesteps_per_hour,optional"`
	ShadowMethod         string  `hcl:"shadow_method,optional"`
	ShadowFrequency      int     `hcl:"shadow_frequency,optional"`
	ShadowMaxFigures     int     `hcl:"shadow_max_figures,optional"`
	SolarDistribution    string  `hcl:"solar_distribution,optional"`
	DoZoneSizing         *bool   `hcl:"do_zone_sizing,optional"`
	DoSystemSizing       *bool   `hcl:"do_system_sizing,optional"`
	DoPlantSizing        *bool   `hcl:"do_plant_sizing,optional"`
	RunForSizingPeriods  *bool   `hcl:"run_for_sizing_periods,optional"`
	RunForWeatherPeriods *bool   `hcl:"run_for_weather_periods,optional"`
	StartMonth           int     `hcl:"start_month,optional"`
	StartDay             int     `hcl:"start_day,optional"`
	EndMonth             int     `hcl:"end_month,optional"`
	EndDay               int     `hcl:"end_day,optional"`
	NorthAngle           float64 `hcl:"north_angle,optional"`
}
