package osm

// SpaceType is shared by every space with the same building and zone program.
type SpaceType struct {
	Base
	BuildingProgram string
	ZoneProgram     string
}

// DefaultScheduleSet is the fallback schedules for the loads of a space.
type DefaultScheduleSet struct {
	Base
	HoursOfOperation  Schedule
	People            Schedule
	Lighting          Schedule
	ElectricEquipment Schedule
	Infiltration      Schedule
	PeopleActivity    Schedule
}

// Space is the geometric unit that owns surfaces and loads.
type Space struct {
	Base
	SpaceType        *SpaceType
	DefaultSchedules *DefaultScheduleSet
	ThermalZone      *ThermalZone
	OutdoorAir       *DesignSpecificationOutdoorAir
	FloorArea        float64

	Infiltration      *SpaceInfiltration
	People            *People
	Lights            *Lights
	ElectricEquipment *ElectricEquipment

	surfaces []*Surface
}

// Surfaces returns the surfaces of the space in creation order.
func (s *Space) Surfaces() []*Surface {
	return append([]*Surface(nil), s.surfaces...)
}

// ThermalZone is the simulation unit wrapping exactly one space.
type ThermalZone struct {
	Base
	Space            *Space
	Thermostat       *ThermostatSetpointDualSetpoint
	UseIdealAirLoads bool
	System           *HVACSystem
}

// ThermostatSetpointDualSetpoint holds the active heating and cooling
// schedules. Baseline schedules are the ones the zone declared; they differ
// from the active ones when a setpoint literal overrides them.
type ThermostatSetpointDualSetpoint struct {
	Base
	Heating         Schedule
	Cooling         Schedule
	BaselineHeating Schedule
	BaselineCooling Schedule
}

// SpaceInfiltration is design flow per space floor area.
type SpaceInfiltration struct {
	Base
	Space            *Space
	Schedule         Schedule
	FlowPerFloorArea float64
}

// PeopleDefinition is occupant density.
type PeopleDefinition struct {
	Base
	PeoplePerFloorArea float64
	NumberOfPeople     float64
}

// People instantiates a PeopleDefinition in a space.
type People struct {
	Base
	Definition *PeopleDefinition
	Space      *Space
	Schedule   Schedule
	Activity   Schedule
}

// LightingMethod selects how a LightsDefinition is sized.
type LightingMethod int

const (
	WattsPerArea LightingMethod = iota
	LightingLevel
)

func (m LightingMethod) String() string {
	if m == LightingLevel {
		return "LightingLevel"
	}
	return "Watts/Area"
}

// LightsDefinition is sized either by an absolute level or per floor area.
type LightsDefinition struct {
	Base
	Method            LightingMethod
	LightingLevel     float64
	WattsPerFloorArea float64
	DesignLevel       float64
}

// Lights instantiates a LightsDefinition in a space.
type Lights struct {
	Base
	Definition *LightsDefinition
	Space      *Space
	Schedule   Schedule
}

// ElectricEquipmentDefinition is plug load density.
type ElectricEquipmentDefinition struct {
	Base
	WattsPerFloorArea float64
}

// ElectricEquipment instantiates an ElectricEquipmentDefinition in a space.
type ElectricEquipment struct {
	Base
	Definition        *ElectricEquipmentDefinition
	Space             *Space
	Schedule          Schedule
	EndUseSubcategory string
}

// DesignSpecificationOutdoorAir is the ventilation requirement of a space.
type DesignSpecificationOutdoorAir struct {
	Base
	Method       string
	PerPerson    float64
	PerFloorArea float64
	FlowRate     float64
}
