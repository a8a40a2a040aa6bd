package osm

import "fmt"

// SystemType is the index selecting an HVAC variant.
type SystemType int

const (
	IdealLoads  SystemType = 0
	PTAC        SystemType = 1
	PTHP        SystemType = 2
	PackagedVAV SystemType = 5
)

// Supported reports whether t can be instantiated.
func (t SystemType) Supported() bool {
	switch t {
	case IdealLoads, PTAC, PTHP, PackagedVAV:
		return true
	}
	return false
}

func (t SystemType) String() string {
	switch t {
	case IdealLoads:
		return "IdealLoads"
	case PTAC:
		return "PTAC"
	case PTHP:
		return "PTHP"
	case PackagedVAV:
		return "PackagedVAV"
	default:
		return fmt.Sprintf("SystemType(%d)", int(t))
	}
}

// HVACSystem is the single system instantiated for one HVAC group.
// Zonal systems carry one terminal per zone; PackagedVAV carries an air loop.
type HVACSystem struct {
	Base
	Group     int
	Type      SystemType
	AirLoop   *AirLoopHVAC
	Terminals []*PackagedTerminalUnit

	zones []*ThermalZone
}

// Zones returns the attached zones in the order they were added.
func (s *HVACSystem) Zones() []*ThermalZone {
	return append([]*ThermalZone(nil), s.zones...)
}

// AddZone attaches z to the system.
func (s *HVACSystem) AddZone(z *ThermalZone) {
	s.zones = append(s.zones, z)
	z.System = s
	if s.Type == IdealLoads {
		z.UseIdealAirLoads = true
	}
}

// AirLoopHVAC is a central air loop with one branch per zone.
type AirLoopHVAC struct {
	Base
	branches []*ThermalZone
}

// AddBranchForZone adds a terminal branch serving z.
func (a *AirLoopHVAC) AddBranchForZone(z *ThermalZone) {
	a.branches = append(a.branches, z)
}

// Branches returns the served zones in branch order.
func (a *AirLoopHVAC) Branches() []*ThermalZone {
	return append([]*ThermalZone(nil), a.branches...)
}

// PackagedTerminalUnit is a zonal packaged air conditioner or heat pump.
type PackagedTerminalUnit struct {
	Base
	Zone     *ThermalZone
	HeatPump bool
}
