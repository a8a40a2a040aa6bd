package energyplus

import (
	"github.com/specialistvlad/osmforge/internal/osm"
)

func (t *translator) zone(z *osm.ThermalZone) {
	area := "autocalculate"
	if z.Space != nil && z.Space.FloorArea > 0 {
		area = num(z.Space.FloorArea)
	}
	t.emit("Zone", z.Name(), "0", "0", "0", "0", "1", "1", "autocalculate", "autocalculate", area)
}

// loads writes the space's internal gains against its thermal zone.
func (t *translator) loads(s *osm.Space) {
	zone := zoneName(s)

	if p := s.People; p != nil {
		perArea := ""
		if p.Definition != nil {
			perArea = num(p.Definition.PeoplePerFloorArea)
		}
		t.emit("People", p.Name(), zone, scheduleName(p.Schedule), "People/Area", "", perArea, "",
			"0.3", "autocalculate", scheduleName(p.Activity))
	}

	if l := s.Lights; l != nil && l.Definition != nil {
		d := l.Definition
		level, perArea := "", num(d.WattsPerFloorArea)
		if d.Method == osm.LightingLevel {
			level, perArea = num(d.DesignLevel), ""
		}
		t.emit("Lights", l.Name(), zone, scheduleName(l.Schedule), d.Method.String(), level, perArea, "",
			"0", "0.7", "0.2", "1", "General")
	}

	if e := s.ElectricEquipment; e != nil && e.Definition != nil {
		t.emit("ElectricEquipment", e.Name(), zone, scheduleName(e.Schedule), "Watts/Area", "",
			num(e.Definition.WattsPerFloorArea), "", "0", "0.3", "0", e.EndUseSubcategory)
	}

	if i := s.Infiltration; i != nil {
		t.emit("ZoneInfiltration:DesignFlowRate", i.Name(), zone, scheduleName(i.Schedule), "Flow/Area", "",
			num(i.FlowPerFloorArea), "", "", "1", "0", "0", "0")
	}

	if oa := s.OutdoorAir; oa != nil {
		t.emit("DesignSpecification:OutdoorAir", oa.Name(), oa.Method, num(oa.PerPerson), num(oa.PerFloorArea), num(oa.FlowRate))
	}
}

// hvac writes the template objects the engine expands into full systems.
func (t *translator) hvac(sys *osm.HVACSystem) {
	if sys.Type == osm.PackagedVAV && sys.AirLoop != nil {
		t.emit("HVACTemplate:System:PackagedVAV", sys.AirLoop.Name(), "")
	}
	for _, z := range sys.Zones() {
		thermostat := ""
		if z.Thermostat != nil {
			thermostat = z.Thermostat.Name()
		}
		switch sys.Type {
		case osm.IdealLoads:
			t.emit("HVACTemplate:Zone:IdealLoadsAirSystem", z.Name(), thermostat)
		case osm.PTAC:
			t.emit("HVACTemplate:Zone:PTAC", z.Name(), thermostat)
		case osm.PTHP:
			t.emit("HVACTemplate:Zone:PTHP", z.Name(), thermostat)
		case osm.PackagedVAV:
			loop := ""
			if sys.AirLoop != nil {
				loop = sys.AirLoop.Name()
			}
			t.emit("HVACTemplate:Zone:VAV", z.Name(), loop, thermostat)
		}
	}
}

func surfaceType(s *osm.Surface) string {
	switch s.Type {
	case osm.Floor:
		return "Floor"
	case osm.RoofCeiling:
		if s.Boundary == osm.Outdoors {
			return "Roof"
		}
		return "Ceiling"
	default:
		return "Wall"
	}
}

func (t *translator) surface(s *osm.Surface) {
	other := ""
	if s.Adjacent() != nil {
		other = s.Adjacent().Name()
	}
	sun, wind := "NoSun", "NoWind"
	if s.SunExposed {
		sun = "SunExposed"
	}
	if s.WindExposed {
		wind = "WindExposed"
	}
	fields := []string{
		s.Name(), surfaceType(s), constructionName(s.Construction), zoneName(s.Space),
		s.Boundary.String(), other, sun, wind, "autocalculate",
	}
	t.emit("BuildingSurface:Detailed", append(fields, vertices(s.Vertices)...)...)
}

func subSurfaceType(t osm.SubSurfaceType) string {
	switch t {
	case osm.Door:
		return "Door"
	case osm.GlassDoor:
		return "GlassDoor"
	default:
		return "Window"
	}
}

func (t *translator) subSurface(ss *osm.SubSurface) {
	fields := []string{
		ss.Name(), subSurfaceType(ss.Type), constructionName(ss.Construction), ss.Host.Name(),
		"", "autocalculate", "", "", "1",
	}
	t.emit("FenestrationSurface:Detailed", append(fields, vertices(ss.Vertices)...)...)
}
