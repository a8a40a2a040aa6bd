package energyplus

import (
	"time"

	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
)

// translator accumulates rows in model order.
type translator struct {
	model *osm.Model
	rows  []idf.Row
}

func (t *translator) emit(tag string, fields ...string) {
	t.rows = append(t.rows, idf.NewRow(tag, fields...))
}

// Translate renders the graph as exchange-format rows. Objects without an
// exchange-format counterpart (space types, schedule sets, load definitions,
// shading groups) are folded into the rows of the objects that use them.
func Translate(m *osm.Model) []idf.Row {
	t := &translator{model: m}
	t.emit("Version", Version)
	t.emit("GlobalGeometryRules", "UpperLeftCorner", "Counterclockwise", "Relative", "Relative", "Relative")

	for _, o := range m.Objects() {
		switch v := o.(type) {
		case *osm.SimulationControl:
			t.simulationControl(v)
		case *osm.Building:
			t.building(v)
		case *osm.ShadowCalculation:
			t.emit("ShadowCalculation", v.CalculationMethod, itoa(v.CalculationFrequency), itoa(v.MaximumFigures))
		case *osm.Timestep:
			t.emit("Timestep", itoa(v.PerHour))
		case *osm.RunPeriod:
			t.runPeriod(v)
		case *osm.DesignDay:
			t.emit("SizingPeriod:DesignDay", append([]string{v.Name()}, v.Fields...)...)

		case *osm.ScheduleTypeLimits:
			t.emit("ScheduleTypeLimits", v.Name(), optNum(v.Lower), optNum(v.Upper), v.NumericType, v.UnitType)
		case osm.Schedule:
			t.schedule(v)

		case osm.Material:
			t.material(v)
		case *osm.Construction:
			fields := []string{v.Name()}
			for _, l := range v.Layers() {
				fields = append(fields, l.Name())
			}
			t.emit("Construction", fields...)

		case *osm.ThermalZone:
			t.zone(v)
		case *osm.Space:
			t.loads(v)
		case *osm.ThermostatSetpointDualSetpoint:
			t.emit("HVACTemplate:Thermostat", v.Name(), scheduleName(v.Heating), "", scheduleName(v.Cooling), "")
		case *osm.HVACSystem:
			t.hvac(v)

		case *osm.Surface:
			t.surface(v)
		case *osm.SubSurface:
			t.subSurface(v)
		case *osm.ShadingSurface:
			t.emit("Shading:Building:Detailed", append([]string{v.Name(), ""}, vertices(v.Vertices)...)...)

		case *osm.OutputVariable:
			t.emit("Output:Variable", v.Key, v.Variable, v.Frequency)
		case *osm.OutputMeter:
			t.emit("Output:Meter", v.Name(), v.Frequency)
		}
	}
	return t.rows
}

func (t *translator) simulationControl(v *osm.SimulationControl) {
	t.emit("SimulationControl",
		yesNo(v.DoZoneSizing),
		yesNo(v.DoSystemSizing),
		yesNo(v.DoPlantSizing),
		yesNo(v.RunForSizingPeriods),
		yesNo(v.RunForWeatherFilePeriods),
	)
}

func (t *translator) building(v *osm.Building) {
	solar := "FullExteriorWithReflections"
	if sc, ok := osm.Unique[*osm.SimulationControl](t.model); ok && sc.SolarDistribution != "" {
		solar = sc.SolarDistribution
	}
	t.emit("Building", v.Name(), num(v.NorthAxis), "Suburbs", "0.04", "0.4", solar, "25", "6")
}

func (t *translator) runPeriod(v *osm.RunPeriod) {
	t.emit("RunPeriod", v.Name(),
		itoa(int(v.Begin.Month)), itoa(v.Begin.Day), "",
		itoa(int(v.End.Month)), itoa(v.End.Day), "",
		"", "Yes", "Yes", "No", "Yes", "Yes",
	)
}

func (t *translator) schedule(s osm.Schedule) {
	limits := limitsName(s.Limits())
	switch v := s.(type) {
	case *osm.ScheduleConstant:
		t.emit("Schedule:Constant", v.Name(), limits, num(v.Value))
	case *osm.ScheduleDay:
		fields := []string{v.Name(), limits, "No"}
		for _, bp := range v.Breakpoints() {
			fields = append(fields, clock(bp.Until), num(bp.Value))
		}
		t.emit("Schedule:Day:Interval", fields...)
	case *osm.ScheduleWeek:
		fields := []string{v.Name()}
		for _, d := range v.Days() {
			fields = append(fields, d.Name())
		}
		t.emit("Schedule:Week:Daily", fields...)
	case *osm.ScheduleYear:
		fields := []string{v.Name(), limits}
		start := osm.Date{Month: time.January, Day: 1}
		for _, r := range v.Ranges() {
			fields = append(fields, r.Week.Name(),
				itoa(int(start.Month)), itoa(start.Day),
				itoa(int(r.End.Month)), itoa(r.End.Day))
			start = dayAfter(r.End)
		}
		t.emit("Schedule:Year", fields...)
	case *osm.ScheduleRuleset:
		fields := []string{v.Name(), limits, "Through: 12/31", "For: AllDays"}
		for _, bp := range v.DefaultDay.Breakpoints() {
			fields = append(fields, "Until: "+clock(bp.Until), num(bp.Value))
		}
		t.emit("Schedule:Compact", fields...)
	}
}

// dayAfter is computed on a leap year so that 2/29 is a valid range end.
func dayAfter(d osm.Date) osm.Date {
	next := time.Date(2000, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return osm.Date{Month: next.Month(), Day: next.Day()}
}

func (t *translator) material(m osm.Material) {
	switch v := m.(type) {
	case *osm.StandardOpaqueMaterial:
		t.emit("Material", v.Name(), v.Roughness, num(v.Thickness), num(v.Conductivity), num(v.Density),
			num(v.SpecificHeat), num(v.ThermalAbsorptance), num(v.SolarAbsorptance), num(v.VisibleAbsorptance))
	case *osm.MasslessOpaqueMaterial:
		t.emit("Material:NoMass", v.Name(), v.Roughness, num(v.ThermalResistance),
			num(v.ThermalAbsorptance), num(v.SolarAbsorptance), num(v.VisibleAbsorptance))
	case *osm.AirGap:
		t.emit("Material:AirGap", v.Name(), num(v.ThermalResistance))
	case *osm.SimpleGlazing:
		t.emit("WindowMaterial:SimpleGlazingSystem", v.Name(), num(v.UFactor), num(v.SolarHeatGainCoefficient), num(v.VisibleTransmittance))
	case *osm.StandardGlazing:
		t.emit("WindowMaterial:Glazing", v.Name(), v.OpticalDataType, v.SpectralDataSet,
			num(v.Thickness), num(v.SolarTransmittance), num(v.FrontSolarReflectance), num(v.BackSolarReflectance),
			num(v.VisibleTransmittance), num(v.FrontVisibleReflectance), num(v.BackVisibleReflectance),
			num(v.InfraredTransmittance), num(v.FrontInfraredEmissivity), num(v.BackInfraredEmissivity),
			num(v.Conductivity), optNum(v.DirtCorrectionFactor), v.SolarDiffusing)
	case *osm.Gas:
		t.emit("WindowMaterial:Gas", v.Name(), v.GasType, num(v.Thickness))
	}
}
