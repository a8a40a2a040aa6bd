package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
)

// materialParser builds one material variant from a row's positional values.
type materialParser func(row idf.Row, values []string) (osm.Material, error)

// materialParsers is keyed by lower-cased tag.
var materialParsers = map[string]materialParser{
	"material":                           parseStandardOpaque,
	"material:nomass":                    parseNoMass,
	"material:airgap":                    parseAirGap,
	"windowmaterial:simpleglazingsystem": parseSimpleGlazing,
	"windowmaterial:glazing":             parseStandardGlazing,
	"windowmaterial:gas":                 parseGas,
}

// Absorptance defaults for opaque layers that leave them blank.
const (
	defaultThermalAbsorptance = 0.9
	defaultSolarAbsorptance   = 0.7
	defaultVisibleAbsorptance = 0.7
)

// ResolveMaterial returns the material named name, building it on first use.
func (b *Builder) ResolveMaterial(ctx context.Context, name string) (osm.Material, error) {
	m, err := b.reg.Materials.GetOrBuild(name, func() (osm.Material, error) {
		row, err := b.lookup(idf.FamilyMaterial, name)
		if err != nil {
			return nil, err
		}
		parse, ok := materialParsers[strings.ToLower(row.Tag)]
		if !ok {
			return nil, fmt.Errorf("%w: material %q has tag %q", ErrUnsupportedType, name, row.Tag)
		}
		mat, err := parse(row, row.Values())
		if err != nil {
			return nil, err
		}
		ctxlog.FromContext(ctx).Debug("Built material.", "name", row.Name(), "tag", row.Tag)
		return osm.Add(b.model, row.Name(), mat), nil
	})
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Material could not be built.", "material", name, "error", err)
	}
	return m, err
}

// ResolveConstruction returns the construction named name. Its layers are
// resolved in declared order, outer layer first. If any layer fails the
// construction is not built.
func (b *Builder) ResolveConstruction(ctx context.Context, name string) (*osm.Construction, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	c, err := b.reg.Constructions.GetOrBuild(name, func() (*osm.Construction, error) {
		row, err := b.lookup(idf.FamilyConstruction, name)
		if err != nil {
			return nil, err
		}
		layerNames := row.Values()[1:]
		if len(layerNames) == 0 {
			return nil, fmt.Errorf("%w: construction %q has no layers", ErrMalformedDefinition, name)
		}
		layers := make([]osm.Material, 0, len(layerNames))
		for i, layerName := range layerNames {
			mat, err := b.ResolveMaterial(ctx, layerName)
			if err != nil {
				return nil, fmt.Errorf("construction %q layer %d: %w", name, i+1, err)
			}
			layers = append(layers, mat)
		}
		return osm.Add(b.model, row.Name(), osm.NewConstruction(layers)), nil
	})
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Construction could not be built.", "construction", name, "error", err)
	}
	return c, err
}

func opaqueAbsorptances(values []string, at int) (thermal, solar, visible float64) {
	thermal, solar, visible = defaultThermalAbsorptance, defaultSolarAbsorptance, defaultVisibleAbsorptance
	if v, ok := optionalFloat(values, at); ok {
		thermal = v
	}
	if v, ok := optionalFloat(values, at+1); ok {
		solar = v
	}
	if v, ok := optionalFloat(values, at+2); ok {
		visible = v
	}
	return thermal, solar, visible
}

func parseStandardOpaque(row idf.Row, values []string) (osm.Material, error) {
	m := &osm.StandardOpaqueMaterial{Roughness: field(values, 1)}
	for i, dst := range []*float64{&m.Thickness, &m.Conductivity, &m.Density, &m.SpecificHeat} {
		v, err := requiredFloat(row, values, 2+i, "property")
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	m.ThermalAbsorptance, m.SolarAbsorptance, m.VisibleAbsorptance = opaqueAbsorptances(values, 6)
	return m, nil
}

func parseNoMass(row idf.Row, values []string) (osm.Material, error) {
	r, err := requiredFloat(row, values, 2, "thermal resistance")
	if err != nil {
		return nil, err
	}
	m := &osm.MasslessOpaqueMaterial{Roughness: field(values, 1), ThermalResistance: r}
	m.ThermalAbsorptance, m.SolarAbsorptance, m.VisibleAbsorptance = opaqueAbsorptances(values, 3)
	return m, nil
}

func parseAirGap(row idf.Row, values []string) (osm.Material, error) {
	r, err := requiredFloat(row, values, 1, "thermal resistance")
	if err != nil {
		return nil, err
	}
	return &osm.AirGap{ThermalResistance: r}, nil
}

func parseSimpleGlazing(row idf.Row, values []string) (osm.Material, error) {
	m := &osm.SimpleGlazing{}
	for i, dst := range []*float64{&m.UFactor, &m.SolarHeatGainCoefficient, &m.VisibleTransmittance} {
		v, err := requiredFloat(row, values, 1+i, "property")
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	return m, nil
}

func parseStandardGlazing(row idf.Row, values []string) (osm.Material, error) {
	m := &osm.StandardGlazing{
		OpticalDataType: field(values, 1),
		SpectralDataSet: field(values, 2),
	}
	required := []*float64{
		&m.Thickness,
		&m.SolarTransmittance, &m.FrontSolarReflectance, &m.BackSolarReflectance,
		&m.VisibleTransmittance, &m.FrontVisibleReflectance, &m.BackVisibleReflectance,
		&m.InfraredTransmittance, &m.FrontInfraredEmissivity, &m.BackInfraredEmissivity,
		&m.Conductivity,
	}
	for i, dst := range required {
		v, err := requiredFloat(row, values, 3+i, "property")
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	if v, ok := optionalFloat(values, 14); ok {
		m.DirtCorrectionFactor = &v
	}
	m.SolarDiffusing = field(values, 15)
	return m, nil
}

func parseGas(row idf.Row, values []string) (osm.Material, error) {
	t, err := requiredFloat(row, values, 2, "thickness")
	if err != nil {
		return nil, err
	}
	return &osm.Gas{GasType: field(values, 1), Thickness: t}, nil
}
