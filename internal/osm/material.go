package osm

// Material is one of the closed set of material variants.
type Material interface {
	Object
	isMaterial()
}

// StandardOpaqueMaterial is a massive opaque layer.
type StandardOpaqueMaterial struct {
	Base
	Roughness          string
	Thickness          float64
	Conductivity       float64
	Density            float64
	SpecificHeat       float64
	ThermalAbsorptance float64
	SolarAbsorptance   float64
	VisibleAbsorptance float64
}

// MasslessOpaqueMaterial is an opaque layer described only by its resistance.
type MasslessOpaqueMaterial struct {
	Base
	Roughness          string
	ThermalResistance  float64
	ThermalAbsorptance float64
	SolarAbsorptance   float64
	VisibleAbsorptance float64
}

// SimpleGlazing is a whole-window glazing system.
type SimpleGlazing struct {
	Base
	UFactor                  float64
	SolarHeatGainCoefficient float64
	VisibleTransmittance     float64
}

// StandardGlazing is a single glass pane with optical properties at normal
// incidence.
type StandardGlazing struct {
	Base
	OpticalDataType         string
	SpectralDataSet         string
	Thickness               float64
	SolarTransmittance      float64
	FrontSolarReflectance   float64
	BackSolarReflectance    float64
	VisibleTransmittance    float64
	FrontVisibleReflectance float64
	BackVisibleReflectance  float64
	InfraredTransmittance   float64
	FrontInfraredEmissivity float64
	BackInfraredEmissivity  float64
	Conductivity            float64
	DirtCorrectionFactor    *float64
	SolarDiffusing          string
}

// Gas is a gas fill between panes.
type Gas struct {
	Base
	GasType   string
	Thickness float64
}

// AirGap is an opaque air layer.
type AirGap struct {
	Base
	ThermalResistance float64
}

func (*StandardOpaqueMaterial) isMaterial() {}
func (*MasslessOpaqueMaterial) isMaterial() {}
func (*SimpleGlazing) isMaterial()          {}
func (*StandardGlazing) isMaterial()        {}
func (*Gas) isMaterial()                    {}
func (*AirGap) isMaterial()                 {}

// Construction is an ordered stack of materials, outer layer first. It cannot
// be changed once built.
type Construction struct {
	Base
	layers []Material
}

// NewConstruction copies layers so later changes to the caller's slice do not
// leak into the construction.
func NewConstruction(layers []Material) *Construction {
	return &Construction{layers: append([]Material(nil), layers...)}
}

// Layers returns a copy of the layer list, outer layer first.
func (c *Construction) Layers() []Material {
	return append([]Material(nil), c.layers...)
}

// NumLayers is the number of layers.
func (c *Construction) NumLayers() int {
	return len(c.layers)
}
