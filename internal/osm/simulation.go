package osm

// SimulationControl selects which simulation periods run.
type SimulationControl struct {
	Base
	DoZoneSizing             bool
	DoSystemSizing           bool
	DoPlantSizing            bool
	RunForSizingPeriods      bool
	RunForWeatherFilePeriods bool
	SolarDistribution        string
}

// ShadowCalculation controls the shading algorithm.
type ShadowCalculation struct {
	Base
	CalculationMethod    string
	CalculationFrequency int
	MaximumFigures       int
}

// Timestep is the number of zone timesteps per hour.
type Timestep struct {
	Base
	PerHour int
}

// RunPeriod is the weather file period to simulate.
type RunPeriod struct {
	Base
	Begin Date
	End   Date
}

// Building holds model-wide orientation.
type Building struct {
	Base
	NorthAxis float64
}

// DesignDay is a sizing period passed through from a design day file.
// Fields holds every field after the name, in file order.
type DesignDay struct {
	Base
	Fields []string
}

// OutputVariable requests a report variable.
type OutputVariable struct {
	Base
	Key       string
	Variable  string
	Frequency string
}

// OutputMeter requests a meter.
type OutputMeter struct {
	Base
	Frequency string
}
