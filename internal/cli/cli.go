package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/osmforge/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Values from a -config file fill in everything not given on the command line.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("osmforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
osmforge - Assembles a building energy model from a building description and a definition library.

Usage:
  osmforge [options] [BUILDING_PATH]

Arguments:
  BUILDING_PATH
    Path to a building description (.hcl, .yaml) or a directory of .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var libraries stringList
	buildingFlag := flagSet.String("building", "", "Path to the building description.")
	bFlag := flagSet.String("b", "", "Path to the building description (shorthand).")
	flagSet.Var(&libraries, "library", "Definition library file or directory. Repeatable; later files win.")
	weatherFlag := flagSet.String("weather", os.Getenv("OSMFORGE_WEATHER"), "Weather file (.epw). Defaults to $OSMFORGE_WEATHER.")
	ddyFlag := flagSet.String("ddy", "", "Design day file. Defaults to the weather file with a .ddy extension.")
	outFlag := flagSet.String("out", "", "Model file to write. Defaults to <building>.idf.")
	workDirFlag := flagSet.String("work-dir", "", "Directory for engine runs. Defaults to the model file's directory.")
	runFlag := flagSet.Bool("run", false, "Run the simulation engine on the assembled model.")
	energyPlusFlag := flagSet.String("energyplus-dir", os.Getenv("OSMFORGE_ENERGYPLUS_DIR"), "Directory holding the engine binary. Defaults to $OSMFORGE_ENERGYPLUS_DIR, then $PATH.")
	checkpointFlag := flagSet.String("checkpoint", "", "Write a compressed snapshot of the assembled model to this path.")
	bucketFlag := flagSet.String("publish-bucket", "", "S3 bucket for run artifacts.")
	prefixFlag := flagSet.String("publish-prefix", "", "Key prefix inside the publish bucket.")
	regionFlag := flagSet.String("publish-region", "", "AWS region of the publish bucket.")
	endpointFlag := flagSet.String("publish-endpoint", "", "Custom S3 endpoint, e.g. a MinIO URL.")
	publishURLFlag := flagSet.String("publish-url", "", "Pre-signed URL to PUT the model file to.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	configFlag := flagSet.String("config", "", "TOML file with default option values.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	file := &fileConfig{}
	if *configFlag != "" {
		loaded, err := loadFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		file = loaded
		slog.Debug("Config file loaded.", "path", *configFlag)
	}

	explicit := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	pick := func(name, flagValue, fileValue string) string {
		if explicit[name] || fileValue == "" {
			return flagValue
		}
		return fileValue
	}

	path := ""
	if *buildingFlag != "" {
		path = *buildingFlag
	} else if *bFlag != "" {
		path = *bFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	} else {
		path = file.Building
	}
	slog.Debug("Building path determined.", "path", path)

	if path == "" {
		slog.Debug("No building path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(pick("log-format", *logFormatFlag, file.LogFormat))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(pick("log-level", *logLevelFlag, file.LogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	libraryPaths := []string(libraries)
	if len(libraryPaths) == 0 {
		libraryPaths = file.Libraries
	}
	runEngine := *runFlag
	if !explicit["run"] && file.Run {
		runEngine = true
	}
	healthPort := *healthPortFlag
	if !explicit["healthcheck-port"] && file.HealthcheckPort != 0 {
		healthPort = file.HealthcheckPort
	}

	config, err := app.NewConfig(app.Config{
		BuildingPath:    path,
		LibraryPaths:    libraryPaths,
		WeatherPath:     pick("weather", *weatherFlag, file.Weather),
		DDYPath:         pick("ddy", *ddyFlag, file.DDY),
		OutPath:         pick("out", *outFlag, file.Out),
		WorkDir:         pick("work-dir", *workDirFlag, file.WorkDir),
		RunEngine:       runEngine,
		EnergyPlusDir:   pick("energyplus-dir", *energyPlusFlag, file.EnergyPlusDir),
		CheckpointPath:  pick("checkpoint", *checkpointFlag, file.Checkpoint),
		PublishBucket:   pick("publish-bucket", *bucketFlag, file.Publish.Bucket),
		PublishPrefix:   pick("publish-prefix", *prefixFlag, file.Publish.Prefix),
		PublishRegion:   pick("publish-region", *regionFlag, file.Publish.Region),
		PublishEndpoint: pick("publish-endpoint", *endpointFlag, file.Publish.Endpoint),
		PublishURL:      pick("publish-url", *publishURLFlag, file.Publish.URL),
		HealthcheckPort: healthPort,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
