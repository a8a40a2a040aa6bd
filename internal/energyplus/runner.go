package energyplus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/specialistvlad/osmforge/internal/assembler"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
	"golang.org/x/sync/errgroup"
)

// DefaultBinary is used when no engine directory is configured; it must be on
// PATH.
const DefaultBinary = "energyplus"

// RunRequest names the files of one engine run. ExchangePath is derived from
// WorkDir and ModelPath when empty.
type RunRequest struct {
	ModelPath    string
	ExchangePath string
	WeatherPath  string
	WorkDir      string
}

// RunResult reports the outcome of an engine run. Errors holds the severe and
// fatal messages from the engine's error file.
type RunResult struct {
	Succeeded    bool
	ExchangePath string
	ResultPath   string
	Errors       []string
	Duration     time.Duration
}

// Runner invokes the simulation engine binary.
type Runner struct {
	Binary string
}

// NewRunner returns a Runner for the engine installed in dir, or the engine on
// PATH when dir is empty.
func NewRunner(dir string) *Runner {
	if dir == "" {
		return &Runner{Binary: DefaultBinary}
	}
	return &Runner{Binary: filepath.Join(dir, DefaultBinary)}
}

// ExchangePath is where a run for req writes its exchange file:
// <workDir>/<project>/ModelToIdf/in.idf, project being the model file's base
// name.
func ExchangePath(req RunRequest) string {
	if req.ExchangePath != "" {
		return req.ExchangePath
	}
	project := strings.TrimSuffix(filepath.Base(req.ModelPath), filepath.Ext(req.ModelPath))
	if req.ModelPath == "" {
		project = "model"
	}
	return filepath.Join(req.WorkDir, project, "ModelToIdf", "in.idf")
}

// Run writes rows to the exchange file and runs the engine on it with HVAC
// template expansion. A non-nil error wraps ErrEngineFailure when the engine
// itself failed; the result is still returned so callers can show its errors.
func (r *Runner) Run(ctx context.Context, rows []idf.Row, req RunRequest) (*RunResult, error) {
	logger := ctxlog.FromContext(ctx)
	if req.WeatherPath == "" {
		return nil, fmt.Errorf("%w: a weather file is required to run the engine", assembler.ErrMissingRequiredInput)
	}

	exchange := ExchangePath(req)
	outDir := filepath.Dir(exchange)
	if err := writeRows(exchange, withTableStyle(rows)); err != nil {
		return nil, fmt.Errorf("failed to write exchange file: %w", err)
	}
	errFile := filepath.Join(outDir, "eplusout.err")
	if err := os.Remove(errFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to clear previous engine errors: %w", err)
	}

	logger.Info("Starting simulation engine.", "binary", r.Binary, "exchange", exchange, "weather", req.WeatherPath)
	start := time.Now()
	runErr := r.exec(ctx, "-w", req.WeatherPath, "-d", outDir, "-x", exchange)

	result := &RunResult{ExchangePath: exchange, Duration: time.Since(start)}
	messages, fatal, readErr := readEngineErrors(errFile)
	if readErr != nil && !errors.Is(readErr, os.ErrNotExist) {
		logger.Warn("Could not read the engine error file.", "path", errFile, "error", readErr)
	}
	result.Errors = messages

	if runErr != nil || fatal {
		if runErr != nil {
			result.Errors = append(result.Errors, runErr.Error())
		}
		logger.Error("Simulation engine failed.", "errors", len(result.Errors), "duration", result.Duration)
		return result, fmt.Errorf("%w: %d error(s) reported, see %s", ErrEngineFailure, len(result.Errors), errFile)
	}

	result.Succeeded = true
	result.ResultPath = filepath.Join(outDir, "eplusout.csv")
	logger.Info("Simulation engine finished.", "result", result.ResultPath, "severe", len(messages), "duration", result.Duration)
	return result, nil
}

// exec runs the engine and forwards its output to the debug log line by line.
func (r *Runner) exec(ctx context.Context, args ...string) error {
	logger := ctxlog.FromContext(ctx)
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start '%s': %w", r.Binary, err)
	}

	var g errgroup.Group
	g.Go(func() error { return forward(stdout, func(line string) { logger.Debug(line, "stream", "stdout") }) })
	g.Go(func() error { return forward(stderr, func(line string) { logger.Debug(line, "stream", "stderr") }) })
	if err := g.Wait(); err != nil {
		logger.Warn("Engine output was not fully logged.", "error", err)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("engine exited: %w", err)
	}
	return nil
}

// maxOutputLine caps one logged line of engine output.
const maxOutputLine = 1 << 20

// forward emits r line by line. After a scan error the rest of r is discarded
// so the process never blocks on a full pipe.
func forward(r io.Reader, emit func(string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxOutputLine)
	for sc.Scan() {
		emit(sc.Text())
	}
	if err := sc.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

// withTableStyle replaces every table style row with a single CommaAndHTML one
// so that tabular results are also written as CSV.
func withTableStyle(rows []idf.Row) []idf.Row {
	out := make([]idf.Row, 0, len(rows)+1)
	for _, row := range rows {
		if row.Is("OutputControl:Table:Style") {
			continue
		}
		out = append(out, row)
	}
	return append(out, idf.NewRow("OutputControl:Table:Style", "CommaAndHTML"))
}

const (
	severeMarker       = "** Severe  **"
	fatalMarker        = "**  Fatal  **"
	continuationMarker = "**   ~~~   **"
)

// readEngineErrors collects severe and fatal messages. Continuation lines are
// joined onto the message they belong to.
func readEngineErrors(path string) (messages []string, fatal bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()
	return parseEngineErrors(f)
}

func parseEngineErrors(r io.Reader) (messages []string, fatal bool, err error) {
	sc := bufio.NewScanner(r)
	inMessage := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, severeMarker):
			messages = append(messages, line)
			inMessage = true
		case strings.HasPrefix(line, fatalMarker):
			messages = append(messages, line)
			fatal, inMessage = true, true
		case strings.HasPrefix(line, continuationMarker) && inMessage:
			extra := strings.TrimSpace(strings.TrimPrefix(line, continuationMarker))
			messages[len(messages)-1] += " " + extra
		default:
			inMessage = false
		}
	}
	return messages, fatal, sc.Err()
}
