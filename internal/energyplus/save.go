package energyplus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
)

// Save writes the model file: the translated graph in exchange format.
func Save(ctx context.Context, m *osm.Model, path string) error {
	rows := Translate(m)
	if err := writeRows(path, rows); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}
	ctxlog.FromContext(ctx).Info("Model saved.", "path", path, "objects", m.Len(), "rows", len(rows))
	return nil
}

func writeRows(path string, rows []idf.Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := idf.Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Checkpoint writes a snappy-framed snapshot of the translated graph. It is
// taken before the output boundary runs so a failed run can be inspected.
func Checkpoint(ctx context.Context, m *osm.Model, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create checkpoint directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint: %w", err)
	}

	counter := &countingWriter{w: f}
	w := snappy.NewBufferedWriter(counter)
	rows := Translate(m)
	if err := idf.Write(w, rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush checkpoint: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close checkpoint: %w", err)
	}
	ctxlog.FromContext(ctx).Info("Checkpoint written.", "path", path, "rows", len(rows), "bytes", counter.n)
	return nil
}

// ReadCheckpoint decompresses and parses a checkpoint back into rows.
func ReadCheckpoint(path string) ([]idf.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(snappy.NewReader(bufio.NewReader(f)))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress checkpoint '%s': %w", path, err)
	}
	rows, err := idf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse checkpoint '%s': %w", path, err)
	}
	return rows, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
