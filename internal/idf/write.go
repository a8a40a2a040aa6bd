package idf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Write renders rows in the canonical one-field-per-line layout. A field that
// contains a separator cannot be represented and is rejected.
func Write(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if err := writeRow(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, row Row) error {
	if err := checkField(row.Tag); err != nil {
		return fmt.Errorf("row tag %q: %w", row.Tag, err)
	}
	if len(row.Fields) == 0 {
		_, err := fmt.Fprintf(w, "%s;\n\n", row.Tag)
		return err
	}

	fmt.Fprintf(w, "%s,\n", row.Tag)
	last := len(row.Fields) - 1
	for i, f := range row.Fields {
		if err := checkField(f); err != nil {
			return fmt.Errorf("%s %q field %d: %w", row.Tag, row.Name(), i, err)
		}
		sep := ","
		if i == last {
			sep = ";"
		}
		fmt.Fprintf(w, "  %s%s\n", f, sep)
	}
	_, err := w.WriteString("\n")
	return err
}

func checkField(f string) error {
	if strings.ContainsAny(f, ",;!\n") {
		return fmt.Errorf("contains a reserved character")
	}
	return nil
}
