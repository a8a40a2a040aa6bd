package idf

import (
	"fmt"
	"io"
	"strings"
)

// Parse reads every row from src. Fields are trimmed; empty fields are kept
// because positions are significant.
func Parse(src []byte) ([]Row, error) {
	var (
		rows      []Row
		fields    []string
		field     strings.Builder
		line      = 1
		startLine = 0
		inComment bool
	)

	flushField := func() {
		if startLine == 0 {
			startLine = line
		}
		fields = append(fields, strings.TrimSpace(field.String()))
		field.Reset()
	}

	for _, c := range string(src) {
		if inComment {
			if c == '\n' {
				inComment = false
				line++
			}
			continue
		}

		switch c {
		case '!':
			inComment = true
		case ',':
			flushField()
		case ';':
			flushField()
			if fields[0] == "" {
				return nil, fmt.Errorf("line %d: row has an empty type tag", startLine)
			}
			rows = append(rows, Row{Tag: fields[0], Fields: fields[1:], Line: startLine})
			fields = nil
			startLine = 0
		case '\n':
			field.WriteRune(' ')
			line++
		default:
			if startLine == 0 && !isSpace(c) {
				startLine = line
			}
			field.WriteRune(c)
		}
	}

	if len(fields) > 0 || strings.TrimSpace(field.String()) != "" {
		return nil, fmt.Errorf("line %d: unterminated row, missing ';'", startLine)
	}
	return rows, nil
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader) ([]Row, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
