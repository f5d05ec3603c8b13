package level

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LevHeader is the first line written to every .lev file.
const LevHeader = "// This file is auto-generated by the Level Editor - it's not advisable to edit it directly as changes may be overwritten!"

// Skipped describes a .lev record that was ignored.
type Skipped struct {
	Line int
	Type string
}

// ParseLev decodes the line-based .lev format.
//
// The first line is a comment. After it come four-line records: type tag,
// x, y, sprite name. Records with an unknown or empty type are skipped and
// reported. A bad number in a known record stops parsing with a *ParseError
// wrapping ErrMalformedRecord.
func ParseLev(data []byte) (Level, []Skipped, error) {
	lines := splitLines(data)
	var lvl Level
	var skipped []Skipped

	// Line 0 is the header comment.
	for i := 1; i < len(lines); i += 4 {
		rec := record(lines, i)
		typ := strings.TrimSpace(rec[0])
		kind, ok := ParseKind(typ)
		if !ok || kind.String() != typ {
			if typ != "" {
				skipped = append(skipped, Skipped{Line: i + 1, Type: typ})
			}
			continue
		}

		x, err := parseNumber(rec[1])
		if err != nil {
			return Level{}, skipped, numberError(i+2, "x", rec[1], err)
		}
		y, err := parseNumber(rec[2])
		if err != nil {
			return Level{}, skipped, numberError(i+3, "y", rec[2], err)
		}

		lvl.Objects = append(lvl.Objects, Object{
			Kind:   kind,
			X:      x,
			Y:      y,
			Sprite: strings.TrimSpace(rec[3]),
		})
	}

	return lvl, skipped, nil
}

// WriteLev encodes a level in the .lev format.
func WriteLev(w io.Writer, lvl Level) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, LevHeader)
	for _, o := range lvl.Objects {
		fmt.Fprintln(bw, o.Kind.String())
		fmt.Fprintf(bw, "%ff\n%ff\n", o.X, o.Y)
		fmt.Fprintln(bw, o.Sprite)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("level: write lev: %w", err)
	}
	return nil
}

// MarshalLev returns the .lev encoding of lvl.
func MarshalLev(lvl Level) []byte {
	var buf bytes.Buffer
	_ = WriteLev(&buf, lvl) // bytes.Buffer writes do not fail
	return buf.Bytes()
}

func splitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// record returns four lines starting at i, padding with empties at EOF.
func record(lines []string, i int) [4]string {
	var rec [4]string
	for j := range rec {
		if i+j < len(lines) {
			rec[j] = lines[i+j]
		}
	}
	return rec
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimSuffix(s, "f"), "F")
	if s == "" {
		return 0, fmt.Errorf("%w: empty number", ErrMalformedRecord)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return v, nil
}

func numberError(line int, field, value string, err error) error {
	return &ParseError{Line: line, Field: field, Value: strings.TrimSpace(value), Err: err}
}
