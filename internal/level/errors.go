package level

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is returned when a known record carries a bad number.
	ErrMalformedRecord = errors.New("level: malformed record")
	// ErrNoSheep is returned when a level has no player start.
	ErrNoSheep = errors.New("level: no sheep")
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("level: unsupported format")
)

// ParseError reports where a level file stopped making sense.
type ParseError struct {
	Path  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	where := e.Path
	if where == "" {
		where = "level"
	}
	return fmt.Sprintf("%s:%d: bad %s %q: %v", where, e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
