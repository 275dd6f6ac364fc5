package roadfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for roadfile.
var (
	// ErrSyntax indicates a line that does not have the expected shape.
	ErrSyntax = errors.New("roadfile: syntax error")

	// ErrUnexpectedEOF indicates the input ended before all declared records were read.
	ErrUnexpectedEOF = errors.New("roadfile: unexpected end of input")

	// ErrInvalidRecord indicates a well-formed record with out-of-range values.
	ErrInvalidRecord = errors.New("roadfile: invalid record")
)

// Mode selects the cost a trip minimizes.
type Mode string

const (
	// ModeDistance minimizes total miles.
	ModeDistance Mode = "D"
	// ModeTime minimizes total hours (distance / speed per road).
	ModeTime Mode = "T"
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeDistance:
		return "distance"
	case ModeTime:
		return "time"
	default:
		return fmt.Sprintf("Mode(%q)", string(m))
	}
}

// Location is a named vertex; ID equals its index in FileRecord.Locations.
type Location struct {
	ID   int    `json:"id" yaml:"id" validate:"gte=0"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// Road is one directed road between two locations.
type Road struct {
	Start    int     `json:"start" yaml:"start" validate:"gte=0"`
	End      int     `json:"end" yaml:"end" validate:"gte=0"`
	Distance float64 `json:"distance" yaml:"distance" validate:"gte=0"`
	Speed    float64 `json:"speed" yaml:"speed" validate:"gte=0"`
}

// Trip is a requested route query.
type Trip struct {
	Start int  `json:"start" yaml:"start" validate:"gte=0"`
	End   int  `json:"end" yaml:"end" validate:"gte=0"`
	Mode  Mode `json:"mode" yaml:"mode" validate:"oneof=D T"`
}

// FileRecord is the full content of one input file.
type FileRecord struct {
	Locations []Location `json:"locations" yaml:"locations" validate:"dive"`
	Roads     []Road     `json:"roads" yaml:"roads" validate:"dive"`
	Trips     []Trip     `json:"trips" yaml:"trips" validate:"dive"`
}

// ParseError reports the line at which parsing failed.
type ParseError struct {
	Line int   // 1-based; 0 when no line was read
	Err  error // wraps ErrSyntax, ErrUnexpectedEOF or ErrInvalidRecord
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("roadfile: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }
