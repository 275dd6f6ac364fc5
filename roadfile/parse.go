package roadfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// preallocCap limits slice preallocation from an untrusted count.
const preallocCap = 1024

// lineReader yields significant lines (not blank, not comments) with
// their 1-based line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	return &lineReader{sc: sc}
}

// next returns the next significant line, trimmed.
func (lr *lineReader) next(what string) (string, error) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		return text, nil
	}
	if err := lr.sc.Err(); err != nil {
		return "", lr.fail(fmt.Errorf("%w: reading %s: %v", ErrSyntax, what, err))
	}

	return "", lr.fail(fmt.Errorf("%w: expected %s", ErrUnexpectedEOF, what))
}

func (lr *lineReader) fail(err error) *ParseError {
	return &ParseError{Line: lr.line, Err: err}
}

// fields splits the next line into exactly want whitespace-separated fields.
func (lr *lineReader) fields(what string, want int) ([]string, error) {
	text, err := lr.next(what)
	if err != nil {
		return nil, err
	}
	f := strings.Fields(text)
	if len(f) != want {
		return nil, lr.fail(fmt.Errorf("%w: %s needs %d fields, got %d", ErrSyntax, what, want, len(f)))
	}

	return f, nil
}

// count reads a non-negative record count.
func (lr *lineReader) count(what string) (int, error) {
	f, err := lr.fields(what, 1)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, lr.fail(fmt.Errorf("%w: %s %q is not an integer", ErrSyntax, what, f[0]))
	}
	if n < 0 {
		return 0, lr.fail(fmt.Errorf("%w: %s %d is negative", ErrInvalidRecord, what, n))
	}

	return n, nil
}

func (lr *lineReader) atoi(what, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, lr.fail(fmt.Errorf("%w: %s %q is not an integer", ErrSyntax, what, s))
	}

	return v, nil
}

func (lr *lineReader) atof(what, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, lr.fail(fmt.Errorf("%w: %s %q is not a number", ErrSyntax, what, s))
	}

	return v, nil
}

// check validates a parsed record and attaches the current line on failure.
func (lr *lineReader) check(v interface{}, start, end, n int) error {
	if err := checkStruct(v); err != nil {
		return lr.fail(err)
	}
	if err := checkEndpoints(start, end, n); err != nil {
		return lr.fail(err)
	}

	return nil
}

// Parse reads a complete FileRecord from r. Content after the last declared
// trip is ignored.
func Parse(r io.Reader) (*FileRecord, error) {
	lr := newLineReader(r)
	fr := &FileRecord{}

	// 1) Locations
	n, err := lr.count("location count")
	if err != nil {
		return nil, err
	}
	fr.Locations = make([]Location, 0, min(n, preallocCap))
	for i := 0; i < n; i++ {
		name, err := lr.next("location name")
		if err != nil {
			return nil, err
		}
		fr.Locations = append(fr.Locations, Location{ID: i, Name: name})
	}

	// 2) Roads
	rc, err := lr.count("road count")
	if err != nil {
		return nil, err
	}
	fr.Roads = make([]Road, 0, min(rc, preallocCap))
	for i := 0; i < rc; i++ {
		road, err := lr.road()
		if err != nil {
			return nil, err
		}
		if err = lr.check(road, road.Start, road.End, n); err != nil {
			return nil, err
		}
		fr.Roads = append(fr.Roads, road)
	}

	// 3) Trips
	tc, err := lr.count("trip count")
	if err != nil {
		return nil, err
	}
	fr.Trips = make([]Trip, 0, min(tc, preallocCap))
	for i := 0; i < tc; i++ {
		trip, err := lr.trip()
		if err != nil {
			return nil, err
		}
		if err = lr.check(trip, trip.Start, trip.End, n); err != nil {
			return nil, err
		}
		fr.Trips = append(fr.Trips, trip)
	}

	return fr, nil
}

// road parses "start end distance speed".
func (lr *lineReader) road() (Road, error) {
	f, err := lr.fields("road", 4)
	if err != nil {
		return Road{}, err
	}
	var r Road
	if r.Start, err = lr.atoi("road start", f[0]); err != nil {
		return Road{}, err
	}
	if r.End, err = lr.atoi("road end", f[1]); err != nil {
		return Road{}, err
	}
	if r.Distance, err = lr.atof("road distance", f[2]); err != nil {
		return Road{}, err
	}
	if r.Speed, err = lr.atof("road speed", f[3]); err != nil {
		return Road{}, err
	}

	return r, nil
}

// trip parses "start end mode".
func (lr *lineReader) trip() (Trip, error) {
	f, err := lr.fields("trip", 3)
	if err != nil {
		return Trip{}, err
	}
	var t Trip
	if t.Start, err = lr.atoi("trip start", f[0]); err != nil {
		return Trip{}, err
	}
	if t.End, err = lr.atoi("trip end", f[1]); err != nil {
		return Trip{}, err
	}
	t.Mode = Mode(f[2])

	return t, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*FileRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
