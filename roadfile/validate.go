package roadfile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance; it caches struct metadata.
var validate = validator.New()

// checkStruct runs tag validation and converts the first failure into
// an ErrInvalidRecord.
func checkStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalidRecord, fe.Namespace(), fe.Tag(), fe.Value())
	}

	return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
}

// checkEndpoints verifies that start and end name declared locations.
func checkEndpoints(start, end, n int) error {
	if start >= n {
		return fmt.Errorf("%w: start %d not in [0,%d)", ErrInvalidRecord, start, n)
	}
	if end >= n {
		return fmt.Errorf("%w: end %d not in [0,%d)", ErrInvalidRecord, end, n)
	}

	return nil
}

// Validate checks a record built in code (rather than parsed): struct tags,
// location ids matching their index, and every road and trip endpoint.
func (fr *FileRecord) Validate() error {
	if fr == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidRecord)
	}
	if err := checkStruct(fr); err != nil {
		return err
	}
	n := len(fr.Locations)
	for i, loc := range fr.Locations {
		if loc.ID != i {
			return fmt.Errorf("%w: location %q has id %d at index %d", ErrInvalidRecord, loc.Name, loc.ID, i)
		}
	}
	for i, r := range fr.Roads {
		if err := checkEndpoints(r.Start, r.End, n); err != nil {
			return fmt.Errorf("road %d: %w", i, err)
		}
	}
	for i, t := range fr.Trips {
		if err := checkEndpoints(t.Start, t.End, n); err != nil {
			return fmt.Errorf("trip %d: %w", i, err)
		}
	}

	return nil
}
