package planner

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/roadfile"
)

// Sentinel errors for planner.
var (
	// ErrNilRecord indicates NewNetwork received a nil *roadfile.FileRecord.
	ErrNilRecord = errors.New("planner: file record is nil")

	// ErrUnknownMode indicates a trip mode other than D or T.
	ErrUnknownMode = errors.New("planner: unknown trip mode")
)

// DefaultCacheSize is the number of (start, mode) search results kept.
const DefaultCacheSize = 128

// Options configures a Network.
type Options struct {
	Logger        *zap.Logger
	CacheSize     int  // ≤ 0 disables caching
	StrictWeights bool // reject negative weights instead of clamping
}

// Option is a functional option for NewNetwork.
type Option func(*Options)

// DefaultOptions returns a no-op logger, DefaultCacheSize and clamping.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		CacheSize: DefaultCacheSize,
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCacheSize sets the result cache capacity; size ≤ 0 disables it.
func WithCacheSize(size int) Option {
	return func(o *Options) {
		o.CacheSize = size
	}
}

// WithStrictWeights makes negative road weights a planning error.
func WithStrictWeights() Option {
	return func(o *Options) {
		o.StrictWeights = true
	}
}

// Leg is one road traversed by an itinerary.
type Leg struct {
	From     roadfile.Location `json:"from"`
	To       roadfile.Location `json:"to"`
	Distance float64           `json:"distance"`
	Speed    float64           `json:"speed"`
	Hours    float64           `json:"hours"`
}

// Itinerary is the answer to one trip.
type Itinerary struct {
	Start         roadfile.Location `json:"start"`
	End           roadfile.Location `json:"end"`
	Mode          roadfile.Mode     `json:"mode"`
	Path          []core.Vertex     `json:"path"`
	Legs          []Leg             `json:"legs"`
	TotalDistance float64           `json:"total_distance"`
	TotalHours    float64           `json:"total_hours"`
}

// Outcome pairs a trip with its itinerary or the error that prevented it.
type Outcome struct {
	Trip      roadfile.Trip
	Itinerary *Itinerary
	Err       error
}
