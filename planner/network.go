package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/matrix"
	"github.com/katalvlaran/lvroute/roadfile"
)

// cacheKey identifies one single-source search.
type cacheKey struct {
	start core.Vertex
	mode  roadfile.Mode
}

// Network is an immutable routable road map.
type Network struct {
	locations []roadfile.Location
	graph     *core.Graph
	distance  *matrix.Dense // miles; +Inf off-road
	speed     *matrix.Dense // mph; 0 off-road
	hours     *matrix.Dense // distance/speed; +Inf when speed ≤ 0
	opts      Options
	log       *zap.Logger
	cache     *lru.Cache[cacheKey, *dijkstra.Result] // nil when disabled
}

// NewNetwork validates rec and builds the graph and weight matrices.
//
// Roads repeating a (start, end) pair collapse into one edge; the last
// road listed supplies its distance and speed.
func NewNetwork(rec *roadfile.FileRecord, opts ...Option) (*Network, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if rec == nil {
		return nil, ErrNilRecord
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	n := len(rec.Locations)
	g, err := core.NewGraph(n, core.WithDirected(true))
	if err != nil {
		return nil, err
	}
	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	if err = dist.Fill(math.Inf(1)); err != nil {
		return nil, err
	}
	speed, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	for _, r := range rec.Roads {
		if err = g.AddEdge(core.Vertex(r.Start), core.Vertex(r.End)); err != nil {
			return nil, err
		}
		if err = dist.Set(r.Start, r.End, r.Distance); err != nil {
			return nil, err
		}
		if err = speed.Set(r.Start, r.End, r.Speed); err != nil {
			return nil, err
		}
	}
	hours, err := matrix.Quotient(dist, speed)
	if err != nil {
		return nil, err
	}

	nw := &Network{
		locations: append([]roadfile.Location(nil), rec.Locations...),
		graph:     g,
		distance:  dist,
		speed:     speed,
		hours:     hours,
		opts:      o,
		log:       o.Logger.Named("planner"),
	}
	if o.CacheSize > 0 {
		if nw.cache, err = lru.New[cacheKey, *dijkstra.Result](o.CacheSize); err != nil {
			return nil, fmt.Errorf("planner: cache: %w", err)
		}
	}
	nw.log.Debug("network built",
		zap.Int("locations", n),
		zap.Int("roads", len(rec.Roads)),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("cache_size", o.CacheSize))

	return nw, nil
}

// Graph returns the underlying directed graph. Callers must not mutate it.
func (nw *Network) Graph() *core.Graph { return nw.graph }

// Locations returns a copy of the location list, indexed by vertex.
func (nw *Network) Locations() []roadfile.Location {
	return append([]roadfile.Location(nil), nw.locations...)
}

// Connected reports whether every location can reach every other one.
// An empty network returns bfs.ErrEmptyGraph.
func (nw *Network) Connected() (bool, error) {
	return bfs.IsConnected(nw.graph)
}

// weights returns the cost matrix for a trip mode.
func (nw *Network) weights(mode roadfile.Mode) (*matrix.Dense, error) {
	switch mode {
	case roadfile.ModeDistance:
		return nw.distance, nil
	case roadfile.ModeTime:
		return nw.hours, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}

// search returns the single-source result for (start, mode), from cache if present.
func (nw *Network) search(start core.Vertex, mode roadfile.Mode) (*dijkstra.Result, error) {
	key := cacheKey{start: start, mode: mode}
	if nw.cache != nil {
		if res, ok := nw.cache.Get(key); ok {
			searchCache.WithLabelValues("hit").Inc()
			return res, nil
		}
		searchCache.WithLabelValues("miss").Inc()
	}

	w, err := nw.weights(mode)
	if err != nil {
		return nil, err
	}
	var dopts []dijkstra.Option
	if nw.opts.StrictWeights {
		dopts = append(dopts, dijkstra.WithStrictWeights())
	}
	res, err := dijkstra.Dijkstra(nw.graph, start, w, dopts...)
	if err != nil {
		return nil, err
	}
	if res.Clamped > 0 {
		nw.log.Warn("negative road weights clamped to zero",
			zap.Int("start", int(start)),
			zap.Stringer("mode", mode),
			zap.Int("clamped", res.Clamped))
	}
	if nw.cache != nil {
		nw.cache.Add(key, res)
	}

	return res, nil
}

// Plan answers one trip. Unreachable destinations return an error wrapping
// core.ErrNoPath.
func (nw *Network) Plan(ctx context.Context, trip roadfile.Trip) (*Itinerary, error) {
	began := time.Now()
	mode := modeLabel(trip.Mode)
	it, err := nw.plan(ctx, trip)

	result := "ok"
	switch {
	case err == nil:
		planLegs.Observe(float64(len(it.Legs)))
	case errors.Is(err, core.ErrNoPath):
		result = "no_path"
	default:
		result = "error"
	}
	planTotal.WithLabelValues(mode, result).Inc()
	planDuration.WithLabelValues(mode).Observe(time.Since(began).Seconds())

	if err != nil {
		nw.log.Debug("trip not planned",
			zap.Int("start", trip.Start),
			zap.Int("end", trip.End),
			zap.String("mode", string(trip.Mode)),
			zap.Error(err))
		return nil, err
	}
	nw.log.Debug("trip planned",
		zap.Int("start", trip.Start),
		zap.Int("end", trip.End),
		zap.String("mode", string(trip.Mode)),
		zap.Int("legs", len(it.Legs)),
		zap.Float64("total_distance", it.TotalDistance),
		zap.Float64("total_hours", it.TotalHours))

	return it, nil
}

// modeLabel keeps metric label cardinality bounded.
func modeLabel(m roadfile.Mode) string {
	if m == roadfile.ModeDistance || m == roadfile.ModeTime {
		return string(m)
	}

	return "unknown"
}

func (nw *Network) plan(ctx context.Context, trip roadfile.Trip) (*Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := nw.weights(trip.Mode); err != nil {
		return nil, err
	}
	n := len(nw.locations)
	if trip.Start < 0 || trip.Start >= n || trip.End < 0 || trip.End >= n {
		return nil, fmt.Errorf("%w: trip %d → %d with %d locations", core.ErrVertexOutOfRange, trip.Start, trip.End, n)
	}

	res, err := nw.search(core.Vertex(trip.Start), trip.Mode)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(core.Vertex(trip.End))
	if err != nil {
		return nil, fmt.Errorf("planner: %s to %s: %w",
			nw.locations[trip.Start].Name, nw.locations[trip.End].Name, err)
	}

	return nw.itinerary(trip, path)
}

// itinerary expands a vertex path into legs and totals.
func (nw *Network) itinerary(trip roadfile.Trip, path []core.Vertex) (*Itinerary, error) {
	it := &Itinerary{
		Start: nw.locations[trip.Start],
		End:   nw.locations[trip.End],
		Mode:  trip.Mode,
		Path:  path,
		Legs:  make([]Leg, 0, len(path)-1),
	}
	for i := 1; i < len(path); i++ {
		u, v := int(path[i-1]), int(path[i])
		d, err := nw.distance.At(u, v)
		if err != nil {
			return nil, err
		}
		s, err := nw.speed.At(u, v)
		if err != nil {
			return nil, err
		}
		h, err := nw.hours.At(u, v)
		if err != nil {
			return nil, err
		}
		it.Legs = append(it.Legs, Leg{
			From:     nw.locations[u],
			To:       nw.locations[v],
			Distance: d,
			Speed:    s,
			Hours:    h,
		})
		it.TotalDistance += d
		it.TotalHours += h
	}

	return it, nil
}

// PlanAll plans every trip in order. Per-trip failures are reported in the
// matching Outcome; only context cancellation stops the batch early.
func (nw *Network) PlanAll(ctx context.Context, trips []roadfile.Trip) ([]Outcome, error) {
	out := make([]Outcome, 0, len(trips))
	for _, t := range trips {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		it, err := nw.Plan(ctx, t)
		out = append(out, Outcome{Trip: t, Itinerary: it, Err: err})
	}

	return out, nil
}
