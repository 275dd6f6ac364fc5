// Package planner turns a parsed road file into a routable Network and
// answers trip queries on it.
//
// A Network owns a directed core.Graph with one edge per road plus three
// n×n matrices: distance (miles), speed (mph) and travel time (hours,
// distance/speed; a zero speed makes the road impassable in time mode).
// Plan runs Dijkstra on the matrix chosen by the trip mode and expands the
// resulting path into per-road legs with running totals.
//
// Dijkstra results are cached per (start, mode) in an LRU cache, so many
// trips from the same origin cost one search. A Network is immutable after
// NewNetwork returns and is safe for concurrent Plan calls.
//
// Text output follows the classic itinerary layout:
//
//	Shortest distance from Springfield to Capital City
//	    Begin at Springfield
//	    Continue to Shelbyville (10.0 miles)
//	    Continue to Capital City (20.0 miles)
//	Total distance: 30.0 miles
package planner
