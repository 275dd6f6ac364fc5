package planner

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvroute/roadfile"
)

// FormatDuration renders hours as "H.H hr M min S.S sec", dropping leading
// zero units: "M min S.S sec" under an hour, "S.S sec" under a minute.
// Seconds are rounded to one decimal first so "60.0 sec" never appears.
// Zero or negative input yields "0.0 sec"; +Inf or NaN yields "unreachable".
func FormatDuration(hours float64) string {
	if math.IsInf(hours, 0) || math.IsNaN(hours) {
		return "unreachable"
	}
	if hours <= 0 {
		return "0.0 sec"
	}

	secs := math.Round(hours*3600*10) / 10
	h := math.Floor(secs / 3600)
	m := math.Floor((secs - h*3600) / 60)
	s := secs - h*3600 - m*60

	switch {
	case h > 0:
		return fmt.Sprintf("%.1f hr %.0f min %.1f sec", h, m, s)
	case m > 0:
		return fmt.Sprintf("%.0f min %.1f sec", m, s)
	default:
		return fmt.Sprintf("%.1f sec", s)
	}
}

// WriteItinerary renders it in the classic text layout. Time-mode
// itineraries show speed and duration per leg and end with both totals.
func WriteItinerary(w io.Writer, it *Itinerary) error {
	bw := bufio.NewWriter(w)

	title := "distance"
	if it.Mode == roadfile.ModeTime {
		title = "time"
	}
	fmt.Fprintf(bw, "Shortest %s from %s to %s\n", title, it.Start.Name, it.End.Name)
	fmt.Fprintf(bw, "    Begin at %s\n", it.Start.Name)
	for _, leg := range it.Legs {
		if it.Mode == roadfile.ModeTime {
			fmt.Fprintf(bw, "    Continue to %s (%.1f miles @ %.1f mph = %s)\n",
				leg.To.Name, leg.Distance, leg.Speed, FormatDuration(leg.Hours))
		} else {
			fmt.Fprintf(bw, "    Continue to %s (%.1f miles)\n", leg.To.Name, leg.Distance)
		}
	}
	fmt.Fprintf(bw, "Total distance: %.1f miles\n", it.TotalDistance)
	if it.Mode == roadfile.ModeTime {
		fmt.Fprintf(bw, "Total time: %s\n", FormatDuration(it.TotalHours))
	}

	return bw.Flush()
}
