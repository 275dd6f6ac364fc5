package planner_test

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadfile"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0.0 sec"},
		{-1, "0.0 sec"},
		{1.0 / 3600, "1.0 sec"},
		{0.5 / 3600, "0.5 sec"},
		{1.0 / 3, "20 min 0.0 sec"},
		{0.5, "30 min 0.0 sec"},
		{5.0 / 55, "5 min 27.3 sec"},
		{1.5, "1.0 hr 30 min 0.0 sec"},
		{2 + 1.0/60 + 1.5/3600, "2.0 hr 1 min 1.5 sec"},
		{59.99 / 3600, "1 min 0.0 sec"}, // rounds up into the next unit
		{math.Inf(1), "unreachable"},
		{math.NaN(), "unreachable"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, planner.FormatDuration(tc.hours), "hours=%v", tc.hours)
	}
}

func TestWriteItinerary_Distance(t *testing.T) {
	nw := mustNetwork(t, sampleText)
	it, err := nw.Plan(context.Background(), roadfile.Trip{Start: 0, End: 2, Mode: roadfile.ModeDistance})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, planner.WriteItinerary(&buf, it))
	assert.Equal(t, ""+
		"Shortest distance from Springfield to Capital City\n"+
		"    Begin at Springfield\n"+
		"    Continue to Shelbyville (10.0 miles)\n"+
		"    Continue to Capital City (20.0 miles)\n"+
		"Total distance: 30.0 miles\n", buf.String())
}

func TestWriteItinerary_Time(t *testing.T) {
	nw := mustNetwork(t, sampleText)
	it, err := nw.Plan(context.Background(), roadfile.Trip{Start: 0, End: 2, Mode: roadfile.ModeTime})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, planner.WriteItinerary(&buf, it))
	assert.Equal(t, ""+
		"Shortest time from Springfield to Capital City\n"+
		"    Begin at Springfield\n"+
		"    Continue to Ogdenville (15.0 miles @ 45.0 mph = 20 min 0.0 sec)\n"+
		"    Continue to North Haverbrook (25.0 miles @ 50.0 mph = 30 min 0.0 sec)\n"+
		"    Continue to Capital City (5.0 miles @ 55.0 mph = 5 min 27.3 sec)\n"+
		"Total distance: 45.0 miles\n"+
		"Total time: 55 min 27.3 sec\n", buf.String())
}
