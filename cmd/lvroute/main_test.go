package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/roadfile"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestPlan_Sample(t *testing.T) {
	out, err := run(t, "plan", "testdata/sample.txt")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"Shortest distance from Springfield to Capital City\n"+
		"    Begin at Springfield\n"+
		"    Continue to Shelbyville (10.0 miles)\n"+
		"    Continue to Capital City (20.0 miles)\n"+
		"Total distance: 30.0 miles\n"+
		"\n"+
		"Shortest time from Springfield to Capital City\n"+
		"    Begin at Springfield\n"+
		"    Continue to Ogdenville (15.0 miles @ 45.0 mph = 20 min 0.0 sec)\n"+
		"    Continue to North Haverbrook (25.0 miles @ 50.0 mph = 30 min 0.0 sec)\n"+
		"    Continue to Capital City (5.0 miles @ 55.0 mph = 5 min 27.3 sec)\n"+
		"Total distance: 45.0 miles\n"+
		"Total time: 55 min 27.3 sec\n"+
		"\n"+
		"Shortest distance from North Haverbrook to Shelbyville\n"+
		"    Begin at North Haverbrook\n"+
		"    Continue to Capital City (5.0 miles)\n"+
		"    Continue to Shelbyville (20.0 miles)\n"+
		"Total distance: 25.0 miles\n", out)
}

func TestPlan_Disconnected(t *testing.T) {
	out, err := run(t, "plan", "testdata/disconnected.txt")
	require.NoError(t, err)
	assert.Equal(t, "Disconnected Map\n", out)
}

func TestPlan_Invalid(t *testing.T) {
	_, err := run(t, "plan", "testdata/invalid.txt")
	assert.ErrorIs(t, err, roadfile.ErrInvalidRecord)

	_, err = run(t, "plan")
	assert.Error(t, err, "FILE is required")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "testdata/sample.txt")
	require.NoError(t, err)
	assert.Equal(t, "locations: 5\nroads: 8\ntrips: 3\nconnected: true\n", out)

	out, err = run(t, "check", "testdata/disconnected.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "connected: false")
}

func TestServe_NeedsMapFile(t *testing.T) {
	t.Setenv("LVROUTE_MAP_FILE", "")
	_, err := run(t, "serve")
	assert.ErrorIs(t, err, errNoMapFile)
}

func TestRoot_BadLogLevel(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud", "check", "testdata/sample.txt"})
	assert.Error(t, cmd.Execute())
}
