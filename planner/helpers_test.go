package planner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadfile"
)

// sampleText is a small strongly connected network where the fastest
// Springfield → Capital City route differs from the shortest one.
const sampleText = `# five towns
5
Springfield
Shelbyville
Capital City
Ogdenville
North Haverbrook
8
0 1 10 30
1 0 10 30
1 2 20 20
2 1 20 60
0 3 15 45
3 4 25 50
4 2 5 55
2 0 40 70
3
0 2 D
0 2 T
4 1 D
`

func mustRecord(t testing.TB, text string) *roadfile.FileRecord {
	t.Helper()
	rec, err := roadfile.Parse(strings.NewReader(text))
	require.NoError(t, err)

	return rec
}

func mustNetwork(t testing.TB, text string, opts ...planner.Option) *planner.Network {
	t.Helper()
	nw, err := planner.NewNetwork(mustRecord(t, text), opts...)
	require.NoError(t, err)

	return nw
}
