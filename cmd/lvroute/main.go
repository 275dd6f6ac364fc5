// Command lvroute plans shortest-distance and shortest-time trips over a
// road-network file, checks such files, and serves trip queries over HTTP.
//
//	lvroute plan data/sample.txt
//	lvroute check data/sample.txt
//	lvroute serve --config lvroute.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
