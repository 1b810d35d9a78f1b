//go:build statsview

// Package statsview offers a local HTTP server with runtime statistics,
// compiled in only under the statsview build tag. Graphs are served at
// localhost:12601/debug/statsview and standard pprof endpoints at
// localhost:12601/debug/pprof/.
package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const Address = "localhost:12601"
const url = "/debug/statsview"

// Launch starts the statistics server on a new goroutine.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Available reports whether a statsview can be launched in this build.
func Available() bool {
	return true
}
