//go:build !statsview

// Package statsview offers a local HTTP server with runtime statistics,
// compiled in only under the statsview build tag. This build omits it.
package statsview

import "io"

const Address = ""

// Launch does nothing in builds without the statsview tag.
func Launch(output io.Writer) {
}

// Available reports whether a statsview can be launched in this build.
func Available() bool {
	return false
}
