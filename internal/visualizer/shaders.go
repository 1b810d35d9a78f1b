package visualizer

import "io/fs"

// loadShaderSources reads both shader texts through the injected provider.
// It runs before any window or GPU work, so a missing resource fails
// construction without touching the driver.
func loadShaderSources(fsys fs.FS, vertPath, fragPath string) (string, string, error) {
	vert, err := fs.ReadFile(fsys, vertPath)
	if err != nil {
		return "", "", &Error{Op: "read vertex shader " + vertPath, Kind: ErrResourceRead, Err: err}
	}
	frag, err := fs.ReadFile(fsys, fragPath)
	if err != nil {
		return "", "", &Error{Op: "read fragment shader " + fragPath, Kind: ErrResourceRead, Err: err}
	}
	return string(vert), string(frag), nil
}
