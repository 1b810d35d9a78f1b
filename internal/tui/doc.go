// Package tui renders a field source in the terminal.
//
// The package implements a live view using the Bubble Tea framework: the
// grid is downsampled to a block of shade runes (darkest to brightest) with
// a stats sidebar showing frame count, min/mean/max and a history chart of
// the mean. Sources that implement [field.Tunable] get interactive
// parameter bars.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reseed the field
//	Tab   - Cycle parameters
//	↑/K   - Increase selected parameter (+5%)
//	↓/J   - Decrease selected parameter (-5%)
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit
//
// # Recording
//
// The G key records grayscale GIF frames at native field resolution and
// writes them to morphogen.gif in the current directory when recording
// stops.
package tui
