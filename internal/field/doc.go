// Package field provides the scalar-grid type shared by simulation sources
// and display surfaces.
//
// The package defines the vocabulary the rest of the module speaks:
//
//   - [Grid]: row-major float32 sample grid
//   - [Source]: per-frame producer of the grid to display
//   - [Tunable]: runtime parameter adjustment
//   - [Resettable]: in-place reseeding
//
// Display conversion ([Grid.RGBA], [Grid.AppendRGBA]) is a pure function:
// each sample is clamped to [0, 1] and widened to a grayscale RGBA pixel.
package field
