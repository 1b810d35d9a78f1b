// Package visualizer renders an evolving scalar field as a grayscale image
// in a live window.
//
// A [Visualizer] owns one window with an OpenGL 4.1 core context, one
// compiled shader program, a full-screen two-triangle quad and one texture
// sized to the field dimensions declared in [Config]. [Visualizer.Run]
// drives the blocking frame loop: advance the [field.Source], convert the
// grid to grayscale RGBA, stream it into the texture, clear to opaque red,
// draw the quad with the texture bound to the u_texture sampler, present,
// then poll window events. The loop ends when the window manager requests a
// close.
//
// Shader sources are read through an [io/fs.FS], so programs can ship
// embedded defaults and still accept replacements from disk. A program must
// declare the a_position and a_texcoord vertex attributes and the u_texture
// sampler.
//
// Everything is single-threaded and cooperative: construction and Run must
// happen on the goroutine locked to the main OS thread, and an expensive
// source stalls both rendering and event handling for that frame.
package visualizer
