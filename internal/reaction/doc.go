// Package reaction provides the simulation models rendered by the
// visualizer. Each model implements [field.Source], producing one grid per
// frame:
//
//   - [GrayScott]: two-chemical reaction-diffusion on a toroidal grid
//   - [Life]: Conway's B3/S23 cellular automaton
//   - [Plasma]: trigonometric interference pattern, useful for shader and
//     window plumbing checks without a simulation attached
//
// Models that also implement [field.Tunable] accept parameter changes at
// runtime; [field.Resettable] models can be reseeded in place. [Registry]
// maps model names to constructors.
package reaction
