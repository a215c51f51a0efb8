// Package viz renders planes for the terminal.
//
//   - [Canvas]: Braille canvas, one dot per cell (2x4 cells per character)
//   - [RenderPlane]: draws a one- or two-dimensional plane
//   - [RenderHistory]: stacks successive states of a one-dimensional plane
//   - [PopulationGraph]: asciigraph plot of a population history
//
// Planes with more than two dimensions are displayed through a view picked
// with [Project].
package viz
