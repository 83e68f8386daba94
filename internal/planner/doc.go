// Package planner turns configuration plus one input path into a
// MontagePlan: the sampling window and interval, the frame width, the tile
// grid, and the output path. The ffmpeg package renders a plan into argv.
//
// Sampling model: a frame is selected when its timestamp t satisfies
// t <= window and t mod interval == 0. Selected frames are scaled, then
// packed into a single Columns x Rows sheet; frames beyond the grid's
// capacity are dropped by ffmpeg's tile filter.
package planner
