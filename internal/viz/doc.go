// Package viz renders runs in the terminal and to image files.
//
//   - [Live]: Bubble Tea view stepping a trajectory with its shadow
//     while the fast indicator accumulates
//   - [Explore]: preset picker and scenario editor wrapping [Live]
//   - [Canvas], [Scatter]: braille dot rendering for sections and
//     phase portraits
//   - [SaveSeries], [SaveScatter], [SaveHeatMap]: gonum/plot exports,
//     format chosen by the path extension
//
// # Key Bindings
//
//	Space - Pause/Resume integration
//	R     - Reset to the initial state
//	Q     - Quit
package viz
