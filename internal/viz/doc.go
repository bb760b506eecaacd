// Package viz renders trajectories and run metrics for the terminal.
//
//   - [PlotAltitude] and [PlotCompare]: asciigraph line charts of altitude
//     per sample
//   - [Summary]: a lipgloss panel of named metric values
//   - [Sparkline], [ProgressBar], [Separator]: small widgets shared with the
//     replay TUI
//
// Non-finite samples are dropped from plots and highlighted in summaries.
package viz
