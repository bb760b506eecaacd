// Package tui shows a flight in the terminal, either live while it is
// integrated ([LiveRenderer]) or afterwards as an interactive Bubble Tea
// replay ([Replay], [Run]). Both consume samples collected by a [Recorder],
// which plugs into the integrator as a projectile.Observer.
package tui
