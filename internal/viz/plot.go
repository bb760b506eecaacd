package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/projsim/internal/vec"
)

const (
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 12
)

// Altitudes extracts z from every sample.
func Altitudes(traj []vec.Vector3) []float64 {
	out := make([]float64, len(traj))
	for i, p := range traj {
		out[i] = p.Z
	}
	return out
}

// Distances is the horizontal distance of every sample from the first one.
func Distances(traj []vec.Vector3) []float64 {
	out := make([]float64, len(traj))
	if len(traj) == 0 {
		return out
	}
	origin := traj[0]
	for i, p := range traj {
		d := p.Sub(origin)
		out[i] = math.Hypot(d.X, d.Y)
	}
	return out
}

// PlotAltitude draws altitude against sample index. Non-finite samples are
// dropped; an empty series renders as an empty string.
func PlotAltitude(traj []vec.Vector3, caption string, width, height int) string {
	data := finite(Altitudes(traj))
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotCompare overlays the altitude profiles of several trajectories, e.g.
// an integrated flight against its vacuum baseline.
func PlotCompare(trajs [][]vec.Vector3, caption string, width, height int) string {
	series := make([][]float64, 0, len(trajs))
	for _, t := range trajs {
		if data := finite(Altitudes(t)); len(data) > 0 {
			series = append(series, data)
		}
	}
	if len(series) == 0 {
		return ""
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow, asciigraph.Cyan),
	)
}

func finite(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
