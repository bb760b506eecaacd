package viz

import (
	"fmt"
	"math"
	"strings"
)

// Summary renders labelled values in a bordered panel, in the given order.
// Non-finite values are highlighted since they are the model's failure
// signal.
func Summary(title string, names []string, values map[string]float64) string {
	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}

	var b strings.Builder
	b.WriteString(Title.Render(title))
	for _, n := range names {
		v, ok := values[n]
		if !ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(MetricLabel.Render(fmt.Sprintf("%-*s", width, n)))
		b.WriteString("  ")
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b.WriteString(Warning.Render(fmt.Sprintf("%v", v)))
		} else {
			b.WriteString(MetricValue.Render(fmt.Sprintf("%.4f", v)))
		}
	}
	return Panel.Render(b.String())
}
