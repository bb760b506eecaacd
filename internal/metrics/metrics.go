// Package metrics reduces a trajectory to scalar figures while it is being
// integrated. Every metric is a projectile.Observer fed one sample at a time.
package metrics

import (
	"sort"

	"github.com/san-kum/projsim/internal/projectile"
)

type Metric interface {
	Name() string
	Observe(step int, t float64, p *projectile.Projectile)
	Value() float64
	Reset()
}

// Recorder fans trajectory samples out to a set of metrics.
type Recorder struct {
	metrics []Metric
}

func NewRecorder(ms ...Metric) *Recorder {
	return &Recorder{metrics: ms}
}

// Default returns the metrics reported for every run.
func Default() *Recorder {
	return NewRecorder(NewApex(), NewRange(), NewFlightTime(), NewMaxSpeed(), NewEnergyLoss(), NewValidity())
}

func (r *Recorder) Add(m Metric) { r.metrics = append(r.metrics, m) }

func (r *Recorder) OnStep(step int, t float64, p *projectile.Projectile) {
	for _, m := range r.metrics {
		m.Observe(step, t, p)
	}
}

func (r *Recorder) Reset() {
	for _, m := range r.metrics {
		m.Reset()
	}
}

func (r *Recorder) Values() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names returns the metric names in sorted order.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.metrics))
	for _, m := range r.metrics {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}
