package metrics

import "github.com/san-kum/projsim/internal/projectile"

// Validity is the fraction of samples whose position and velocity are
// finite. Anything below 1 means the run degenerated into NaN or Inf.
type Validity struct {
	name    string
	invalid int
	samples int
}

func NewValidity() *Validity {
	return &Validity{name: "validity"}
}

func (v *Validity) Name() string {
	return v.name
}

func (v *Validity) Observe(step int, t float64, p *projectile.Projectile) {
	v.samples++
	if !p.Position.IsValid() || !p.Velocity().IsValid() {
		v.invalid++
	}
}

func (v *Validity) Value() float64 {
	if v.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(v.invalid)/float64(v.samples)
}

func (v *Validity) Reset() {
	v.invalid = 0
	v.samples = 0
}
