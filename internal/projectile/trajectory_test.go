package projectile_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/projsim/internal/atmosphere"
	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/units"
	"github.com/san-kum/projsim/internal/vec"
)

// unreachable keeps the end-height clause of the compat rule from ever
// extending a run.
const unreachable = 1e9

func baseball() *projectile.Projectile {
	p := projectile.New()
	p.Mass = 0.145
	p.Radius = 0.037
	p.DragCoefficient = 0.3
	p.MagnusCoefficient = 1e-4
	p.Spin = vec.New(0, -150, 0)
	p.SetSpeedThetaPhi(40, 35*units.Degrees, 0.1)
	return p
}

var _ = Describe("Trajectory", func() {
	var atm atmosphere.Atmosphere

	BeforeEach(func() {
		atm = atmosphere.New(293.15, 0.4, 200, vec.New(2, -1, 0))
	})

	It("starts with the initial position", func() {
		p := baseball()
		p.Position = vec.New(1, 2, 3)

		traj := p.Trajectory(atm, unreachable, 1)
		Expect(traj[0]).To(Equal(vec.New(1, 2, 3)))
	})

	DescribeTable("produces ceil(T/dt)+1 samples when time is the limit",
		func(maxTime float64, samples int) {
			p := baseball()
			Expect(p.Trajectory(atm, unreachable, maxTime)).To(HaveLen(samples))
		},
		Entry("zero", 0.0, 1),
		Entry("0.3 s", 0.3, 4),
		Entry("1 s", 1.0, 11),
		Entry("5 s", 5.0, 51),
		Entry("12.5 s", 12.5, 126),
		Entry("0.25 s steps past the limit", 0.25, 4),
		Entry("0.05 s", 0.05, 2),
	)

	It("is deterministic", func() {
		a := baseball().Trajectory(atm, 0, 8)
		b := baseball().Trajectory(atm, 0, 8)
		Expect(a).To(Equal(b))
	})

	It("advances the projectile in place", func() {
		p := baseball()
		first := p.Trajectory(atm, unreachable, 2)
		Expect(p.Position).To(Equal(first[len(first)-1]))

		second := p.Trajectory(atm, unreachable, 2)
		Expect(second[0]).To(Equal(first[len(first)-1]))
		Expect(second[len(second)-1]).NotTo(Equal(first[len(first)-1]))
	})

	It("keeps the derived angles in step with the velocity", func() {
		p := baseball()
		p.Trajectory(atm, unreachable, 3)

		v := p.Velocity()
		Expect(p.Speed()).To(BeNumerically("~", v.Mag(), 1e-12))
		Expect(p.Theta()).To(BeNumerically("~", math.Atan(v.Z/math.Hypot(v.X, v.Y)), 1e-12))
	})

	It("tracks the vacuum parabola within the Euler error without drag or spin", func() {
		p := projectile.New()
		p.Mass = 1
		p.SetVelocityComponents(10, 0, 20)

		traj := p.Trajectory(atm, unreachable, 5)
		for i, pos := range traj {
			t := float64(i) * projectile.TimeStep
			analytic := 20*t - units.G*t*t/2
			// Explicit Euler overshoots the parabola by exactly g*dt*t/2.
			bound := units.G*projectile.TimeStep*t/2 + 1e-9

			Expect(pos.X).To(BeNumerically("~", 10*t, 1e-9))
			Expect(pos.Z - analytic).To(BeNumerically(">=", -1e-9))
			Expect(pos.Z - analytic).To(BeNumerically("<=", bound))
		}

		apexSample := traj[int(math.Round(20/units.G/projectile.TimeStep))]
		Expect(apexSample.Z).To(BeNumerically("~", 400/(2*units.G), 0.05*400/(2*units.G)))
	})

	It("loses range to drag", func() {
		vacuum := baseball()
		vacuum.DragCoefficient = 0
		vacuum.MagnusCoefficient = 0
		dragged := baseball()
		dragged.DragModel = projectile.DragVector

		opt := projectile.WithTermination(projectile.TerminateAtEndHeight)
		v := vacuum.Trajectory(atm, 0, 30, opt)
		d := dragged.Trajectory(atm, 0, 30, opt)

		Expect(math.Hypot(d[len(d)-1].X, d[len(d)-1].Y)).To(
			BeNumerically("<", math.Hypot(v[len(v)-1].X, v[len(v)-1].Y)))
	})

	Describe("termination", func() {
		var p *projectile.Projectile

		BeforeEach(func() {
			p = projectile.New()
			p.Mass = 1
			p.SetVelocityComponents(10, 0, 20)
		})

		It("stops on time while still rising under the compat rule", func() {
			traj := p.Trajectory(atm, 0, 1)
			Expect(traj).To(HaveLen(11))
			Expect(traj[10].Z).To(BeNumerically(">", traj[9].Z))
		})

		It("keeps falling past max time until end height under the compat rule", func() {
			traj := p.Trajectory(atm, 0, 3)
			n := len(traj)

			Expect(n).To(BeNumerically(">", 31))
			Expect(traj[n-1].Z).To(BeNumerically("<=", 0))
			Expect(traj[n-2].Z).To(BeNumerically(">", 0))
		})

		It("stops at the first falling sample below end height", func() {
			traj := p.Trajectory(atm, 0, 100, projectile.WithTermination(projectile.TerminateAtEndHeight))
			n := len(traj)

			Expect(n).To(BeNumerically("<", 1001))
			Expect(traj[n-1].Z).To(BeNumerically("<=", 0))
			Expect(traj[n-2].Z).To(BeNumerically(">", 0))
		})

		It("still honours max time with the end-height rule", func() {
			traj := p.Trajectory(atm, 0, 1, projectile.WithTermination(projectile.TerminateAtEndHeight))
			Expect(traj).To(HaveLen(11))
		})

		It("stops after the configured number of steps", func() {
			traj := p.Trajectory(atm, 0, 100, projectile.WithMaxSteps(5))
			Expect(traj).To(HaveLen(6))
		})

		It("propagates NaN for a massless projectile instead of failing", func() {
			p.Mass = 0
			p.DragCoefficient = 1
			p.Radius = 0.1
			traj := p.Trajectory(atm, 0, 1)
			Expect(traj[len(traj)-1].IsValid()).To(BeFalse())
		})
	})

	It("notifies observers once per sample", func() {
		p := baseball()
		var steps []int
		var times []float64
		obs := projectile.ObserverFunc(func(step int, t float64, _ *projectile.Projectile) {
			steps = append(steps, step)
			times = append(times, t)
		})

		traj := p.Trajectory(atm, unreachable, 2, projectile.WithObserver(obs))

		Expect(steps).To(HaveLen(len(traj)))
		for i := range steps {
			Expect(steps[i]).To(Equal(i))
			Expect(times[i]).To(BeNumerically("~", float64(i)*projectile.TimeStep, 1e-12))
		}
	})

	DescribeTable("parsing terminations",
		func(in string, want projectile.Termination, ok bool) {
			got, err := projectile.ParseTermination(in)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("default", "", projectile.TerminateCompat, true),
		Entry("compat", "compat", projectile.TerminateCompat, true),
		Entry("end height", "end-height", projectile.TerminateAtEndHeight, true),
		Entry("unknown", "never", projectile.TerminateCompat, false),
	)
})
