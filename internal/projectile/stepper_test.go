package projectile_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/projsim/internal/atmosphere"
	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/units"
	"github.com/san-kum/projsim/internal/vec"
)

var _ = Describe("Stepper", func() {
	vacuumShot := func() *projectile.Projectile {
		p := projectile.New()
		p.Mass = 1
		p.SetVelocityComponents(10, 0, 20)
		return p
	}

	It("follows the vacuum parabola exactly with RK4", func() {
		p := vacuumShot()
		traj := p.TrajectoryVacuum(unreachable, 4, projectile.WithStepper(projectile.StepRK4))

		for i, pos := range traj {
			t := float64(i) * projectile.TimeStep
			Expect(pos.X).To(BeNumerically("~", 10*t, 1e-9))
			Expect(pos.Z).To(BeNumerically("~", 20*t-units.G*t*t/2, 1e-9))
		}
	})

	It("samples on the same time grid as Euler", func() {
		atm := atmosphere.New(293.15, 0.4, 0, vec.Zero)
		euler := baseball().Trajectory(atm, unreachable, 3)
		rk := baseball().Trajectory(atm, unreachable, 3, projectile.WithStepper(projectile.StepRK4))

		Expect(rk).To(HaveLen(len(euler)))
		Expect(rk[0]).To(Equal(euler[0]))
	})

	It("is the default Euler step when unset", func() {
		atm := atmosphere.New(293.15, 0.4, 0, vec.Zero)
		a := baseball().Trajectory(atm, 0, 5)
		b := baseball().Trajectory(atm, 0, 5, projectile.WithStepper(projectile.StepEuler))
		Expect(a).To(Equal(b))
	})

	DescribeTable("parsing steppers",
		func(in string, want projectile.Stepper, ok bool) {
			got, err := projectile.ParseStepper(in)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
			Expect(got.String()).NotTo(BeEmpty())
		},
		Entry("default", "", projectile.StepEuler, true),
		Entry("euler", "euler", projectile.StepEuler, true),
		Entry("rk4", "RK4", projectile.StepRK4, true),
		Entry("unknown", "leapfrog", projectile.StepEuler, false),
	)
})
