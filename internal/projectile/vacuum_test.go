package projectile_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/units"
	"github.com/san-kum/projsim/internal/vec"
)

var _ = Describe("Vacuum kinematics", func() {
	var p *projectile.Projectile

	BeforeEach(func() {
		p = projectile.New()
		p.Mass = 1
		p.SetVelocityComponents(10, 0, 20)
	})

	It("finds the apex time and height", func() {
		Expect(p.ApexVacuumTime()).To(BeNumerically("~", 20/units.G, tol))
		Expect(p.ApexVacuumTime()).To(BeNumerically("~", 2.0394, 1e-4))
		Expect(p.ApexVacuum()).To(BeNumerically("~", 400/(2*units.G), 1e-9))
	})

	It("reproduces the level-ground range formula", func() {
		Expect(p.RangeVacuumTime(0)).To(BeNumerically("~", 2*20/units.G, 1e-9))
		Expect(p.RangeVacuum(0)).To(BeNumerically("~", 10*2*20/units.G, 1e-9))
	})

	It("lands below the launch height on the descending branch", func() {
		p.Position = vec.New(0, 0, 5)

		t := p.RangeVacuumTime(0)
		Expect(t).To(BeNumerically(">", 2*20/units.G))
		z := 5 + 20*t - units.G*t*t/2
		Expect(z).To(BeNumerically("~", 0, 1e-9))
	})

	It("measures range in the horizontal plane", func() {
		p.SetVelocityComponents(3, 4, 20)
		Expect(p.RangeVacuum(0)).To(BeNumerically("~", 5*p.RangeVacuumTime(0), 1e-9))
	})

	It("returns NaN for a height above the apex", func() {
		Expect(math.IsNaN(p.RangeVacuumTime(25))).To(BeTrue())
		Expect(math.IsNaN(p.RangeVacuum(25))).To(BeTrue())
	})

	It("steps the vacuum trajectory like the general integrator", func() {
		q := *p

		vacuum := p.TrajectoryVacuum(1e9, 5)
		general := q.Trajectory(atmosphereStandard(), 1e9, 5)

		Expect(vacuum).To(HaveLen(len(general)))
		for i := range vacuum {
			Expect(vacuum[i].X).To(BeNumerically("~", general[i].X, 1e-9))
			Expect(vacuum[i].Z).To(BeNumerically("~", general[i].Z, 1e-9))
		}
	})
})
