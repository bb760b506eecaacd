package projectile_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/vec"
)

const tol = 1e-12

var _ = Describe("Projectile state", func() {
	var p *projectile.Projectile

	BeforeEach(func() {
		p = projectile.New()
	})

	It("starts zeroed", func() {
		Expect(p.Mass).To(BeZero())
		Expect(p.Position).To(Equal(vec.Zero))
		Expect(p.Velocity()).To(Equal(vec.Zero))
		Expect(p.Speed()).To(BeZero())
		Expect(p.Theta()).To(BeZero())
		Expect(p.Phi()).To(BeZero())
	})

	Describe("velocity setters", func() {
		It("launches in the x-z plane with SetSpeedTheta", func() {
			p.SetSpeedTheta(10, math.Pi/6)

			v := p.Velocity()
			Expect(v.X).To(BeNumerically("~", 10*math.Cos(math.Pi/6), tol))
			Expect(v.Y).To(BeNumerically("~", 0, tol))
			Expect(v.Z).To(BeNumerically("~", 5, tol))
			Expect(p.Speed()).To(BeNumerically("~", 10, tol))
			Expect(p.Theta()).To(BeNumerically("~", math.Pi/6, tol))
			Expect(p.Phi()).To(BeZero())
		})

		It("reports angles from the velocity when theta points backwards", func() {
			p.SetSpeedTheta(10, 2.0)

			Expect(p.Velocity().X).To(BeNumerically("<", 0))
			Expect(p.Speed()).To(BeNumerically("~", 10, tol))
			Expect(p.Phi()).To(BeNumerically("~", math.Pi, tol))
			Expect(p.Theta()).To(BeNumerically("~", math.Pi-2.0, 1e-9))
		})

		It("builds a full 3D velocity with SetSpeedThetaPhi", func() {
			p.SetSpeedThetaPhi(10, 0.3, 0.7)

			v := p.Velocity()
			Expect(v.Mag()).To(BeNumerically("~", 10, 1e-9))
			Expect(v.Z).To(BeNumerically("~", 10*math.Sin(0.3), tol))
			Expect(p.Speed()).To(BeNumerically("~", 10, 1e-9))
			Expect(p.Theta()).To(BeNumerically("~", 0.3, 1e-9))
			Expect(p.Phi()).To(BeNumerically("~", 0.7, 1e-9))
		})

		It("derives speed and angles from components", func() {
			p.SetVelocityComponents(3, 4, 12)

			Expect(p.Speed()).To(BeNumerically("~", 13, tol))
			Expect(p.Theta()).To(BeNumerically("~", math.Atan(12.0/5), tol))
			Expect(p.Phi()).To(BeNumerically("~", math.Acos(3.0/5), tol))
		})

		It("derives from the new velocity, not the previous one", func() {
			p.SetVelocity(vec.New(1, 0, 0))
			p.SetVelocity(vec.New(0, 3, 4))

			Expect(p.Speed()).To(BeNumerically("~", 5, tol))
			Expect(p.Theta()).To(BeNumerically("~", math.Atan(4.0/3), tol))
			Expect(p.Phi()).To(BeNumerically("~", math.Pi/2, tol))
		})

		DescribeTable("vertical motion has a defined phi",
			func(vz, theta float64) {
				p.SetVelocityComponents(0, 0, vz)

				Expect(math.IsNaN(p.Phi())).To(BeFalse())
				Expect(p.Phi()).To(BeZero())
				Expect(p.Theta()).To(Equal(theta))
				Expect(p.Speed()).To(Equal(math.Abs(vz)))
			},
			Entry("straight up", 5.0, math.Pi/2),
			Entry("straight down", -5.0, -math.Pi/2),
			Entry("at rest", 0.0, 0.0),
		)
	})

	It("computes momentum and kinetic energy", func() {
		p.Mass = 2
		p.SetVelocityComponents(3, 4, 0)

		Expect(p.Momentum()).To(Equal(vec.New(6, 8, 0)))
		Expect(p.KineticEnergy()).To(BeNumerically("~", 25, tol))
	})

	It("exposes tunable parameters", func() {
		Expect(p.SetParam("mass", 0.145)).To(Succeed())
		Expect(p.SetParam("radius", 0.037)).To(Succeed())
		Expect(p.SetParam("drag", 0.3)).To(Succeed())
		Expect(p.SetParam("magnus", 1e-4)).To(Succeed())
		Expect(p.SetParam("colour", 1)).To(MatchError(ContainSubstring("unknown param")))

		Expect(p.GetParams()).To(Equal(map[string]float64{
			"mass": 0.145, "radius": 0.037, "drag": 0.3, "magnus": 1e-4,
		}))
	})
})
