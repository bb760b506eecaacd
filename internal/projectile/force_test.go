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

func atmosphereStandard() atmosphere.Atmosphere {
	return atmosphere.Standard()
}

var _ = Describe("Force model", func() {
	var (
		p   *projectile.Projectile
		atm atmosphere.Atmosphere
	)

	BeforeEach(func() {
		p = projectile.New()
		p.Mass = 2
		p.Radius = 0.1
		p.DragCoefficient = 0.5
		atm = atmosphere.Standard()
	})

	It("evaluates the drag magnitude", func() {
		area := 4 * math.Pi * 0.01
		expected := 0.5 * atm.AirDensity() * area * 100 / 2

		Expect(p.CrossSection()).To(BeNumerically("~", area, tol))
		Expect(p.AirResistance(atm, 10)).To(BeNumerically("~", expected, 1e-9))
		Expect(p.AirResistance(atm, -10)).To(BeNumerically("~", expected, 1e-9))
	})

	It("leaves only gravity without drag or spin", func() {
		p.DragCoefficient = 0
		p.SetVelocityComponents(10, -3, 20)

		a := p.Acceleration(atm)
		Expect(a.X).To(BeNumerically("~", 0, tol))
		Expect(a.Y).To(BeNumerically("~", 0, tol))
		Expect(a.Z).To(BeNumerically("~", -units.G, tol))
	})

	It("applies gravity as the weight m·g whatever the mass", func() {
		p.DragCoefficient = 0
		p.SetVelocityComponents(0, 0, 0)

		for _, m := range []float64{0.01, 1, 250} {
			p.Mass = m
			Expect(p.Force(atm).Z).To(BeNumerically("~", -m*units.G, 1e-9))
			Expect(p.Acceleration(atm).Z).To(BeNumerically("~", -units.G, tol))
		}
	})

	It("applies the Magnus force as spin cross velocity", func() {
		p.DragCoefficient = 0
		p.MagnusCoefficient = 0.5
		p.Spin = vec.New(0, 0, 1)
		p.SetVelocityComponents(1, 0, 0)

		Expect(p.Magnus()).To(Equal(vec.New(0, 0.5, 0)))
		f := p.Force(atm)
		Expect(f.Y).To(BeNumerically("~", 0.5, tol))
		Expect(f.Z).To(BeNumerically("~", -2*units.G, tol))
	})

	It("adds the wind to the relative velocity", func() {
		windy := atmosphere.New(atm.Temperature(), 0, 0, vec.New(5, 0, 0))

		drag := p.Drag(windy)
		Expect(drag.X).To(BeNumerically("~", p.AirResistance(windy, 5), tol))
		Expect(drag.Y).To(BeZero())
		Expect(drag.Z).To(BeZero())
	})

	Describe("drag models", func() {
		It("agree for motion along a positive axis", func() {
			p.SetVelocityComponents(10, 0, 0)
			perAxis := p.Drag(atm)

			p.DragModel = projectile.DragVector
			vector := p.Drag(atm)

			Expect(vector.X).To(BeNumerically("~", perAxis.X, 1e-9))
			Expect(vector.Y).To(BeNumerically("~", perAxis.Y, tol))
			Expect(vector.Z).To(BeNumerically("~", perAxis.Z, tol))
		})

		It("differ when the motion is along a negative axis", func() {
			p.SetVelocityComponents(-10, 0, 0)

			Expect(p.Drag(atm).X).To(BeNumerically(">", 0))

			p.DragModel = projectile.DragVector
			Expect(p.Drag(atm).X).To(BeNumerically("<", 0))
		})

		It("vector drag opposes the relative velocity with the full magnitude", func() {
			p.DragModel = projectile.DragVector
			p.SetVelocityComponents(3, 4, 0)

			drag := p.Drag(atm)
			Expect(drag.Mag()).To(BeNumerically("~", p.AirResistance(atm, 5), 1e-9))
			Expect(drag.Normalize().Dot(p.Velocity().Normalize())).To(BeNumerically("~", 1, 1e-9))
		})

		It("vector drag vanishes at rest", func() {
			p.DragModel = projectile.DragVector
			Expect(p.Drag(atm)).To(Equal(vec.Zero))
		})
	})

	DescribeTable("parsing drag models",
		func(in string, want projectile.DragModel, ok bool) {
			got, err := projectile.ParseDragModel(in)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
			Expect(got.String()).NotTo(BeEmpty())
		},
		Entry("default", "", projectile.DragPerAxis, true),
		Entry("per-axis", "per-axis", projectile.DragPerAxis, true),
		Entry("vector", "Vector", projectile.DragVector, true),
		Entry("unknown", "quadratic", projectile.DragPerAxis, false),
	)
})
