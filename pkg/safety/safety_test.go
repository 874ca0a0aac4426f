package safety_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/pose"
	"github.com/halfmoonlabs/vinyasa/pkg/safety"
)

var _ = Describe("AllowedTypes", func() {
	Context("menstrual phase", func() {
		It("permits only the restful set at normal energy", func() {
			got := safety.AllowedTypes(cycle.Menstrual, 3, 1)
			Expect(got).To(ConsistOf(
				pose.Restorative, pose.GentleStretch, pose.Breathing,
				pose.ForwardFold, pose.Seated, pose.Yin, pose.Somatic, pose.Mobility,
			))
			Expect(got).NotTo(ContainElement(pose.Inversion))
			Expect(got).NotTo(ContainElement(pose.Backbend))
		})

		It("adds hip openers when energy is low", func() {
			got := safety.AllowedTypes(cycle.Menstrual, 2, 1)
			Expect(got).To(ContainElement(pose.HipOpener))
		})
	})

	Context("follicular phase", func() {
		It("unlocks backbends and arm balances at energy 3+", func() {
			low := safety.AllowedTypes(cycle.Follicular, 3, 1)
			Expect(low).To(ContainElement(pose.Backbend))
			Expect(low).To(ContainElement(pose.ArmBalance))
		})

		It("withholds them below energy 3", func() {
			// Energy 2 also trips the low-energy strip, so arm balance
			// stays out either way.
			got := safety.AllowedTypes(cycle.Follicular, 2, 1)
			Expect(got).NotTo(ContainElement(pose.Backbend))
			Expect(got).NotTo(ContainElement(pose.ArmBalance))
		})
	})

	Context("ovulation phase", func() {
		It("unlocks inversions only at peak energy", func() {
			Expect(safety.AllowedTypes(cycle.Ovulation, 4, 1)).To(ContainElement(pose.Inversion))
			Expect(safety.AllowedTypes(cycle.Ovulation, 3, 1)).NotTo(ContainElement(pose.Inversion))
		})

		It("permits strong core work", func() {
			Expect(safety.AllowedTypes(cycle.Ovulation, 4, 1)).To(ContainElement(pose.StrongCore))
		})
	})

	Context("luteal phase", func() {
		It("adds standing work at energy 3+", func() {
			got := safety.AllowedTypes(cycle.Luteal, 3, 1)
			Expect(got).To(ContainElement(pose.Standing))
			Expect(got).To(ContainElement(pose.Balance))
			Expect(got).To(ContainElement(pose.SideBend))
		})

		It("keeps it grounded below energy 3", func() {
			got := safety.AllowedTypes(cycle.Luteal, 3, 1)
			low := safety.AllowedTypes(cycle.Luteal, 2, 1)
			Expect(got).To(ContainElement(pose.Standing))
			Expect(low).NotTo(ContainElement(pose.Standing))
		})
	})

	Context("pain overrides", func() {
		It("strips everything but the gentle set at pain 4+", func() {
			got := safety.AllowedTypes(cycle.Ovulation, 5, 4)
			for _, t := range got {
				Expect(t).To(BeElementOf(
					pose.Restorative, pose.GentleStretch, pose.Breathing,
					pose.Yin, pose.Somatic, pose.Mobility,
				))
			}
		})

		It("strips intense types at pain 3", func() {
			got := safety.AllowedTypes(cycle.Ovulation, 5, 3)
			Expect(got).NotTo(ContainElement(pose.Inversion))
			Expect(got).NotTo(ContainElement(pose.ArmBalance))
			Expect(got).NotTo(ContainElement(pose.StrongCore))
			Expect(got).NotTo(ContainElement(pose.Backbend))
			Expect(got).To(ContainElement(pose.Standing))
		})
	})

	Context("energy overrides", func() {
		It("collapses to restorative and breathing at energy 1", func() {
			Expect(safety.AllowedTypes(cycle.Ovulation, 1, 1)).To(ConsistOf(
				pose.Restorative, pose.Breathing,
			))
		})

		It("strips strenuous types at energy 2", func() {
			got := safety.AllowedTypes(cycle.Ovulation, 2, 1)
			Expect(got).NotTo(ContainElement(pose.Inversion))
			Expect(got).NotTo(ContainElement(pose.ArmBalance))
			Expect(got).NotTo(ContainElement(pose.StrongCore))
		})
	})

	It("returns types in canonical order", func() {
		got := safety.AllowedTypes(cycle.Follicular, 4, 1)
		rank := map[pose.Type]int{}
		for i, t := range pose.AllTypes {
			rank[t] = i
		}
		for i := 1; i < len(got); i++ {
			Expect(rank[got[i-1]]).To(BeNumerically("<", rank[got[i]]))
		}
	})
})

var _ = Describe("ForbiddenTypes", func() {
	It("is the exact complement of the allowed set", func() {
		allowed := safety.AllowedTypes(cycle.Luteal, 3, 2)
		forbidden := safety.ForbiddenTypes(cycle.Luteal, 3, 2)
		Expect(len(allowed) + len(forbidden)).To(Equal(len(pose.AllTypes)))
		for _, t := range forbidden {
			Expect(allowed).NotTo(ContainElement(t))
		}
	})

	It("forbids inversions during menstruation", func() {
		Expect(safety.ForbiddenTypes(cycle.Menstrual, 3, 1)).To(ContainElement(pose.Inversion))
	})
})

var _ = Describe("IntensityFor", func() {
	It("drops to low on pain 3 or more regardless of phase and energy", func() {
		Expect(safety.IntensityFor(cycle.Ovulation, 5, 3)).To(Equal(safety.Low))
		Expect(safety.IntensityFor(cycle.Follicular, 4, 4)).To(Equal(safety.Low))
	})

	It("drops to low on energy 2 or less", func() {
		Expect(safety.IntensityFor(cycle.Ovulation, 2, 1)).To(Equal(safety.Low))
		Expect(safety.IntensityFor(cycle.Follicular, 1, 1)).To(Equal(safety.Low))
	})

	It("keeps menstrual sessions low", func() {
		Expect(safety.IntensityFor(cycle.Menstrual, 5, 1)).To(Equal(safety.Low))
	})

	It("goes high only at ovulation with peak energy", func() {
		Expect(safety.IntensityFor(cycle.Ovulation, 4, 1)).To(Equal(safety.High))
		Expect(safety.IntensityFor(cycle.Ovulation, 3, 1)).To(Equal(safety.Moderate))
	})

	It("grades follicular and luteal as moderate at decent energy", func() {
		Expect(safety.IntensityFor(cycle.Follicular, 3, 1)).To(Equal(safety.Moderate))
		Expect(safety.IntensityFor(cycle.Luteal, 3, 1)).To(Equal(safety.Moderate))
	})
})
