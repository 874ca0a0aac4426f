package engine_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/engine"
	"github.com/halfmoonlabs/vinyasa/pkg/pose"
	"github.com/halfmoonlabs/vinyasa/pkg/safety"
)

var _ = Describe("Derive", func() {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	It("derives a complete body state", func() {
		state, err := engine.Derive(engine.Input{
			LastPeriodDate:  "2026-02-08",
			CycleLength:     28,
			Energy:          3,
			Pain:            1,
			DurationMinutes: 30,
		}, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(state.Phase).To(Equal(cycle.Menstrual))
		Expect(state.DayInCycle).To(Equal(2))
		Expect(state.Intensity).To(Equal(safety.Low))
		Expect(state.AllowedTypes).To(ContainElement(pose.Restorative))
		Expect(state.ForbiddenTypes).To(ContainElement(pose.Inversion))
		Expect(state.DurationMinutes).To(Equal(30))
	})

	It("applies defaults for unset fields", func() {
		state, err := engine.Derive(engine.Input{LastPeriodDate: "2026-02-08"}, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(state.Energy).To(Equal(engine.DefaultEnergy))
		Expect(state.Pain).To(Equal(engine.DefaultPain))
		Expect(state.DurationMinutes).To(Equal(engine.DefaultDurationMinutes))
		Expect(state.CycleLength).To(Equal(cycle.DefaultCycleLength))
	})

	It("fails without a last period date", func() {
		_, err := engine.Derive(engine.Input{}, now)
		Expect(err).To(HaveOccurred())
	})

	Context("training focus", func() {
		It("narrows allowed types to the focus intersection", func() {
			// Day 14 at energy 4 is ovulation: nearly everything allowed.
			state, err := engine.Derive(engine.Input{
				LastPeriodDate: "2026-01-27",
				Energy:         4,
				TrainingFocus:  []string{"backbend", "twist"},
			}, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.Phase).To(Equal(cycle.Ovulation))
			Expect(state.AllowedTypes).To(ConsistOf(pose.Backbend, pose.Twist))
		})

		It("ignores a focus the safety rules fully exclude", func() {
			// Inversions are forbidden during menstruation; focus drops out.
			state, err := engine.Derive(engine.Input{
				LastPeriodDate: "2026-02-08",
				Energy:         3,
				TrainingFocus:  []string{"inversion"},
			}, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.AllowedTypes).NotTo(BeEmpty())
			Expect(state.AllowedTypes).NotTo(ContainElement(pose.Inversion))
		})

		It("keeps the forbidden list independent of focus", func() {
			state, err := engine.Derive(engine.Input{
				LastPeriodDate: "2026-01-27",
				Energy:         4,
				TrainingFocus:  []string{"backbend"},
			}, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.ForbiddenTypes).NotTo(ContainElement(pose.Standing))
		})
	})
})

var _ = Describe("FocusTypes", func() {
	It("resolves direct pose type names", func() {
		Expect(engine.FocusTypes([]string{"backbend", "twist"})).To(ConsistOf(pose.Backbend, pose.Twist))
	})

	It("expands focus keywords into type sets", func() {
		got := engine.FocusTypes([]string{"relaxation"})
		Expect(got).To(ConsistOf(pose.Restorative, pose.Breathing, pose.Yin))
	})

	It("mixes keywords and type names, de-duplicated", func() {
		got := engine.FocusTypes([]string{"core", "strength"})
		Expect(got).To(ConsistOf(pose.Standing, pose.StrongCore, pose.ArmBalance))
	})

	It("drops unknown strings", func() {
		Expect(engine.FocusTypes([]string{"cardio", ""})).To(BeEmpty())
	})

	It("is case and whitespace tolerant", func() {
		Expect(engine.FocusTypes([]string{" Backbend "})).To(ConsistOf(pose.Backbend))
	})

	It("returns nil for no input", func() {
		Expect(engine.FocusTypes(nil)).To(BeNil())
	})
})
