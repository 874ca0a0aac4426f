package cycle_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
)

var _ = Describe("Locate", func() {
	// Fixed reference date so day arithmetic is stable.
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	It("returns menstrual for day 0", func() {
		phase, day, err := cycle.Locate("2026-02-10", 28, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(0))
		Expect(phase).To(Equal(cycle.Menstrual))
	})

	It("returns menstrual through day 5", func() {
		phase, day, err := cycle.Locate("2026-02-05", 28, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(5))
		Expect(phase).To(Equal(cycle.Menstrual))
	})

	It("returns follicular for days 6 through 13", func() {
		phase, day, err := cycle.Locate("2026-02-04", 28, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(6))
		Expect(phase).To(Equal(cycle.Follicular))

		phase, day, err = cycle.Locate("2026-01-28", 28, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(13))
		Expect(phase).To(Equal(cycle.Follicular))
	})

	It("returns ovulation for days 14 through 16", func() {
		phase, day, err := cycle.Locate("2026-01-27", 28, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(14))
		Expect(phase).To(Equal(cycle.Ovulation))

		phase, day, err = cycle.Locate("2026-01-25", 28, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(16))
		Expect(phase).To(Equal(cycle.Ovulation))
	})

	It("returns luteal for day 17 onward", func() {
		phase, day, err := cycle.Locate("2026-01-24", 28, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(17))
		Expect(phase).To(Equal(cycle.Luteal))
	})

	It("normalizes stale period dates into the current cycle", func() {
		// 56 days ago is exactly two 28-day cycles: day 0 again.
		phase, day, err := cycle.Locate("2025-12-16", 28, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(0))
		Expect(phase).To(Equal(cycle.Menstrual))
	})

	It("respects a custom cycle length", func() {
		phase, day, err := cycle.Locate("2026-01-21", 21, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(20))
		Expect(phase).To(Equal(cycle.Luteal))
	})

	It("falls back to the default length when cycle length is zero", func() {
		_, day, err := cycle.Locate("2026-01-13", 0, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(0))
	})

	It("handles a future period date by wrapping backward", func() {
		phase, day, err := cycle.Locate("2026-02-12", 28, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(day).To(Equal(27))
		Expect(phase).To(Equal(cycle.Luteal))
	})

	It("rejects an empty date", func() {
		_, _, err := cycle.Locate("", 28, now)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unparseable date", func() {
		_, _, err := cycle.Locate("02/10/2026", 28, now)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("parsing last period date"))
	})
})

var _ = Describe("GuidanceFor", func() {
	It("returns phase-specific guidance", func() {
		Expect(cycle.GuidanceFor(cycle.Menstrual).Focus).To(Equal("restorative"))
		Expect(cycle.GuidanceFor(cycle.Ovulation).Energy).To(Equal("peak"))
	})

	It("falls back to the most conservative guidance for unknown phases", func() {
		Expect(cycle.GuidanceFor(cycle.Phase("unknown"))).To(Equal(cycle.GuidanceFor(cycle.Menstrual)))
	})
})

var _ = Describe("Phase", func() {
	It("validates known phases", func() {
		Expect(cycle.Menstrual.Valid()).To(BeTrue())
		Expect(cycle.Luteal.Valid()).To(BeTrue())
		Expect(cycle.Phase("waxing").Valid()).To(BeFalse())
	})
})
