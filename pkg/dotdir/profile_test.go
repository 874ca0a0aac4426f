package dotdir_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/dotdir"
)

var _ = Describe("dotdir.Manager profile", func() {
	var tmpDir string
	var m *dotdir.Manager

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "dotdir-test-*")
		Expect(err).NotTo(HaveOccurred())
		m = dotdir.NewManager()
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("LoadProfile", func() {
		It("returns nil when no profile file exists", func() {
			profile, err := m.LoadProfile(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile).To(BeNil())
		})

		It("loads a valid profile", func() {
			data := `{"user_id":"maya","last_period_date":"2025-06-01","cycle_length":28}`
			err := os.WriteFile(filepath.Join(tmpDir, "profile.json"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			profile, err := m.LoadProfile(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile).NotTo(BeNil())
			Expect(profile.UserID).To(Equal("maya"))
			Expect(profile.LastPeriodDate).To(Equal("2025-06-01"))
			Expect(profile.CycleLength).To(Equal(28))
		})

		It("returns error for invalid JSON", func() {
			err := os.WriteFile(filepath.Join(tmpDir, "profile.json"), []byte("not json"), 0o600)
			Expect(err).NotTo(HaveOccurred())

			profile, err := m.LoadProfile(tmpDir)
			Expect(err).To(HaveOccurred())
			Expect(profile).To(BeNil())
		})
	})

	Describe("SaveProfile", func() {
		It("persists the profile to disk", func() {
			profile := &dotdir.Profile{
				UserID:         "maya",
				LastPeriodDate: "2025-06-15",
				CycleLength:    30,
			}

			err := m.SaveProfile(profile, tmpDir)
			Expect(err).NotTo(HaveOccurred())

			info, err := os.Stat(filepath.Join(tmpDir, "profile.json"))
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))

			loaded, err := m.LoadProfile(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.LastPeriodDate).To(Equal("2025-06-15"))
			Expect(loaded.CycleLength).To(Equal(30))
		})

		It("returns error for nil profile", func() {
			err := m.SaveProfile(nil, tmpDir)
			Expect(err).To(HaveOccurred())
		})

		It("overwrites an existing profile", func() {
			first := &dotdir.Profile{LastPeriodDate: "2025-05-01", CycleLength: 28}
			second := &dotdir.Profile{LastPeriodDate: "2025-06-01", CycleLength: 27}

			err := m.SaveProfile(first, tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = m.SaveProfile(second, tmpDir)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := m.LoadProfile(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.LastPeriodDate).To(Equal("2025-06-01"))
			Expect(loaded.CycleLength).To(Equal(27))
		})
	})

	Describe("ClearProfile", func() {
		It("removes the profile file", func() {
			profile := &dotdir.Profile{LastPeriodDate: "2025-06-01", CycleLength: 28}
			err := m.SaveProfile(profile, tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = m.ClearProfile(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := m.LoadProfile(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(BeNil())
		})

		It("succeeds when no profile file exists", func() {
			err := m.ClearProfile(tmpDir)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("round-trip", func() {
		It("saves and loads the profile correctly", func() {
			profile := &dotdir.Profile{
				UserID:         "user-7",
				LastPeriodDate: "2025-06-20",
				CycleLength:    26,
			}

			err := m.SaveProfile(profile, tmpDir)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := m.LoadProfile(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(profile))
		})
	})
})
