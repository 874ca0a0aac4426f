package knowledge_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
)

var _ = Describe("Base", func() {
	Describe("New", func() {
		It("serves the builtin entries when no file is configured", func() {
			kb := knowledge.New(knowledge.Config{})

			Expect(kb.Len()).To(BeNumerically(">=", 13))

			entry, ok := kb.ByPose("child_pose")
			Expect(ok).To(BeTrue())
			Expect(entry.Alignment).NotTo(BeEmpty())
			Expect(entry.Benefits).To(ContainElement("Calms the nervous system"))
		})

		It("merges file entries over builtins by pose name", func() {
			tmpDir, err := os.MkdirTemp("", "knowledge-test-*")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, tmpDir)

			path := filepath.Join(tmpDir, "knowledge.json")
			content := `[
				{"pose": "child_pose", "benefits": ["From the book"], "breathing": "Book breathing"},
				{"pose": "crow_pose", "benefits": ["Arm strength"], "breathing": "Exhale to lift"}
			]`
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

			kb := knowledge.New(knowledge.Config{Path: path})

			entry, ok := kb.ByPose("child_pose")
			Expect(ok).To(BeTrue())
			Expect(entry.Benefits).To(Equal([]string{"From the book"}))

			entry, ok = kb.ByPose("crow_pose")
			Expect(ok).To(BeTrue())
			Expect(entry.Breathing).To(Equal("Exhale to lift"))

			// Builtins not named in the file stay intact.
			entry, ok = kb.ByPose("downward_dog")
			Expect(ok).To(BeTrue())
			Expect(entry.Benefits).To(ContainElement("Calms brain"))
		})

		It("keeps the builtins when the file is malformed", func() {
			tmpDir, err := os.MkdirTemp("", "knowledge-test-*")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, tmpDir)

			path := filepath.Join(tmpDir, "knowledge.json")
			Expect(os.WriteFile(path, []byte("not json"), 0o644)).To(Succeed())

			kb := knowledge.New(knowledge.Config{Path: path})
			Expect(kb.Len()).To(BeNumerically(">=", 13))
		})

		It("treats a missing file as builtins only", func() {
			kb := knowledge.New(knowledge.Config{Path: "/nonexistent/knowledge.json"})

			_, ok := kb.ByPose("mountain_pose")
			Expect(ok).To(BeTrue())
		})
	})

	Describe("ByPose", func() {
		It("reports missing poses", func() {
			kb := knowledge.New(knowledge.Config{})
			_, ok := kb.ByPose("no_such_pose")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("All", func() {
		It("returns a copy", func() {
			kb := knowledge.New(knowledge.Config{})

			all := kb.All()
			all[0].Pose = "mutated"

			fresh := kb.All()
			Expect(fresh[0].Pose).NotTo(Equal("mutated"))
		})
	})

	Describe("Reload", func() {
		It("picks up new file content", func() {
			tmpDir, err := os.MkdirTemp("", "knowledge-test-*")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, tmpDir)

			path := filepath.Join(tmpDir, "knowledge.json")
			kb := knowledge.New(knowledge.Config{Path: path})
			before := kb.Len()

			content := `[{"pose": "crow_pose", "benefits": ["Arm strength"]}]`
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
			Expect(kb.Reload()).To(Succeed())

			Expect(kb.Len()).To(Equal(before + 1))
			_, ok := kb.ByPose("crow_pose")
			Expect(ok).To(BeTrue())
		})
	})

	Describe("Watch", func() {
		It("hot-reloads when the file changes on disk", func() {
			tmpDir, err := os.MkdirTemp("", "knowledge-test-*")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, tmpDir)

			path := filepath.Join(tmpDir, "knowledge.json")
			kb := knowledge.New(knowledge.Config{Path: path})
			before := kb.Len()

			ctx, cancel := context.WithCancel(context.Background())
			DeferCleanup(cancel)

			done := make(chan error, 1)
			go func() { done <- kb.Watch(ctx) }()

			content := `[{"pose": "crow_pose", "benefits": ["Arm strength"]}]`
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

			Eventually(kb.Len, "5s", "50ms").Should(Equal(before + 1))

			cancel()
			Eventually(done).Should(Receive(MatchError(context.Canceled)))
		})

		It("waits for cancellation when no file is configured", func() {
			kb := knowledge.New(knowledge.Config{})

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- kb.Watch(ctx) }()

			cancel()
			Eventually(done).Should(Receive(MatchError(context.Canceled)))
		})
	})

	Describe("Search", func() {
		var kb *knowledge.Base

		BeforeEach(func() {
			kb = knowledge.New(knowledge.Config{})
		})

		It("ranks entries with more query-word hits first", func() {
			results := kb.Search("calms nervous system", 5)
			Expect(results).NotTo(BeEmpty())

			// Every result mentions calming; the best ones hit all words.
			for _, e := range results {
				Expect(e.Pose).NotTo(BeEmpty())
			}
			Expect(results[0].Benefits).To(ContainElement(ContainSubstring("nervous system")))
		})

		It("matches pose names with underscores replaced", func() {
			results := kb.Search("mountain", 3)
			Expect(results).To(HaveLen(1))
			Expect(results[0].Pose).To(Equal("mountain_pose"))
		})

		It("caps results at the limit", func() {
			results := kb.Search("breathe deeply", 2)
			Expect(len(results)).To(BeNumerically("<=", 2))
		})

		It("returns nil for an empty query", func() {
			Expect(kb.Search("", 5)).To(BeNil())
			Expect(kb.Search("   ", 5)).To(BeNil())
		})

		It("ignores single-character words", func() {
			Expect(kb.Search("a i x", 5)).To(BeNil())
		})
	})
})

var _ = Describe("Entry", func() {
	entry := knowledge.Entry{
		Pose:              "child_pose",
		Alignment:         []string{"one", "two", "three", "four"},
		Contraindications: []string{"knee injury", "ankle injury", "pregnancy"},
		Benefits:          []string{"b1", "b2", "b3", "b4"},
		Breathing:         "Breathe into your back body",
		Modifications:     "Use a pillow",
	}

	Describe("Markdown", func() {
		It("renders a capped context block", func() {
			md := entry.Markdown()

			Expect(md).To(HavePrefix("**child_pose**"))
			Expect(md).To(ContainSubstring("Benefits: b1; b2; b3"))
			Expect(md).NotTo(ContainSubstring("b4"))
			Expect(md).To(ContainSubstring("Alignment: one; two; three"))
			Expect(md).NotTo(ContainSubstring("four"))
			Expect(md).To(ContainSubstring("Breathing: Breathe into your back body"))
			Expect(md).To(ContainSubstring("Avoid if: knee injury; ankle injury"))
			Expect(md).NotTo(ContainSubstring("pregnancy"))
		})

		It("omits empty sections", func() {
			md := knowledge.Entry{Pose: "breath_awareness"}.Markdown()
			Expect(md).To(Equal("**breath_awareness**"))
		})
	})

	Describe("EmbeddingText", func() {
		It("uses the human-readable pose name", func() {
			text := entry.EmbeddingText()
			Expect(text).To(HavePrefix("child pose"))
			Expect(text).To(ContainSubstring("Benefits: b1; b2; b3; b4"))
			Expect(text).To(ContainSubstring("Modifications: Use a pillow"))
		})
	})
})

var _ = Describe("Load and Save", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "knowledge-io-test-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, tmpDir)
	})

	Describe("Load", func() {
		It("reads a bare array", func() {
			path := filepath.Join(tmpDir, "k.json")
			Expect(os.WriteFile(path, []byte(`[{"pose":"crow_pose"}]`), 0o644)).To(Succeed())

			entries, err := knowledge.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Pose).To(Equal("crow_pose"))
		})

		It("reads an entries envelope", func() {
			path := filepath.Join(tmpDir, "k.json")
			Expect(os.WriteFile(path, []byte(`{"entries":[{"pose":"crow_pose"}]}`), 0o644)).To(Succeed())

			entries, err := knowledge.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})

		It("returns nothing for a missing file", func() {
			entries, err := knowledge.Load(filepath.Join(tmpDir, "absent.json"))
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeNil())
		})

		It("errors on malformed JSON", func() {
			path := filepath.Join(tmpDir, "k.json")
			Expect(os.WriteFile(path, []byte("nope"), 0o644)).To(Succeed())

			_, err := knowledge.Load(path)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Save", func() {
		It("writes entries and creates parent directories", func() {
			path := filepath.Join(tmpDir, "nested", "k.json")

			n, err := knowledge.Save([]knowledge.Entry{{Pose: "crow_pose"}}, path, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))

			entries, err := knowledge.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})

		It("merges with an existing file by pose name", func() {
			path := filepath.Join(tmpDir, "k.json")
			_, err := knowledge.Save([]knowledge.Entry{
				{Pose: "crow_pose", Breathing: "old"},
				{Pose: "child_pose", Breathing: "keep"},
			}, path, false)
			Expect(err).NotTo(HaveOccurred())

			n, err := knowledge.Save([]knowledge.Entry{
				{Pose: "crow_pose", Breathing: "new"},
				{Pose: "eagle_pose", Breathing: "add"},
			}, path, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(3))

			entries, err := knowledge.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
			Expect(entries[0]).To(Equal(knowledge.Entry{Pose: "crow_pose", Breathing: "new"}))
			Expect(entries[1].Pose).To(Equal("child_pose"))
			Expect(entries[2].Pose).To(Equal("eagle_pose"))
		})

		It("overwrites without merge", func() {
			path := filepath.Join(tmpDir, "k.json")
			_, err := knowledge.Save([]knowledge.Entry{{Pose: "crow_pose"}}, path, false)
			Expect(err).NotTo(HaveOccurred())

			n, err := knowledge.Save([]knowledge.Entry{{Pose: "eagle_pose"}}, path, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))

			entries, err := knowledge.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Pose).To(Equal("eagle_pose"))
		})
	})

	Describe("Merge", func() {
		It("drops entries without a pose name", func() {
			merged := knowledge.Merge(
				[]knowledge.Entry{{Pose: "crow_pose"}, {Pose: ""}},
				[]knowledge.Entry{{Pose: ""}, {Pose: "eagle_pose"}},
			)
			Expect(merged).To(HaveLen(2))
			Expect(merged[0].Pose).To(Equal("crow_pose"))
			Expect(merged[1].Pose).To(Equal("eagle_pose"))
		})
	})
})
