package rag_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
	"github.com/halfmoonlabs/vinyasa/pkg/pose"
	"github.com/halfmoonlabs/vinyasa/pkg/rag"
	testutils "github.com/halfmoonlabs/vinyasa/pkg/utils/test"
	"github.com/halfmoonlabs/vinyasa/pkg/vector"
)

var _ = Describe("Retriever", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Search", func() {
		It("falls back to keyword search without a vector store", func() {
			r := rag.New(rag.Config{})

			entries := r.Search(ctx, "mountain", 5)
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Pose).To(Equal("mountain_pose"))
		})

		It("puts semantic hits before keyword hits and de-duplicates", func() {
			vectors := testutils.NewMockVectorDriver()
			vectors.Results = []vector.QueryResult{
				{Document: vector.Document{ID: "tree_pose", Pose: "tree_pose"}, Score: 0.9},
				{Document: vector.Document{ID: "mountain_pose", Pose: "mountain_pose"}, Score: 0.8},
			}

			r := rag.New(rag.Config{
				Vectors:  vectors,
				Embedder: testutils.NewMockEmbedder(),
			})

			entries := r.Search(ctx, "mountain", 5)
			Expect(len(entries)).To(BeNumerically(">=", 2))
			Expect(entries[0].Pose).To(Equal("tree_pose"))
			Expect(entries[1].Pose).To(Equal("mountain_pose"))

			// mountain_pose also keyword-matches but must not repeat.
			poses := make([]string, len(entries))
			for i, e := range entries {
				poses[i] = e.Pose
			}
			Expect(poses).To(HaveLen(len(unique(poses))))
		})

		It("skips semantic hits with no knowledge entry", func() {
			vectors := testutils.NewMockVectorDriver()
			vectors.Results = []vector.QueryResult{
				{Document: vector.Document{ID: "ghost_pose", Pose: "ghost_pose"}, Score: 0.9},
			}

			r := rag.New(rag.Config{
				Vectors:  vectors,
				Embedder: testutils.NewMockEmbedder(),
			})

			entries := r.Search(ctx, "mountain", 5)
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Pose).To(Equal("mountain_pose"))
		})

		It("degrades to keyword search when the vector store fails", func() {
			vectors := testutils.NewMockVectorDriver()
			vectors.FailQuery = errors.New("connection refused")

			r := rag.New(rag.Config{
				Vectors:  vectors,
				Embedder: testutils.NewMockEmbedder(),
			})

			entries := r.Search(ctx, "mountain", 5)
			Expect(entries).To(HaveLen(1))
		})

		It("returns nothing for a blank query", func() {
			r := rag.New(rag.Config{})
			Expect(r.Search(ctx, "   ", 5)).To(BeEmpty())
		})
	})

	Describe("ContextFor", func() {
		It("renders matched entries as markdown blocks", func() {
			r := rag.New(rag.Config{})

			out := r.ContextFor(ctx, "calms nervous system")
			Expect(out).To(ContainSubstring("**"))
			Expect(out).To(ContainSubstring("Benefits:"))
			Expect(out).To(ContainSubstring("\n\n"))
		})

		It("returns empty for no matches", func() {
			r := rag.New(rag.Config{})
			Expect(r.ContextFor(ctx, "zzqy")).To(Equal(""))
		})
	})

	Describe("EnrichPoses", func() {
		It("attaches knowledge where it exists and defaults where it does not", func() {
			r := rag.New(rag.Config{})

			candidates := []pose.Pose{
				{Name: "child_pose", Types: []pose.Type{pose.Restorative}},
				{Name: "unknown_pose", Types: []pose.Type{pose.Standing}},
			}

			enriched := r.EnrichPoses(candidates)
			Expect(enriched).To(HaveLen(2))

			Expect(enriched[0].Name).To(Equal("child_pose"))
			Expect(enriched[0].AlignmentCues).NotTo(BeEmpty())
			Expect(enriched[0].BreathingGuidance).To(Equal("Breathe deeply into your back body"))

			Expect(enriched[1].Name).To(Equal("unknown_pose"))
			Expect(enriched[1].AlignmentCues).To(BeEmpty())
			Expect(enriched[1].BreathingGuidance).To(Equal(rag.DefaultBreathing))
		})
	})

	Describe("SafetyNotesFor", func() {
		It("returns contraindications from the knowledge base", func() {
			r := rag.New(rag.Config{})

			notes := r.SafetyNotesFor("pigeon_pose", cycle.Follicular)
			Expect(notes.Contraindications).To(ContainElement("Knee injury"))
			Expect(notes.CycleNotes).To(BeEmpty())
		})

		It("warns about inversions during the menstrual phase", func() {
			r := rag.New(rag.Config{})

			notes := r.SafetyNotesFor("supported_inversion_prep", cycle.Menstrual)
			Expect(notes.CycleNotes).To(ContainSubstring("Avoid inversions"))
		})

		It("is empty but non-nil for unknown poses", func() {
			r := rag.New(rag.Config{})

			notes := r.SafetyNotesFor("no_such_pose", cycle.Luteal)
			Expect(notes.Contraindications).NotTo(BeNil())
			Expect(notes.Contraindications).To(BeEmpty())
		})
	})

	Describe("IndexEntries", func() {
		It("embeds and stores entries keyed by pose", func() {
			vectors := testutils.NewMockVectorDriver()
			r := rag.New(rag.Config{
				Vectors:  vectors,
				Embedder: testutils.NewMockEmbedder(),
			})

			err := r.IndexEntries(ctx, []knowledge.Entry{
				{Pose: "crow_pose", Benefits: []string{"Arm strength"}},
				{Pose: ""},
				{Pose: "eagle_pose"},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(vectors.Documents).To(HaveLen(2))
			Expect(vectors.Documents[0].ID).To(Equal("crow_pose"))
			Expect(vectors.Documents[0].Pose).To(Equal("crow_pose"))
			Expect(vectors.Documents[0].Embedding).NotTo(BeEmpty())
		})

		It("is a no-op without a vector store", func() {
			r := rag.New(rag.Config{})
			Expect(r.IndexEntries(ctx, []knowledge.Entry{{Pose: "crow_pose"}})).To(Succeed())
		})

		It("surfaces embedding failures", func() {
			embedder := testutils.NewMockEmbedder()
			embedder.FailOn = knowledge.Entry{Pose: "crow_pose"}.EmbeddingText()

			r := rag.New(rag.Config{
				Vectors:  testutils.NewMockVectorDriver(),
				Embedder: embedder,
			})

			err := r.IndexEntries(ctx, []knowledge.Entry{{Pose: "crow_pose"}})
			Expect(err).To(MatchError(ContainSubstring("crow_pose")))
		})
	})
})

func unique(items []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
