package flow_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/engine"
	"github.com/halfmoonlabs/vinyasa/pkg/flow"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
	testutils "github.com/halfmoonlabs/vinyasa/pkg/utils/test"
)

var _ = Describe("CueWriter", func() {
	var (
		ctx      context.Context
		state    engine.BodyState
		sequence flow.Sequence
	)

	BeforeEach(func() {
		ctx = context.Background()
		state = engine.BodyState{Phase: cycle.Menstrual, Energy: 2}
		sequence = flow.Sequence{
			Sections: []flow.SequenceSection{
				{Section: "breathing", Poses: []flow.PoseEntry{{Pose: "breath_awareness", Duration: "3 min"}}},
				{Section: "gentle_flow", Poses: []flow.PoseEntry{
					{Pose: "child_pose", Duration: "2 min"},
					{Pose: "mystery_pose", Duration: "1 min"},
				}},
			},
		}
	})

	Context("without a model", func() {
		It("writes one cue per pose in sequence order", func() {
			writer := flow.NewCueWriter(nil, nil, logger.Nop())
			cues := writer.Cues(ctx, sequence, state)

			Expect(cues.Cues).To(HaveLen(3))
			Expect(cues.Cues[0].Pose).To(Equal("breath_awareness"))
			Expect(cues.Cues[1].Pose).To(Equal("child_pose"))
			Expect(cues.Cues[0].Section).To(Equal("breathing"))
		})

		It("draws alignment and breathing from the knowledge base", func() {
			writer := flow.NewCueWriter(nil, nil, logger.Nop())
			cues := writer.Cues(ctx, sequence, state)

			childCue := cues.Cues[1]
			Expect(childCue.AlignmentCues).NotTo(BeEmpty())
			Expect(childCue.Breathing).NotTo(BeEmpty())
		})

		It("gives unknown poses a generic cue", func() {
			writer := flow.NewCueWriter(nil, nil, logger.Nop())
			cues := writer.Cues(ctx, sequence, state)

			unknown := cues.Cues[2]
			Expect(unknown.AlignmentCues).To(ContainElement("Listen to your body"))
			Expect(unknown.Encouragement).To(ContainSubstring("mystery_pose"))
		})

		It("rotates encouragements deterministically", func() {
			writer := flow.NewCueWriter(nil, nil, logger.Nop())

			first := writer.Cues(ctx, sequence, state)
			second := writer.Cues(ctx, sequence, state)
			Expect(first).To(Equal(second))
		})
	})

	Context("with a model", func() {
		It("uses the model's cues when they parse", func() {
			client := testutils.NewMockLLM(`{"cues":[{"pose":"child_pose","section":"gentle_flow","breathing":"slow exhale","encouragement":"rest here"}]}`)
			writer := flow.NewCueWriter(client, nil, logger.Nop())

			cues := writer.Cues(ctx, sequence, state)
			Expect(cues.Cues).To(HaveLen(1))
			Expect(cues.Cues[0].Breathing).To(Equal("slow exhale"))
		})

		It("falls back when the model returns no cues", func() {
			client := testutils.NewMockLLM(`{"cues":[]}`)
			writer := flow.NewCueWriter(client, nil, logger.Nop())

			cues := writer.Cues(ctx, sequence, state)
			Expect(cues.Cues).To(HaveLen(3))
		})
	})
})
