package flow_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/engine"
	"github.com/halfmoonlabs/vinyasa/pkg/flow"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
	"github.com/halfmoonlabs/vinyasa/pkg/pose"
	"github.com/halfmoonlabs/vinyasa/pkg/rag"
	"github.com/halfmoonlabs/vinyasa/pkg/safety"
	testutils "github.com/halfmoonlabs/vinyasa/pkg/utils/test"
)

func enrichedPose(name string, difficulty string, types ...pose.Type) rag.EnrichedPose {
	return rag.EnrichedPose{
		Pose: pose.Pose{
			Name:         name,
			Types:        types,
			Difficulty:   difficulty,
			DurationHint: "1 min",
		},
	}
}

var _ = Describe("Sequencer", func() {
	var (
		ctx       context.Context
		state     engine.BodyState
		structure flow.Structure
		enriched  []rag.EnrichedPose
	)

	BeforeEach(func() {
		ctx = context.Background()
		state = engine.BodyState{
			Phase:           cycle.Menstrual,
			Intensity:       safety.Low,
			DurationMinutes: 30,
		}
		structure = flow.Structure{
			Sections: []flow.Section{
				{Section: "breathing", Minutes: 3},
				{Section: "gentle_flow", Minutes: 22},
				{Section: "cool_down", Minutes: 5},
			},
			TotalMinutes: 30,
		}
		enriched = []rag.EnrichedPose{
			enrichedPose("cat_cow", pose.Beginner, pose.GentleStretch),
			enrichedPose("child_pose", pose.Beginner, pose.Restorative, pose.ForwardFold),
			enrichedPose("supine_twist", pose.Beginner, pose.GentleStretch, pose.Twist),
			enrichedPose("crow_pose", pose.Advanced, pose.ArmBalance),
		}
	})

	Context("without a model", func() {
		It("fills every planned section", func() {
			seq := flow.NewSequencer(nil, logger.Nop())
			sequence := seq.Sequence(ctx, structure, state, enriched)

			Expect(sequence.Sections).To(HaveLen(3))
			Expect(sequence.Sections[0].Section).To(Equal("breathing"))
			Expect(sequence.Sections[0].Poses).To(HaveLen(1))
			Expect(sequence.Sections[0].Poses[0].Pose).To(Equal("breath_awareness"))
		})

		It("opens the main section with a gentle stretch warm-up", func() {
			seq := flow.NewSequencer(nil, logger.Nop())
			sequence := seq.Sequence(ctx, structure, state, enriched)

			main := sequence.Sections[1]
			Expect(main.Poses).NotTo(BeEmpty())
			Expect(main.Poses[0].Pose).To(Equal("cat_cow"))
			Expect(main.Poses[0].Reps).To(Equal(6))
		})

		It("excludes advanced poses during menstruation", func() {
			seq := flow.NewSequencer(nil, logger.Nop())
			sequence := seq.Sequence(ctx, structure, state, enriched)

			for _, section := range sequence.Sections {
				for _, entry := range section.Poses {
					Expect(entry.Pose).NotTo(Equal("crow_pose"))
				}
			}
		})

		It("ends with child's pose when nothing restorative survives the filter", func() {
			seq := flow.NewSequencer(nil, logger.Nop())
			state.Phase = cycle.Luteal
			only := []rag.EnrichedPose{enrichedPose("warrior_ii", pose.Beginner, pose.Standing)}

			sequence := seq.Sequence(ctx, structure, state, only)
			cool := sequence.Sections[2]
			Expect(cool.Poses).To(HaveLen(1))
			Expect(cool.Poses[0].Pose).To(Equal("child_pose"))
		})

		It("carries the planned total minutes", func() {
			seq := flow.NewSequencer(nil, logger.Nop())
			sequence := seq.Sequence(ctx, structure, state, enriched)
			Expect(sequence.TotalEstimatedMinutes).To(Equal(30))
		})
	})

	Context("with a model", func() {
		It("uses the model's sequence when it parses", func() {
			client := testutils.NewMockLLM(`{"sequence":[{"section":"breathing","poses":[{"pose":"breath_awareness","duration":"3 min"}]}],"total_estimated_minutes":30}`)
			seq := flow.NewSequencer(client, logger.Nop())

			sequence := seq.Sequence(ctx, structure, state, enriched)
			Expect(sequence.Sections).To(HaveLen(1))
		})

		It("falls back when the model returns prose", func() {
			client := testutils.NewMockLLM("start on your back")
			seq := flow.NewSequencer(client, logger.Nop())

			sequence := seq.Sequence(ctx, structure, state, enriched)
			Expect(sequence.Sections).To(HaveLen(3))
		})
	})
})
