package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/halfmoonlabs/vinyasa/pkg/engine"
	"github.com/halfmoonlabs/vinyasa/pkg/eventstream"
	"github.com/halfmoonlabs/vinyasa/pkg/llm"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
	"github.com/halfmoonlabs/vinyasa/pkg/pose"
	"github.com/halfmoonlabs/vinyasa/pkg/rag"
	"github.com/halfmoonlabs/vinyasa/pkg/safety"
	"github.com/halfmoonlabs/vinyasa/pkg/storage"
	"github.com/halfmoonlabs/vinyasa/pkg/worker"
)

// eventSourceService names this service in published session events.
const eventSourceService = "vinyasa"

// ServiceConfig wires a flow Service. Every dependency is optional:
// with nothing configured the service still produces rule-based plans,
// it just doesn't persist, publish, or enrich them semantically.
type ServiceConfig struct {
	// LLM generates structures, sequences and cues. Nil means the
	// deterministic fallbacks run for every stage.
	LLM llm.Client

	// Retriever enriches pose candidates with knowledge. Nil gets a
	// keyword-only retriever over the builtin knowledge.
	Retriever *rag.Retriever

	// Store persists generated sessions.
	Store storage.Driver

	// Publisher emits session-planned events.
	Publisher eventstream.Publisher

	// Pool, when set, moves persistence and publishing off the request
	// path. Without it the service saves and publishes inline.
	Pool *worker.Pool

	Logger *slog.Logger

	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

// Service orchestrates the full pipeline: derive body state, filter the
// catalog, enrich with knowledge, then plan, sequence, and cue.
type Service struct {
	retriever *rag.Retriever
	store     storage.Driver
	publisher eventstream.Publisher
	pool      *worker.Pool
	logger    *slog.Logger
	now       func() time.Time
	modelName string

	planner   *Planner
	sequencer *Sequencer
	cueWriter *CueWriter
}

// NewService builds a Service from cfg.
func NewService(cfg ServiceConfig) *Service {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	retriever := cfg.Retriever
	if retriever == nil {
		retriever = rag.New(rag.Config{Logger: log})
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	modelName := ""
	if cfg.LLM != nil {
		modelName = cfg.LLM.Name()
	}

	return &Service{
		retriever: retriever,
		store:     cfg.Store,
		publisher: cfg.Publisher,
		pool:      cfg.Pool,
		logger:    log,
		now:       now,
		modelName: modelName,
		planner:   NewPlanner(cfg.LLM, log),
		sequencer: NewSequencer(cfg.LLM, log),
		cueWriter: NewCueWriter(cfg.LLM, retriever.Base(), log),
	}
}

// BodyState derives the body state for a request without generating a
// plan, for callers that only need the cycle math.
func (s *Service) BodyState(req Request) (engine.BodyState, error) {
	state, err := engine.Derive(engine.Input{
		LastPeriodDate:  req.LastPeriodDate,
		CycleLength:     req.CycleLength,
		Energy:          req.Energy,
		Pain:            req.Pain,
		DurationMinutes: req.DurationMinutes,
		TrainingFocus:   req.TrainingFocus,
	}, s.now())
	if err != nil {
		return engine.BodyState{}, fmt.Errorf("deriving body state: %w", err)
	}
	return state, nil
}

// Generate produces a complete plan for the request and hands the
// resulting session to storage and the event stream. The only error
// path is body-state derivation (an unparseable period date); every
// downstream stage degrades instead of failing.
func (s *Service) Generate(ctx context.Context, req Request) (*Plan, error) {
	state, err := s.BodyState(req)
	if err != nil {
		return nil, err
	}

	candidates := pose.FilterByTypes(pose.Catalog(), state.AllowedTypes)
	enriched := s.retriever.EnrichPoses(candidates)

	structure := s.planner.Structure(ctx, state)
	sequence := s.sequencer.Sequence(ctx, structure, state, enriched)
	cues := s.cueWriter.Cues(ctx, sequence, state)

	plan := &Plan{
		BodyState: state,
		Structure: structure,
		Sequence:  sequence,
		Cues:      cues,
		SessionID: uuid.NewString(),
	}

	s.logger.Info("flow generated",
		"session_id", plan.SessionID,
		"phase", state.Phase,
		"intensity", state.Intensity,
		"sections", len(structure.Sections),
	)

	s.record(ctx, req, plan)
	return plan, nil
}

// record persists the session, upserts the caller's cycle profile, and
// publishes the session event, through the pool when one is configured.
// Failures are logged, never returned: a generated plan is already on
// its way back to the user.
func (s *Service) record(ctx context.Context, req Request, plan *Plan) {
	session, err := s.buildSession(req, plan)
	if err != nil {
		s.logger.Error("building session record", "error", err)
		return
	}
	event := s.buildEvent(req, plan)
	user := s.buildUser(req, plan)

	if s.pool != nil {
		s.pool.Enqueue(worker.Job{Session: session, Event: event, User: user})
		return
	}

	if s.store != nil {
		if err := s.store.SaveSession(ctx, session); err != nil {
			s.logger.Error("saving session", "session_id", session.ID, "error", err)
		}
		if user != nil {
			if err := s.store.SaveUser(ctx, user); err != nil {
				s.logger.Error("saving cycle profile", "user_id", user.ID, "error", err)
			}
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishSession(ctx, event); err != nil {
			s.logger.Warn("publishing session event", "session_id", session.ID, "error", err)
		}
	}
}

func (s *Service) buildSession(req Request, plan *Plan) (*storage.Session, error) {
	raw, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("marshaling plan: %w", err)
	}
	return &storage.Session{
		ID:              plan.SessionID,
		UserID:          req.UserID,
		Phase:           string(plan.BodyState.Phase),
		DurationMinutes: plan.BodyState.DurationMinutes,
		Plan:            raw,
	}, nil
}

// buildUser returns the cycle profile to upsert, nil for anonymous
// requests. The derived state supplies the normalized cycle length so
// a request that omitted it still stores a usable profile.
func (s *Service) buildUser(req Request, plan *Plan) *storage.User {
	if req.UserID == "" {
		return nil
	}
	return &storage.User{
		ID:             req.UserID,
		LastPeriodDate: req.LastPeriodDate,
		CycleLength:    plan.BodyState.CycleLength,
	}
}

func (s *Service) buildEvent(req Request, plan *Plan) *eventstream.SessionPlannedEvent {
	return &eventstream.SessionPlannedEvent{
		SchemaVersion: eventstream.SchemaVersionV1,
		EventType:     eventstream.EventTypeSessionPlanned,
		EventID:       uuid.NewString(),
		EmittedAt:     s.now().UTC(),
		Source: eventstream.EventSource{
			Service: eventSourceService,
			Model:   s.modelName,
		},
		Session: eventstream.SessionMeta{
			SessionID:       plan.SessionID,
			UserID:          req.UserID,
			Phase:           string(plan.BodyState.Phase),
			Intensity:       intensityRank(plan.BodyState),
			SectionCount:    len(plan.Structure.Sections),
			DurationMinutes: plan.BodyState.DurationMinutes,
		},
	}
}

// intensityRank grades intensity 1-3 for the numeric event field.
func intensityRank(state engine.BodyState) int {
	switch state.Intensity {
	case safety.High:
		return 3
	case safety.Moderate:
		return 2
	default:
		return 1
	}
}
