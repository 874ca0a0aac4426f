package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/flow"
	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
	"github.com/halfmoonlabs/vinyasa/pkg/llm"
	"github.com/halfmoonlabs/vinyasa/pkg/storage"
	"github.com/halfmoonlabs/vinyasa/pkg/utils"
)

// errorResponse is the JSON error body every handler returns on failure.
type errorResponse struct {
	Error string `json:"error"`
}

// chatRequest is the body of both chat endpoints.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the synchronous chat reply.
type chatResponse struct {
	Reply string `json:"reply"`
}

// knowledgeSearchRequest queries the knowledge base.
type knowledgeSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// knowledgeSearchResponse carries the matched entries.
type knowledgeSearchResponse struct {
	Query   string            `json:"query"`
	Results []knowledge.Entry `json:"results"`
	Count   int               `json:"count"`
}

// ingestRequest merges structured entries into the knowledge file.
type ingestRequest struct {
	Entries []knowledge.Entry `json:"entries"`
}

// ingestResponse reports the ingest outcome.
type ingestResponse struct {
	Saved int    `json:"saved"`
	Path  string `json:"path"`
}

// ingestTextResponse reports a freeform text ingest.
type ingestTextResponse struct {
	Ingested int      `json:"ingested"`
	Poses    []string `json:"poses"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

const chatSystemPrompt = `You are a friendly, knowledgeable yoga coach. Answer the user's question about yoga using the provided knowledge when relevant. Be clear, safe, and encouraging. If the knowledge doesn't cover the question, answer from general yoga best practices.

IMPORTANT: Format your response using Markdown for better readability:
- Use **bold** for important terms, pose names, or key concepts
- Use *italics* for emphasis or Sanskrit terms
- Use ## for main sections (e.g., ## Alignment, ## Benefits, ## Safety)
- Use bullet points (- or *) for lists
- Use numbered lists (1., 2., 3.) for step-by-step instructions
- Keep paragraphs concise and well-structured`

const chatUserPromptTemplate = `Relevant yoga knowledge (use when it helps):
%s

---
User question: %s

Answer in well-structured Markdown:
`

// generalKnowledgeContext stands in when retrieval finds nothing.
const generalKnowledgeContext = "(No specific pose/knowledge matched; answer from general yoga best practices.)"

// noProviderReply answers chat when no model is configured at all.
const noProviderReply = "Chat requires a language model. Configure a provider with `vinyasa auth groq` (or gemini), or point llm.provider at a local ollama."

// chatTemperature keeps answers factual but not stiff.
const chatTemperature = 0.4

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": utils.Version,
	})
}

// handleChat answers one question synchronously.
func (s *Server) handleChat(c *fiber.Ctx) error {
	message, err := s.parseChatMessage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
	}

	if s.deps.LLM == nil {
		return c.JSON(chatResponse{Reply: noProviderReply})
	}

	system, prompt := s.buildChatPrompt(c.Context(), message)
	reply, err := s.deps.LLM.Generate(c.Context(), llm.Request{
		System:      system,
		Prompt:      prompt,
		Temperature: chatTemperature,
	})
	if err != nil {
		s.logger.Error("chat generation failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(errorResponse{Error: "chat generation failed"})
	}

	return c.JSON(chatResponse{Reply: reply})
}

// handleFlow generates a practice plan.
func (s *Server) handleFlow(c *fiber.Ctx) error {
	var req flow.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if msg := validateFlowRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: msg})
	}

	plan, err := s.deps.Flows.Generate(c.Context(), req)
	if err != nil {
		s.logger.Error("flow generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "flow generation failed"})
	}

	return c.JSON(plan)
}

// validateFlowRequest returns an empty string when req is acceptable.
// Zero values pass: the engine fills in its defaults for them.
func validateFlowRequest(req flow.Request) string {
	if strings.TrimSpace(req.LastPeriodDate) == "" {
		return "last_period_date is required"
	}
	if _, err := time.Parse(cycle.DateLayout, req.LastPeriodDate); err != nil {
		return "last_period_date must be YYYY-MM-DD"
	}
	if req.Energy != 0 && (req.Energy < 1 || req.Energy > 5) {
		return "energy must be between 1 and 5"
	}
	if req.Pain != 0 && (req.Pain < 1 || req.Pain > 5) {
		return "pain must be between 1 and 5"
	}
	if req.DurationMinutes != 0 && (req.DurationMinutes < 5 || req.DurationMinutes > 120) {
		return "duration_minutes must be between 5 and 120"
	}
	if req.CycleLength != 0 && (req.CycleLength < 14 || req.CycleLength > 60) {
		return "cycle_length must be between 14 and 60"
	}
	return ""
}

// handleBodyState derives and returns the body state for the query
// parameters without generating a plan, for inspecting the cycle math.
func (s *Server) handleBodyState(c *fiber.Ctx) error {
	req := flow.Request{
		LastPeriodDate:  c.Query("last_period_date"),
		CycleLength:     c.QueryInt("cycle_length", 0),
		Energy:          c.QueryInt("energy", 0),
		Pain:            c.QueryInt("pain", 0),
		DurationMinutes: c.QueryInt("duration_minutes", 0),
	}
	if msg := validateFlowRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: msg})
	}

	state, err := s.deps.Flows.BodyState(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
	}
	return c.JSON(state)
}

// handleGetSession returns one stored session.
func (s *Server) handleGetSession(c *fiber.Ctx) error {
	if s.deps.Store == nil {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "session storage not configured"})
	}

	session, err := s.deps.Store.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		var notFound storage.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: notFound.Error()})
		}
		s.logger.Error("loading session", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to load session"})
	}

	return c.JSON(session)
}

// handleListSessions returns a user's sessions, newest first.
func (s *Server) handleListSessions(c *fiber.Ctx) error {
	if s.deps.Store == nil {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "session storage not configured"})
	}

	userID := c.Query("user_id")
	limit := c.QueryInt("limit", 0)

	sessions, err := s.deps.Store.ListSessions(c.Context(), userID, limit)
	if err != nil {
		s.logger.Error("listing sessions", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to list sessions"})
	}

	return c.JSON(fiber.Map{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// handleGetUser returns a stored cycle profile.
func (s *Server) handleGetUser(c *fiber.Ctx) error {
	if s.deps.Store == nil {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "session storage not configured"})
	}

	user, err := s.deps.Store.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		var notFound storage.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: notFound.Error()})
		}
		s.logger.Error("loading cycle profile", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to load cycle profile"})
	}

	return c.JSON(user)
}

// handleKnowledgeSearch answers a keyword/semantic knowledge query.
func (s *Server) handleKnowledgeSearch(c *fiber.Ctx) error {
	var req knowledgeSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "query is required"})
	}

	results := s.deps.Retriever.Search(c.Context(), req.Query, req.Limit)
	if results == nil {
		results = []knowledge.Entry{}
	}

	return c.JSON(knowledgeSearchResponse{
		Query:   req.Query,
		Results: results,
		Count:   len(results),
	})
}

// handleIngest merges structured knowledge entries into the store.
func (s *Server) handleIngest(c *fiber.Ctx) error {
	if s.deps.Ingestor == nil {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "ingest not configured"})
	}

	var req ingestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if len(req.Entries) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "at least one entry is required"})
	}

	saved, err := s.deps.Ingestor.SaveEntries(c.Context(), req.Entries)
	if err != nil {
		s.logger.Error("saving knowledge entries", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: err.Error()})
	}

	return c.JSON(ingestResponse{
		Saved: saved,
		Path:  s.deps.Retriever.Base().Path(),
	})
}

// handleIngestText extracts entries from a freeform text body. The
// philosophy query parameter switches extraction to topic ids.
func (s *Server) handleIngestText(c *fiber.Ctx) error {
	if s.deps.Ingestor == nil {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "ingest not configured"})
	}

	text := string(c.Body())
	if strings.TrimSpace(text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "body is empty; send the raw text to ingest"})
	}
	philosophy := c.QueryBool("philosophy", false)

	entries, err := s.deps.Ingestor.IngestText(c.Context(), text, philosophy)
	if err != nil {
		s.logger.Error("text ingest failed", "error", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{Error: err.Error()})
	}
	if len(entries) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{Error: "no entries extracted from text"})
	}

	poses := make([]string, len(entries))
	for i, e := range entries {
		poses[i] = e.Pose
	}
	path := s.deps.Retriever.Base().Path()

	return c.JSON(ingestTextResponse{
		Ingested: len(entries),
		Poses:    poses,
		Path:     path,
		Message:  fmt.Sprintf("Ingested %d entries into %s", len(entries), path),
	})
}

// parseChatMessage extracts and validates the chat message body.
func (s *Server) parseChatMessage(c *fiber.Ctx) (string, error) {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return "", errors.New("invalid request body")
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return "", errors.New("message is required")
	}
	return message, nil
}

// buildChatPrompt renders the retrieval context into the chat prompts.
func (s *Server) buildChatPrompt(ctx context.Context, message string) (system, prompt string) {
	knowledgeContext := s.deps.Retriever.ContextFor(ctx, message)
	if knowledgeContext == "" {
		knowledgeContext = generalKnowledgeContext
	}
	return chatSystemPrompt, fmt.Sprintf(chatUserPromptTemplate, knowledgeContext, message)
}
