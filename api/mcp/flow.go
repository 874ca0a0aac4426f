package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/flow"
)

var (
	planFlowToolName    = "plan_flow"
	planFlowDescription = "Generate a cycle-aware yoga practice plan. Takes the date of the last period plus optional energy, pain, and duration inputs, and returns a structured session with sections, poses, and coaching cues."
)

// PlanFlowInput represents the input arguments for the flow planning tool.
type PlanFlowInput struct {
	LastPeriodDate  string   `json:"last_period_date" jsonschema:"date of the last period in YYYY-MM-DD format"`
	CycleLength     int      `json:"cycle_length,omitempty" jsonschema:"cycle length in days (default: 28)"`
	Energy          int      `json:"energy,omitempty" jsonschema:"energy level from 1 (exhausted) to 5 (energized)"`
	Pain            int      `json:"pain,omitempty" jsonschema:"pain level from 1 (none) to 5 (severe)"`
	DurationMinutes int      `json:"duration_minutes,omitempty" jsonschema:"desired session length in minutes (default: 30)"`
	TrainingFocus   []string `json:"training_focus,omitempty" jsonschema:"optional focus areas like flexibility, strength, or relaxation"`
}

// handlePlanFlow processes a flow planning request.
func (s *Server) handlePlanFlow(ctx context.Context, req *mcp.CallToolRequest, input PlanFlowInput) (*mcp.CallToolResult, *flow.Plan, error) {
	logger := s.config.Logger

	logger.Debug("MCP plan flow request",
		"last_period_date", input.LastPeriodDate,
		"duration", input.DurationMinutes,
	)

	if _, err := time.Parse(cycle.DateLayout, input.LastPeriodDate); err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: "last_period_date must be YYYY-MM-DD"},
			},
		}, nil, nil
	}

	plan, err := s.config.Flows.Generate(ctx, flow.Request{
		LastPeriodDate:  input.LastPeriodDate,
		CycleLength:     input.CycleLength,
		Energy:          input.Energy,
		Pain:            input.Pain,
		DurationMinutes: input.DurationMinutes,
		TrainingFocus:   input.TrainingFocus,
	})
	if err != nil {
		logger.Error("failed to generate flow", "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to generate flow: %v", err)},
			},
		}, nil, nil
	}

	jsonBytes, err := json.Marshal(plan)
	if err != nil {
		logger.Error("failed to marshal plan", "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to serialize plan: %v", err)},
			},
		}, nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, plan, nil
}
