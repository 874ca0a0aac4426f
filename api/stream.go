package api

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/halfmoonlabs/vinyasa/pkg/llm"
)

// streamDone is the terminal frame of a chat stream.
const streamDone = "data: [DONE]\n\n"

// chunkFrame is a single streamed text delta.
type chunkFrame struct {
	Chunk string `json:"chunk"`
}

// errorFrame reports a mid-stream failure. No [DONE] follows it.
type errorFrame struct {
	Error string `json:"error"`
}

// handleChatStream answers one question as a stream of data: frames.
// Validation failures are still plain JSON errors; once the stream
// starts, failures arrive as an in-band error frame instead.
func (s *Server) handleChatStream(c *fiber.Ctx) error {
	message, err := s.parseChatMessage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
	}

	// Retrieval happens before the stream opens so a slow knowledge
	// lookup cannot stall an already-committed response.
	system, prompt := s.buildChatPrompt(c.Context(), message)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")

	pr, pw := io.Pipe()
	logger := s.logger
	client := s.deps.LLM

	// The fasthttp request ctx is recycled once this handler returns,
	// so the writer goroutine runs on its own context.
	go func() {
		defer pw.Close()
		w := bufio.NewWriter(pw)
		defer w.Flush()

		if client == nil {
			writeFrame(w, chunkFrame{Chunk: noProviderReply})
			fmt.Fprint(w, streamDone)
			return
		}

		streamErr := client.GenerateStream(context.Background(), llm.Request{
			System:      system,
			Prompt:      prompt,
			Temperature: chatTemperature,
		}, func(delta string) error {
			if delta == "" {
				return nil
			}
			if err := writeFrame(w, chunkFrame{Chunk: delta}); err != nil {
				return err
			}
			return w.Flush()
		})
		if streamErr != nil {
			logger.Error("chat stream failed", "error", streamErr)
			writeFrame(w, errorFrame{Error: "chat generation failed"})
			return
		}

		fmt.Fprint(w, streamDone)
	}()

	c.Context().Response.SetBodyStream(pr, -1)
	return nil
}

// writeFrame emits one data: frame followed by the blank separator line.
func writeFrame(w io.Writer, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", encoded)
	return err
}
