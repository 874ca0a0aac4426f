package groq_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/llm"
	"github.com/halfmoonlabs/vinyasa/pkg/llm/provider/groq"
)

var _ = Describe("Client", func() {
	Describe("New", func() {
		It("requires an api key", func() {
			_, err := groq.New(groq.Config{})
			Expect(err).To(HaveOccurred())
		})

		It("reports its provider name", func() {
			c, err := groq.New(groq.Config{APIKey: "gsk-test"})
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Name()).To(Equal("groq"))
		})
	})

	Describe("Generate", func() {
		It("sends an OpenAI-shaped completion request and returns the text", func() {
			var got map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/chat/completions"))
				Expect(r.Header.Get("Authorization")).To(Equal("Bearer gsk-test"))
				Expect(json.NewDecoder(r.Body).Decode(&got)).To(Succeed())

				fmt.Fprint(w, `{"choices":[{"message":{"content":" Namaste. "}}]}`)
			}))
			defer server.Close()

			c, err := groq.New(groq.Config{APIKey: "gsk-test", BaseURL: server.URL})
			Expect(err).NotTo(HaveOccurred())

			text, err := c.Generate(context.Background(), llm.Request{
				System:      "You are a yoga coach.",
				Prompt:      "Suggest a pose.",
				Temperature: 0.4,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("Namaste."))

			Expect(got["model"]).To(Equal(groq.DefaultModel))
			Expect(got["temperature"]).To(BeNumerically("~", 0.4, 0.001))
			msgs := got["messages"].([]any)
			Expect(msgs).To(HaveLen(2))
			Expect(msgs[0].(map[string]any)["role"]).To(Equal("system"))
		})

		It("surfaces the api error message on failure statuses", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprint(w, `{"error":{"message":"rate limit exceeded"}}`)
			}))
			defer server.Close()

			c, err := groq.New(groq.Config{APIKey: "gsk-test", BaseURL: server.URL})
			Expect(err).NotTo(HaveOccurred())

			_, err = c.Generate(context.Background(), llm.Request{Prompt: "hi"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("rate limit exceeded"))
			Expect(err.Error()).To(ContainSubstring("429"))
		})

		It("fails on an empty choices array", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices":[]}`)
			}))
			defer server.Close()

			c, _ := groq.New(groq.Config{APIKey: "gsk-test", BaseURL: server.URL})
			_, err := c.Generate(context.Background(), llm.Request{Prompt: "hi"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GenerateStream", func() {
		It("invokes the callback for each delta until the sentinel", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req map[string]any
				Expect(json.NewDecoder(r.Body).Decode(&req)).To(Succeed())
				Expect(req["stream"]).To(BeTrue())

				w.Header().Set("Content-Type", "text/event-stream")
				flusher := w.(http.Flusher)
				for _, delta := range []string{"Inhale", ", ", "exhale."} {
					fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", delta)
					flusher.Flush()
				}
				fmt.Fprint(w, "data: [DONE]\n\n")
			}))
			defer server.Close()

			c, _ := groq.New(groq.Config{APIKey: "gsk-test", BaseURL: server.URL})

			var deltas []string
			err := c.GenerateStream(context.Background(), llm.Request{Prompt: "breathe"}, func(delta string) error {
				deltas = append(deltas, delta)
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(deltas).To(Equal([]string{"Inhale", ", ", "exhale."}))
		})

		It("skips keep-alives and unparseable chunks", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, ": keep-alive\n\n")
				fmt.Fprint(w, "data: not json\n\n")
				fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"om\"}}]}\n\n")
				fmt.Fprint(w, "data: [DONE]\n\n")
			}))
			defer server.Close()

			c, _ := groq.New(groq.Config{APIKey: "gsk-test", BaseURL: server.URL})

			var deltas []string
			err := c.GenerateStream(context.Background(), llm.Request{Prompt: "om"}, func(delta string) error {
				deltas = append(deltas, delta)
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(deltas).To(Equal([]string{"om"}))
		})

		It("aborts when the callback returns an error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for i := 0; i < 10; i++ {
					fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":\"x%d\"}}]}\n\n", i)
				}
				fmt.Fprint(w, "data: [DONE]\n\n")
			}))
			defer server.Close()

			c, _ := groq.New(groq.Config{APIKey: "gsk-test", BaseURL: server.URL})

			calls := 0
			err := c.GenerateStream(context.Background(), llm.Request{Prompt: "x"}, func(delta string) error {
				calls++
				return fmt.Errorf("stop")
			})
			Expect(err).To(MatchError(ContainSubstring("stop")))
			Expect(calls).To(Equal(1))
		})

		It("surfaces api errors before any delta", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
			}))
			defer server.Close()

			c, _ := groq.New(groq.Config{APIKey: "gsk-bad", BaseURL: server.URL})
			err := c.GenerateStream(context.Background(), llm.Request{Prompt: "x"}, func(string) error { return nil })
			Expect(err).To(MatchError(ContainSubstring("invalid api key")))
		})
	})
})
