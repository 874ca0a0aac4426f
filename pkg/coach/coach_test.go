package coach_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/coach"
	"github.com/halfmoonlabs/vinyasa/pkg/flow"
	"github.com/halfmoonlabs/vinyasa/pkg/stream"
)

var _ = Describe("Client", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("New", func() {
		It("defaults the target", func() {
			client := coach.New(coach.Config{})
			Expect(client.Target()).To(Equal(coach.DefaultTarget))
		})

		It("strips a trailing slash from the target", func() {
			client := coach.New(coach.Config{Target: "http://coach.local:9999/"})
			Expect(client.Target()).To(Equal("http://coach.local:9999"))
		})
	})

	Describe("Health", func() {
		It("decodes the health report", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/healthz"))
				fmt.Fprint(w, `{"status":"ok","version":"1.2.3"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			health, err := client.Health(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(health.Status).To(Equal("ok"))
			Expect(health.Version).To(Equal("1.2.3"))
		})

		It("surfaces a connection failure", func() {
			client := coach.New(coach.Config{Target: "http://127.0.0.1:1"})
			_, err := client.Health(ctx)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Chat", func() {
		It("posts the message and returns the reply", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/chat"))
				var body map[string]string
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
				Expect(body["message"]).To(Equal("hello"))
				fmt.Fprint(w, `{"reply":"namaste"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			reply, err := client.Chat(ctx, "hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(reply).To(Equal("namaste"))
		})

		It("carries the server's error message", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"error":"message is required"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			_, err := client.Chat(ctx, "")
			Expect(err).To(MatchError("message is required"))
		})

		It("falls back to a status error for an opaque body", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				fmt.Fprint(w, "upstream exploded")
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			_, err := client.Chat(ctx, "hello")
			Expect(err).To(MatchError(ContainSubstring("502")))
		})
	})

	Describe("PlanFlow", func() {
		It("posts the request and decodes the plan", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/flow"))
				var req flow.Request
				Expect(json.NewDecoder(r.Body).Decode(&req)).To(Succeed())
				Expect(req.LastPeriodDate).To(Equal("2026-08-15"))
				fmt.Fprint(w, `{"session_id":"s1","structure":{"structure":[{"section":"breathing","minutes":3}]}}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			plan, err := client.PlanFlow(ctx, flow.Request{LastPeriodDate: "2026-08-15"})
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.SessionID).To(Equal("s1"))
			Expect(plan.Structure.Sections).To(HaveLen(1))
		})
	})

	Describe("Session", func() {
		It("returns the raw session document", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/sessions/s1"))
				fmt.Fprint(w, `{"id":"s1"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			raw, err := client.Session(ctx, "s1")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(Equal(`{"id":"s1"}`))
		})

		It("reports a missing session", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"error":"session nope not found"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			_, err := client.Session(ctx, "nope")
			Expect(err).To(MatchError("session nope not found"))
		})
	})

	Describe("StreamChat", func() {
		streamHandler := func(frames ...string) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/chat/stream"))
				Expect(r.Header.Get("Accept")).To(Equal("text/event-stream"))

				w.Header().Set("Content-Type", "text/event-stream")
				flusher, ok := w.(http.Flusher)
				Expect(ok).To(BeTrue())
				for _, frame := range frames {
					fmt.Fprintf(w, "data: %s\n\n", frame)
					flusher.Flush()
				}
			}
		}

		collect := func(client *coach.Client, message string) ([]stream.Event, error) {
			var events []stream.Event
			err := client.StreamChat(ctx, message, func(ev stream.Event) {
				events = append(events, ev)
			})
			return events, err
		}

		It("delivers fragments in order and ends on the sentinel", func() {
			server := httptest.NewServer(streamHandler(
				`{"chunk":"breathe "}`,
				`{"chunk":"deeply"}`,
				"[DONE]",
			))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			events, err := collect(client, "how should I breathe?")
			Expect(err).NotTo(HaveOccurred())

			Expect(events).To(HaveLen(3))
			Expect(events[0]).To(Equal(stream.Event{Kind: stream.KindFragment, Text: "breathe "}))
			Expect(events[1]).To(Equal(stream.Event{Kind: stream.KindFragment, Text: "deeply"}))
			Expect(events[2].Kind).To(Equal(stream.KindEnd))
		})

		It("delivers a mid-stream failure as an error event", func() {
			server := httptest.NewServer(streamHandler(
				`{"chunk":"breathe"}`,
				`{"error":"model went away"}`,
			))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			events, err := collect(client, "hello")
			Expect(err).NotTo(HaveOccurred())

			Expect(events).To(HaveLen(2))
			Expect(events[1].Kind).To(Equal(stream.KindError))
			Expect(events[1].Text).To(Equal("model went away"))
		})

		It("surfaces a rejected request before any events", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"error":"message is required"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			events, err := collect(client, "")
			Expect(err).To(MatchError("message is required"))
			Expect(events).To(BeEmpty())
		})

		It("surfaces a transport failure", func() {
			client := coach.New(coach.Config{Target: "http://127.0.0.1:1"})
			_, err := collect(client, "hello")
			Expect(err).To(HaveOccurred())
		})
	})
})
