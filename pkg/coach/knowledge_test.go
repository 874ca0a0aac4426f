package coach_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/coach"
	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
)

var _ = Describe("Knowledge client calls", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("SearchKnowledge", func() {
		It("posts the query and decodes the results", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/knowledge/search"))

				var body map[string]any
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
				Expect(body["query"]).To(Equal("hip openers"))
				Expect(body["limit"]).To(BeEquivalentTo(3))

				fmt.Fprint(w, `{"query":"hip openers","results":[{"pose":"pigeon_pose"},{"pose":"child_pose"}],"count":2}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			results, err := client.SearchKnowledge(ctx, "hip openers", 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].Pose).To(Equal("pigeon_pose"))
		})

		It("surfaces the server's error message", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"error":"query is required"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			_, err := client.SearchKnowledge(ctx, "", 0)
			Expect(err).To(MatchError("query is required"))
		})
	})

	Describe("IngestEntries", func() {
		It("posts the entries and returns the saved count", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/ingest"))

				var body map[string][]map[string]any
				Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
				Expect(body["entries"]).To(HaveLen(1))
				Expect(body["entries"][0]["pose"]).To(Equal("eagle_pose"))

				fmt.Fprint(w, `{"saved":1,"path":"/tmp/knowledge.json"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			saved, err := client.IngestEntries(ctx, []knowledge.Entry{{Pose: "eagle_pose"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).To(Equal(1))
		})
	})

	Describe("IngestText", func() {
		It("posts the raw text and decodes the report", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/ingest/text"))
				Expect(r.URL.Query().Get("philosophy")).To(BeEmpty())

				raw, err := io.ReadAll(r.Body)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(raw)).To(Equal("Eagle pose wraps one leg over the other."))

				fmt.Fprint(w, `{"ingested":1,"poses":["eagle_pose"],"path":"/tmp/knowledge.json","message":"ok"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			report, err := client.IngestText(ctx, "Eagle pose wraps one leg over the other.", false)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Ingested).To(Equal(1))
			Expect(report.Poses).To(Equal([]string{"eagle_pose"}))
		})

		It("flags philosophy extraction in the query string", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Query().Get("philosophy")).To(Equal("true"))
				fmt.Fprint(w, `{"ingested":0,"poses":[],"path":"","message":"ok"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			_, err := client.IngestText(ctx, "Yogas citta vrtti nirodhah.", true)
			Expect(err).NotTo(HaveOccurred())
		})

		It("surfaces extraction failures", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				fmt.Fprint(w, `{"error":"no entries could be extracted"}`)
			}))
			defer server.Close()

			client := coach.New(coach.Config{Target: server.URL})
			_, err := client.IngestText(ctx, "gibberish", false)
			Expect(err).To(MatchError("no entries could be extracted"))
		})
	})
})
