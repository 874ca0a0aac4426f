package mcp_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/api/mcp"
	"github.com/halfmoonlabs/vinyasa/pkg/flow"
	vinyasalogger "github.com/halfmoonlabs/vinyasa/pkg/logger"
	"github.com/halfmoonlabs/vinyasa/pkg/rag"
)

var _ = Describe("MCP Server", func() {
	var (
		server    *mcp.Server
		retriever *rag.Retriever
		flows     *flow.Service
	)

	BeforeEach(func() {
		logger := vinyasalogger.Nop()
		retriever = rag.New(rag.Config{Logger: logger})
		flows = flow.NewService(flow.ServiceConfig{
			Retriever: retriever,
			Logger:    logger,
		})

		var err error
		server, err = mcp.NewServer(mcp.Config{
			Retriever: retriever,
			Flows:     flows,
			Logger:    logger,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewServer", func() {
		It("returns an error when retriever is nil", func() {
			logger := vinyasalogger.Nop()
			_, err := mcp.NewServer(mcp.Config{
				Flows:  flows,
				Logger: logger,
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("retriever is required"))
		})

		It("returns an error when flow service is nil", func() {
			logger := vinyasalogger.Nop()
			_, err := mcp.NewServer(mcp.Config{
				Retriever: retriever,
				Logger:    logger,
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("flow service is required"))
		})

		It("returns an error when logger is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Retriever: retriever,
				Flows:     flows,
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("logger is required"))
		})

		It("creates a server with valid config", func() {
			Expect(server).NotTo(BeNil())
		})

		It("returns an HTTP handler", func() {
			handler := server.Handler()
			Expect(handler).NotTo(BeNil())
		})

		It("tolerates a noop config with no dependencies", func() {
			noop, err := mcp.NewServer(mcp.Config{Noop: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(noop).NotTo(BeNil())
		})

		It("serves HTTP in noop mode instead of panicking", func() {
			noop, err := mcp.NewServer(mcp.Config{Noop: true})
			Expect(err).NotTo(HaveOccurred())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
			Expect(func() { noop.Handler().ServeHTTP(rec, req) }).NotTo(Panic())
			Expect(rec.Code).NotTo(BeZero())
		})
	})
})
