package mcp

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"
)

// SmartReadMCPServer exposes the SmartRead operations as MCP tools over streamable HTTP.
type SmartReadMCPServer struct {
	Logger                    *log.Logger                 `resolve:""`
	SummarizeTextUseCase      usecases.SummarizeText      `resolve:""`
	TranslateTextUseCase      usecases.TranslateText      `resolve:""`
	DetectLanguageUseCase     usecases.DetectLanguage     `resolve:""`
	ProofreadTextUseCase      usecases.ProofreadText      `resolve:""`
	RewriteTextUseCase        usecases.RewriteText        `resolve:""`
	GenerateContentUseCase    usecases.GenerateContent    `resolve:""`
	ListCapabilitiesUseCase   usecases.ListCapabilities   `resolve:""`
	ListSavedSummariesUseCase usecases.ListSavedSummaries `resolve:""`
	SaveSummaryUseCase        usecases.SaveSummary        `resolve:""`
	Port                      int                         `config:"MCP_SERVER_PORT" default:"8085"`
	Version                   string                      `config:"APP_VERSION" default:"dev"`
}

// NewServer creates the MCP server with every tool registered.
func (s SmartReadMCPServer) NewServer() *gomcp.Server {
	server := gomcp.NewServer(&gomcp.Implementation{Name: "smartread", Version: s.Version}, nil)
	s.AddTools(server)
	return server
}

func (s *SmartReadMCPServer) Run(ctx context.Context) error {
	server := s.NewServer()
	mux := http.NewServeMux()

	h := gomcp.NewStreamableHTTPHandler(func(*http.Request) *gomcp.Server {
		return server
	}, nil)

	mux.Handle("/mcp", cors.AllowAll().Handler(
		telemetry.HttpHandler(h, "smartread-mcp"),
	))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	svr := &http.Server{
		Handler: mux,
		Addr:    fmt.Sprintf(":%d", s.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("SmartReadMCPServer: Listening on port %d", s.Port)
		errCh <- svr.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.Logger.Print("SmartReadMCPServer: Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return svr.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *SmartReadMCPServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", s.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
