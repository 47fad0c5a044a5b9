package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/pagehub"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
	"github.com/rs/cors"
)

// SmartReadServer is the REST API of SmartRead, and the endpoint the browser bridge and
// content scripts connect to.
type SmartReadServer struct {
	Port                             int                                `config:"HTTP_PORT" default:"8080"`
	Logger                           *log.Logger                        `resolve:""`
	Hub                              *pagehub.Hub                       `resolve:""`
	SummarizeTextUseCase             usecases.SummarizeText             `resolve:""`
	SummarizeBatchUseCase            usecases.SummarizeBatch            `resolve:""`
	GenerateStructuredSummaryUseCase usecases.GenerateStructuredSummary `resolve:""`
	TranslateTextUseCase             usecases.TranslateText             `resolve:""`
	DetectLanguageUseCase            usecases.DetectLanguage            `resolve:""`
	RewriteTextUseCase               usecases.RewriteText               `resolve:""`
	GenerateContentUseCase           usecases.GenerateContent           `resolve:""`
	ProofreadTextUseCase             usecases.ProofreadText             `resolve:""`
	AnalyzeImageUseCase              usecases.AnalyzeImage              `resolve:""`
	ListCapabilitiesUseCase          usecases.ListCapabilities          `resolve:""`
	SaveSummaryUseCase               usecases.SaveSummary               `resolve:""`
	ListSavedSummariesUseCase        usecases.ListSavedSummaries        `resolve:""`
	ClearSavedSummariesUseCase       usecases.ClearSavedSummaries       `resolve:""`
	ExportSummaryUseCase             usecases.ExportSummary             `resolve:""`
	ContextMenuRouterUseCase         usecases.ContextMenuRouter         `resolve:""`
}

// Handler builds the routes of the API.
func (api SmartReadServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	if api.Hub != nil {
		mux.HandleFunc("GET /ws/bridge", api.Hub.HandleBridge)
		mux.HandleFunc("GET /ws/tabs", api.Hub.HandleTab)
	}

	mux.HandleFunc("POST /api/v1/summaries", api.Summarize)
	mux.HandleFunc("POST /api/v1/summaries/batch", api.SummarizeBatch)
	mux.HandleFunc("POST /api/v1/summaries/structured", api.GenerateStructuredSummary)
	mux.HandleFunc("POST /api/v1/translations", api.Translate)
	mux.HandleFunc("POST /api/v1/language-detections", api.DetectLanguage)
	mux.HandleFunc("POST /api/v1/rewrites", api.Rewrite)
	mux.HandleFunc("POST /api/v1/writes", api.Write)
	mux.HandleFunc("POST /api/v1/proofreads", api.Proofread)
	mux.HandleFunc("POST /api/v1/image-analyses", api.AnalyzeImage)
	mux.HandleFunc("GET /api/v1/capabilities", api.ListCapabilities)
	mux.HandleFunc("GET /api/v1/saved-summaries", api.ListSavedSummaries)
	mux.HandleFunc("POST /api/v1/saved-summaries", api.SaveSummary)
	mux.HandleFunc("DELETE /api/v1/saved-summaries", api.ClearSavedSummaries)
	mux.HandleFunc("POST /api/v1/exports", api.ExportSummary)
	mux.HandleFunc("GET /api/v1/menu-items", api.ListMenuItems)
	mux.HandleFunc("POST /api/v1/menu-actions", api.RouteMenuAction)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(telemetry.Middleware("smartread-api")(mux))
}

// Run starts the HTTP server for the SmartReadServer.
func (api SmartReadServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("SmartReadServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("SmartReadServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("SmartReadServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the SmartReadServer is ready by performing a health check.
func (api SmartReadServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
