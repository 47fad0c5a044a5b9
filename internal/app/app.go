package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/localbus"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/pagehub"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
)

// NewSmartReadApp creates and returns a new instance of the SmartRead application.
func NewSmartReadApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitSavedRecordRepository{},
			&time.InitCurrentTimeProvider{},
			&localbus.InitBus{},
			&pubsub.InitClient{},
			&pagehub.InitHub{},
			&modelrunner.InitCapabilityRegistry{},

			&usecases.InitCapabilityProbe{},
			&usecases.InitSessionFactory{},
			&usecases.InitDegradingInvoker{},
			&usecases.InitCrossContextDelegate{},

			&usecases.InitSummarizeText{},
			&usecases.InitSummarizeBatch{},
			&usecases.InitGenerateStructuredSummary{},
			&usecases.InitTranslateText{},
			&usecases.InitDetectLanguage{},
			&usecases.InitRewriteText{},
			&usecases.InitGenerateContent{},
			&usecases.InitProofreadText{},
			&usecases.InitAnalyzeImage{},
			&usecases.InitListCapabilities{},
			&usecases.InitSaveSummary{},
			&usecases.InitListSavedSummaries{},
			&usecases.InitClearSavedSummaries{},
			&usecases.InitExportSummary{},
			&usecases.InitHandleDelegatedRequest{},
			&usecases.InitContextMenuRouter{},
		).
		Host(
			&http.SmartReadServer{},
			&mcp.SmartReadMCPServer{},
			&workers.DelegationListener{},
			&workers.CapabilityMonitor{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
