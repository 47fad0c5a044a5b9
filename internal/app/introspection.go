package app

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector registers the Mermaid dependency graph served by GET /introspect.
type MermaidGraphIntrospector struct{}

// Introspect implements introspection.Introspector.
func (MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), http.IntrospectionGraphKey)
	return nil
}

// ReportLoggerIntrospector logs the configuration keys the application read at startup.
type ReportLoggerIntrospector struct {
	Logger *log.Logger `resolve:""`
}

// Introspect logs every config key and whether its default value was used.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.Default()
	}
	for _, c := range r.Configs {
		logger.Printf("Introspection: config %s (default used: %t)", c.Key, c.UsedDefault)
	}
	return nil
}
