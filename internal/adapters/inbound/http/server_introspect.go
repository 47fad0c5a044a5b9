package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectionGraphKey names the Mermaid dependency graph registered at startup.
const IntrospectionGraphKey = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

// IntrospectHandler renders the dependency graph of the running app. With ?format=mermaid
// the graph source is returned as plain text.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](IntrospectionGraphKey)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "html":
	case "mermaid":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(graph)) //nolint:errcheck
		return
	default:
		http.Error(w, "Unsupported format", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = tmpl.Execute(w, struct {
		Graph string
		Title string
	}{
		Title: "SmartRead Introspection Graph",
		Graph: graph,
	})
	if err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
