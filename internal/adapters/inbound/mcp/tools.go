package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResultOutput is the outcome of a capability call.
type ResultOutput struct {
	Kind   string `json:"kind" jsonschema:"success, or demo when no capability was available"`
	Text   string `json:"text"`
	Tier   string `json:"tier"`
	Reason string `json:"reason,omitempty"`
}

type SummarizeInput struct {
	Text           string `json:"text" jsonschema:"the page or selection text to summarize"`
	Template       string `json:"template,omitempty" jsonschema:"default, product, job or research"`
	Length         string `json:"length,omitempty" jsonschema:"short, medium or long"`
	OutputLanguage string `json:"outputLanguage,omitempty" jsonschema:"en, es or ja"`
}

type TranslateInput struct {
	Text           string `json:"text" jsonschema:"the text to translate"`
	SourceLanguage string `json:"sourceLanguage,omitempty" jsonschema:"BCP 47 code of the text, en by default"`
	TargetLanguage string `json:"targetLanguage" jsonschema:"BCP 47 code to translate to"`
}

type DetectLanguageInput struct {
	Text string `json:"text" jsonschema:"the text whose language is detected"`
}

type DetectLanguageOutput struct {
	Language   string  `json:"language"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message"`
}

type ProofreadInput struct {
	Text string `json:"text" jsonschema:"the text to correct"`
}

type RewriteInput struct {
	Text   string `json:"text" jsonschema:"the text to rewrite"`
	Tone   string `json:"tone,omitempty" jsonschema:"more-formal, more-casual or as-is"`
	Length string `json:"length,omitempty" jsonschema:"shorter, longer or as-is"`
}

type WriteInput struct {
	Prompt string `json:"prompt" jsonschema:"what to write"`
	Tone   string `json:"tone,omitempty" jsonschema:"formal, casual or neutral"`
}

type CapabilityOutput struct {
	Name   string `json:"name"`
	Tier   string `json:"tier"`
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}

type ListCapabilitiesOutput struct {
	Capabilities []CapabilityOutput `json:"capabilities"`
}

type SearchSavedInput struct {
	Query string `json:"query,omitempty" jsonschema:"text searched in the url and the summary"`
}

type SavedSummaryOutput struct {
	URL     string `json:"url"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
}

type SearchSavedOutput struct {
	Items []SavedSummaryOutput `json:"items"`
	Total int                  `json:"total"`
}

type SaveSummaryInput struct {
	URL     string `json:"url,omitempty" jsonschema:"the page the summary belongs to"`
	Summary string `json:"summary" jsonschema:"the summary to store"`
}

// AddTools registers the SmartRead tools on server.
func (s SmartReadMCPServer) AddTools(server *gomcp.Server) {
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "summarize",
		Description: "Summarize a page or a selection as markdown key points.",
	}, s.summarize)
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "translate",
		Description: "Translate text between two languages.",
	}, s.translate)
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "detect_language",
		Description: "Detect the language of a text.",
	}, s.detectLanguage)
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "proofread",
		Description: "Correct grammar and spelling, keeping the meaning.",
	}, s.proofread)
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "rewrite",
		Description: "Rewrite text with another tone or length.",
	}, s.rewrite)
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "write",
		Description: "Write original content for a prompt.",
	}, s.write)
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "list_capabilities",
		Description: "List the capabilities and whether they can be used now.",
	}, s.listCapabilities)
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "search_saved_summaries",
		Description: "Search the saved summaries, most recent first.",
	}, s.searchSaved)
	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "save_summary",
		Description: "Save a summary.",
	}, s.saveSummary)
}

// toResult turns a failed result into a tool error.
func toResult(res domain.InvocationResult, err error) (*gomcp.CallToolResult, ResultOutput, error) {
	if err != nil {
		return nil, ResultOutput{}, err
	}
	if res.Kind == domain.ResultKind_Failure {
		return nil, ResultOutput{}, errors.New(res.Reason)
	}
	return nil, ResultOutput{
		Kind:   string(res.Kind),
		Text:   res.Text(),
		Tier:   string(res.Tier),
		Reason: res.Reason,
	}, nil
}

func (s SmartReadMCPServer) summarize(ctx context.Context, _ *gomcp.CallToolRequest, in SummarizeInput) (*gomcp.CallToolResult, ResultOutput, error) {
	return toResult(s.SummarizeTextUseCase.Execute(ctx, usecases.SummarizeRequest{
		Text:           in.Text,
		Template:       usecases.SummaryTemplate(in.Template),
		Length:         in.Length,
		OutputLanguage: in.OutputLanguage,
	}, nil))
}

func (s SmartReadMCPServer) translate(ctx context.Context, _ *gomcp.CallToolRequest, in TranslateInput) (*gomcp.CallToolResult, ResultOutput, error) {
	return toResult(s.TranslateTextUseCase.Execute(ctx, in.Text, in.SourceLanguage, in.TargetLanguage, nil))
}

func (s SmartReadMCPServer) detectLanguage(ctx context.Context, _ *gomcp.CallToolRequest, in DetectLanguageInput) (*gomcp.CallToolResult, DetectLanguageOutput, error) {
	d, err := s.DetectLanguageUseCase.Execute(ctx, in.Text)
	if err != nil {
		return nil, DetectLanguageOutput{}, errors.New(usecases.DetectionErrorMessage(err))
	}
	return nil, DetectLanguageOutput{
		Language:   d.Language,
		Name:       domain.LanguageName(d.Language),
		Confidence: d.Confidence,
		Message:    usecases.FormatDetection(d),
	}, nil
}

func (s SmartReadMCPServer) proofread(ctx context.Context, _ *gomcp.CallToolRequest, in ProofreadInput) (*gomcp.CallToolResult, ResultOutput, error) {
	return toResult(s.ProofreadTextUseCase.Execute(ctx, in.Text, nil))
}

func (s SmartReadMCPServer) rewrite(ctx context.Context, _ *gomcp.CallToolRequest, in RewriteInput) (*gomcp.CallToolResult, ResultOutput, error) {
	return toResult(s.RewriteTextUseCase.Execute(ctx, in.Text, usecases.RewriteOptions{Tone: in.Tone, Length: in.Length}, nil))
}

func (s SmartReadMCPServer) write(ctx context.Context, _ *gomcp.CallToolRequest, in WriteInput) (*gomcp.CallToolResult, ResultOutput, error) {
	return toResult(s.GenerateContentUseCase.Execute(ctx, in.Prompt, in.Tone, "", nil))
}

func (s SmartReadMCPServer) listCapabilities(ctx context.Context, _ *gomcp.CallToolRequest, _ struct{}) (*gomcp.CallToolResult, ListCapabilitiesOutput, error) {
	report, err := s.ListCapabilitiesUseCase.Query(ctx)
	if err != nil {
		return nil, ListCapabilitiesOutput{}, err
	}
	out := ListCapabilitiesOutput{Capabilities: []CapabilityOutput{}}
	for _, c := range report.Capabilities {
		out.Capabilities = append(out.Capabilities, CapabilityOutput{
			Name:   string(c.Name),
			Tier:   string(c.Tier),
			State:  string(c.Status.State),
			Reason: c.Status.Reason,
		})
	}
	return nil, out, nil
}

func (s SmartReadMCPServer) searchSaved(ctx context.Context, _ *gomcp.CallToolRequest, in SearchSavedInput) (*gomcp.CallToolResult, SearchSavedOutput, error) {
	page, err := s.ListSavedSummariesUseCase.Query(ctx, in.Query)
	if err != nil {
		return nil, SearchSavedOutput{}, err
	}
	out := SearchSavedOutput{Items: []SavedSummaryOutput{}, Total: page.Total}
	for _, r := range page.Records {
		out.Items = append(out.Items, toSavedSummaryOutput(r))
	}
	return nil, out, nil
}

func (s SmartReadMCPServer) saveSummary(ctx context.Context, _ *gomcp.CallToolRequest, in SaveSummaryInput) (*gomcp.CallToolResult, SavedSummaryOutput, error) {
	rec, err := s.SaveSummaryUseCase.Execute(ctx, in.URL, in.Summary)
	if err != nil {
		return nil, SavedSummaryOutput{}, err
	}
	return nil, toSavedSummaryOutput(rec), nil
}

func toSavedSummaryOutput(r domain.SavedRecord) SavedSummaryOutput {
	return SavedSummaryOutput{URL: r.URL, Summary: r.Summary, Date: r.Date.UTC().Format(time.RFC3339)}
}
