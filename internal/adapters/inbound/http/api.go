package http

import (
	"time"
)

// ErrorCode identifies the class of an API error.
type ErrorCode string

const (
	ErrorCode_BadRequest  ErrorCode = "BAD_REQUEST"
	ErrorCode_NotFound    ErrorCode = "NOT_FOUND"
	ErrorCode_Unavailable ErrorCode = "CAPABILITY_UNAVAILABLE"
	ErrorCode_Upstream    ErrorCode = "UPSTREAM_ERROR"
	ErrorCode_Internal    ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of a failed API call.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// InvocationResp is the outcome of one capability call.
type InvocationResp struct {
	Kind      string   `json:"kind"`
	Text      string   `json:"text,omitempty"`
	Tier      string   `json:"tier,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	ErrorKind string   `json:"errorKind,omitempty"`
	InputSize int      `json:"inputSize,omitempty"`
	Status    []string `json:"status,omitempty"`
}

type SummarizeReq struct {
	Text           string `json:"text"`
	Source         string `json:"source,omitempty"`
	Template       string `json:"template,omitempty"`
	OutputLanguage string `json:"outputLanguage,omitempty"`
	Type           string `json:"type,omitempty"`
	Format         string `json:"format,omitempty"`
	Length         string `json:"length,omitempty"`
}

type BatchPage struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}

type BatchSummarizeReq struct {
	Pages    []BatchPage `json:"pages"`
	Template string      `json:"template,omitempty"`
}

type BatchSummary struct {
	Title  string         `json:"title"`
	URL    string         `json:"url"`
	Result InvocationResp `json:"result"`
}

type BatchSummarizeResp struct {
	Summaries []BatchSummary `json:"summaries"`
	Markdown  string         `json:"markdown"`
	Status    []string       `json:"status,omitempty"`
}

type PageHeading struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

type PageImage struct {
	Src   string `json:"src"`
	Alt   string `json:"alt,omitempty"`
	Title string `json:"title,omitempty"`
}

type PageContext struct {
	Title    string            `json:"title"`
	Meta     map[string]string `json:"meta,omitempty"`
	Headings []PageHeading     `json:"headings,omitempty"`
	Images   []PageImage       `json:"images,omitempty"`
}

type StructuredSummaryReq struct {
	Text           string      `json:"text"`
	Page           PageContext `json:"page"`
	OutputLanguage string      `json:"outputLanguage,omitempty"`
}

type StructuredSummary struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	Sentiment   string   `json:"sentiment"`
	Category    string   `json:"category,omitempty"`
	ReadingTime float64  `json:"readingTime,omitempty"`
	ActionItems []string `json:"actionItems,omitempty"`
}

type StructuredSummaryResp struct {
	Summary  StructuredSummary `json:"summary"`
	Fallback bool              `json:"fallback"`
	Result   InvocationResp    `json:"result"`
}

type TranslateReq struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage"`
}

type DetectLanguageReq struct {
	Text string `json:"text"`
}

type DetectLanguageResp struct {
	Language   string  `json:"language"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message"`
}

type RewriteReq struct {
	Text           string `json:"text"`
	Tone           string `json:"tone,omitempty"`
	Length         string `json:"length,omitempty"`
	OutputLanguage string `json:"outputLanguage,omitempty"`
}

type WriteReq struct {
	Prompt         string `json:"prompt"`
	Tone           string `json:"tone,omitempty"`
	OutputLanguage string `json:"outputLanguage,omitempty"`
}

type ProofreadReq struct {
	Text string `json:"text"`
}

// AnalyzeImageReq carries the image base64-encoded.
type AnalyzeImageReq struct {
	Image          []byte `json:"image"`
	Prompt         string `json:"prompt,omitempty"`
	OutputLanguage string `json:"outputLanguage,omitempty"`
}

type Availability struct {
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}

type CapabilityStatus struct {
	Name         string       `json:"name"`
	Tier         string       `json:"tier"`
	Availability Availability `json:"availability"`
}

type TranslatorSupport struct {
	Language     string       `json:"language"`
	Name         string       `json:"name"`
	Availability Availability `json:"availability"`
}

type CapabilitiesResp struct {
	Capabilities []CapabilityStatus  `json:"capabilities"`
	Translator   []TranslatorSupport `json:"translator"`
}

type SavedSummary struct {
	URL     string    `json:"url"`
	Summary string    `json:"summary"`
	Date    time.Time `json:"date"`
}

type SaveSummaryReq struct {
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

type SavedSummariesResp struct {
	Items []SavedSummary `json:"items"`
	Total int            `json:"total"`
}

type ExportSummaryReq struct {
	Summary string `json:"summary"`
}

type MenuItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Contexts []string `json:"contexts"`
}

type MenuItemsResp struct {
	Items []MenuItem `json:"items"`
}

type Tab struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

type MenuActionReq struct {
	Action        string `json:"action"`
	SelectionText string `json:"selectionText,omitempty"`
	Tab           Tab    `json:"tab"`
}

type MenuActionResp struct {
	State       string   `json:"state"`
	Operation   string   `json:"operation,omitempty"`
	Message     string   `json:"message,omitempty"`
	IsError     bool     `json:"isError"`
	Transitions []string `json:"transitions"`
}
