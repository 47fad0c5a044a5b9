package domain

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ComposeOverlayScript is the content script that renders the compose overlay.
const ComposeOverlayScript = "compose-overlay.js"

// ErrPageNotConnected is returned when a page or the browser bridge has no live connection.
var ErrPageNotConnected = errors.New("page is not connected")

// PageTab identifies a browser tab.
type PageTab struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// PageMessage is a message sent to the content script of a tab.
type PageMessage struct {
	Type OperationType `json:"type"`
	Mode string        `json:"mode,omitempty"`
}

// PageSurface is the way back to the user: the browser bridge executes scripts in tabs,
// content scripts receive messages.
type PageSurface interface {
	// ShowMessage shows an alert in the tab.
	ShowMessage(ctx context.Context, tab PageTab, message string, isError bool) error
	// ReplaceSelection replaces the current selection of the tab with text.
	ReplaceSelection(ctx context.Context, tab PageTab, text string) error
	// SendToContent sends a message to the content script of the tab.
	SendToContent(ctx context.Context, tab PageTab, msg PageMessage) error
	// InjectContentScript asks the browser bridge to load a content script in the tab.
	InjectContentScript(ctx context.Context, tab PageTab, script string) error
	// OpenPopup asks the browser bridge to open the popup surface.
	OpenPopup(ctx context.Context) error
}

// IsScriptableURL reports whether scripts can be injected in a page with the given URL.
// Only http and https pages are scriptable.
func IsScriptableURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

var restrictedURLRe = regexp.MustCompile(`(?i)^(chrome|edge)://|chrome\.google\.com/webstore`)

// IsRestrictedURL reports whether a page is one the browser forbids extensions to read.
func IsRestrictedURL(raw string) bool {
	return restrictedURLRe.MatchString(strings.TrimSpace(raw))
}

// PageDocument is the text of a page, used for batch summarization.
type PageDocument struct {
	Title string
	URL   string
	Text  string
}

// PageHeading is a heading extracted from a page.
type PageHeading struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// PageImage is an image referenced by a page.
type PageImage struct {
	Src   string `json:"src"`
	Alt   string `json:"alt,omitempty"`
	Title string `json:"title,omitempty"`
}

// PageContext is the metadata extracted from a page to ground structured summaries.
type PageContext struct {
	Title    string            `json:"title"`
	Meta     map[string]string `json:"meta,omitempty"`
	Headings []PageHeading     `json:"headings,omitempty"`
	Images   []PageImage       `json:"images,omitempty"`
}

// StructuredSummary is the structured output of the summary prompt.
type StructuredSummary struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	Sentiment   string   `json:"sentiment"`
	Category    string   `json:"category,omitempty"`
	ReadingTime float64  `json:"readingTime,omitempty"`
	ActionItems []string `json:"actionItems,omitempty"`
}

var validSentiments = map[string]bool{"positive": true, "negative": true, "neutral": true, "mixed": true}

// Normalize enforces the structured summary constraints: at most five key points and a
// sentiment within the allowed set.
func (s StructuredSummary) Normalize() StructuredSummary {
	if s.Title == "" {
		s.Title = "Summary"
	}
	if len(s.KeyPoints) > 5 {
		s.KeyPoints = s.KeyPoints[:5]
	}
	if s.KeyPoints == nil {
		s.KeyPoints = []string{}
	}
	s.Sentiment = strings.ToLower(strings.TrimSpace(s.Sentiment))
	if !validSentiments[s.Sentiment] {
		s.Sentiment = "neutral"
	}
	return s
}
