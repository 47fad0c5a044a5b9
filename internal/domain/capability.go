package domain

import (
	"context"
	"sort"
	"strings"
)

// CapabilityName identifies a host-provided AI operation.
type CapabilityName string

const (
	CapabilityName_Summarizer       CapabilityName = "summarizer"
	CapabilityName_Translator       CapabilityName = "translator"
	CapabilityName_LanguageDetector CapabilityName = "languageDetector"
	CapabilityName_Proofreader      CapabilityName = "proofreader"
	CapabilityName_Writer           CapabilityName = "writer"
	CapabilityName_Rewriter         CapabilityName = "rewriter"
	CapabilityName_PromptModel      CapabilityName = "promptModel"
)

// AllCapabilityNames lists every capability in the order the UI presents them.
var AllCapabilityNames = []CapabilityName{
	CapabilityName_Summarizer,
	CapabilityName_Translator,
	CapabilityName_LanguageDetector,
	CapabilityName_Proofreader,
	CapabilityName_Writer,
	CapabilityName_Rewriter,
	CapabilityName_PromptModel,
}

// Tier is the preference ranking among alternative implementations of a capability.
type Tier string

const (
	// Tier_Specialized is a host API dedicated to the capability.
	Tier_Specialized Tier = "specialized"
	// Tier_GeneralPurpose is the general prompt model driven by a task prompt.
	Tier_GeneralPurpose Tier = "general"
	// Tier_Demo is the deterministic, non-AI stand-in.
	Tier_Demo Tier = "demo"
)

// Descriptor parameter names.
const (
	Param_SourceLanguage = "sourceLanguage"
	Param_TargetLanguage = "targetLanguage"
	Param_Tone           = "tone"
	Param_Length         = "length"
	Param_Format         = "format"
	Param_Type           = "type"
	Param_SharedContext  = "sharedContext"
	Param_OutputLanguage = "outputLanguage"
	Param_Modality       = "modality"
)

// CapabilityDescriptor names a capability, the options it is created with and the tier
// that should serve it. A descriptor is a value: With* methods return copies.
type CapabilityDescriptor struct {
	Name       CapabilityName
	Parameters map[string]string
	Tier       Tier
}

// NewCapabilityDescriptor creates a descriptor for the given capability and tier.
func NewCapabilityDescriptor(name CapabilityName, tier Tier, params map[string]string) CapabilityDescriptor {
	cp := make(map[string]string, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		cp[k] = v
	}
	return CapabilityDescriptor{Name: name, Parameters: cp, Tier: tier}
}

// Param returns the value of the named parameter or an empty string.
func (d CapabilityDescriptor) Param(name string) string {
	if d.Parameters == nil {
		return ""
	}
	return d.Parameters[name]
}

// WithTier returns a copy of the descriptor targeting another tier.
func (d CapabilityDescriptor) WithTier(tier Tier) CapabilityDescriptor {
	return NewCapabilityDescriptor(d.Name, tier, d.Parameters)
}

// WithParam returns a copy of the descriptor with the parameter set.
func (d CapabilityDescriptor) WithParam(name, value string) CapabilityDescriptor {
	cp := NewCapabilityDescriptor(d.Name, d.Tier, d.Parameters)
	if value == "" {
		delete(cp.Parameters, name)
		return cp
	}
	cp.Parameters[name] = value
	return cp
}

// Key returns the identity used to memoize sessions. Two descriptors that differ in any
// parameter never share a key.
func (d CapabilityDescriptor) Key() string {
	keys := make([]string, 0, len(d.Parameters))
	for k := range d.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(string(d.Name))
	b.WriteString("@")
	b.WriteString(string(d.Tier))
	for _, k := range keys {
		b.WriteString(";")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(d.Parameters[k])
	}
	return b.String()
}

// IsSameLanguageTranslation reports whether the descriptor is a translator whose source
// and target languages are the same, which needs no host call at all.
func (d CapabilityDescriptor) IsSameLanguageTranslation() bool {
	if d.Name != CapabilityName_Translator {
		return false
	}
	src := strings.ToLower(d.Param(Param_SourceLanguage))
	dst := strings.ToLower(d.Param(Param_TargetLanguage))
	return src != "" && src == dst
}

// CapabilityInput is the content handed to a session.
type CapabilityInput struct {
	Text          string
	Image         []byte
	ImageMIMEType string
}

// HasImage reports whether the input carries image bytes.
func (ci CapabilityInput) HasImage() bool {
	return len(ci.Image) > 0
}

// LanguageDetection is a single candidate returned by a language detector.
type LanguageDetection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// CapabilityOutput is what a session produced.
type CapabilityOutput struct {
	Text       string
	Detections []LanguageDetection
}

// IsEmpty reports whether the output carries nothing usable.
func (co CapabilityOutput) IsEmpty() bool {
	return strings.TrimSpace(co.Text) == "" && len(co.Detections) == 0
}

// Session is a stateful handle to a capability created by a CapabilityHost.
type Session interface {
	// Invoke runs the capability on the input.
	Invoke(ctx context.Context, input CapabilityInput) (CapabilityOutput, error)
}

// StreamingSession is a Session that can also produce incremental results. Every chunk
// passed to onChunk is the cumulative output so far.
type StreamingSession interface {
	Session
	InvokeStreaming(ctx context.Context, input CapabilityInput, onChunk func(chunk string) error) error
}

// ProgressObserver receives model download progress as a fraction between 0 and 1.
type ProgressObserver interface {
	OnProgress(fraction float64)
}

// ProgressObserverFunc adapts a function to ProgressObserver.
type ProgressObserverFunc func(fraction float64)

// OnProgress calls f(fraction).
func (f ProgressObserverFunc) OnProgress(fraction float64) {
	f(fraction)
}

// NoopProgressObserver discards progress events.
var NoopProgressObserver ProgressObserver = ProgressObserverFunc(func(float64) {})

// CapabilityHost is the host-side implementation of one capability tier.
type CapabilityHost interface {
	// Availability returns the raw host availability string ("available", "downloadable",
	// "downloading" or "unavailable") for the descriptor parameters.
	Availability(ctx context.Context, d CapabilityDescriptor) (string, error)
	// Create builds a session, reporting model download progress to the observer.
	Create(ctx context.Context, d CapabilityDescriptor, observer ProgressObserver) (Session, error)
}

// CapabilityRegistry resolves the host serving a capability at a given tier.
type CapabilityRegistry interface {
	Lookup(name CapabilityName, tier Tier) (CapabilityHost, bool)
}
