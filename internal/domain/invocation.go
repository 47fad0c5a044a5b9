package domain

// DefaultSizeLadder is the descending list of input sizes tried after a full-input failure.
var DefaultSizeLadder = []int{2500, 1500, 800}

const (
	// DefaultMaxInput caps the first attempt.
	DefaultMaxInput = 4000
	// DefaultStreamingSize is the input size of the streaming attempt.
	DefaultStreamingSize = 2000
)

// DemoResponder builds the deterministic placeholder returned when no tier can serve a
// request. It receives the (possibly empty) input text.
type DemoResponder func(text string) string

// InvocationConstraints tunes the degrading retry ladder.
type InvocationConstraints struct {
	// MaxInput clips the first attempt. Zero means DefaultMaxInput, negative means no clip.
	MaxInput int
	// SizeLadder lists the truncation sizes to try in order after the first failure.
	SizeLadder []int
	// AllowStreaming enables the streaming attempt.
	AllowStreaming bool
	// StreamingSize is the input size used for the streaming attempt. Zero means
	// DefaultStreamingSize, negative means the full input.
	StreamingSize int
	// MinLength is the minimum trimmed input length, in runes.
	MinLength int
}

// DefaultInvocationConstraints returns the constraints used by text capabilities.
func DefaultInvocationConstraints() InvocationConstraints {
	return InvocationConstraints{
		MaxInput:       DefaultMaxInput,
		SizeLadder:     append([]int(nil), DefaultSizeLadder...),
		AllowStreaming: true,
		StreamingSize:  DefaultStreamingSize,
		MinLength:      1,
	}
}

// SingleShotConstraints returns constraints without truncation or streaming, used when
// shrinking the input would change the meaning of the result (proofreading, image prompts).
func SingleShotConstraints() InvocationConstraints {
	return InvocationConstraints{MaxInput: -1, MinLength: 1}
}

// WholeInputConstraints keeps the full input on every attempt, streaming included. Used
// when a clipped input would return a partial result that looks complete (translation,
// rewriting).
func WholeInputConstraints() InvocationConstraints {
	return InvocationConstraints{MaxInput: -1, AllowStreaming: true, StreamingSize: -1, MinLength: 1}
}

// InvocationRequest is what the DegradingInvoker runs against a session.
type InvocationRequest struct {
	Input       CapabilityInput
	Constraints InvocationConstraints
	Demo        DemoResponder
	// Status receives human-readable progress of long-running invocations. Optional.
	Status StatusFunc
}

// StatusFunc receives status messages such as "Generating summary...".
type StatusFunc func(message string)

// Report calls f when it is set.
func (f StatusFunc) Report(message string) {
	if f != nil {
		f(message)
	}
}

// ResultKind tells how an invocation ended.
type ResultKind string

const (
	ResultKind_Success ResultKind = "success"
	ResultKind_Demo    ResultKind = "demo"
	ResultKind_Failure ResultKind = "failure"
)

// InvocationResult is the value produced by every capability operation.
type InvocationResult struct {
	Kind      ResultKind
	Output    CapabilityOutput
	Tier      Tier
	Reason    string
	ErrorKind ErrorKind
	// InputSize is the size, in runes, of the input that produced the output.
	InputSize int
}

// Text returns the textual output.
func (r InvocationResult) Text() string {
	return r.Output.Text
}

// IsDemo reports whether the result is a demo placeholder.
func (r InvocationResult) IsDemo() bool {
	return r.Kind == ResultKind_Demo
}

// SuccessResult builds a success result.
func SuccessResult(tier Tier, out CapabilityOutput, inputSize int) InvocationResult {
	return InvocationResult{Kind: ResultKind_Success, Output: out, Tier: tier, InputSize: inputSize}
}

// DemoResult builds a demo result tagged with the reason that triggered it.
func DemoResult(text, reason string) InvocationResult {
	return InvocationResult{
		Kind:   ResultKind_Demo,
		Output: CapabilityOutput{Text: text},
		Tier:   Tier_Demo,
		Reason: reason,
	}
}

// FailureResult builds a failure result.
func FailureResult(kind ErrorKind, reason string) InvocationResult {
	return InvocationResult{Kind: ResultKind_Failure, ErrorKind: kind, Reason: reason}
}

// TruncateRunes returns at most n runes of s. A negative n returns s unchanged.
func TruncateRunes(s string, n int) string {
	if n < 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
