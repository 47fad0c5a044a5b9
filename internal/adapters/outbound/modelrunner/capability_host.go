package modelrunner

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ModelNotInstalled is the model name that marks a capability tier as absent.
const ModelNotInstalled = "-"

// CapabilityHost serves a capability tier with one model of the model runner.
type CapabilityHost struct {
	client    RunnerClient
	model     string
	allowPull bool
}

// NewCapabilityHost creates a new host for the model. allowPull lets Create pull a model
// that is not present locally.
func NewCapabilityHost(client RunnerClient, model string, allowPull bool) CapabilityHost {
	return CapabilityHost{client: client, model: model, allowPull: allowPull}
}

// Availability implements domain.CapabilityHost.
func (h CapabilityHost) Availability(ctx context.Context, d domain.CapabilityDescriptor) (string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.CapabilityKey.String(string(d.Name)),
		attribute.String("model", h.model),
	))
	defer span.End()

	if h.model == "" || h.model == ModelNotInstalled {
		return "unavailable", nil
	}

	present, err := h.isPresent(spanCtx)
	if IsNotFound(err) {
		// The runner is up but has no inference engine enabled.
		span.AddEvent("engine not found")
		return "unavailable", nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	switch {
	case present:
		return "available", nil
	case h.allowPull:
		return "downloadable", nil
	default:
		return "unavailable", nil
	}
}

// Create implements domain.CapabilityHost. A missing model is pulled first, reporting the
// download progress to the observer.
func (h CapabilityHost) Create(ctx context.Context, d domain.CapabilityDescriptor, observer domain.ProgressObserver) (domain.Session, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.CapabilityKey.String(string(d.Name)),
		attribute.String("model", h.model),
	))
	defer span.End()

	p, err := loadPrompt(promptName(d))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	present, err := h.isPresent(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !present {
		if !h.allowPull {
			err := fmt.Errorf("model %s is not available", h.model)
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		err = h.client.PullModel(spanCtx, h.model, func(e PullEvent) {
			if observer != nil {
				observer.OnProgress(e.Fraction())
			}
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
	}

	return Session{
		client:     h.client,
		model:      h.model,
		descriptor: d,
		prompt:     p,
	}, nil
}

func (h CapabilityHost) isPresent(ctx context.Context) (bool, error) {
	models, err := h.client.ListModels(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list models: %w", err)
	}
	return slices.ContainsFunc(models, func(id string) bool {
		return id == h.model || strings.TrimSuffix(id, ":latest") == h.model
	}), nil
}

// Session is a capability session bound to a model and a rendered prompt.
type Session struct {
	client     RunnerClient
	model      string
	descriptor domain.CapabilityDescriptor
	prompt     prompt
}

// Invoke implements domain.Session.
func (s Session) Invoke(ctx context.Context, input domain.CapabilityInput) (domain.CapabilityOutput, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.CapabilityKey.String(string(s.descriptor.Name)),
		attribute.String("model", s.model),
	))
	defer span.End()

	req, err := s.chatRequest(input)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CapabilityOutput{}, err
	}

	resp, err := s.client.Chat(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CapabilityOutput{}, err
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CapabilityOutput{}, err
	}

	out, err := s.output(resp.Choices[0].Message.Content)
	telemetry.RecordErrorAndStatus(span, err)
	return out, err
}

// InvokeStreaming implements domain.StreamingSession. onChunk receives the cumulative text.
func (s Session) InvokeStreaming(ctx context.Context, input domain.CapabilityInput, onChunk func(chunk string) error) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.CapabilityKey.String(string(s.descriptor.Name)),
		attribute.String("model", s.model),
	))
	defer span.End()

	req, err := s.chatRequest(input)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	var sb strings.Builder
	err = s.client.ChatStream(spanCtx, req, func(chunk StreamChunk) error {
		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			sb.WriteString(choice.Delta.Content)
			if err := onChunk(sb.String()); err != nil {
				return err
			}
		}
		return nil
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

func (s Session) chatRequest(input domain.CapabilityInput) (ChatRequest, error) {
	messages, err := s.prompt.render(s.descriptor, input)
	if err != nil {
		return ChatRequest{}, err
	}
	return ChatRequest{
		Model:          s.model,
		Messages:       messages,
		ResponseFormat: s.prompt.responseFormat(),
	}, nil
}

func (s Session) output(content string) (domain.CapabilityOutput, error) {
	content = strings.TrimSpace(content)
	if s.descriptor.Name != domain.CapabilityName_LanguageDetector {
		return domain.CapabilityOutput{Text: content}, nil
	}

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return domain.CapabilityOutput{}, fmt.Errorf("unexpected detector answer: %q", content)
	}
	var detections []domain.LanguageDetection
	if err := json.Unmarshal([]byte(content[start:end+1]), &detections); err != nil {
		return domain.CapabilityOutput{}, fmt.Errorf("unmarshal detections: %w", err)
	}
	slices.SortStableFunc(detections, func(a, b domain.LanguageDetection) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		}
		return 0
	})
	return domain.CapabilityOutput{Detections: detections}, nil
}

func dataURL(mime string, data []byte) string {
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
