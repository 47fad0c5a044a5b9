// Package modelrunner talks to a local Docker Model Runner (an OpenAI-compatible
// chat-completions engine) and exposes its models as capability hosts.
//
// Only the assistant "content" of a completion is used; engine specific fields such as
// "reasoning_content" are ignored.
package modelrunner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	chatCompletionsPath = "/engines/v1/chat/completions"
	modelsPath          = "/engines/v1/models"
	createModelPath     = "/models/create"

	// maxLineSize bounds one SSE or progress line. Completions with embedded images can
	// exceed the bufio default.
	maxLineSize = 1 << 20
)

// StatusError is returned when the runner answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx response: %s: %s", e.Status, e.Body)
}

// IsNotFound reports whether err is a 404 from the runner, as returned for unknown models.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

// RunnerClient is a thin client for the model runner HTTP API.
type RunnerClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewRunnerClient creates a new client. An empty token sends no Authorization header.
func NewRunnerClient(baseURL string, token string, httpClient *http.Client) RunnerClient {
	return RunnerClient{
		baseURL: baseURL,
		token:   token,
		http:    httpClient,
	}
}

// ChunkCallback is called for each streaming chunk.
type ChunkCallback func(chunk StreamChunk) error

// PullProgressCallback is called for each progress event of a model pull.
type PullProgressCallback func(event PullEvent)

func validateChat(req ChatRequest) error {
	if req.Model == "" {
		return errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return errors.New("messages are required")
	}
	return nil
}

// Chat sends a non-streaming completion request.
func (c RunnerClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if err := validateChat(req); err != nil {
		return nil, err
	}
	req.Stream = false

	var out ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, chatCompletionsPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChatStream streams the completion, calling onChunk for each SSE data packet until the
// [DONE] marker.
func (c RunnerClient) ChatStream(ctx context.Context, req ChatRequest, onChunk ChunkCallback) error {
	if err := validateChat(req); err != nil {
		return err
	}
	req.Stream = true

	return c.streamLines(ctx, http.MethodPost, chatCompletionsPath, req, "text/event-stream", func(line string) (bool, error) {
		payload, ok := strings.CutPrefix(line, "data:")
		if !ok {
			return false, nil
		}
		payload = strings.TrimSpace(payload)
		if payload == "" || payload == "[DONE]" {
			return true, nil
		}

		var chunk StreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return false, nil // keep-alive comments and partial frames
		}
		return false, onChunk(chunk)
	})
}

// ListModels returns the ids of the models present on the runner.
func (c RunnerClient) ListModels(ctx context.Context) ([]string, error) {
	var out ModelsResponse
	if err := c.doJSON(ctx, http.MethodGet, modelsPath, nil, &out); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Data))
	for _, m := range out.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// PullModel downloads a model and reports the progress lines the runner streams back
// until the pull completes.
func (c RunnerClient) PullModel(ctx context.Context, model string, onProgress PullProgressCallback) error {
	if model == "" {
		return errors.New("model is required")
	}
	report := func(e PullEvent) {
		if onProgress != nil {
			onProgress(e)
		}
	}

	var pullErr error
	err := c.streamLines(ctx, http.MethodPost, createModelPath, PullRequest{From: model}, "", func(line string) (bool, error) {
		var event PullEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			return false, nil // plain text lines carry no progress
		}

		switch event.Type {
		case PullEventType_Error:
			pullErr = fmt.Errorf("pull %s: %s", model, event.Message)
			return true, nil
		case PullEventType_Success:
			report(PullEvent{Type: PullEventType_Success, Total: 1, Pulled: 1})
			return true, nil
		default:
			report(event)
			return false, nil
		}
	})
	if err != nil {
		return err
	}
	return pullErr
}

// doJSON sends body as JSON and decodes a 2xx response into out.
func (c RunnerClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// streamLines feeds each non-empty response line to onLine until it reports done.
func (c RunnerClient) streamLines(ctx context.Context, method, path string, body any, accept string, onLine func(line string) (done bool, err error)) error {
	resp, err := c.send(ctx, method, path, body, accept)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		done, err := onLine(line)
		if err != nil || done {
			return err
		}
	}
	return scanner.Err()
}

// send performs the request and turns non-2xx answers into a *StatusError.
func (c RunnerClient) send(ctx context.Context, method, path string, body any, accept string) (*http.Response, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close() //nolint:errcheck
		b, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: string(b)}
	}
	return resp, nil
}
