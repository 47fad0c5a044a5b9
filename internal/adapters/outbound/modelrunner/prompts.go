package modelrunner

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/*.yml prompts/*.json
var promptFS embed.FS

// promptMessage is one message of a prompt file.
type promptMessage struct {
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
}

// prompt is a parsed prompt file. Message contents are templates over the descriptor
// parameters; "input" is the text handed to the session.
type prompt struct {
	name      string
	roles     []string
	templates []*template.Template
	hasInput  bool
	schema    json.RawMessage
}

// loadPrompt reads prompts/<name>.yml and, when present, prompts/<name>.schema.json.
func loadPrompt(name string) (prompt, error) {
	b, err := promptFS.ReadFile("prompts/" + name + ".yml")
	if err != nil {
		return prompt{}, fmt.Errorf("failed to open %s prompt: %w", name, err)
	}

	var messages []promptMessage
	if err := yaml.Unmarshal(b, &messages); err != nil {
		return prompt{}, fmt.Errorf("failed to decode %s prompt: %w", name, err)
	}

	p := prompt{name: name}
	for i, m := range messages {
		t, err := template.New(fmt.Sprintf("%s-%d", name, i)).Option("missingkey=zero").Parse(m.Content)
		if err != nil {
			return prompt{}, fmt.Errorf("failed to parse %s prompt: %w", name, err)
		}
		p.roles = append(p.roles, m.Role)
		p.templates = append(p.templates, t)
		p.hasInput = p.hasInput || strings.Contains(m.Content, ".input")
	}

	if schema, err := promptFS.ReadFile("prompts/" + name + ".schema.json"); err == nil {
		p.schema = schema
	}
	return p, nil
}

// render builds the chat messages for an input. The input is appended as a user message
// unless the prompt places it itself.
func (p prompt) render(d domain.CapabilityDescriptor, input domain.CapabilityInput) ([]ChatMessage, error) {
	vars := promptVars(d)
	vars["input"] = input.Text

	messages := make([]ChatMessage, 0, len(p.templates)+1)
	for i, t := range p.templates {
		var buf bytes.Buffer
		if err := t.Execute(&buf, vars); err != nil {
			return nil, fmt.Errorf("failed to render %s prompt: %w", p.name, err)
		}
		messages = append(messages, ChatMessage{Role: p.roles[i], Content: strings.TrimSpace(buf.String())})
	}

	if !p.hasInput || input.HasImage() {
		messages = append(messages, userMessage(input))
	}
	return messages, nil
}

// responseFormat returns the JSON schema constraint of the prompt, if any.
func (p prompt) responseFormat() *ResponseFormat {
	if len(p.schema) == 0 {
		return nil
	}
	return &ResponseFormat{
		Type:       "json_schema",
		JSONSchema: &JSONSchema{Name: strings.ReplaceAll(p.name, "-", "_"), Strict: true, Schema: p.schema},
	}
}

func userMessage(input domain.CapabilityInput) ChatMessage {
	if !input.HasImage() {
		return ChatMessage{Role: "user", Content: input.Text}
	}
	return ChatMessage{Role: "user", Parts: []ContentPart{
		{Type: "image_url", ImageURL: &ImageURL{URL: dataURL(input.ImageMIMEType, input.Image)}},
		{Type: "text", Text: input.Text},
	}}
}

var promptDefaults = map[string]string{
	domain.Param_Type:           "key-points",
	domain.Param_Format:         "markdown",
	domain.Param_Length:         "medium",
	domain.Param_Tone:           "neutral",
	domain.Param_OutputLanguage: "en",
	domain.Param_SourceLanguage: "en",
}

func promptVars(d domain.CapabilityDescriptor) map[string]string {
	vars := make(map[string]string, len(promptDefaults)+len(d.Parameters)+3)
	for k, v := range promptDefaults {
		vars[k] = v
	}
	for k, v := range d.Parameters {
		vars[k] = v
	}
	vars["outputLanguageName"] = domain.LanguageName(vars[domain.Param_OutputLanguage])
	vars["sourceLanguageName"] = domain.LanguageName(vars[domain.Param_SourceLanguage])
	if target := vars[domain.Param_TargetLanguage]; target != "" {
		vars["targetLanguageName"] = domain.LanguageName(target)
	}
	return vars
}

// promptName returns the prompt file serving a descriptor.
func promptName(d domain.CapabilityDescriptor) string {
	switch d.Name {
	case domain.CapabilityName_Summarizer:
		return "summarizer"
	case domain.CapabilityName_Translator:
		return "translator"
	case domain.CapabilityName_Proofreader:
		return "proofreader"
	case domain.CapabilityName_Writer:
		return "writer"
	case domain.CapabilityName_Rewriter:
		return "rewriter"
	case domain.CapabilityName_LanguageDetector:
		return "language-detector"
	}
	switch {
	case d.Param(domain.Param_Type) == "structured-summary":
		return "structured-summary"
	case d.Param(domain.Param_Modality) == "image":
		return "image"
	}
	return "prompt"
}
