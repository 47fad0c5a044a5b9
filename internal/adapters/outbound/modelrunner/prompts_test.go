package modelrunner

import (
	"testing"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptName(t *testing.T) {
	tests := map[string]struct {
		descriptor domain.CapabilityDescriptor
		expected   string
	}{
		"summarizer": {
			descriptor: domain.NewCapabilityDescriptor(domain.CapabilityName_Summarizer, domain.Tier_GeneralPurpose, nil),
			expected:   "summarizer",
		},
		"language-detector": {
			descriptor: domain.NewCapabilityDescriptor(domain.CapabilityName_LanguageDetector, domain.Tier_GeneralPurpose, nil),
			expected:   "language-detector",
		},
		"structured-summary": {
			descriptor: domain.NewCapabilityDescriptor(domain.CapabilityName_PromptModel, domain.Tier_GeneralPurpose, map[string]string{
				domain.Param_Type: "structured-summary",
			}),
			expected: "structured-summary",
		},
		"image": {
			descriptor: domain.NewCapabilityDescriptor(domain.CapabilityName_PromptModel, domain.Tier_GeneralPurpose, map[string]string{
				domain.Param_Modality: "image",
			}),
			expected: "image",
		},
		"generic-prompt": {
			descriptor: domain.NewCapabilityDescriptor(domain.CapabilityName_PromptModel, domain.Tier_GeneralPurpose, nil),
			expected:   "prompt",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, promptName(tt.descriptor))
			_, err := loadPrompt(tt.expected)
			assert.NoError(t, err)
		})
	}
}

func TestPrompt_Render(t *testing.T) {
	t.Run("summarizer-appends-input", func(t *testing.T) {
		p, err := loadPrompt("summarizer")
		require.NoError(t, err)

		d := domain.NewCapabilityDescriptor(domain.CapabilityName_Summarizer, domain.Tier_Specialized, map[string]string{
			domain.Param_OutputLanguage: "es",
			domain.Param_SharedContext:  "Summarize research: problem, method, key findings, limitations.",
		})
		messages, err := p.render(d, domain.CapabilityInput{Text: "page text"})
		require.NoError(t, err)
		require.Len(t, messages, 2)

		assert.Equal(t, "system", messages[0].Role)
		assert.Contains(t, messages[0].Content, "Summary type: key-points. Length: medium. Format: markdown.")
		assert.Contains(t, messages[0].Content, "Context: Summarize research")
		assert.Contains(t, messages[0].Content, `starting with "* "`)
		assert.Contains(t, messages[0].Content, "Answer in Spanish.")
		assert.Equal(t, ChatMessage{Role: "user", Content: "page text"}, messages[1])
		assert.Nil(t, p.responseFormat())
	})

	t.Run("translator-language-names", func(t *testing.T) {
		p, err := loadPrompt("translator")
		require.NoError(t, err)

		d := domain.NewCapabilityDescriptor(domain.CapabilityName_Translator, domain.Tier_Specialized, map[string]string{
			domain.Param_SourceLanguage: "en",
			domain.Param_TargetLanguage: "ja",
		})
		messages, err := p.render(d, domain.CapabilityInput{Text: "Hello"})
		require.NoError(t, err)
		assert.Contains(t, messages[0].Content, "from English to Japanese")
	})

	t.Run("rewriter-places-input-itself", func(t *testing.T) {
		p, err := loadPrompt("rewriter")
		require.NoError(t, err)

		d := domain.NewCapabilityDescriptor(domain.CapabilityName_Rewriter, domain.Tier_Specialized, map[string]string{
			domain.Param_Tone: "more-formal",
		})
		messages, err := p.render(d, domain.CapabilityInput{Text: "gonna be late"})
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Contains(t, messages[0].Content, "Tone: more-formal, Length: medium.")
		assert.Equal(t, "user", messages[1].Role)
		assert.Contains(t, messages[1].Content, "gonna be late")
	})

	t.Run("image-input-is-multimodal", func(t *testing.T) {
		p, err := loadPrompt("image")
		require.NoError(t, err)

		d := domain.NewCapabilityDescriptor(domain.CapabilityName_PromptModel, domain.Tier_GeneralPurpose, map[string]string{
			domain.Param_Modality: "image",
		})
		messages, err := p.render(d, domain.CapabilityInput{
			Text:          "What is in this image?",
			Image:         []byte{0x89, 0x50, 0x4e, 0x47},
			ImageMIMEType: "image/png",
		})
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, []ContentPart{
			{Type: "image_url", ImageURL: &ImageURL{URL: "data:image/png;base64,iVBORw=="}},
			{Type: "text", Text: "What is in this image?"},
		}, messages[1].Parts)

		b, err := messages[1].MarshalJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"role":"user","content":[{"type":"image_url","image_url":{"url":"data:image/png;base64,iVBORw=="}},{"type":"text","text":"What is in this image?"}]}`, string(b))
	})

	t.Run("structured-summary-schema", func(t *testing.T) {
		p, err := loadPrompt("structured-summary")
		require.NoError(t, err)

		rf := p.responseFormat()
		require.NotNil(t, rf)
		assert.Equal(t, "json_schema", rf.Type)
		assert.Equal(t, "structured_summary", rf.JSONSchema.Name)
		assert.True(t, rf.JSONSchema.Strict)
		assert.Contains(t, string(rf.JSONSchema.Schema), `"keyPoints"`)
	})
}

func TestLoadPrompt_Unknown(t *testing.T) {
	_, err := loadPrompt("unknown")
	assert.ErrorContains(t, err, "failed to open unknown prompt")
}
