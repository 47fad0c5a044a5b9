package modelrunner

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/cleitonmarx/symbiont-smartread/internal/adapters/outbound/langdetect"
	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

type registryKey struct {
	name domain.CapabilityName
	tier domain.Tier
}

// Registry maps capability tiers to their hosts. It is filled at startup and read-only
// afterwards.
type Registry struct {
	hosts map[registryKey]domain.CapabilityHost
}

// NewRegistry creates an empty Registry.
func NewRegistry() Registry {
	return Registry{hosts: map[registryKey]domain.CapabilityHost{}}
}

// Register sets the host of a capability tier.
func (r Registry) Register(name domain.CapabilityName, tier domain.Tier, host domain.CapabilityHost) {
	r.hosts[registryKey{name, tier}] = host
}

// Lookup implements domain.CapabilityRegistry.
func (r Registry) Lookup(name domain.CapabilityName, tier domain.Tier) (domain.CapabilityHost, bool) {
	h, ok := r.hosts[registryKey{name, tier}]
	return h, ok
}

// InitCapabilityRegistry registers the capability hosts of the model runner and the
// in-process language detector.
type InitCapabilityRegistry struct {
	HttpClient       *http.Client `resolve:""`
	Logger           *log.Logger  `resolve:""`
	LLMHost          string       `config:"LLM_MODEL_HOST"`
	LLMToken         string       `config:"LLM_MODEL_TOKEN" default:"-"`
	PromptModel      string       `config:"LLM_PROMPT_MODEL" default:"ai/gemma3"`
	SummarizerModel  string       `config:"LLM_SUMMARIZER_MODEL" default:"-"`
	TranslatorModel  string       `config:"LLM_TRANSLATOR_MODEL" default:"-"`
	ProofreaderModel string       `config:"LLM_PROOFREADER_MODEL" default:"-"`
	WriterModel      string       `config:"LLM_WRITER_MODEL" default:"-"`
	RewriterModel    string       `config:"LLM_REWRITER_MODEL" default:"-"`
	AllowModelPull   string       `config:"LLM_ALLOW_MODEL_PULL" default:"true"`
	DetectorEnabled  string       `config:"LANGUAGE_DETECTOR_ENABLED" default:"true"`
}

// Initialize registers the CapabilityRegistry.
func (i InitCapabilityRegistry) Initialize(ctx context.Context) (context.Context, error) {
	allowPull, err := strconv.ParseBool(i.AllowModelPull)
	if err != nil {
		return ctx, err
	}
	detectorEnabled, err := strconv.ParseBool(i.DetectorEnabled)
	if err != nil {
		return ctx, err
	}

	token := i.LLMToken
	if token == "-" {
		token = ""
	}
	client := NewRunnerClient(i.LLMHost, token, i.HttpClient)
	registry := NewRegistry()

	specialized := map[domain.CapabilityName]string{
		domain.CapabilityName_Summarizer:  i.SummarizerModel,
		domain.CapabilityName_Translator:  i.TranslatorModel,
		domain.CapabilityName_Proofreader: i.ProofreaderModel,
		domain.CapabilityName_Writer:      i.WriterModel,
		domain.CapabilityName_Rewriter:    i.RewriterModel,
	}
	for name, model := range specialized {
		// An absent specialized host means the API is not supported at all.
		if model == "" || model == ModelNotInstalled {
			continue
		}
		registry.Register(name, domain.Tier_Specialized, NewCapabilityHost(client, model, allowPull))
	}

	if i.PromptModel != "" && i.PromptModel != ModelNotInstalled {
		general := NewCapabilityHost(client, i.PromptModel, allowPull)
		for _, name := range domain.AllCapabilityNames {
			registry.Register(name, domain.Tier_GeneralPurpose, general)
		}
	}

	registry.Register(domain.CapabilityName_LanguageDetector, domain.Tier_Specialized, langdetect.NewHost(detectorEnabled))

	i.Logger.Printf("CapabilityRegistry: %d capability hosts registered", len(registry.hosts))
	depend.Register[domain.CapabilityRegistry](registry)
	return ctx, nil
}
