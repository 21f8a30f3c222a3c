package generate

import (
	"context"
	"errors"
	neturl "net/url"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	appcfg "github.com/studypal/core/internal/config"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
	jetopenai "go.jetify.com/ai/provider/openai"
)

// Completer is the external language-model completion service. An empty
// result with a nil error means the model returned no text; the orchestrator
// substitutes a placeholder.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type providerCompleter struct {
	cfg appcfg.AIConfig
}

// NewCompleter returns a Completer backed by the configured providers.
func NewCompleter(cfg appcfg.AIConfig) Completer {
	return &providerCompleter{cfg: cfg}
}

func (p *providerCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	provider := selectProvider(p.cfg)
	if provider == nil {
		return "", errors.New("no enabled AI provider configured")
	}

	model, err := buildLanguageModel(provider)
	if err != nil {
		return "", err
	}

	resp, err := jetai.GenerateText(
		ctx,
		buildPromptMessages(systemPrompt, userPrompt),
		jetai.WithModel(model),
		jetai.WithMaxOutputTokens(p.cfg.MaxOutputTokens),
	)
	if err != nil {
		return "", err
	}
	return textFromResponse(resp), nil
}

// selectProvider picks the assigned provider if configured, else the first
// enabled one.
func selectProvider(cfg appcfg.AIConfig) *appcfg.AIProvider {
	var providerID, overrideModel string
	if cfg.GenerateModel != nil {
		providerID = strings.TrimSpace(cfg.GenerateModel.ProviderID)
		overrideModel = strings.TrimSpace(cfg.GenerateModel.Model)
	}

	pick := func(provider appcfg.AIProvider) *appcfg.AIProvider {
		selected := provider
		if overrideModel != "" {
			selected.DefaultModel = overrideModel
		}
		return &selected
	}

	if providerID != "" {
		for _, provider := range cfg.Providers {
			if provider.Enabled && strings.TrimSpace(provider.ID) == providerID {
				return pick(provider)
			}
		}
	}
	for _, provider := range cfg.Providers {
		if provider.Enabled {
			return pick(provider)
		}
	}
	return nil
}

func buildLanguageModel(provider *appcfg.AIProvider) (jetapi.LanguageModel, error) {
	apiKey := strings.TrimSpace(provider.APIKey)
	if apiKey == "" {
		return nil, errors.New("AI provider api key is empty")
	}

	modelID := strings.TrimSpace(provider.DefaultModel)
	providerType := strings.ToLower(strings.TrimSpace(provider.Type))
	endpoint := strings.TrimSpace(provider.Endpoint)

	if providerType == "anthropic" {
		if modelID == "" {
			modelID = "claude-haiku-4-5-20251001"
		}

		opts := []anthropicoption.RequestOption{
			anthropicoption.WithAPIKey(apiKey),
			anthropicoption.WithMaxRetries(0),
		}
		if endpoint != "" {
			opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
		}

		client := anthropicclient.NewClient(opts...)
		return jetanthropic.NewLanguageModel(modelID, jetanthropic.WithClient(client)), nil
	}

	if modelID == "" {
		modelID = "gpt-4o"
	}

	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}

	client := openaiclient.NewClient(opts...)
	return jetopenai.NewLanguageModel(modelID, jetopenai.WithClient(client)), nil
}

func buildPromptMessages(systemPrompt, userPrompt string) []jetapi.Message {
	messages := make([]jetapi.Message, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, &jetapi.SystemMessage{Content: systemPrompt})
	}
	messages = append(messages, &jetapi.UserMessage{Content: jetapi.ContentFromText(userPrompt)})
	return messages
}

func textFromResponse(resp *jetapi.Response) string {
	if resp == nil {
		return ""
	}
	var full strings.Builder
	for _, block := range resp.Content {
		textBlock, ok := block.(*jetapi.TextBlock)
		if !ok || textBlock.Text == "" {
			continue
		}
		full.WriteString(textBlock.Text)
	}
	return full.String()
}

// normalizeOpenAIBaseURL ensures an OpenAI-compatible endpoint ends in /v1.
func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
