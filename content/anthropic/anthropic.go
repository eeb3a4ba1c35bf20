// Package anthropic provides a content.Provider backed by the Anthropic
// Messages API.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
)

// Compile time check to ensure Provider satisfies the content.Provider interface.
var _ content.Provider = (*Provider)(nil)

// Options configures the Anthropic content provider (temperature, model id,
// max tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Provider wraps the Anthropic Messages API behind the generic
// content.Provider interface.
type Provider struct {
	client *anthropic.Client
	opts   Options
}

// New creates a new Anthropic content provider using the official client.
func New(optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   1024,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Provider{
		client: &client,
		opts:   opts,
	}
}

// NewFromClient creates a new Anthropic content provider from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   1024,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Provider{
		client: client,
		opts:   opts,
	}
}

// Name implements content.Provider.
func (p *Provider) Name() string {
	return "anthropic"
}

// complete issues a single message request and returns the concatenated text
// blocks of the response.
func (p *Provider) complete(ctx context.Context, system string, messages []anthropic.MessageParam) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       p.opts.Model,
		Messages:    messages,
		MaxTokens:   p.opts.MaxTokens,
		Temperature: anthropic.Float(p.opts.Temperature),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", core.Errorf(core.ErrorKindProvider, "anthropic api error: %v", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}
	if text == "" {
		return "", core.Errorf(core.ErrorKindProvider, "anthropic returned no content")
	}
	return text, nil
}

func (p *Provider) completeJSON(ctx context.Context, system, user string) (string, error) {
	return p.complete(ctx, system, []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
	})
}

// MusicForMood implements content.Provider.
func (p *Provider) MusicForMood(ctx context.Context, mood string) (content.MusicContent, error) {
	system, user := content.MusicPrompt(mood)
	raw, err := p.completeJSON(ctx, system, user)
	if err != nil {
		return content.MusicContent{}, err
	}
	return content.ParseMusicJSON(raw)
}

// NutritionPlan implements content.Provider.
func (p *Provider) NutritionPlan(ctx context.Context, mood string, preferences map[string]any) (content.NutritionPlan, error) {
	system, user := content.NutritionPrompt(mood, preferences)
	raw, err := p.completeJSON(ctx, system, user)
	if err != nil {
		return content.NutritionPlan{}, err
	}
	return content.ParseNutritionJSON(raw)
}

// WorkoutPlan implements content.Provider.
func (p *Provider) WorkoutPlan(ctx context.Context, mood string, energyLevel, timeBudget int) (content.WorkoutPlan, error) {
	system, user := content.WorkoutPrompt(mood, energyLevel, timeBudget)
	raw, err := p.completeJSON(ctx, system, user)
	if err != nil {
		return content.WorkoutPlan{}, err
	}
	return content.ParseWorkoutJSON(raw)
}

// WorkoutVideos implements content.Provider. Video recommendations come from
// the curated catalog rather than a completion so URLs stay real.
func (p *Provider) WorkoutVideos(_ context.Context, mood string) ([]content.WorkoutVideo, error) {
	return content.FallbackWorkoutVideos(mood), nil
}

// MentalWellnessSupport implements content.Provider.
func (p *Provider) MentalWellnessSupport(ctx context.Context, mood string, stressLevel int) (content.MentalSupport, error) {
	system, user := content.MentalSupportPrompt(mood, stressLevel)
	raw, err := p.completeJSON(ctx, system, user)
	if err != nil {
		return content.MentalSupport{}, err
	}
	return content.ParseMentalSupportJSON(raw)
}

// WellnessSuggestions implements content.Provider.
func (p *Provider) WellnessSuggestions(ctx context.Context, summary string) ([]string, error) {
	system, user := content.SuggestionsPrompt(summary)
	raw, err := p.completeJSON(ctx, system, user)
	if err != nil {
		return nil, err
	}
	return content.ParseSuggestionsJSON(raw)
}

// ConversationReply implements content.Provider.
func (p *Provider) ConversationReply(ctx context.Context, agentName, message string, history []core.ChatMessage, uc core.UserContext) (string, error) {
	var messages []anthropic.MessageParam
	for _, msg := range content.TailHistory(history) {
		switch msg.Role {
		case "user":
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case "assistant":
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(message)))
	return p.complete(ctx, content.AgentPersonaPrompt(agentName, uc), messages)
}

// ExtractIntent implements content.Provider.
func (p *Provider) ExtractIntent(ctx context.Context, message, agentName string) (core.ChatIntent, error) {
	raw, err := p.completeJSON(ctx, content.IntentPrompt(agentName), message)
	if err != nil {
		return core.ChatIntent{}, err
	}
	return content.ParseIntentJSON(raw)
}
