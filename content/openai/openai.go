// Package openai provides a content.Provider backed by the OpenAI Chat
// Completions API. Each capability issues a single completion with a JSON
// response contract and parses the result tolerantly; failures carry
// core.ErrorKindProvider so agents can substitute the deterministic fallback
// values.
package openai

import (
	"context"

	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
	"github.com/openai/openai-go"
)

// Compile time check to ensure Provider satisfies the content.Provider interface.
var _ content.Provider = (*Provider)(nil)

// Options configure the OpenAI content provider.
// Fields mirror a subset of Chat Completion parameters intentionally kept
// minimal; extend via functional options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Provider wraps the OpenAI Chat Completions API behind the generic
// content.Provider interface.
type Provider struct {
	client *openai.Client
	opts   Options
}

// New creates a new OpenAI content provider using the official client.
func New(optFns ...func(o *Options)) *Provider {
	client := openai.NewClient()
	return NewFromClient(&client, optFns...)
}

// NewFromClient creates a new OpenAI content provider from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 1024,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Provider{client: client, opts: opts}
}

// Name implements content.Provider.
func (p *Provider) Name() string {
	return "openai"
}

// complete issues a single non-streaming completion and returns the raw text.
func (p *Provider) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               p.opts.Model,
		Temperature:         openai.Float(p.opts.Temperature),
		MaxCompletionTokens: openai.Int(p.opts.MaxCompletionTokens),
	})
	if err != nil {
		return "", core.Errorf(core.ErrorKindProvider, "openai api error: %v", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", core.Errorf(core.ErrorKindProvider, "openai returned no content")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *Provider) completeJSON(ctx context.Context, system, user string) (string, error) {
	return p.complete(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(system),
		openai.UserMessage(user),
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
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(content.AgentPersonaPrompt(agentName, uc)),
	}
	for _, msg := range content.TailHistory(history) {
		switch msg.Role {
		case "user":
			messages = append(messages, openai.UserMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))
	return p.complete(ctx, messages)
}

// ExtractIntent implements content.Provider.
func (p *Provider) ExtractIntent(ctx context.Context, message, agentName string) (core.ChatIntent, error) {
	raw, err := p.completeJSON(ctx, content.IntentPrompt(agentName), message)
	if err != nil {
		return core.ChatIntent{}, err
	}
	return content.ParseIntentJSON(raw)
}
