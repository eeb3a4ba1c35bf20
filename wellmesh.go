// Package wellmesh provides a high-level façade over the orchestration engine
// and the wellness agents. Most applications interact with this package by:
//  1. Creating a WellMesh via New() (optionally overriding default in-memory
//     stores, the content provider or the logger)
//  2. Running scripted flows (RunMoodUpdate, RunInsightsAnalysis) or chatting
//     with a specific agent persona (Chat)
//  3. Reading back persisted recommendations (ActiveRecommendations)
//
// The façade delegates orchestration to engine.Engine while keeping setup
// ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply durable stores, a model
// backed content provider and a structured logger.
package wellmesh

import (
	"context"

	"github.com/hupe1980/wellmesh/agent"
	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
	"github.com/hupe1980/wellmesh/engine"
	"github.com/hupe1980/wellmesh/logging"
	"github.com/hupe1980/wellmesh/memory"
	"github.com/hupe1980/wellmesh/recommendation"
	"github.com/hupe1980/wellmesh/wellness"
)

// Options configures the WellMesh instance.
type Options struct {
	// Stores (default to in-memory implementations if not provided)
	Memory          core.MemoryStore
	Recommendations core.RecommendationStore
	Wellness        core.WellnessStore

	// Provider supplies agent content. Defaults to the deterministic static
	// provider; model backed providers fall back to it on failure.
	Provider content.Provider

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// WellMesh is the high-level façade aggregating the engine, the stores and
// the five wellness agents.
type WellMesh struct {
	opts   Options
	engine *engine.Engine
}

// New creates a WellMesh instance with optional overrides. Any unset store is
// initialized with an in-memory implementation, the five agents are
// constructed and registered, and a fresh registry keeps instances isolated
// from each other.
func New(optFns ...func(o *Options)) *WellMesh {
	opts := Options{
		Memory:          memory.NewInMemoryStore(),
		Recommendations: recommendation.NewInMemoryStore(),
		Wellness:        wellness.NewInMemoryStore(),
		Provider:        content.NewStatic(),
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Provider == nil {
		opts.Provider = content.NewStatic()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	userContext := wellness.NewContextProvider(opts.Wellness, opts.Logger)

	wire := func(o *agent.Options) {
		o.Memory = opts.Memory
		o.Recommendations = opts.Recommendations
		o.Wellness = opts.Wellness
		o.UserContext = userContext
		o.Provider = opts.Provider
		o.Logger = opts.Logger
	}

	eng := engine.New(func(o *engine.Options) {
		o.Registry = core.NewRegistry()
		o.UserContext = userContext
		o.Provider = opts.Provider
		o.Logger = opts.Logger
	})

	eng.Register(agent.NewMoodMate(wire))
	eng.Register(agent.NewNutriCoach(wire))
	eng.Register(agent.NewFlexGenie(wire))
	eng.Register(agent.NewMindPal(wire))
	eng.Register(agent.NewInsightBot(wire))

	return &WellMesh{opts: opts, engine: eng}
}

// Engine exposes the underlying orchestrator for advanced use such as
// registering additional agents or draining the collaboration queue manually.
func (m *WellMesh) Engine() *engine.Engine { return m.engine }

// RunAgent executes a single registered agent by name. Collaboration jobs
// raised by the run stay queued until ProcessCollaborationQueue is called on
// the engine.
func (m *WellMesh) RunAgent(ctx context.Context, name string, in core.Input, userID int) (core.Output, error) {
	return m.engine.RunAgent(ctx, name, in, userID)
}

// RunMoodUpdate records a mood through MoodMate and drains the triggered
// collaborations.
func (m *WellMesh) RunMoodUpdate(ctx context.Context, mood string, userID int) (engine.MoodUpdateResult, error) {
	return m.engine.RunMoodUpdate(ctx, mood, userID)
}

// RunInsightsAnalysis runs InsightBot over the user's accumulated wellness
// data.
func (m *WellMesh) RunInsightsAnalysis(ctx context.Context, userID int) (core.Output, error) {
	return m.engine.RunInsightsAnalysis(ctx, userID)
}

// SaveJournalEntry persists a journal entry through MindPal.
func (m *WellMesh) SaveJournalEntry(ctx context.Context, userID int, text string) (core.JournalEntry, error) {
	return m.engine.SaveJournalEntry(ctx, userID, text)
}

// Chat processes one conversation turn against the named agent persona.
func (m *WellMesh) Chat(ctx context.Context, agentName, message string, history []core.ChatMessage, userID int) (engine.ConversationResult, error) {
	return m.engine.HandleConversation(ctx, agentName, message, history, userID)
}

// ActiveRecommendations returns the user's active recommendations newest
// first, optionally filtered by agent name ("" matches all agents).
func (m *WellMesh) ActiveRecommendations(userID int, agentName string) ([]core.Recommendation, error) {
	return m.opts.Recommendations.ListActive(userID, agentName)
}

// Deactivate soft-deletes a recommendation by id.
func (m *WellMesh) Deactivate(id string) error {
	return m.opts.Recommendations.Deactivate(id)
}

// SeedDemoUser creates (or returns) the demo account used by examples and
// local development: username "sarah" with a focused mood and a 7 day streak.
func (m *WellMesh) SeedDemoUser() (core.User, error) {
	if user, err := m.opts.Wellness.GetUserByUsername("sarah"); err == nil {
		return user, nil
	}

	user, err := wellness.SeedDemoUser(m.opts.Wellness)
	if err != nil {
		return core.User{}, core.NewError(core.ErrorKindStorage, err)
	}
	return user, nil
}
