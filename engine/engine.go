package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
	"github.com/hupe1980/wellmesh/logging"
)

// MaxCollaborationDepth caps transitive collaboration chains. A job whose
// depth would exceed this value is dropped with a warning instead of being
// enqueued, so mutually re-triggering agents cannot loop forever.
const MaxCollaborationDepth = 3

// Options configures an Engine instance.
type Options struct {
	// Registry holds the runnable agents. Defaults to an empty registry.
	Registry core.AgentRegistry

	// UserContext assembles the user snapshot for conversations. Optional;
	// the neutral context is used when nil.
	UserContext core.UserContextProvider

	// Provider supplies conversational replies and intent extraction.
	// Defaults to the deterministic static provider.
	Provider content.Provider

	// Logger defaults to a no-op logger.
	Logger logging.Logger
}

// collaborationJob is one queued follow-up run requested by a completed
// agent run.
type collaborationJob struct {
	ID          string
	AgentName   string
	TriggeredBy string
	Input       core.Input
	UserID      int
	Depth       int
}

// CollaborationResult pairs a drained collaboration run with its routing
// metadata.
type CollaborationResult struct {
	AgentName   string
	TriggeredBy string
	Depth       int
	Output      core.Output
}

// MoodUpdateResult bundles the primary MoodMate run with the collaboration
// runs it triggered.
type MoodUpdateResult struct {
	Primary        core.Output
	Collaborations []CollaborationResult
}

// ActionResult records one agent action dispatched from a conversation turn.
type ActionResult struct {
	Type    string
	Success bool
	Data    map[string]any
}

// ConversationResult is the outcome of one conversation turn. Mood updates
// run the full scripted flow, so their collaboration outputs arrive in
// Collaborations; other dispatched actions only report the trigger names and
// leave the queue for an explicit drain.
type ConversationResult struct {
	Response               string
	Actions                []ActionResult
	Collaborations         []CollaborationResult
	CollaborationTriggered []string
}

// Engine orchestrates agent runs, observer fan-out and the collaboration
// queue. It is safe for concurrent use; the queue is shared across runs and
// drained only when ProcessCollaborationQueue is called.
type Engine struct {
	registry    core.AgentRegistry
	userContext core.UserContextProvider
	provider    content.Provider
	fallback    *content.Static
	logger      logging.Logger

	mu    sync.Mutex
	queue []collaborationJob
}

// New creates an engine. Registries are constructed per engine, so two
// engines never share agents unless given the same registry explicitly.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Registry: core.NewRegistry(),
		Provider: content.NewStatic(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Registry == nil {
		opts.Registry = core.NewRegistry()
	}
	if opts.Provider == nil {
		opts.Provider = content.NewStatic()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Engine{
		registry:    opts.Registry,
		userContext: opts.UserContext,
		provider:    opts.Provider,
		fallback:    content.NewStatic(),
		logger:      opts.Logger,
	}
}

// Register adds an agent to the engine's registry.
func (e *Engine) Register(a core.Agent) {
	e.registry.Register(a)
}

// AgentNames returns the registered agent names in registration order.
func (e *Engine) AgentNames() []string {
	return e.registry.Names()
}

// RunAgent executes the named agent once. An unregistered name is the one
// error class surfaced to the caller; everything that happens inside a run is
// reported through the returned Output instead.
//
// After the run every other registered agent observes the outcome in
// parallel, observer failures are logged and swallowed, and the agent's
// collaboration triggers are enqueued. Queued jobs do not execute until
// ProcessCollaborationQueue is called.
func (e *Engine) RunAgent(ctx context.Context, name string, in core.Input, userID int) (core.Output, error) {
	return e.run(ctx, name, in, userID, 0)
}

func (e *Engine) run(ctx context.Context, name string, in core.Input, userID int, depth int) (core.Output, error) {
	a, ok := e.registry.Get(name)
	if !ok {
		return core.Output{}, core.Errorf(core.ErrorKindUnknownAgent, "agent %q is not registered", name)
	}

	runID := uuid.NewString()
	e.logger.Debug("agent run starting", "run_id", runID, "agent", name, "user_id", userID, "depth", depth)

	out := a.Run(ctx, in, userID)

	e.notifyObservers(ctx, name, out, userID)
	e.enqueueCollaborations(out, userID, depth)

	e.logger.Info("agent run completed", "run_id", runID, "agent", name, "user_id", userID,
		"success", out.Success, "triggers", len(out.CollaborationTriggers))

	return out, nil
}

// notifyObservers fans the run outcome out to every other registered agent
// and joins before returning. Observer errors never fail the run.
func (e *Engine) notifyObservers(ctx context.Context, ranName string, out core.Output, userID int) {
	var wg sync.WaitGroup
	for _, observer := range e.registry.All() {
		if observer.Name() == ranName {
			continue
		}
		wg.Add(1)
		go func(observer core.Agent) {
			defer wg.Done()
			if err := observer.Observe(ctx, out, userID); err != nil {
				e.logger.Warn("observer failed", "observer", observer.Name(), "agent", ranName, "error", err)
			}
		}(observer)
	}
	wg.Wait()
}

// enqueueCollaborations turns the run's triggers into queued jobs at
// parentDepth+1. Unregistered trigger names are skipped; jobs past the depth
// cap are dropped with a warning.
func (e *Engine) enqueueCollaborations(out core.Output, userID int, parentDepth int) {
	if len(out.CollaborationTriggers) == 0 {
		return
	}

	depth := parentDepth + 1
	in := collaborationInput(out)

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range out.CollaborationTriggers {
		if _, ok := e.registry.Get(name); !ok {
			e.logger.Debug("collaboration trigger skipped, agent not registered", "agent", name)
			continue
		}
		if depth > MaxCollaborationDepth {
			e.logger.Warn("collaboration dropped, depth cap exceeded",
				"agent", name, "triggered_by", out.AgentName, "depth", depth)
			continue
		}
		e.queue = append(e.queue, collaborationJob{
			ID:          uuid.NewString(),
			AgentName:   name,
			TriggeredBy: out.AgentName,
			Input:       in,
			UserID:      userID,
			Depth:       depth,
		})
	}
}

// collaborationInput builds the input handed to a triggered agent: the
// triggering run's memory snapshot plus routing fields.
func collaborationInput(out core.Output) core.Input {
	in := core.Input{}
	for k, v := range out.Memory {
		in[k] = v
	}
	in[core.InputKeyTriggeringAgent] = out.AgentName

	mood := "neutral"
	if s, ok := out.Memory["lastMood"].(string); ok && s != "" {
		mood = s
	}
	in[core.InputKeyCurrentMood] = mood

	return in
}

// ProcessCollaborationQueue drains the queue in FIFO order and returns the
// results in completion order. Jobs enqueued by drained runs are processed in
// the same drain, subject to the depth cap. Per-job failures are logged and
// skipped.
func (e *Engine) ProcessCollaborationQueue(ctx context.Context) []CollaborationResult {
	var results []CollaborationResult

	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return results
		}
		job := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		a, ok := e.registry.Get(job.AgentName)
		if !ok {
			e.logger.Warn("collaboration job skipped, agent no longer registered",
				"job_id", job.ID, "agent", job.AgentName)
			continue
		}

		e.logger.Debug("collaboration job starting", "job_id", job.ID, "agent", job.AgentName,
			"triggered_by", job.TriggeredBy, "depth", job.Depth)

		out := a.Run(ctx, job.Input, job.UserID)

		e.notifyObservers(ctx, job.AgentName, out, job.UserID)
		e.enqueueCollaborations(out, job.UserID, job.Depth)

		results = append(results, CollaborationResult{
			AgentName:   job.AgentName,
			TriggeredBy: job.TriggeredBy,
			Depth:       job.Depth,
			Output:      out,
		})
	}
}

// RunMoodUpdate runs MoodMate with the given mood and drains the resulting
// collaboration queue.
func (e *Engine) RunMoodUpdate(ctx context.Context, mood string, userID int) (MoodUpdateResult, error) {
	primary, err := e.RunAgent(ctx, "MoodMate", core.Input{core.InputKeyMood: mood}, userID)
	if err != nil {
		return MoodUpdateResult{}, err
	}

	return MoodUpdateResult{
		Primary:        primary,
		Collaborations: e.ProcessCollaborationQueue(ctx),
	}, nil
}

// RunInsightsAnalysis runs InsightBot over the user's accumulated wellness
// data.
func (e *Engine) RunInsightsAnalysis(ctx context.Context, userID int) (core.Output, error) {
	return e.RunAgent(ctx, "InsightBot", core.Input{}, userID)
}

// journalWriter is the side door MindPal exposes for direct journal
// persistence outside a full reasoning run.
type journalWriter interface {
	SaveJournalEntry(ctx context.Context, userID int, text string) (core.JournalEntry, error)
}

// SaveJournalEntry persists a journal entry through MindPal, reusing its last
// issued prompt.
func (e *Engine) SaveJournalEntry(ctx context.Context, userID int, text string) (core.JournalEntry, error) {
	a, ok := e.registry.Get("MindPal")
	if !ok {
		return core.JournalEntry{}, core.Errorf(core.ErrorKindUnknownAgent, "agent %q is not registered", "MindPal")
	}
	writer, ok := a.(journalWriter)
	if !ok {
		return core.JournalEntry{}, core.Errorf(core.ErrorKindInternal, "agent %q cannot save journal entries", "MindPal")
	}
	return writer.SaveJournalEntry(ctx, userID, text)
}

// chatMoodWords are the moods the conversation layer recognizes in free text
// when dispatching a mood update.
var chatMoodWords = []string{"happy", "sad", "stressed", "tired", "focused", "anxious", "excited", "calm"}

// HandleConversation processes one chat turn against the named agent: it
// produces a persona reply, extracts the structured intent and dispatches any
// resulting agent action. A dispatched mood update runs the full scripted
// flow including its collaborations; other actions leave raised triggers
// queued for an explicit drain.
func (e *Engine) HandleConversation(ctx context.Context, agentName, message string, history []core.ChatMessage, userID int) (ConversationResult, error) {
	if _, ok := e.registry.Get(agentName); !ok {
		return ConversationResult{}, core.Errorf(core.ErrorKindUnknownAgent, "agent %q is not registered", agentName)
	}

	uc := core.NeutralUserContext()
	if e.userContext != nil {
		uc = e.userContext.UserContext(ctx, userID)
	}

	window := content.TailHistory(history)

	reply, err := e.provider.ConversationReply(ctx, agentName, message, window, uc)
	if err != nil {
		e.logger.Warn("conversation provider failed, using static reply",
			"provider", e.provider.Name(), "agent", agentName, "error", err)
		reply, _ = e.fallback.ConversationReply(ctx, agentName, message, window, uc)
	}

	intent, err := e.provider.ExtractIntent(ctx, message, agentName)
	if err != nil {
		e.logger.Warn("intent extraction failed, using static extractor",
			"provider", e.provider.Name(), "agent", agentName, "error", err)
		intent, _ = e.fallback.ExtractIntent(ctx, message, agentName)
	}

	result := ConversationResult{Response: reply}
	if !intent.NeedsAction {
		return result, nil
	}

	switch intent.ActionType {
	case core.ActionMoodUpdate:
		mood, found := detectChatMood(message)
		if !found {
			break
		}
		update, runErr := e.RunMoodUpdate(ctx, mood, userID)
		if runErr != nil {
			break
		}
		result.Actions = append(result.Actions, ActionResult{
			Type:    core.ActionMoodUpdate,
			Success: update.Primary.Success,
			Data:    map[string]any{"mood": mood},
		})
		result.Collaborations = update.Collaborations
		result.CollaborationTriggered = append(result.CollaborationTriggered, update.Primary.CollaborationTriggers...)

	case core.ActionJournalSave:
		if agentName != "MindPal" || len(strings.TrimSpace(message)) <= 20 {
			break
		}
		entry, saveErr := e.SaveJournalEntry(ctx, userID, message)
		action := ActionResult{Type: core.ActionJournalSave, Success: saveErr == nil}
		if saveErr != nil {
			e.logger.Warn("journal save failed", "user_id", userID, "error", saveErr)
		} else {
			action.Data = map[string]any{"entryId": entry.ID}
		}
		result.Actions = append(result.Actions, action)

	case core.ActionRecommendationRequest:
		out, runErr := e.RunAgent(ctx, agentName, core.Input{
			core.InputKeyMessage: message,
			core.InputKeyIntent:  intent.Intent,
		}, userID)
		if runErr != nil {
			break
		}
		result.Actions = append(result.Actions, ActionResult{
			Type:    core.ActionRecommendationRequest,
			Success: out.Success,
			Data:    map[string]any{"agent": agentName},
		})
		result.CollaborationTriggered = append(result.CollaborationTriggered, out.CollaborationTriggers...)

	case core.ActionDataAnalysis:
		if agentName != "InsightBot" {
			break
		}
		out, runErr := e.RunInsightsAnalysis(ctx, userID)
		if runErr != nil {
			break
		}
		result.Actions = append(result.Actions, ActionResult{
			Type:    core.ActionDataAnalysis,
			Success: out.Success,
			Data:    map[string]any{"agent": agentName},
		})
	}

	return result, nil
}

// detectChatMood returns the first recognized mood word in the message. A
// mood update is only dispatched when a mood is actually found; fabricating a
// neutral entry from keywordless text would pollute the mood history.
func detectChatMood(message string) (string, bool) {
	msg := strings.ToLower(message)
	for _, mood := range chatMoodWords {
		if strings.Contains(msg, mood) {
			return mood, true
		}
	}
	return "", false
}
