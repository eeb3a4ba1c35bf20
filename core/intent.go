package core

// Urgency grades how quickly an intent should be acted upon.
type Urgency string

const (
	// UrgencyLow marks intents that can be handled opportunistically.
	UrgencyLow Urgency = "low"
	// UrgencyMedium is the default urgency for routine requests.
	UrgencyMedium Urgency = "medium"
	// UrgencyHigh marks intents requiring immediate attention.
	UrgencyHigh Urgency = "high"
)

// UserIntent is the ephemeral result of a capability's intent analysis during
// the PLAN phase. It is never persisted.
type UserIntent struct {
	Summary    string
	Categories []string
	Urgency    Urgency
	Confidence float64
	Entities   []string
	Category   string
}

// HasCategory reports whether the intent carries the given category.
func (i UserIntent) HasCategory(category string) bool {
	for _, c := range i.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Chat action types dispatched by the engine after intent extraction.
const (
	ActionMoodUpdate            = "mood_update"
	ActionJournalSave           = "journal_save"
	ActionRecommendationRequest = "recommendation_request"
	ActionDataAnalysis          = "data_analysis"
)

// ChatIntent is the structured interpretation of a free-text chat message,
// produced by the conversational intent extractor.
type ChatIntent struct {
	Intent      string
	Entities    []string
	NeedsAction bool
	ActionType  string
}

// ChatMessage is one turn of a chat conversation.
type ChatMessage struct {
	Role    string // "user" or "assistant"
	Content string
}
