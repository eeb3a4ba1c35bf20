package wellness

import (
	"context"

	"github.com/hupe1980/wellmesh/core"
	"github.com/hupe1980/wellmesh/logging"
)

// ContextProvider assembles the lightweight user snapshot agents plan
// against. It is best-effort: any store failure yields the neutral default
// context instead of an error.
type ContextProvider struct {
	store  core.WellnessStore
	logger logging.Logger
}

// NewContextProvider creates a provider over the given store.
func NewContextProvider(store core.WellnessStore, logger logging.Logger) *ContextProvider {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &ContextProvider{store: store, logger: logger}
}

// UserContext implements core.UserContextProvider.
func (p *ContextProvider) UserContext(_ context.Context, userID int) core.UserContext {
	user, err := p.store.GetUser(userID)
	if err != nil {
		p.logger.Warn("user context unavailable, using neutral default", "user_id", userID, "error", err)
		return core.NeutralUserContext()
	}

	uc := core.UserContext{
		CurrentMood: user.CurrentMood,
		StreakDays:  user.StreakDays,
	}
	if uc.CurrentMood == "" {
		uc.CurrentMood = "neutral"
	}

	if entries, err := p.store.MoodEntries(userID, 5); err == nil {
		for _, entry := range entries {
			uc.RecentMoods = append(uc.RecentMoods, entry.Mood)
		}
	}
	if entries, err := p.store.JournalEntries(userID, 3); err == nil {
		for _, entry := range entries {
			theme := entry.Content
			if len(theme) > 100 {
				theme = theme[:100]
			}
			uc.RecentJournalThemes = append(uc.RecentJournalThemes, theme)
		}
	}
	return uc
}
