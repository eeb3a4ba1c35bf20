package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/wellmesh/core"
)

// Compile time check to ensure Static satisfies the Provider interface.
var _ Provider = (*Static)(nil)

// Static is a deterministic Provider backed entirely by the curated fallback
// tables and rule-based conversation logic. It never returns an error, which
// makes it the terminal element of any provider fallback chain and a
// convenient default for tests and offline operation.
type Static struct{}

// NewStatic creates a deterministic provider.
func NewStatic() *Static {
	return &Static{}
}

// Name implements Provider.
func (s *Static) Name() string {
	return "static"
}

// MusicForMood implements Provider.
func (s *Static) MusicForMood(_ context.Context, mood string) (MusicContent, error) {
	return FallbackMusic(mood), nil
}

// NutritionPlan implements Provider.
func (s *Static) NutritionPlan(_ context.Context, mood string, preferences map[string]any) (NutritionPlan, error) {
	return FallbackNutritionPlan(mood, preferences), nil
}

// WorkoutPlan implements Provider.
func (s *Static) WorkoutPlan(_ context.Context, mood string, energyLevel, timeBudget int) (WorkoutPlan, error) {
	return FallbackWorkoutPlan(mood, energyLevel, timeBudget), nil
}

// WorkoutVideos implements Provider.
func (s *Static) WorkoutVideos(_ context.Context, mood string) ([]WorkoutVideo, error) {
	return FallbackWorkoutVideos(mood), nil
}

// MentalWellnessSupport implements Provider.
func (s *Static) MentalWellnessSupport(_ context.Context, mood string, stressLevel int) (MentalSupport, error) {
	return FallbackMentalSupport(mood, stressLevel), nil
}

// WellnessSuggestions implements Provider.
func (s *Static) WellnessSuggestions(_ context.Context, _ string) ([]string, error) {
	return FallbackWellnessSuggestions(), nil
}

// ConversationReply implements Provider using keyword matching against the
// agent persona. Replies are intentionally template based so behavior stays
// stable without an upstream model.
func (s *Static) ConversationReply(_ context.Context, agentName, message string, history []core.ChatMessage, uc core.UserContext) (string, error) {
	msg := strings.ToLower(strings.TrimSpace(message))
	firstContact := len(history) == 0

	switch agentName {
	case "MoodMate":
		return moodMateReply(msg, firstContact), nil
	case "NutriCoach":
		return nutriCoachReply(msg, firstContact), nil
	case "FlexGenie":
		return flexGenieReply(msg, firstContact), nil
	case "MindPal":
		return mindPalReply(msg, firstContact), nil
	case "InsightBot":
		return insightBotReply(msg, firstContact, uc), nil
	default:
		return "Hello! I'm here to help you with your wellness journey. What can I assist you with today?", nil
	}
}

// ExtractIntent implements Provider with keyword based classification. The
// returned intent mirrors the structured shape model providers produce so the
// conversation layer can dispatch on it uniformly.
func (s *Static) ExtractIntent(_ context.Context, message, agentName string) (core.ChatIntent, error) {
	msg := strings.ToLower(strings.TrimSpace(message))

	intent := core.ChatIntent{
		Intent:   "general_conversation",
		Entities: []string{},
	}

	for _, topic := range topicKeywords {
		if containsAny(msg, topic.words) {
			intent.Entities = append(intent.Entities, topic.name)
		}
	}

	switch {
	case containsAny(msg, moodWords):
		intent.Intent = "share current mood"
		intent.NeedsAction = true
		intent.ActionType = core.ActionMoodUpdate
	case agentName == "MindPal" && containsAny(msg, []string{"journal", "write", "diary"}):
		intent.Intent = "save a journal entry"
		intent.NeedsAction = true
		intent.ActionType = core.ActionJournalSave
	case agentName == "InsightBot" && containsAny(msg, []string{"analyze", "insights", "patterns", "trends", "progress"}):
		intent.Intent = "analyze wellness data"
		intent.NeedsAction = true
		intent.ActionType = core.ActionDataAnalysis
	case containsAny(msg, []string{"recommend", "suggestion", "plan", "help me", "give me", "show me"}):
		intent.Intent = "request a recommendation"
		intent.NeedsAction = true
		intent.ActionType = core.ActionRecommendationRequest
	}

	return intent, nil
}

var moodWords = []string{"happy", "sad", "stressed", "tired", "focused", "anxious", "excited", "calm"}

var topicKeywords = []struct {
	name  string
	words []string
}{
	{"greeting", []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}},
	{"question", []string{"what", "how", "why", "when", "where", "can you", "do you", "tell me"}},
	{"request", []string{"help", "need", "want", "plan", "create", "make", "give me", "show me"}},
	{"mood", []string{"feeling", "mood", "emotion", "sad", "happy", "stressed", "anxious", "tired", "excited"}},
	{"nutrition", []string{"eat", "food", "meal", "diet", "nutrition", "hungry", "recipe", "calories"}},
	{"fitness", []string{"exercise", "workout", "fitness", "gym", "run", "walk", "strength", "cardio"}},
	{"mental", []string{"think", "mind", "thoughts", "journal", "meditation", "mindfulness", "stress"}},
	{"data", []string{"analyze", "insights", "patterns", "trends", "data", "progress", "track"}},
}

func containsAny(msg string, words []string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

func isGreeting(msg string) bool {
	return containsAny(msg, topicKeywords[0].words)
}

func moodMateReply(msg string, firstContact bool) string {
	switch {
	case containsAny(msg, []string{"stressed", "anxious", "overwhelmed"}):
		return "I hear that you're feeling stressed. Take 3 deep breaths: inhale for 4 counts, hold for 4, exhale for 6. " +
			"Calming playlists that can help: Peaceful Piano, Deep Focus. " +
			"Remember: this feeling is temporary, and you have gotten through difficult moments before. " +
			"What's the main source of your stress right now?"
	case containsAny(msg, []string{"sad", "down", "depressed"}):
		return "I understand you're feeling sad, and that's completely valid. Your feelings matter, and it's okay to not be okay sometimes. " +
			"Some uplifting music can help shift your mood gradually. " +
			"Would you like to talk about what's contributing to these feelings?"
	case containsAny(msg, []string{"happy", "good", "great", "excited"}):
		return "That's wonderful! I love hearing when you're feeling positive. " +
			"Keep the vibe going with Happy Hits or Good Vibes on Spotify. " +
			"What's been bringing you joy today?"
	case isGreeting(msg) && firstContact:
		return "Hello! I'm MoodMate, your emotional wellness companion. I can track your mood, suggest music that fits it, " +
			"and provide affirmations. How are you feeling right now?"
	default:
		return "I'm here to support your emotional wellness. Just describe your mood in your own words, and I'll log it " +
			"and provide personalized music and support. What's your emotional state right now?"
	}
}

func nutriCoachReply(msg string, firstContact bool) string {
	switch {
	case containsAny(msg, []string{"energy", "tired", "fatigue"}):
		return "Here's an energy-boosting plan to combat fatigue: Overnight Oats with Berries for breakfast, a Quinoa Power Bowl " +
			"for lunch and Salmon with Sweet Potato for dinner. Aim for 8-10 glasses of water daily. " +
			"What's your biggest energy challenge: morning crashes, afternoon slumps, or overall fatigue?"
	case containsAny(msg, []string{"lose weight", "weight loss", "slim"}):
		return "Great goal! A sustainable approach: Veggie Scramble for breakfast, Grilled Chicken Salad for lunch and " +
			"Baked Fish with Vegetables for dinner. Drinking water before meals helps you feel fuller. " +
			"Do you have any food preferences or restrictions?"
	case isGreeting(msg) && firstContact:
		return "Hi! I'm NutriCoach, your personal nutrition guide. I create meal plans based on your goals: energy boost, " +
			"weight management, or just eating healthier. What's your main nutrition goal?"
	default:
		return "I'm here to create personalized meal plans for your goals. Tell me what you want to achieve: more energy, " +
			"weight management, or balanced everyday eating, and I'll give you a complete plan with specific foods."
	}
}

func flexGenieReply(msg string, firstContact bool) string {
	switch {
	case containsAny(msg, []string{"tired", "low energy", "exhausted"}):
		return "I understand you're feeling tired. Gentle movement can actually boost your energy: 5 minutes of stretching, " +
			"a 10 minute slow walk, and some deep breathing. Even 10 minutes helps. What feels most doable right now?"
	case containsAny(msg, []string{"beginner", "start", "new"}):
		return "Welcome to fitness! A good starter plan: bodyweight squats (2 sets of 8-12), wall push-ups (2 sets of 8-12), " +
			"10 minutes walking and 5 minutes of stretching, three times per week. Consistency over intensity! " +
			"What's your main fitness goal?"
	case containsAny(msg, []string{"quick", "short", "busy"}):
		return "Perfect for busy schedules: a 5 minute circuit of jumping jacks, bodyweight squats, push-ups, mountain climbers " +
			"and a plank hold, 45 seconds each with 15 seconds rest. How many minutes do you have today?"
	case isGreeting(msg) && firstContact:
		return "Hey there! I'm FlexGenie, your adaptive fitness companion. I create workouts that fit your schedule and energy " +
			"level, from gentle movement to quick HIIT. What type of workout are you looking for today?"
	default:
		return "I'm here to give you specific workout routines. Tell me what you need: a quick workout, a beginner routine, " +
			"or gentle energy-boosting movement, and I'll give you exact exercises and timing."
	}
}

func mindPalReply(msg string, firstContact bool) string {
	switch {
	case containsAny(msg, []string{"stress", "overwhelmed", "anxious"}):
		return "I hear that you're feeling overwhelmed. Take 3 deep breaths: 4 counts in, hold 4, out 6. " +
			"A journal prompt for today: \"What's one small thing I can control right now that might help me feel more grounded?\" " +
			"If you need more support: Crisis Text Line (Text HOME to 741741) is available 24/7. " +
			"Would you like to write about what's causing your stress?"
	case containsAny(msg, []string{"journal", "write", "thoughts"}):
		return "Journaling is incredibly powerful for mental wellness. Try one of these prompts: " +
			"\"How am I feeling right now, and what do I need most today?\" or " +
			"\"What are 3 things I'm grateful for today, no matter how small?\" " +
			"You can write as much or as little as feels right."
	case containsAny(msg, []string{"meditation", "mindfulness", "calm"}):
		return "Let's practice mindfulness together. Spend 2 minutes focusing on your breath, 2 minutes scanning your body for " +
			"tension and 1 minute on gratitude. Apps like Headspace, Calm and Insight Timer offer guided sessions. " +
			"How did that feel?"
	case isGreeting(msg) && firstContact:
		return "Hello! I'm MindPal, your mental wellness companion. I offer journal prompts, affirmations, stress relief " +
			"techniques and professional support resources. What would you like to explore?"
	default:
		return "I'm here to support your mental wellness journey. You can journal with a personalized prompt, practice a " +
			"calming technique, or get professional support resources. What feels most important right now?"
	}
}

func insightBotReply(msg string, firstContact bool, uc core.UserContext) string {
	switch {
	case containsAny(msg, []string{"analyze", "insights", "patterns"}):
		return "Let me analyze your wellness data. I look at your mood trends, activity patterns and how they correlate, " +
			"then turn them into actionable insights. Say \"analyze my data\" and I'll run a full analysis."
	case containsAny(msg, []string{"progress", "track", "improvement"}):
		return fmt.Sprintf("You're on a %d day streak. Consistent tracking is what makes pattern analysis meaningful, "+
			"so keep logging moods and metrics. Want me to run a full progress analysis?", uc.StreakDays)
	case isGreeting(msg) && firstContact:
		return "Hello! I'm InsightBot, your wellness analytics companion. I analyze your mood, journal and metrics data to " +
			"find trends and correlations. Ask me to analyze your data whenever you're curious."
	default:
		return "I'm your wellness data analyst. I can show your patterns, track your progress, and find correlations between " +
			"activities and wellbeing. What aspect of your wellness data would you like me to analyze?"
	}
}
