package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/wellmesh/core"
	"github.com/tidwall/gjson"
)

// Prompt builders and completion parsers shared by the model-backed providers
// in the openai and anthropic subpackages. Keeping them here guarantees both
// providers request and interpret the same JSON shapes.

// MusicPrompt returns the system and user prompts for mood based music
// recommendations.
func MusicPrompt(mood string) (system, user string) {
	system = `You are MoodMate, an empathetic wellness agent. Suggest music matching the user's mood. Respond with JSON in this format: {
  "playlists": ["playlist names matching the mood"],
  "quote": "a short motivational quote for this mood"
}`
	user = fmt.Sprintf("Current mood: %s\nSuggest 2-3 playlists and one quote.", mood)
	return system, user
}

// NutritionPrompt returns the prompts for mood adapted meal planning.
func NutritionPrompt(mood string, preferences map[string]any) (system, user string) {
	system = `You are NutriCoach, a personalized nutrition agent. Create meal recommendations based on mood and wellness goals. Respond with JSON in this format: {
  "meals": [{"name": "meal name", "description": "brief description", "benefits": "health benefits", "emoji": "food emoji"}],
  "hydrationGoal": number of glasses,
  "adaptations": ["mood-specific dietary adaptations"]
}`
	prefs, _ := json.Marshal(preferences)
	user = fmt.Sprintf("Current mood: %s\nPreferences: %s\nProvide 3-4 meal/snack recommendations that support this mood state.", mood, prefs)
	return system, user
}

// WorkoutPrompt returns the prompts for energy adapted workout planning.
func WorkoutPrompt(mood string, energyLevel, timeBudget int) (system, user string) {
	system = `You are FlexGenie, a fitness agent that adapts workouts to mood and energy. Respond with JSON in this format: {
  "exercises": [{"name": "exercise name", "type": "yoga/cardio/strength/walking", "duration": minutes, "intensity": "low/moderate/high", "description": "brief description", "videoUrl": "video URL if relevant"}],
  "energyAdaptation": "explanation of how workout matches current energy"
}`
	user = fmt.Sprintf("Current mood: %s\nEnergy level (1-10): %d\nTime available: %d minutes\nRecommend 2-3 exercises that match this state.", mood, energyLevel, timeBudget)
	return system, user
}

// MentalSupportPrompt returns the prompts for mental wellness support.
func MentalSupportPrompt(mood string, stressLevel int) (system, user string) {
	system = `You are MindPal, a mental wellness agent focused on emotional support and growth. Respond with JSON in this format: {
  "journalPrompt": "a thoughtful, open-ended prompt for reflection",
  "affirmation": "a positive, personalized affirmation",
  "techniques": ["specific mental wellness techniques"]
}`
	user = fmt.Sprintf("Current mood: %s\nStress level (1-10): %d\nProvide mental wellness support.", mood, stressLevel)
	return system, user
}

// SuggestionsPrompt returns the prompts for turning an analytics summary into
// actionable wellness suggestions.
func SuggestionsPrompt(summary string) (system, user string) {
	system = `You are InsightBot, an analytics agent that identifies wellness patterns. Respond with JSON in this format: {
  "suggestions": ["actionable wellness suggestions based on the data"]
}`
	user = fmt.Sprintf("Wellness data summary:\n%s\n\nAnalyze patterns and provide 2-4 actionable suggestions.", summary)
	return system, user
}

// IntentPrompt returns the prompts for structured chat intent extraction.
func IntentPrompt(agentName string) (system string) {
	return fmt.Sprintf(`Analyze the user's message to understand their intent when talking to %s. Respond with JSON in this format: {
  "intent": "brief description of what user wants",
  "entities": ["key entities/topics mentioned"],
  "needsAction": boolean if agent should take specific action,
  "actionType": "mood_update/journal_save/recommendation_request/data_analysis"
}`, agentName)
}

// AgentPersonaPrompt returns the conversational system prompt for an agent
// persona including the user context snapshot.
func AgentPersonaPrompt(agentName string, uc core.UserContext) string {
	ctx := fmt.Sprintf("\nUser Context:\n- Current Mood: %s\n- Recent Moods: %s\n- Streak Days: %d\n",
		orDefault(uc.CurrentMood, "neutral"), joinOrNone(uc.RecentMoods), uc.StreakDays)

	personas := map[string]string{
		"MoodMate":   "You are MoodMate, an empathetic wellness agent specializing in emotional intelligence and mood support. You help users track their mood, provide music recommendations, and offer emotional support. Be warm and understanding, acknowledge feelings with empathy, and include specific music recommendations or coping techniques.",
		"NutriCoach": "You are NutriCoach, a personalized nutrition agent specializing in meal planning and dietary guidance. Be knowledgeable, encouraging and practical. Include specific meal suggestions with their benefits and make nutrition achievable.",
		"FlexGenie":  "You are FlexGenie, an adaptive fitness agent that creates workout recommendations based on the user's energy level, available time and goals. Be motivating and practical. List specific exercises with clear instructions and timing, and be encouraging about any amount of movement.",
		"MindPal":    "You are MindPal, a mental wellness agent focused on emotional support, journaling and mindfulness. Be compassionate and create a safe space. Include journal prompts, affirmations and specific techniques, and suggest professional resources when appropriate.",
		"InsightBot": "You are InsightBot, a wellness analytics agent that analyzes patterns in user data. Be analytical and encouraging. Reference specific patterns or trends when possible and turn data into actionable insights.",
	}

	persona, ok := personas[agentName]
	if !ok {
		persona = fmt.Sprintf("You are a helpful wellness agent named %s. Provide supportive, practical advice for the user's wellness journey.", agentName)
	}
	return persona + "\n" + ctx
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

// ParseMusicJSON interprets a music completion.
func ParseMusicJSON(raw string) (MusicContent, error) {
	obj, ok := ExtractJSON(raw)
	if !ok {
		return MusicContent{}, core.Errorf(core.ErrorKindProvider, "music completion contained no JSON object")
	}
	mc := MusicContent{
		Playlists: StringSlice(gjson.Get(obj, "playlists")),
		Quote:     gjson.Get(obj, "quote").String(),
	}
	if len(mc.Playlists) == 0 {
		return MusicContent{}, core.Errorf(core.ErrorKindProvider, "music completion missing playlists")
	}
	return mc, nil
}

// ParseNutritionJSON interprets a nutrition plan completion.
func ParseNutritionJSON(raw string) (NutritionPlan, error) {
	obj, ok := ExtractJSON(raw)
	if !ok {
		return NutritionPlan{}, core.Errorf(core.ErrorKindProvider, "nutrition completion contained no JSON object")
	}
	plan := NutritionPlan{
		HydrationGoal: int(gjson.Get(obj, "hydrationGoal").Int()),
		Adaptations:   StringSlice(gjson.Get(obj, "adaptations")),
	}
	for _, meal := range gjson.Get(obj, "meals").Array() {
		plan.Meals = append(plan.Meals, Meal{
			Name:        meal.Get("name").String(),
			Description: meal.Get("description").String(),
			Benefits:    meal.Get("benefits").String(),
			Emoji:       meal.Get("emoji").String(),
		})
	}
	if len(plan.Meals) == 0 {
		return NutritionPlan{}, core.Errorf(core.ErrorKindProvider, "nutrition completion missing meals")
	}
	if plan.HydrationGoal <= 0 {
		plan.HydrationGoal = DefaultHydrationGoal
	}
	return plan, nil
}

// ParseWorkoutJSON interprets a workout plan completion.
func ParseWorkoutJSON(raw string) (WorkoutPlan, error) {
	obj, ok := ExtractJSON(raw)
	if !ok {
		return WorkoutPlan{}, core.Errorf(core.ErrorKindProvider, "workout completion contained no JSON object")
	}
	plan := WorkoutPlan{
		EnergyAdaptation: gjson.Get(obj, "energyAdaptation").String(),
	}
	for _, ex := range gjson.Get(obj, "exercises").Array() {
		plan.Exercises = append(plan.Exercises, Exercise{
			Name:        ex.Get("name").String(),
			Type:        ex.Get("type").String(),
			Duration:    int(ex.Get("duration").Int()),
			Intensity:   ex.Get("intensity").String(),
			Description: ex.Get("description").String(),
			VideoURL:    ex.Get("videoUrl").String(),
		})
	}
	if len(plan.Exercises) == 0 {
		return WorkoutPlan{}, core.Errorf(core.ErrorKindProvider, "workout completion missing exercises")
	}
	plan.WorkoutType = plan.Exercises[0].Type
	return plan, nil
}

// ParseMentalSupportJSON interprets a mental wellness support completion.
func ParseMentalSupportJSON(raw string) (MentalSupport, error) {
	obj, ok := ExtractJSON(raw)
	if !ok {
		return MentalSupport{}, core.Errorf(core.ErrorKindProvider, "mental support completion contained no JSON object")
	}
	support := MentalSupport{
		JournalPrompt: gjson.Get(obj, "journalPrompt").String(),
		Affirmation:   gjson.Get(obj, "affirmation").String(),
		Techniques:    StringSlice(gjson.Get(obj, "techniques")),
	}
	if support.JournalPrompt == "" || support.Affirmation == "" {
		return MentalSupport{}, core.Errorf(core.ErrorKindProvider, "mental support completion missing prompt or affirmation")
	}
	return support, nil
}

// ParseSuggestionsJSON interprets a wellness suggestions completion.
func ParseSuggestionsJSON(raw string) ([]string, error) {
	obj, ok := ExtractJSON(raw)
	if !ok {
		return nil, core.Errorf(core.ErrorKindProvider, "suggestions completion contained no JSON object")
	}
	suggestions := StringSlice(gjson.Get(obj, "suggestions"))
	if len(suggestions) == 0 {
		return nil, core.Errorf(core.ErrorKindProvider, "suggestions completion missing suggestions")
	}
	return suggestions, nil
}

// ParseIntentJSON interprets an intent extraction completion.
func ParseIntentJSON(raw string) (core.ChatIntent, error) {
	obj, ok := ExtractJSON(raw)
	if !ok {
		return core.ChatIntent{}, core.Errorf(core.ErrorKindProvider, "intent completion contained no JSON object")
	}
	intent := core.ChatIntent{
		Intent:      gjson.Get(obj, "intent").String(),
		Entities:    StringSlice(gjson.Get(obj, "entities")),
		NeedsAction: gjson.Get(obj, "needsAction").Bool(),
		ActionType:  gjson.Get(obj, "actionType").String(),
	}
	if intent.Intent == "" {
		intent.Intent = "general_conversation"
	}
	return intent, nil
}
