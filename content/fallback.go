package content

// Deterministic fallback content. These tables are the values the Static
// provider serves and the substitutes agents use when a model-backed provider
// fails, so the system keeps producing useful payloads without any upstream
// service.

var fallbackMusic = map[string]MusicContent{
	"happy": {
		Playlists: []string{"Happy Hits", "Good Vibes"},
		Quote:     "I deserve this happiness. I choose to embrace joy and share my positive energy with others.",
	},
	"stressed": {
		Playlists: []string{"Peaceful Piano", "Deep Focus"},
		Quote:     "I am capable of handling whatever comes my way. This feeling will pass, and I am stronger than I know.",
	},
	"focused": {
		Playlists: []string{"Deep Focus", "Lo-Fi Beats"},
		Quote:     "I am present and capable. My mind is clear, and I can accomplish what I set out to do.",
	},
}

// FallbackMusic returns the curated playlists for a mood, defaulting to the
// focused set.
func FallbackMusic(mood string) MusicContent {
	if mc, ok := fallbackMusic[mood]; ok {
		return mc
	}
	return fallbackMusic["focused"]
}

var fallbackMeals = map[string][]Meal{
	"energy": {
		{Name: "Overnight Oats with Berries", Description: "Rolled oats soaked overnight with mixed berries", Benefits: "Sustained energy, fiber, antioxidants", Emoji: "🥣", Ingredients: []string{"rolled oats", "mixed berries", "almond milk", "chia seeds"}},
		{Name: "Quinoa Power Bowl", Description: "Quinoa with roasted vegetables and avocado", Benefits: "Complete protein, healthy fats", Emoji: "🥗", Ingredients: []string{"quinoa", "bell peppers", "zucchini", "avocado"}},
		{Name: "Salmon with Sweet Potato", Description: "Baked salmon alongside roasted sweet potato", Benefits: "Omega-3s, complex carbs", Emoji: "🐟", Ingredients: []string{"salmon fillet", "sweet potato", "olive oil", "broccoli"}},
	},
	"weight_loss": {
		{Name: "Veggie Scramble", Description: "Eggs scrambled with seasonal vegetables", Benefits: "High protein, low carb", Emoji: "🍳", Ingredients: []string{"eggs", "spinach", "tomatoes", "mushrooms"}},
		{Name: "Grilled Chicken Salad", Description: "Grilled chicken breast over leafy greens", Benefits: "Lean protein, fiber", Emoji: "🥗", Ingredients: []string{"chicken breast", "leafy greens", "cucumber", "olive oil"}},
		{Name: "Baked Fish with Vegetables", Description: "White fish baked with steamed vegetables", Benefits: "Low calorie, high nutrition", Emoji: "🐟", Ingredients: []string{"white fish", "carrots", "green beans", "lemon"}},
	},
}

// DefaultHydrationGoal is the baseline daily glasses-of-water target.
const DefaultHydrationGoal = 8

// FallbackNutritionPlan returns the curated meal plan for a goal preference
// ("energy" or "weight_loss"), defaulting to the energy set.
func FallbackNutritionPlan(mood string, preferences map[string]any) NutritionPlan {
	goal := "energy"
	if preferences != nil {
		if g, ok := preferences["goal"].(string); ok && g != "" {
			goal = g
		}
	}
	meals, ok := fallbackMeals[goal]
	if !ok {
		meals = fallbackMeals["energy"]
	}
	out := make([]Meal, len(meals))
	copy(out, meals)

	adaptations := []string{"Stay hydrated throughout the day"}
	if mood != "" && mood != "neutral" {
		adaptations = append(adaptations, "Meals selected to support a "+mood+" mood")
	}

	return NutritionPlan{
		Meals:         out,
		HydrationGoal: DefaultHydrationGoal,
		Adaptations:   adaptations,
		PrimaryFocus:  goal,
	}
}

// FallbackWorkoutPlan returns a single low-intensity session that is safe for
// any mood or energy level.
func FallbackWorkoutPlan(mood string, energyLevel, timeBudget int) WorkoutPlan {
	return WorkoutPlan{
		Exercises: []Exercise{
			{
				Name:        "Gentle Movement",
				Type:        "stretching",
				Duration:    10,
				Intensity:   "low",
				Description: "Light stretching to support wellness",
			},
		},
		WorkoutType:      "stretching",
		EnergyAdaptation: "Adapted for current energy level",
	}
}

var fallbackVideosByType = map[string][]WorkoutVideo{
	"beginner": {
		{Title: "10 Min Beginner Workout", URL: "https://youtube.com/watch?v=beginner1", Duration: 10, Difficulty: "beginner"},
		{Title: "Full Body Beginner Routine", URL: "https://youtube.com/watch?v=beginner2", Duration: 15, Difficulty: "beginner"},
	},
	"hiit": {
		{Title: "15 Min HIIT Workout", URL: "https://youtube.com/watch?v=hiit1", Duration: 15, Difficulty: "intermediate"},
		{Title: "Quick HIIT Session", URL: "https://youtube.com/watch?v=hiit2", Duration: 10, Difficulty: "intermediate"},
	},
	"yoga": {
		{Title: "Morning Yoga Flow", URL: "https://youtube.com/watch?v=yoga1", Duration: 20, Difficulty: "beginner"},
		{Title: "Relaxing Evening Yoga", URL: "https://youtube.com/watch?v=yoga2", Duration: 25, Difficulty: "beginner"},
	},
	"strength": {
		{Title: "Bodyweight Strength Training", URL: "https://youtube.com/watch?v=strength1", Duration: 20, Difficulty: "intermediate"},
		{Title: "Full Body Strength Workout", URL: "https://youtube.com/watch?v=strength2", Duration: 30, Difficulty: "intermediate"},
	},
}

// FallbackWorkoutVideosByType returns curated videos for a workout type,
// defaulting to the beginner set.
func FallbackWorkoutVideosByType(workoutType string) []WorkoutVideo {
	videos, ok := fallbackVideosByType[workoutType]
	if !ok {
		videos = fallbackVideosByType["beginner"]
	}
	out := make([]WorkoutVideo, len(videos))
	copy(out, videos)
	return out
}

var fallbackVideosByMood = map[string][]WorkoutVideo{
	"stressed": {
		{Title: "10 Min Stress Relief Yoga", URL: "https://youtube.com/watch?v=stress1", Duration: 10, Difficulty: "beginner"},
		{Title: "Gentle Stretching for Stress", URL: "https://youtube.com/watch?v=stress2", Duration: 15, Difficulty: "beginner"},
	},
	"tired": {
		{Title: "Energizing Morning Yoga", URL: "https://youtube.com/watch?v=energy1", Duration: 12, Difficulty: "beginner"},
		{Title: "Gentle Wake-Up Stretches", URL: "https://youtube.com/watch?v=energy2", Duration: 8, Difficulty: "beginner"},
	},
	"excited": {
		{Title: "High Energy HIIT Workout", URL: "https://youtube.com/watch?v=hiit1", Duration: 20, Difficulty: "intermediate"},
		{Title: "Dance Cardio Workout", URL: "https://youtube.com/watch?v=dance1", Duration: 25, Difficulty: "intermediate"},
	},
}

// FallbackWorkoutVideos returns curated videos keyed by mood, with a general
// beginner pair as default.
func FallbackWorkoutVideos(mood string) []WorkoutVideo {
	videos, ok := fallbackVideosByMood[mood]
	if !ok {
		videos = []WorkoutVideo{
			{Title: "Full Body Beginner Workout", URL: "https://youtube.com/watch?v=beginner1", Duration: 15, Difficulty: "beginner"},
			{Title: "Bodyweight Strength Training", URL: "https://youtube.com/watch?v=strength1", Duration: 20, Difficulty: "intermediate"},
		}
	}
	out := make([]WorkoutVideo, len(videos))
	copy(out, videos)
	return out
}

var fallbackJournalPrompts = map[string][]string{
	"stressed": {
		"What's one small thing I can control right now that might help me feel more grounded?",
		"How can I show myself compassion during this challenging time?",
		"What would I tell a friend who was feeling the way I feel right now?",
	},
	"happy": {
		"What brought me joy today, and how can I create more moments like this?",
		"How has my positive mood affected the people around me?",
		"What am I most grateful for in this moment?",
	},
	"sad": {
		"What do I need most right now to feel supported?",
		"How have I overcome difficult feelings in the past?",
		"What small act of self-care would feel good today?",
	},
}

// FallbackJournalPrompts returns reflection prompts for a mood, defaulting to
// the stressed set.
func FallbackJournalPrompts(mood string) []string {
	prompts, ok := fallbackJournalPrompts[mood]
	if !ok {
		prompts = fallbackJournalPrompts["stressed"]
	}
	out := make([]string, len(prompts))
	copy(out, prompts)
	return out
}

var fallbackAffirmations = map[string]string{
	"stressed": "I am capable of handling whatever comes my way. This feeling will pass, and I am stronger than I know.",
	"happy":    "I deserve this happiness. I choose to embrace joy and share my positive energy with others.",
	"sad":      "My feelings are valid and temporary. I am worthy of love, comfort, and healing.",
	"anxious":  "I am safe in this moment. I breathe deeply and trust in my ability to navigate uncertainty.",
	"focused":  "I am present and capable. My mind is clear, and I can accomplish what I set out to do.",
	"tired":    "I honor my body's need for rest. I am allowed to take breaks and recharge.",
}

// FallbackAffirmation returns the affirmation for a mood.
func FallbackAffirmation(mood string) string {
	if a, ok := fallbackAffirmations[mood]; ok {
		return a
	}
	return "I am exactly where I need to be in my journey."
}

var fallbackTechniques = map[string][]string{
	"sad":      {"Deep breathing", "Gentle self-talk", "Reach out to a friend", "Practice self-compassion"},
	"anxious":  {"4-7-8 breathing", "Grounding exercises", "Progressive muscle relaxation", "Mindful observation"},
	"stressed": {"Take breaks", "Prioritize tasks", "Physical exercise", "Meditation"},
	"happy":    {"Share your joy", "Practice gratitude", "Engage in activities you love", "Connect with others"},
}

// FallbackTechniques returns coping techniques for a mood.
func FallbackTechniques(mood string) []string {
	techniques, ok := fallbackTechniques[mood]
	if !ok {
		techniques = []string{"Mindful breathing", "Self-reflection", "Gentle movement", "Positive affirmations"}
	}
	out := make([]string, len(techniques))
	copy(out, techniques)
	return out
}

// TherapyResources returns the static directory of crisis lines, therapy
// services and mindfulness apps.
func TherapyResources() []TherapyResource {
	return []TherapyResource{
		{Name: "Crisis Text Line", Contact: "Text HOME to 741741", Description: "24/7 crisis support"},
		{Name: "National Suicide Prevention Lifeline", Contact: "988", Description: "24/7 suicide prevention"},
		{Name: "BetterHelp", Contact: "https://www.betterhelp.com", Description: "Online therapy sessions"},
		{Name: "Psychology Today", Contact: "https://www.psychologytoday.com", Description: "Find local therapists"},
		{Name: "Talkspace", Contact: "https://www.talkspace.com", Description: "Text-based therapy"},
		{Name: "Headspace", Contact: "", Description: "Guided meditation and mindfulness"},
		{Name: "Calm", Contact: "", Description: "Sleep stories and meditation"},
		{Name: "Insight Timer", Contact: "", Description: "Free meditation library"},
	}
}

// CrisisResources returns only the immediate crisis lines.
func CrisisResources() []TherapyResource {
	return []TherapyResource{
		{Name: "Crisis Text Line", Contact: "Text HOME to 741741", Description: "24/7 crisis support"},
		{Name: "National Suicide Prevention Lifeline", Contact: "988", Description: "24/7 suicide prevention"},
	}
}

// FallbackMentalSupport bundles prompt, affirmation and techniques for a mood.
// Therapy resources are attached when stress is elevated.
func FallbackMentalSupport(mood string, stressLevel int) MentalSupport {
	support := MentalSupport{
		JournalPrompt: FallbackJournalPrompts(mood)[0],
		Affirmation:   FallbackAffirmation(mood),
		Techniques:    FallbackTechniques(mood),
	}
	if stressLevel >= 7 || mood == "depressed" || mood == "anxious" {
		support.TherapyResources = TherapyResources()
	}
	return support
}

// FallbackWellnessSuggestions returns generic actionable suggestions when no
// analytics-driven ones are available.
func FallbackWellnessSuggestions() []string {
	return []string{
		"Consider tracking your mood throughout the day",
		"Aim for 150 minutes of moderate exercise per week",
		"Stay hydrated throughout the day",
	}
}
