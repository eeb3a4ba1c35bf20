// Package agent implements the shared PLAN -> THINK -> EXECUTE reasoning
// engine and the five wellness capability agents built on top of it:
// MoodMate (mood tracking and music), NutriCoach (meal planning), FlexGenie
// (adaptive fitness), MindPal (mental wellness and journaling) and InsightBot
// (cross-agent analytics).
//
// Base drives the full cycle; concrete capabilities plug in through the
// Capability interface (intent analysis, action catalog, step handlers,
// output assembly). A capability agent's Run never returns an error: failures
// surface as an unsuccessful Output carrying a capability-specific fallback
// message.
package agent
