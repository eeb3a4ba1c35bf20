package agent

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/wellmesh/content"
	"github.com/hupe1980/wellmesh/core"
)

// Compile time check to ensure InsightBot satisfies the core.Agent and
// Capability interfaces.
var (
	_ core.Agent = (*InsightBot)(nil)
	_ Capability = (*InsightBot)(nil)
)

// moodNumeric grades moods on a 1-9 scale for trend and correlation math.
var moodNumeric = map[string]float64{
	"depressed": 1,
	"sad":       2,
	"anxious":   3,
	"stressed":  4,
	"tired":     4,
	"neutral":   5,
	"calm":      6,
	"focused":   7,
	"content":   7,
	"happy":     8,
	"excited":   9,
	"joyful":    9,
}

func moodNumericValue(mood string) float64 {
	if v, ok := moodNumeric[mood]; ok {
		return v
	}
	return 5
}

// peerAgents are the agents whose memories InsightBot reads for cross-agent
// synthesis.
var peerAgents = []string{"MoodMate", "NutriCoach", "FlexGenie", "MindPal"}

// Trend windows in days.
var trendWindows = map[string]int{
	"week":    7,
	"month":   30,
	"quarter": 90,
}

// wellnessDataset is the raw material gathered during the prepare step.
type wellnessDataset struct {
	Moods    []core.MoodEntry
	Journals []core.JournalEntry
	Metrics  []core.WellnessMetrics
}

func (d wellnessDataset) dataPoints() int {
	return len(d.Moods) + len(d.Journals) + len(d.Metrics)
}

// InsightBot synthesizes trends, correlations and predictions across the
// other agents' data. It only reads peer memories, never writes them.
type InsightBot struct {
	*Base
	peers core.MemoryReader
}

// NewInsightBot creates a new InsightBot agent. Peer memories are read
// through the configured memory store's read-only projection.
func NewInsightBot(optFns ...func(o *Options)) *InsightBot {
	i := &InsightBot{}
	opts := applyOptions(optFns)
	i.peers = opts.Memory
	i.Base = NewBase(i, opts)
	return i
}

// Name implements Capability.
func (i *InsightBot) Name() string { return "InsightBot" }

// Role implements Capability.
func (i *InsightBot) Role() string { return "Advanced Analytics & Predictive Wellness Intelligence" }

// Tools implements Capability.
func (i *InsightBot) Tools() []string {
	return []string{"trend_analysis", "correlation_detection", "predictive_insights", "pattern_recognition", "data_visualization"}
}

// MustDo implements Capability.
func (i *InsightBot) MustDo() []string {
	return []string{"analyze_wellness_trends", "predict_mood_patterns", "generate_insights", "create_recommendations"}
}

// TypeTag implements Capability.
func (i *InsightBot) TypeTag() string { return "insights" }

// AnalyzeIntent implements Capability.
func (i *InsightBot) AnalyzeIntent(_ context.Context, in core.Input, _ core.UserContext, _ map[string]any) core.UserIntent {
	analysisType := in.String("analysisType")
	timeRange := in.String("timeRange")
	triggeringAgent := in.String(core.InputKeyTriggeringAgent)

	categories := []string{"analytics", "insights"}
	if analysisType != "" {
		categories = append(categories, analysisType)
	}
	if triggeringAgent != "" {
		categories = append(categories, "collaboration")
	}

	urgency := core.UrgencyLow
	if analysisType == "crisis_detection" {
		urgency = core.UrgencyHigh
	} else if triggeringAgent == "MoodMate" {
		urgency = core.UrgencyMedium
	}

	if timeRange == "" {
		timeRange = "recent"
	}

	var entities []string
	for _, e := range []string{analysisType, triggeringAgent, timeRange} {
		if e != "" {
			entities = append(entities, e)
		}
	}

	return core.UserIntent{
		Summary:    fmt.Sprintf("Generate wellness insights and analytics for %s data", timeRange),
		Categories: categories,
		Urgency:    urgency,
		Confidence: 0.95,
		Entities:   entities,
		Category:   "analytics",
	}
}

// Actions implements Capability.
func (i *InsightBot) Actions() []core.AgentAction {
	return []core.AgentAction{
		{
			Name:          "comprehensive_analysis",
			Description:   "perform comprehensive wellness data analysis",
			Categories:    []string{"analytics", "comprehensive_analysis"},
			BasePriority:  0.9,
			RequiredTools: []string{"trend_analysis", "pattern_recognition"},
			Benefits:      []string{"deep_insights", "pattern_discovery", "predictive_accuracy", "holistic_understanding"},
			Risks:         []string{"analysis_paralysis", "data_overload"},
		},
		{
			Name:          "predictive_modeling",
			Description:   "generate predictive insights and forecasts",
			Categories:    []string{"analytics", "prediction"},
			BasePriority:  0.85,
			RequiredTools: []string{"predictive_insights", "correlation_detection"},
			Benefits:      []string{"early_warning", "proactive_interventions", "trend_prediction"},
			Risks:         []string{"false_predictions", "over_reliance_on_data"},
		},
		{
			Name:          "cross_agent_synthesis",
			Description:   "synthesize insights across all wellness agents",
			Categories:    []string{"collaboration", "synthesis"},
			BasePriority:  0.8,
			RequiredTools: []string{"cross_agent_insights"},
			Benefits:      []string{"holistic_view", "agent_coordination", "comprehensive_recommendations"},
			Risks:         []string{"complexity_overload"},
		},
		{
			Name:          "personalized_insights",
			Description:   "generate highly personalized wellness insights",
			Categories:    []string{"personalization", "insights"},
			BasePriority:  0.75,
			RequiredTools: []string{"pattern_recognition", "personalization"},
			Benefits:      []string{"targeted_recommendations", "user_specific_insights", "improved_relevance"},
			Risks:         []string{"over_personalization"},
		},
	}
}

// ExecuteStep implements Capability.
func (i *InsightBot) ExecuteStep(ctx context.Context, step core.ExecutionStep, sc *core.StepContext) core.StepResult {
	switch step.Name {
	case core.StepPrepare:
		return i.prepare(sc)
	case core.StepExecuteMain:
		return i.analyze(ctx, sc)
	case core.StepFinalize:
		return i.finalize(sc)
	}
	return core.StepResult{
		Step:    step.Name,
		Success: false,
		Err:     core.Errorf(core.ErrorKindStep, "unknown step: %s", step.Name),
	}
}

func (i *InsightBot) prepare(sc *core.StepContext) core.StepResult {
	dataset := i.gatherData(sc.UserID)

	return core.StepResult{
		Step:    core.StepPrepare,
		Success: true,
		Data: map[string]any{
			"dataset":     dataset,
			"dataQuality": assessDataQuality(dataset),
		},
	}
}

// gatherData pulls the extended wellness history from the wellness store.
// Store failures degrade to empty slices so analysis still runs.
func (i *InsightBot) gatherData(userID int) wellnessDataset {
	var dataset wellnessDataset
	if i.opts.Wellness == nil {
		return dataset
	}

	if moods, err := i.opts.Wellness.MoodEntries(userID, 60); err == nil {
		dataset.Moods = moods
	}
	if journals, err := i.opts.Wellness.JournalEntries(userID, 30); err == nil {
		dataset.Journals = journals
	}
	if metrics, err := i.opts.Wellness.Metrics(userID, 60); err == nil {
		dataset.Metrics = metrics
	}
	return dataset
}

func (i *InsightBot) analyze(ctx context.Context, sc *core.StepContext) core.StepResult {
	var dataset wellnessDataset
	quality := map[string]any{}
	if out, ok := sc.Output(core.StepPrepare); ok {
		if data, ok := out.(map[string]any); ok {
			if d, ok := data["dataset"].(wellnessDataset); ok {
				dataset = d
			}
			if q, ok := data["dataQuality"].(map[string]any); ok {
				quality = q
			}
		}
	}

	trends := calculateTrends(dataset)
	correlations := detectCorrelations(dataset)
	crossAgent := i.synthesizeCrossAgentInsights(sc.UserID)

	summary := fmt.Sprintf("moods: %d entries, journals: %d entries, metrics: %d records, mood trend (week): %s",
		len(dataset.Moods), len(dataset.Journals), len(dataset.Metrics), trendLabel(trends, "week"))

	suggestions, err := i.Provider().WellnessSuggestions(ctx, summary)
	if err != nil || len(suggestions) == 0 {
		suggestions = content.FallbackWellnessSuggestions()
	}

	return core.StepResult{
		Step:    core.StepExecuteMain,
		Success: true,
		Data: map[string]any{
			"trends":             trends,
			"correlations":       correlations,
			"predictions":        generatePredictions(trends),
			"crossAgentInsights": crossAgent,
			"suggestions":        suggestions,
			"dataQuality":        quality,
		},
	}
}

func (i *InsightBot) finalize(sc *core.StepContext) core.StepResult {
	out, ok := sc.Output(core.StepExecuteMain)
	if !ok {
		return core.StepResult{
			Step:    core.StepFinalize,
			Success: false,
			Err:     core.Errorf(core.ErrorKindStep, "analysis produced no data"),
		}
	}

	payload := map[string]any{"confidence": 0.95}
	if data, ok := out.(map[string]any); ok {
		for k, v := range data {
			payload[k] = v
		}
	}

	return core.StepResult{
		Step:    core.StepFinalize,
		Success: true,
		Data:    payload,
	}
}

// calculateTrends builds per-window mood trends plus metric trends for energy
// and stress.
func calculateTrends(dataset wellnessDataset) map[string]any {
	trends := map[string]any{}

	if len(dataset.Moods) < 7 {
		trends["insufficient_data"] = true
		return trends
	}

	for period, days := range trendWindows {
		window := moodsWithin(dataset.Moods, days)
		if len(window) < 3 {
			continue
		}
		values := make([]float64, len(window))
		for idx, entry := range window {
			values[idx] = moodNumericValue(entry.Mood)
		}
		trends[period] = map[string]any{
			"moodTrend":    seriesTrend(values),
			"volatility":   emotionalVolatility(values),
			"dominantMood": dominantMoodEntry(window),
		}
	}

	if len(dataset.Metrics) > 0 {
		trends["energy"] = metricTrend(dataset.Metrics, func(m core.WellnessMetrics) float64 { return float64(m.EnergyLevel) })
		trends["stress"] = metricTrend(dataset.Metrics, func(m core.WellnessMetrics) float64 { return float64(m.StressLevel) })
	}

	return trends
}

func moodsWithin(moods []core.MoodEntry, days int) []core.MoodEntry {
	cutoff := time.Now().AddDate(0, 0, -days)
	var window []core.MoodEntry
	for _, entry := range moods {
		if entry.Timestamp.After(cutoff) {
			window = append(window, entry)
		}
	}
	return window
}

// seriesTrend compares the newest third of a newest-first series against the
// oldest third; a 0.5 shift counts as a trend.
func seriesTrend(values []float64) string {
	if len(values) < 3 {
		return "insufficient_data"
	}

	third := len(values) / 3
	if third == 0 {
		third = 1
	}
	recent := average(values[:third])
	older := average(values[len(values)-third:])

	switch {
	case recent-older > 0.5:
		return "improving"
	case older-recent > 0.5:
		return "declining"
	}
	return "stable"
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// emotionalVolatility is the mean absolute step-to-step change, normalized to
// [0, 1].
func emotionalVolatility(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	total := 0.0
	for idx := 1; idx < len(values); idx++ {
		total += math.Abs(values[idx] - values[idx-1])
	}
	return total / float64(len(values)-1) / 10
}

func dominantMoodEntry(moods []core.MoodEntry) string {
	counts := map[string]int{}
	for _, entry := range moods {
		counts[entry.Mood]++
	}
	best, bestCount := "", 0
	for _, entry := range moods {
		if counts[entry.Mood] > bestCount {
			best, bestCount = entry.Mood, counts[entry.Mood]
		}
	}
	return best
}

func metricTrend(metrics []core.WellnessMetrics, value func(core.WellnessMetrics) float64) map[string]any {
	values := make([]float64, len(metrics))
	for idx, m := range metrics {
		values[idx] = value(m)
	}
	if len(values) < 3 {
		return map[string]any{"trend": "insufficient_data"}
	}

	third := len(values) / 3
	if third == 0 {
		third = 1
	}
	recent := average(values[:third])
	older := average(values[len(values)-third:])
	change := recent - older

	trend := "stable"
	if change > 0.5 {
		trend = "increasing"
	} else if change < -0.5 {
		trend = "decreasing"
	}

	return map[string]any{
		"trend":   trend,
		"change":  math.Round(change*10) / 10,
		"current": math.Round(recent*10) / 10,
	}
}

// detectCorrelations computes Pearson correlations between the mood series
// and the metric series, pairing by index over the shorter length.
func detectCorrelations(dataset wellnessDataset) map[string]any {
	correlations := map[string]any{}
	if len(dataset.Moods) == 0 || len(dataset.Metrics) == 0 {
		return correlations
	}

	n := len(dataset.Moods)
	if len(dataset.Metrics) < n {
		n = len(dataset.Metrics)
	}

	moodValues := make([]float64, n)
	energyValues := make([]float64, n)
	stressValues := make([]float64, n)
	for idx := 0; idx < n; idx++ {
		moodValues[idx] = moodNumericValue(dataset.Moods[idx].Mood)
		energyValues[idx] = float64(dataset.Metrics[idx].EnergyLevel)
		stressValues[idx] = float64(dataset.Metrics[idx].StressLevel)
	}

	correlations["moodEnergy"] = pearson(moodValues, energyValues)
	correlations["moodStress"] = pearson(moodValues, stressValues)
	return correlations
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series, 0 when undefined.
func pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for idx := range x {
		sumX += x[idx]
		sumY += y[idx]
		sumXY += x[idx] * y[idx]
		sumX2 += x[idx] * x[idx]
		sumY2 += y[idx] * y[idx]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func generatePredictions(trends map[string]any) map[string]any {
	predictions := map[string]any{
		"moodForecast": map[string]any{
			"nextWeek":   trendLabel(trends, "week"),
			"confidence": 0.7,
			"factors":    []string{"historical_patterns", "current_trends"},
		},
		"milestones": map[string]any{
			"nextMilestone": "mood_stability",
			"estimatedDays": 14,
			"confidence":    0.5,
		},
	}

	if energy, ok := trends["energy"].(map[string]any); ok {
		predictions["energyForecast"] = map[string]any{
			"trend":      energy["trend"],
			"current":    energy["current"],
			"confidence": 0.6,
		}
	}

	return predictions
}

func trendLabel(trends map[string]any, period string) string {
	if window, ok := trends[period].(map[string]any); ok {
		if label, ok := window["moodTrend"].(string); ok {
			return label
		}
	}
	return "stable"
}

// synthesizeCrossAgentInsights reads the peer agents' memories through the
// read-only projection and summarizes their activity.
func (i *InsightBot) synthesizeCrossAgentInsights(userID int) map[string]any {
	if i.peers == nil {
		return map[string]any{"agentsWithData": 0}
	}

	activity := map[string]any{}
	agentsWithData := 0
	for _, name := range peerAgents {
		record, err := i.peers.Get(userID, name)
		if err != nil || len(record.Data) == 0 {
			continue
		}
		agentsWithData++
		if runs, ok := record.Data["successfulRuns"].(float64); ok {
			activity[name] = map[string]any{"successfulRuns": int(runs)}
		} else {
			activity[name] = map[string]any{"successfulRuns": 0}
		}
	}

	return map[string]any{
		"agentsWithData": agentsWithData,
		"agentActivity":  activity,
	}
}

// assessDataQuality scores the dataset on completeness (data point count),
// consistency (time span) and recency, capped at 100.
func assessDataQuality(dataset wellnessDataset) map[string]any {
	score := 0
	completeness := "poor"
	reliability := "low"

	points := dataset.dataPoints()
	switch {
	case points >= 50:
		score += 40
		completeness = "excellent"
	case points >= 20:
		score += 30
		completeness = "good"
	case points >= 10:
		score += 20
		completeness = "fair"
	}

	span := timeSpanDays(dataset)
	switch {
	case span >= 30:
		score += 30
		reliability = "high"
	case span >= 14:
		score += 20
		reliability = "medium"
	case span >= 7:
		score += 10
	}

	switch days := daysSinceLastEntry(dataset); {
	case days <= 1:
		score += 30
	case days <= 3:
		score += 20
	case days <= 7:
		score += 10
	}

	if score > 100 {
		score = 100
	}

	return map[string]any{
		"score":        score,
		"completeness": completeness,
		"reliability":  reliability,
		"dataPoints":   points,
		"timeSpanDays": span,
	}
}

func timeSpanDays(dataset wellnessDataset) int {
	var earliest, latest time.Time
	observe := func(t time.Time) {
		if t.IsZero() {
			return
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
		if latest.IsZero() || t.After(latest) {
			latest = t
		}
	}
	for _, m := range dataset.Moods {
		observe(m.Timestamp)
	}
	for _, m := range dataset.Metrics {
		observe(m.Date)
	}
	if earliest.IsZero() {
		return 0
	}
	return int(latest.Sub(earliest).Hours() / 24)
}

func daysSinceLastEntry(dataset wellnessDataset) int {
	var latest time.Time
	observe := func(t time.Time) {
		if t.After(latest) {
			latest = t
		}
	}
	for _, m := range dataset.Moods {
		observe(m.Timestamp)
	}
	for _, j := range dataset.Journals {
		observe(j.Timestamp)
	}
	for _, m := range dataset.Metrics {
		observe(m.Date)
	}
	if latest.IsZero() {
		return 999
	}
	return int(time.Since(latest).Hours() / 24)
}

// BuildOutput implements Capability.
func (i *InsightBot) BuildOutput(results []core.StepResult, _ *core.StepContext) map[string]any {
	data := primaryData(results)
	if data == nil {
		return map[string]any{
			"error":    "Failed to generate wellness insights",
			"fallback": "Your wellness journey is unique. Keep tracking your progress and patterns will emerge over time.",
		}
	}
	payload, ok := data.(map[string]any)
	if !ok {
		payload = map[string]any{"insights": data}
	}
	return payload
}

// CollaborationTriggers implements Capability. InsightBot never triggers
// peers; it is the end of every collaboration chain.
func (i *InsightBot) CollaborationTriggers(_ []core.StepResult, _ *core.StepContext) []string {
	return nil
}

// MemoryUpdate implements Capability.
func (i *InsightBot) MemoryUpdate(results []core.StepResult, sc *core.StepContext, success bool) map[string]any {
	var mem core.InsightMemory
	if err := core.DecodeMemoryData(sc.Memory, &mem); err != nil {
		i.opts.Logger.Warn("insight memory decode failed", "agent", i.Name(), "error", err)
		return nil
	}

	mem.LastAnalysisAt = time.Now()
	if data, ok := primaryData(results).(map[string]any); ok {
		if quality, ok := data["dataQuality"].(map[string]any); ok {
			if score, ok := quality["score"].(int); ok {
				mem.DataQualityScore = score
			}
		}
	}
	if success {
		mem.SuccessfulRuns++
	}

	data, err := core.EncodeMemoryData(mem)
	if err != nil {
		i.opts.Logger.Warn("insight memory encode failed", "agent", i.Name(), "error", err)
		return nil
	}
	return data
}

// ErrorResponse implements Capability.
func (i *InsightBot) ErrorResponse(err error, _ core.Input) string {
	switch core.KindOf(err) {
	case core.ErrorKindStep:
		return "I need more data points to generate meaningful insights. Keep using the app for a few more days and I'll have better analysis for you!"
	case core.ErrorKindStorage:
		return "The analysis is taking longer than expected. Let me provide some quick insights based on your recent activity."
	}
	return "I encountered an issue while analyzing your wellness data. Let me provide some general insights based on common patterns."
}
