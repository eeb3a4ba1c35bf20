package core

import (
	"encoding/json"
	"time"
)

// AgentMemory is the persistent per-(user, agent) state blob carried across
// runs. At most one record exists per (UserID, AgentName) pair; writes are
// last-writer-wins.
type AgentMemory struct {
	UserID      int
	AgentName   string
	Data        map[string]any
	LastUpdated time.Time
}

// MemoryStore persists agent memory blobs.
type MemoryStore interface {
	// Get returns the memory record for the pair, with an empty Data map if
	// none exists yet. The returned map is a defensive copy.
	Get(userID int, agentName string) (AgentMemory, error)

	// Put replaces the memory blob for the pair and advances LastUpdated.
	Put(userID int, agentName string, data map[string]any) (AgentMemory, error)
}

// MemoryReader is the narrow read-only projection handed to agents that
// inspect peer memories (analytics). It cannot mutate records.
type MemoryReader interface {
	Get(userID int, agentName string) (AgentMemory, error)
}

// Observation is one rolling entry of an agent's passive log about a peer's
// run.
type Observation struct {
	Agent                  string    `json:"agent"`
	Success                bool      `json:"success"`
	HadRecommendations     bool      `json:"hadRecommendations"`
	TriggeredCollaboration bool      `json:"triggeredCollaboration"`
	ObservedAt             time.Time `json:"observedAt"`
}

// MaxObservations bounds the rolling observation log kept in agent memory.
const MaxObservations = 10

// MoodSample is one scored mood reading kept in MoodMemory history.
type MoodSample struct {
	Mood  string    `json:"mood"`
	Score float64   `json:"score"`
	At    time.Time `json:"at"`
}

// Typed per-agent memory schemas. Each agent owns exactly one of these,
// serialized into the free-form memory blob; peers decode them read-only.

// MoodMemory is MoodMate's memory schema.
type MoodMemory struct {
	LastMood       string        `json:"lastMood,omitempty"`
	MoodHistory    []MoodSample  `json:"moodHistory,omitempty"`
	SuccessfulRuns int           `json:"successfulRuns,omitempty"`
	Observations   []Observation `json:"observations,omitempty"`
}

// NutritionMemory is NutriCoach's memory schema.
type NutritionMemory struct {
	LastPlanFocus  string         `json:"lastPlanFocus,omitempty"`
	Preferences    map[string]any `json:"preferences,omitempty"`
	SuccessfulRuns int            `json:"successfulRuns,omitempty"`
	Observations   []Observation  `json:"observations,omitempty"`
}

// FitnessMemory is FlexGenie's memory schema.
type FitnessMemory struct {
	LastWorkoutType string        `json:"lastWorkoutType,omitempty"`
	LastEnergyLevel int           `json:"lastEnergyLevel,omitempty"`
	SuccessfulRuns  int           `json:"successfulRuns,omitempty"`
	Observations    []Observation `json:"observations,omitempty"`
}

// MindMemory is MindPal's memory schema.
type MindMemory struct {
	LastJournalPrompt string        `json:"lastJournalPrompt,omitempty"`
	LastRiskLevel     string        `json:"lastRiskLevel,omitempty"`
	StressLevel       int           `json:"stressLevel,omitempty"`
	SuccessfulRuns    int           `json:"successfulRuns,omitempty"`
	Observations      []Observation `json:"observations,omitempty"`
}

// InsightMemory is InsightBot's memory schema.
type InsightMemory struct {
	LastAnalysisAt   time.Time     `json:"lastAnalysisAt,omitzero"`
	DataQualityScore int           `json:"dataQualityScore,omitempty"`
	SuccessfulRuns   int           `json:"successfulRuns,omitempty"`
	Observations     []Observation `json:"observations,omitempty"`
}

// EncodeMemoryData converts a typed memory schema into the blob form stored
// by MemoryStore.
func EncodeMemoryData(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, NewError(ErrorKindStorage, err)
	}
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, NewError(ErrorKindStorage, err)
	}
	return data, nil
}

// DecodeMemoryData populates a typed memory schema from a stored blob. An
// empty blob leaves v zero-valued.
func DecodeMemoryData(data map[string]any, v any) error {
	if len(data) == 0 {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return NewError(ErrorKindStorage, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return NewError(ErrorKindStorage, err)
	}
	return nil
}

// AppendObservation appends obs to the rolling list, trimming to
// MaxObservations, newest last.
func AppendObservation(list []Observation, obs Observation) []Observation {
	list = append(list, obs)
	if len(list) > MaxObservations {
		list = list[len(list)-MaxObservations:]
	}
	return list
}
