package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDataRoundTrip(t *testing.T) {
	mem := MoodMemory{
		LastMood: "stressed",
		MoodHistory: []MoodSample{
			{Mood: "happy", Score: 5, At: time.Now().UTC()},
			{Mood: "stressed", Score: 1.5, At: time.Now().UTC()},
		},
		SuccessfulRuns: 3,
	}

	data, err := EncodeMemoryData(mem)
	require.NoError(t, err)
	assert.Equal(t, "stressed", data["lastMood"])

	var decoded MoodMemory
	require.NoError(t, DecodeMemoryData(data, &decoded))
	assert.Equal(t, "stressed", decoded.LastMood)
	assert.Equal(t, 3, decoded.SuccessfulRuns)
	require.Len(t, decoded.MoodHistory, 2)
	assert.Equal(t, "happy", decoded.MoodHistory[0].Mood)
}

func TestDecodeMemoryDataEmptyBlob(t *testing.T) {
	var mem MindMemory
	require.NoError(t, DecodeMemoryData(nil, &mem))
	assert.Zero(t, mem.SuccessfulRuns)
	assert.Empty(t, mem.LastJournalPrompt)
}

func TestAppendObservationCap(t *testing.T) {
	var list []Observation
	for i := 0; i < MaxObservations+5; i++ {
		list = AppendObservation(list, Observation{Agent: fmt.Sprintf("agent-%d", i)})
	}

	require.Len(t, list, MaxObservations)
	assert.Equal(t, fmt.Sprintf("agent-%d", MaxObservations+4), list[len(list)-1].Agent)
	assert.Equal(t, "agent-5", list[0].Agent)
}
