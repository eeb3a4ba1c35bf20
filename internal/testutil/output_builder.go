package testutil

import (
	"github.com/hupe1980/wellmesh/core"
)

// OutputBuilder constructs agent outputs with fluent chaining for tests.
// Example:
//
//	out := NewOutputBuilder("MoodMate").Memory("lastMood", "stressed").
//	    Triggers("MindPal").Build()
type OutputBuilder struct {
	out core.Output
}

// NewOutputBuilder creates a builder for a successful output of the named
// agent. Use chainable methods then call Build.
func NewOutputBuilder(agentName string) *OutputBuilder {
	return &OutputBuilder{out: core.Output{
		AgentName: agentName,
		Success:   true,
		Memory:    map[string]any{},
	}}
}

// Failed marks the output unsuccessful with the given error (chainable).
func (b *OutputBuilder) Failed(err error) *OutputBuilder {
	b.out.Success = false
	b.out.Err = err
	return b
}

// Payload sets the output payload (chainable).
func (b *OutputBuilder) Payload(payload map[string]any) *OutputBuilder {
	b.out.Payload = payload
	return b
}

// Memory sets a memory snapshot key/value pair (chainable).
func (b *OutputBuilder) Memory(key string, val any) *OutputBuilder {
	b.out.Memory[key] = val
	return b
}

// Triggers appends collaboration trigger names (chainable).
func (b *OutputBuilder) Triggers(names ...string) *OutputBuilder {
	b.out.CollaborationTriggers = append(b.out.CollaborationTriggers, names...)
	return b
}

// Confidence sets the output confidence (chainable).
func (b *OutputBuilder) Confidence(c float64) *OutputBuilder {
	b.out.Confidence = c
	return b
}

// Build returns the constructed output.
func (b *OutputBuilder) Build() core.Output {
	return b.out
}
