// Package content defines the Content Provider abstraction supplying domain
// payloads (music, meal plans, workouts, mental wellness support,
// conversation replies, intent extraction) for agent EXECUTE phases.
//
// The Static provider is fully deterministic and doubles as the documented
// fallback source: whenever a model-backed provider fails, agents substitute
// the Static value for the same arguments. Model-backed implementations live
// in the openai and anthropic subpackages.
package content
