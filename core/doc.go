// Package core provides the foundational domain types and interfaces used by
// WellMesh. It defines the core abstractions for:
//
//   - Agents (capability units running the PLAN → THINK → EXECUTE cycle)
//   - Plans, thoughts and execution steps (the per-run reasoning artifacts)
//   - Pluggable stores for agent memory, recommendations and wellness records
//   - The agent registry consumed by the orchestration engine
//   - Tagged error kinds used to classify failures without string matching
//
// The package intentionally keeps implementation concerns (persistence, engine
// orchestration, concrete agents, content generation) out of scope, exposing
// small interfaces to enable custom backends and extensions.
package core
