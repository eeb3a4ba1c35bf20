// Package engine implements the multi-agent orchestrator. It runs agents by
// registry name, fans each run outcome out to every other agent's Observe in
// parallel, and collects collaboration requests into a depth-capped FIFO
// queue that executes only when explicitly drained.
//
// On top of the core run loop the engine exposes the two scripted flows
// (mood update and insights analysis), journal persistence through MindPal,
// and the conversational entry point that turns free-text chat into agent
// actions.
package engine
