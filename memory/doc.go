// Package memory contains agent memory store implementations. The in-memory
// store is suitable for tests, examples and single-process deployments;
// durable backends can be plugged in via the core.MemoryStore interface.
package memory
