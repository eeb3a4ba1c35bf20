package core

import "sync"

// AgentRegistry is the constructed (non-singleton) agent lookup passed to the
// engine and request handlers. Multiple isolated registries may coexist, e.g.
// one per test.
type AgentRegistry interface {
	// Register adds or replaces an agent under its Name().
	Register(a Agent)

	// Get returns the agent and whether it is registered.
	Get(name string) (Agent, bool)

	// All returns the registered agents in registration order.
	All() []Agent

	// Names returns the registered agent names in registration order.
	Names() []string
}

// Registry is the in-memory AgentRegistry implementation. Safe for concurrent
// use.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Agent
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]Agent)}
}

// Register adds or replaces an agent under its name.
func (r *Registry) Register(a Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.agents[a.Name()]; !exists {
		r.order = append(r.order, a.Name())
	}
	r.agents[a.Name()] = a
}

// Get returns the agent registered under name.
func (r *Registry) Get(name string) (Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}

// All returns the registered agents in registration order.
func (r *Registry) All() []Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agents := make([]Agent, 0, len(r.order))
	for _, name := range r.order {
		agents = append(agents, r.agents[name])
	}
	return agents
}

// Names returns the registered agent names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
