// Package sessions tracks which scopes currently accept check-ins.
package sessions

import (
	"sort"
	"strings"
	"sync"
)

// Registry is the process-local set of active scopes. It is created empty,
// never persisted, and lost on restart; re-activation is an explicit action.
type Registry struct {
	mu     sync.RWMutex
	active map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{active: make(map[string]struct{})}
}

// Activate marks scope as accepting check-ins. It reports whether the scope
// was newly activated; activating an active scope is a no-op.
func (r *Registry) Activate(scope string) bool {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[scope]; ok {
		return false
	}
	r.active[scope] = struct{}{}
	return true
}

// Deactivate stops check-ins for scope and reports whether it was active.
func (r *Registry) Deactivate(scope string) bool {
	scope = strings.TrimSpace(scope)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[scope]; !ok {
		return false
	}
	delete(r.active, scope)
	return true
}

// IsActive reports whether scope accepts check-ins.
func (r *Registry) IsActive(scope string) bool {
	scope = strings.TrimSpace(scope)
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.active[scope]
	return ok
}

// Active lists the active scopes in ascending order.
func (r *Registry) Active() []string {
	r.mu.RLock()
	scopes := make([]string, 0, len(r.active))
	for scope := range r.active {
		scopes = append(scopes, scope)
	}
	r.mu.RUnlock()
	sort.Strings(scopes)
	return scopes
}
