package lint

import (
	"sync"

	"github.com/leapstack-labs/termlint/pkg/core"
)

// globalRegistry is the registry populated by rule packages.
var globalRegistry = NewRegistry()

// Registry stores lint rules in registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []RuleDef
	index map[string]int // ID -> position in rules
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// DefaultRegistry returns the registry that Register populates.
func DefaultRegistry() *Registry {
	return globalRegistry
}

// Register adds a rule. Registering an existing ID replaces it in place.
func (r *Registry) Register(rule RuleDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.index[rule.ID]; ok {
		r.rules[i] = rule
		return
	}
	r.index[rule.ID] = len(r.rules)
	r.rules = append(r.rules, rule)
}

// All returns all rules in registration order.
func (r *Registry) All() []RuleDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RuleDef, len(r.rules))
	copy(out, r.rules)
	return out
}

// GetByID returns a rule by its ID.
func (r *Registry) GetByID(id string) (RuleDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return RuleDef{}, false
	}
	return r.rules[i], true
}

// GetByName returns a rule by its name.
func (r *Registry) GetByName(name string) (RuleDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rule := range r.rules {
		if rule.Name == name {
			return rule, true
		}
	}
	return RuleDef{}, false
}

// Lookup finds a rule by ID or name.
func (r *Registry) Lookup(idOrName string) (RuleDef, bool) {
	if rule, ok := r.GetByID(idOrName); ok {
		return rule, true
	}
	return r.GetByName(idOrName)
}

// GetByGroup returns all rules in a specific group.
func (r *Registry) GetByGroup(group string) []RuleDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var rules []RuleDef
	for _, rule := range r.rules {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Clear removes all registered rules. Used for testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = nil
	r.index = make(map[string]int)
}

// AllRules returns metadata for every rule, in registration order.
func (r *Registry) AllRules() []core.RuleInfo {
	rules := r.All()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, rule.Info())
	}
	return infos
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.Register(rule)
}

// GetAll returns all globally registered rules in registration order.
func GetAll() []RuleDef {
	return globalRegistry.All()
}

// GetByID returns a globally registered rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	return globalRegistry.GetByID(id)
}

// GetByGroup returns all globally registered rules in a group.
func GetByGroup(group string) []RuleDef {
	return globalRegistry.GetByGroup(group)
}

// Count returns the number of globally registered rules.
func Count() int {
	return globalRegistry.Count()
}

// AllRules returns metadata for every globally registered rule.
func AllRules() []core.RuleInfo {
	return globalRegistry.AllRules()
}
