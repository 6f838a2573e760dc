package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/nikallass/quickesc/internal/layout"
)

// Registry collects loaded keymaps and composes them over the defaults.
type Registry struct {
	mu      sync.RWMutex
	keymaps map[string]*Keymap
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{keymaps: make(map[string]*Keymap)}
}

// Register adds a keymap. A keymap with the same name replaces the previous
// one but keeps its original registration position.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}
	if err := km.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.keymaps[km.Name]; !exists {
		r.order = append(r.order, km.Name)
	}
	r.keymaps[km.Name] = km
	return nil
}

// Unregister removes a keymap by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.keymaps[name]; !ok {
		return
	}
	delete(r.keymaps, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns a keymap by name.
func (r *Registry) Get(name string) *Keymap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keymaps[name]
}

// Keymaps returns all registered keymaps in application order: ascending
// priority, ties by registration order. Later application wins, so the
// highest-priority keymap ends up on top.
func (r *Registry) Keymaps() []*Keymap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Keymap, 0, len(r.keymaps))
	for _, name := range r.order {
		result = append(result, r.keymaps[name])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result
}

// Compose applies every registered keymap over the given base tables.
func (r *Registry) Compose(base layout.Keymaps) layout.Keymaps {
	for _, km := range r.Keymaps() {
		base = km.Apply(base)
	}
	return base
}
