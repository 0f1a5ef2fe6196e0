// Package links keeps the hyperlinks registered while compiling a document so
// presentation layers can resolve a clicked node back to its target.
package links

import (
	"sync"

	"github.com/kk-code-lab/mdview/internal/doctree"
)

// Entry is one registered link.
type Entry struct {
	ID     int
	Link   *doctree.Link
	Target string
}

// Registry records links in registration order. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	byNode  map[*doctree.Link]int
}

func NewRegistry() *Registry {
	return &Registry{byNode: make(map[*doctree.Link]int)}
}

// RegisterLink records link with target. Registering the same node again
// updates its target in place.
func (r *Registry) RegisterLink(link *doctree.Link, target string) {
	if link == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, ok := r.byNode[link]; ok {
		r.entries[idx].Target = target
		return
	}
	r.byNode[link] = len(r.entries)
	r.entries = append(r.entries, Entry{ID: len(r.entries), Link: link, Target: target})
}

// Target returns the registered target of link.
func (r *Registry) Target(link *doctree.Link) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byNode[link]
	if !ok {
		return "", false
	}
	return r.entries[idx].Target, true
}

// Entries returns a copy of the registered links in order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
