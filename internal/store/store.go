// Package store holds the bug collection most recently fetched by a page
// controller. Each controller owns its own Records; nothing is shared across
// pages and nothing is persisted.
package store

import (
	"sync"

	"github.com/joescharf/bugdesk/internal/models"
)

// Records is a snapshot of the backend's bug collection. It is only ever
// replaced wholesale; there is no incremental patching. Records are held by
// value and every accessor hands out fresh copies.
type Records struct {
	mu   sync.RWMutex
	bugs []models.Bug
	byID map[int64]int
}

// New returns an empty store.
func New() *Records {
	return &Records{byID: make(map[int64]int)}
}

// Replace swaps in a freshly fetched collection. Later changes to bugs are
// not observed.
func (r *Records) Replace(bugs []*models.Bug) {
	snapshot := make([]models.Bug, 0, len(bugs))
	byID := make(map[int64]int, len(bugs))
	for _, b := range bugs {
		if b == nil {
			continue
		}
		byID[b.ID] = len(snapshot)
		snapshot = append(snapshot, *b)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bugs = snapshot
	r.byID = byID
}

// All returns the records in fetch order.
func (r *Records) All() []*models.Bug {
	return r.Filter(models.ReportFilter{})
}

// Len returns the number of records.
func (r *Records) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bugs)
}

// Get returns the record with the given id.
func (r *Records) Get(id int64) (*models.Bug, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	b := r.bugs[i]
	return &b, true
}

// Filter returns the records matching f, in fetch order. It never mutates
// the snapshot.
func (r *Records) Filter(f models.ReportFilter) []*models.Bug {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Bug, 0, len(r.bugs))
	for i := range r.bugs {
		if f.Matches(&r.bugs[i]) {
			b := r.bugs[i]
			out = append(out, &b)
		}
	}
	return out
}

// Languages returns the distinct languages in first-seen order.
func (r *Records) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, b := range r.bugs {
		if b.Language == "" || seen[b.Language] {
			continue
		}
		seen[b.Language] = true
		out = append(out, b.Language)
	}
	return out
}
