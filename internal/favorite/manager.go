// Package favorite holds the favourites list a presenter saves fetched
// products into.
package favorite

import (
	"errors"
	"slices"
	"sync"
)

// ErrEmpty is returned by Save when there is nothing to add.
var ErrEmpty = errors.New("favorite: no product ids")

// Delegate is notified by a Manager after products are added to the list.
type Delegate interface {
	FavoriteManagerDidAddToListSuccessfully(m *Manager)
}

// Manager tracks the current list name and the saved product ids.
// Safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	name     string
	ids      []int64
	delegate Delegate
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetDelegate sets the receiver of save notifications. Nil clears it.
func (m *Manager) SetDelegate(d Delegate) {
	m.mu.Lock()
	m.delegate = d
	m.mu.Unlock()
}

// Name returns the list name.
func (m *Manager) Name() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name
}

// SetName replaces the list name.
func (m *Manager) SetName(name string) {
	m.mu.Lock()
	m.name = name
	m.mu.Unlock()
}

// Save replaces the saved ids with ids, keeping their order, and notifies the
// delegate. An empty ids slice clears the list and returns ErrEmpty without
// notifying.
func (m *Manager) Save(ids []int64) error {
	m.mu.Lock()
	m.ids = slices.Clone(ids)
	d := m.delegate
	m.mu.Unlock()

	if len(ids) == 0 {
		return ErrEmpty
	}
	// Notify outside the lock; the delegate may read back from m.
	if d != nil {
		d.FavoriteManagerDidAddToListSuccessfully(m)
	}
	return nil
}

// IDs returns a copy of the saved ids.
func (m *Manager) IDs() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.ids)
}
