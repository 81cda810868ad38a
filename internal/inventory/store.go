package inventory

import (
	"sync"

	"github.com/julietavg/carfind/internal/api"
)

// Store holds the authoritative in-memory vehicle list for the current
// session. It is populated once when the session is established and mutated
// only by the CRUD operations below; it is never re-fetched wholesale.
type Store struct {
	mu       sync.RWMutex
	vehicles []api.Vehicle
	loaded   bool
}

// SetAll replaces the inventory with the given list, preserving its order.
func (s *Store) SetAll(vehicles []api.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = cloneVehicles(vehicles)
	s.loaded = true
}

// Loaded reports whether the initial fetch has populated the store.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot returns a copy of the current inventory.
func (s *Store) Snapshot() []api.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneVehicles(s.vehicles)
}

// Len returns the number of vehicles held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles)
}

// Get returns the vehicle with the given id.
func (s *Store) Get(id int64) (api.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return api.Vehicle{}, false
}

// Prepend inserts a newly created vehicle at the front of the list. The
// argument must be the canonical record from the create response, not the
// locally entered draft.
func (s *Store) Prepend(v api.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = append([]api.Vehicle{v}, s.vehicles...)
}

// Replace swaps the stored vehicle with the same id for the canonical record
// from an update response. It reports whether a record was replaced.
func (s *Store) Replace(v api.Vehicle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vehicles {
		if s.vehicles[i].ID == v.ID {
			s.vehicles[i] = v
			return true
		}
	}
	return false
}

// Remove deletes the vehicle with the given id. Removing an id that is not
// present is a no-op, so a delete confirmed by a 404 stays idempotent.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			return true
		}
	}
	return false
}

// Reset empties the store, for logout.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = nil
	s.loaded = false
}

func cloneVehicles(vehicles []api.Vehicle) []api.Vehicle {
	if len(vehicles) == 0 {
		return nil
	}
	dup := make([]api.Vehicle, len(vehicles))
	copy(dup, vehicles)
	return dup
}
