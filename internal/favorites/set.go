// Package favorites holds a user's session-local collection of saved
// canonical recipes. The collection lives in memory for the lifetime of
// the process and is never persisted.
package favorites

import (
	"slices"
	"strings"
	"sync"

	"github.com/Moacho78/Parcial-Recetas/internal/recipe"
)

// Set is a collection of canonical recipes keyed by canonical id, with
// at most one entry per id. A Set belongs to one user session, but that
// session's requests may be served in parallel, so all operations are
// safe for concurrent use.
type Set struct {
	mu      sync.RWMutex
	recipes map[string]*recipe.Recipe
}

func NewSet() *Set {
	return &Set{
		recipes: make(map[string]*recipe.Recipe),
	}
}

// Add inserts a recipe if no entry with the same id exists. Adding an
// already-present id is a no-op, keeping the existing entry.
func (s *Set) Add(r *recipe.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[r.ID]; ok {
		return
	}
	s.recipes[r.ID] = r
}

// Remove deletes the entry for an id. Removing an absent id is a no-op.
func (s *Set) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recipes, id)
}

func (s *Set) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.recipes[id]
	return ok
}

// List returns a snapshot of the saved recipes, sorted by id for stable
// output. Later mutations of the set do not affect returned slices.
func (s *Set) List() []*recipe.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recipes := make([]*recipe.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		recipes = append(recipes, r)
	}
	slices.SortFunc(recipes, func(a, b *recipe.Recipe) int {
		return strings.Compare(a.ID, b.ID)
	})
	return recipes
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}
