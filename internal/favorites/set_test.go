package favorites

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moacho78/Parcial-Recetas/internal/recipe"
)

func catalogRecipe(id string, title string) *recipe.Recipe {
	return &recipe.Recipe{
		ID:          id,
		Provenance:  recipe.ProvenanceCatalog,
		Title:       title,
		Ingredients: []string{},
	}
}

func TestAddIdempotent(t *testing.T) {
	s := NewSet()

	s.Add(catalogRecipe("52772", "Teriyaki Chicken Casserole"))
	s.Add(catalogRecipe("52772", "Different Title, Same ID"))

	assert.Equal(t, 1, s.Len())
	require.True(t, s.Contains("52772"))

	// The first entry wins.
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Teriyaki Chicken Casserole", list[0].Title)
}

func TestRemoveAbsent(t *testing.T) {
	s := NewSet()
	s.Add(catalogRecipe("52772", "Teriyaki Chicken Casserole"))

	s.Remove("nonexistent")

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("52772"))
}

func TestContainsAfterAddAndRemove(t *testing.T) {
	s := NewSet()

	assert.False(t, s.Contains("52772"))
	s.Add(catalogRecipe("52772", "Teriyaki Chicken Casserole"))
	assert.True(t, s.Contains("52772"))
	s.Remove("52772")
	assert.False(t, s.Contains("52772"))
	assert.Equal(t, 0, s.Len())
}

func TestListSnapshot(t *testing.T) {
	s := NewSet()
	s.Add(catalogRecipe("2", "Second"))
	s.Add(catalogRecipe("1", "First"))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "2", list[1].ID)

	// Later mutations do not affect an already-taken snapshot.
	s.Remove("1")
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
}

func TestListEmpty(t *testing.T) {
	assert.Empty(t, NewSet().List())
}

func TestConcurrentMutation(t *testing.T) {
	sessions := NewSessions()

	// One user's requests can be served in parallel; mutating and
	// reading the same set concurrently must stay safe.
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set := sessions.For("alice")
			for i := 0; i < 100; i++ {
				id := strconv.Itoa(i)
				set.Add(catalogRecipe(id, "Recipe "+id))
				set.Contains(id)
				set.List()
				set.Remove(id)
				set.Len()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, sessions.For("alice").Len())
}

func TestSessionsPerUser(t *testing.T) {
	sessions := NewSessions()

	sessions.For("alice").Add(catalogRecipe("52772", "Teriyaki Chicken Casserole"))

	assert.True(t, sessions.For("alice").Contains("52772"))
	assert.False(t, sessions.For("bob").Contains("52772"))

	// Same session, same set.
	assert.Same(t, sessions.For("alice"), sessions.For("alice"))
}

func TestSessionsEnd(t *testing.T) {
	sessions := NewSessions()
	sessions.For("alice").Add(catalogRecipe("52772", "Teriyaki Chicken Casserole"))

	sessions.End("alice")

	// A new session starts empty.
	assert.False(t, sessions.For("alice").Contains("52772"))
}
