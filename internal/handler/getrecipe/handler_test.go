package getrecipe

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moacho78/Parcial-Recetas/internal/catalog"
	"github.com/Moacho78/Parcial-Recetas/internal/favorites"
	"github.com/Moacho78/Parcial-Recetas/internal/httpapi"
	"github.com/Moacho78/Parcial-Recetas/internal/recipe"
	"github.com/Moacho78/Parcial-Recetas/internal/recipedb"
)

type stubCatalog struct {
	meals map[string]*catalog.Meal
}

func (s *stubCatalog) LookupMeal(_ context.Context, id string) (*catalog.Meal, error) {
	meal, ok := s.meals[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return meal, nil
}

type stubUsers struct{}

func (*stubUsers) GetRecipe(_ context.Context, _ string) (*recipedb.UserRecipe, error) {
	return nil, recipedb.ErrNotFound
}

func newTestHandler() (*Handler, *favorites.Sessions) {
	sessions := favorites.NewSessions()
	resolver := recipe.NewResolver(&stubCatalog{
		meals: map[string]*catalog.Meal{
			"52772": {ID: "52772", Name: "Teriyaki Chicken Casserole"},
		},
	}, &stubUsers{})
	return NewHandler(resolver, sessions), sessions
}

func TestGetRecipe(t *testing.T) {
	h, sessions := newTestHandler()

	res, err := h.GetRecipe(context.Background(), &Request{
		RecipeID:   "52772",
		Provenance: recipe.ProvenanceCatalog,
	})
	require.NoError(t, err)

	assert.Equal(t, "52772", res.Recipe.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", res.Recipe.Title)
	assert.False(t, res.IsFavorite)

	sessions.For("").Add(res.Recipe)

	res, err = h.GetRecipe(context.Background(), &Request{
		RecipeID:   "52772",
		Provenance: recipe.ProvenanceCatalog,
	})
	require.NoError(t, err)
	assert.True(t, res.IsFavorite)
}

func TestGetRecipeMissingProvenance(t *testing.T) {
	h, _ := newTestHandler()

	// Provenance is supplied by the caller, never inferred; a missing
	// tag is rejected rather than defaulted.
	_, err := h.GetRecipe(context.Background(), &Request{RecipeID: "52772"})

	var httpErr *httpapi.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.ErrorIs(t, err, recipe.ErrUnknownProvenance)
}

func TestGetRecipeNotFound(t *testing.T) {
	h, _ := newTestHandler()

	_, err := h.GetRecipe(context.Background(), &Request{
		RecipeID:   "nonexistent",
		Provenance: recipe.ProvenanceCatalog,
	})

	var httpErr *httpapi.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
