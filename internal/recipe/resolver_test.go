package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moacho78/Parcial-Recetas/internal/catalog"
	"github.com/Moacho78/Parcial-Recetas/internal/recipedb"
)

type stubCatalog struct {
	meals map[string]*catalog.Meal
	err   error
}

func (s *stubCatalog) LookupMeal(_ context.Context, id string) (*catalog.Meal, error) {
	if s.err != nil {
		return nil, s.err
	}
	meal, ok := s.meals[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return meal, nil
}

type stubUsers struct {
	recipes map[string]*recipedb.UserRecipe
	err     error
}

func (s *stubUsers) GetRecipe(_ context.Context, id string) (*recipedb.UserRecipe, error) {
	if s.err != nil {
		return nil, s.err
	}
	rec, ok := s.recipes[id]
	if !ok {
		return nil, recipedb.ErrNotFound
	}
	return rec, nil
}

func TestResolveCatalog(t *testing.T) {
	r := NewResolver(&stubCatalog{
		meals: map[string]*catalog.Meal{
			"52772": {ID: "52772", Name: "Teriyaki Chicken Casserole"},
		},
	}, &stubUsers{})

	rec, err := r.Resolve(context.Background(), "52772", ProvenanceCatalog)
	require.NoError(t, err)

	assert.Equal(t, "52772", rec.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", rec.Title)
	assert.Equal(t, ProvenanceCatalog, rec.Provenance)
}

func TestResolveUser(t *testing.T) {
	r := NewResolver(&stubCatalog{}, &stubUsers{
		recipes: map[string]*recipedb.UserRecipe{
			"abc123": {
				ID:          "abc123",
				Title:       "Tarta",
				Ingredients: []string{"Harina - 2 tazas"},
				Visible:     true,
			},
		},
	})

	rec, err := r.Resolve(context.Background(), "abc123", ProvenanceUser)
	require.NoError(t, err)

	assert.Equal(t, "abc123", rec.ID)
	assert.Equal(t, "Tarta", rec.Title)
	assert.Equal(t, []string{"Harina - 2 tazas"}, rec.Ingredients)
	assert.Equal(t, ProvenanceUser, rec.Provenance)
}

func TestResolveNotFound(t *testing.T) {
	r := NewResolver(&stubCatalog{}, &stubUsers{})

	for _, provenance := range []Provenance{ProvenanceCatalog, ProvenanceUser} {
		_, err := r.Resolve(context.Background(), "nonexistent", provenance)
		assert.ErrorIs(t, err, ErrNotFound, "provenance %s", provenance)
	}
}

func TestResolveBackendFailure(t *testing.T) {
	backendErr := errors.New("connection refused")
	r := NewResolver(&stubCatalog{err: backendErr}, &stubUsers{err: backendErr})

	for _, provenance := range []Provenance{ProvenanceCatalog, ProvenanceUser} {
		_, err := r.Resolve(context.Background(), "52772", provenance)

		// A failed fetch is distinct from legitimate absence.
		assert.NotErrorIs(t, err, ErrNotFound, "provenance %s", provenance)

		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr, "provenance %s", provenance)
		assert.Equal(t, provenance, resErr.Provenance)
		assert.Equal(t, "52772", resErr.ID)
		assert.ErrorIs(t, err, backendErr)
	}
}

func TestResolveUnknownProvenance(t *testing.T) {
	r := NewResolver(&stubCatalog{}, &stubUsers{})

	_, err := r.Resolve(context.Background(), "52772", Provenance("mystery"))
	assert.ErrorIs(t, err, ErrUnknownProvenance)
}
