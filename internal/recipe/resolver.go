package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/Moacho78/Parcial-Recetas/internal/catalog"
	"github.com/Moacho78/Parcial-Recetas/internal/recipedb"
)

// ErrNotFound is returned when the addressed source has no record for
// an id. Absence is a valid result, distinct from a failed fetch.
var ErrNotFound = errors.New("recipe: not found")

// ErrUnknownProvenance is returned for a provenance tag that names
// neither source.
var ErrUnknownProvenance = errors.New("recipe: unknown provenance")

// ResolutionError wraps a backend or network failure during a resolve.
// It is never returned for legitimate absence.
type ResolutionError struct {
	Provenance Provenance
	ID         string
	Err        error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("recipe: resolving %s recipe %q: %v", e.Provenance, e.ID, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// CatalogSource is the part of the catalog client the resolver needs.
type CatalogSource interface {
	LookupMeal(ctx context.Context, id string) (*catalog.Meal, error)
}

// UserSource is the part of the document store the resolver needs.
type UserSource interface {
	GetRecipe(ctx context.Context, id string) (*recipedb.UserRecipe, error)
}

func NewResolver(catalog CatalogSource, users UserSource) *Resolver {
	return &Resolver{
		catalog: catalog,
		users:   users,
	}
}

// Resolver fetches a recipe from the source named by its provenance and
// returns the canonical view. Every call re-fetches; there is no cache.
type Resolver struct {
	catalog CatalogSource
	users   UserSource
}

func (r *Resolver) Resolve(ctx context.Context, id string, provenance Provenance) (*Recipe, error) {
	switch provenance {
	case ProvenanceCatalog:
		meal, err := r.catalog.LookupMeal(ctx, id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, &ResolutionError{Provenance: provenance, ID: id, Err: err}
		}
		return FromCatalog(meal)
	case ProvenanceUser:
		rec, err := r.users.GetRecipe(ctx, id)
		if err != nil {
			if errors.Is(err, recipedb.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, &ResolutionError{Provenance: provenance, ID: id, Err: err}
		}
		return FromUser(rec)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvenance, provenance)
	}
}
