package addfavorite

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Moacho78/Parcial-Recetas/internal/auth"
	"github.com/Moacho78/Parcial-Recetas/internal/favorites"
	"github.com/Moacho78/Parcial-Recetas/internal/httpapi"
	"github.com/Moacho78/Parcial-Recetas/internal/recipe"
)

type Request struct {
	RecipeID string `json:"recipeId"`

	// Provenance names the source to resolve from. Required; it is
	// never inferred.
	Provenance recipe.Provenance `json:"provenance"`
}

type Response struct{}

func NewHandler(resolver *recipe.Resolver, sessions *favorites.Sessions) *Handler {
	return &Handler{
		resolver: resolver,
		sessions: sessions,
	}
}

type Handler struct {
	resolver *recipe.Resolver
	sessions *favorites.Sessions
}

// AddFavorite resolves the recipe to its canonical record and inserts
// it into the caller's favorites set. Adding an already-favorited
// recipe is a no-op.
func (h *Handler) AddFavorite(ctx context.Context, req *Request) (*Response, error) {
	rec, err := h.resolver.Resolve(ctx, req.RecipeID, req.Provenance)
	if err != nil {
		switch {
		case errors.Is(err, recipe.ErrNotFound):
			return nil, httpapi.NewError(http.StatusNotFound, err)
		case errors.Is(err, recipe.ErrUnknownProvenance), errors.Is(err, recipe.ErrMalformedRecord):
			return nil, httpapi.NewError(http.StatusBadRequest, err)
		}
		return nil, fmt.Errorf("addfavorite: %w", err)
	}

	h.sessions.For(auth.UserID(ctx)).Add(rec)
	return &Response{}, nil
}
