package getrecipe

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
	// RecipeID is the canonical recipe id to resolve.
	RecipeID string `json:"recipeId"`

	// Provenance names the source to resolve from. Required; it is
	// never inferred.
	Provenance recipe.Provenance `json:"provenance"`
}

type Response struct {
	Recipe *recipe.Recipe `json:"recipe"`

	// IsFavorite reports membership in the caller's favorites set.
	IsFavorite bool `json:"isFavorite"`
}

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

func (h *Handler) GetRecipe(ctx context.Context, req *Request) (*Response, error) {
	rec, err := h.resolver.Resolve(ctx, req.RecipeID, req.Provenance)
	if err != nil {
		switch {
		case errors.Is(err, recipe.ErrNotFound):
			return nil, httpapi.NewError(http.StatusNotFound, err)
		case errors.Is(err, recipe.ErrUnknownProvenance), errors.Is(err, recipe.ErrMalformedRecord):
			return nil, httpapi.NewError(http.StatusBadRequest, err)
		}
		return nil, fmt.Errorf("getrecipe: %w", err)
	}

	isFavorite := h.sessions.For(auth.UserID(ctx)).Contains(rec.ID)

	return &Response{
		Recipe:     rec,
		IsFavorite: isFavorite,
	}, nil
}
