package removefavorite

import (
	"context"

	"github.com/Moacho78/Parcial-Recetas/internal/auth"
	"github.com/Moacho78/Parcial-Recetas/internal/favorites"
)

type Request struct {
	RecipeID string `json:"recipeId"`
}

type Response struct{}

func NewHandler(sessions *favorites.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

type Handler struct {
	sessions *favorites.Sessions
}

// RemoveFavorite deletes the recipe from the caller's favorites set.
// Removing an absent id is a no-op.
func (h *Handler) RemoveFavorite(ctx context.Context, req *Request) (*Response, error) {
	h.sessions.For(auth.UserID(ctx)).Remove(req.RecipeID)
	return &Response{}, nil
}
