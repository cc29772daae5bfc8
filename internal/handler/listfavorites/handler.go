package listfavorites

import (
	"context"

	"github.com/Moacho78/Parcial-Recetas/internal/auth"
	"github.com/Moacho78/Parcial-Recetas/internal/favorites"
	"github.com/Moacho78/Parcial-Recetas/internal/recipe"
)

type Request struct{}

type Response struct {
	Recipes []*recipe.Recipe `json:"recipes"`
}

func NewHandler(sessions *favorites.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

type Handler struct {
	sessions *favorites.Sessions
}

// ListFavorites returns a snapshot of the caller's favorites set.
func (h *Handler) ListFavorites(ctx context.Context, _ *Request) (*Response, error) {
	return &Response{
		Recipes: h.sessions.For(auth.UserID(ctx)).List(),
	}, nil
}
