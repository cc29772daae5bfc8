package getcomments

import (
	"context"

	"github.com/Moacho78/Parcial-Recetas/internal/comments"
)

type Request struct {
	RecipeID string `json:"recipeId"`
}

type Response struct {
	Comments []*comments.Comment `json:"comments"`
}

func NewHandler(aggregator *comments.Aggregator) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

type Handler struct {
	aggregator *comments.Aggregator
}

// GetComments returns the comments for a recipe, most recent first.
// Never fails: a backend failure yields an empty list.
func (h *Handler) GetComments(ctx context.Context, req *Request) (*Response, error) {
	return &Response{
		Comments: h.aggregator.List(ctx, req.RecipeID),
	}, nil
}
