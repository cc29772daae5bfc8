package addcomment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Moacho78/Parcial-Recetas/internal/auth"
	"github.com/Moacho78/Parcial-Recetas/internal/comments"
	"github.com/Moacho78/Parcial-Recetas/internal/httpapi"
)

type Request struct {
	RecipeID string `json:"recipeId"`
	Text     string `json:"text"`
}

type Response struct {
	// Comment is the created comment, pending until the next listing
	// confirms its server ordering.
	Comment *comments.Comment `json:"comment"`
}

func NewHandler(aggregator *comments.Aggregator) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

type Handler struct {
	aggregator *comments.Aggregator
}

func (h *Handler) AddComment(ctx context.Context, req *Request) (*Response, error) {
	comment, err := h.aggregator.Add(ctx, req.RecipeID, auth.UserLabel(ctx), req.Text)
	if err != nil {
		if errors.Is(err, comments.ErrEmptyComment) {
			return nil, httpapi.NewError(http.StatusBadRequest, err)
		}
		return nil, fmt.Errorf("addcomment: %w", err)
	}
	return &Response{
		Comment: comment,
	}, nil
}
