package addrecipe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Moacho78/Parcial-Recetas/internal/auth"
	"github.com/Moacho78/Parcial-Recetas/internal/httpapi"
	"github.com/Moacho78/Parcial-Recetas/internal/recipedb"
)

var errEmptyTitle = errors.New("addrecipe: title is required")

type Request struct {
	Title string `json:"title"`

	// Ingredients are pre-formatted "name - measure" lines in authoring
	// order. Passed through unchanged.
	Ingredients []string `json:"ingredients"`

	Instructions string `json:"instructions"`
	VideoURL     string `json:"videoUrl"`

	// ImageURL is the uploaded main image URL, from the upload endpoint.
	ImageURL string `json:"imageUrl"`

	// Visible lists the recipe publicly when true.
	Visible bool `json:"visible"`
}

type Response struct {
	RecipeID string `json:"recipeId"`
}

func NewHandler(store *recipedb.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *recipedb.Store
}

func (h *Handler) AddRecipe(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, errEmptyTitle)
	}

	id, err := h.store.AddRecipe(ctx, &recipedb.UserRecipe{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		VideoURL:     req.VideoURL,
		Visible:      req.Visible,
		UserID:       auth.UserID(ctx),
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("addrecipe: %w", err)
	}
	return &Response{
		RecipeID: id,
	}, nil
}
