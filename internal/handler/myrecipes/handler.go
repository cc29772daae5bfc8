package myrecipes

import (
	"context"
	"fmt"

	"github.com/Moacho78/Parcial-Recetas/internal/auth"
	"github.com/Moacho78/Parcial-Recetas/internal/recipe"
	"github.com/Moacho78/Parcial-Recetas/internal/recipedb"
)

type Request struct{}

type Response struct {
	Recipes []*recipe.Recipe `json:"recipes"`
}

func NewHandler(store *recipedb.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *recipedb.Store
}

// MyRecipes lists the caller's own recipes, visible or not.
func (h *Handler) MyRecipes(ctx context.Context, _ *Request) (*Response, error) {
	stored, err := h.store.RecipesByAuthor(ctx, auth.UserID(ctx))
	if err != nil {
		return nil, fmt.Errorf("myrecipes: %w", err)
	}

	recipes := make([]*recipe.Recipe, 0, len(stored))
	for _, ur := range stored {
		rec, err := recipe.FromUser(ur)
		if err != nil {
			return nil, fmt.Errorf("myrecipes: mapping user record: %w", err)
		}
		recipes = append(recipes, rec)
	}
	return &Response{
		Recipes: recipes,
	}, nil
}
