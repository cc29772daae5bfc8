package randomrecipe

import (
	"context"
	"fmt"

	"github.com/Moacho78/Parcial-Recetas/internal/catalog"
	"github.com/Moacho78/Parcial-Recetas/internal/recipe"
)

type Request struct{}

type Response struct {
	Recipe *recipe.Recipe `json:"recipe"`
}

func NewHandler(catalog *catalog.Client) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

type Handler struct {
	catalog *catalog.Client
}

func (h *Handler) RandomRecipe(ctx context.Context, _ *Request) (*Response, error) {
	meal, err := h.catalog.RandomMeal(ctx)
	if err != nil {
		return nil, fmt.Errorf("randomrecipe: %w", err)
	}
	rec, err := recipe.FromCatalog(meal)
	if err != nil {
		return nil, fmt.Errorf("randomrecipe: mapping catalog record: %w", err)
	}
	return &Response{
		Recipe: rec,
	}, nil
}
