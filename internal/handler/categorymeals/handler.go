package categorymeals

import (
	"context"
	"fmt"

	"github.com/Moacho78/Parcial-Recetas/internal/catalog"
)

// Snippet is the partial record returned by category filtering: only
// the id, title, and thumbnail are available without a full lookup.
type Snippet struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

type Request struct {
	Category string `json:"category"`
}

type Response struct {
	Meals []Snippet `json:"meals"`
}

func NewHandler(catalog *catalog.Client) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

type Handler struct {
	catalog *catalog.Client
}

func (h *Handler) CategoryMeals(ctx context.Context, req *Request) (*Response, error) {
	meals, err := h.catalog.MealsByCategory(ctx, req.Category)
	if err != nil {
		return nil, fmt.Errorf("categorymeals: %w", err)
	}

	snippets := make([]Snippet, len(meals))
	for i, m := range meals {
		snippets[i] = Snippet{
			ID:       m.ID,
			Title:    m.Name,
			ImageURL: m.ThumbURL,
		}
	}
	return &Response{
		Meals: snippets,
	}, nil
}
