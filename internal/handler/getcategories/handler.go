package getcategories

import (
	"context"
	"fmt"

	"github.com/Moacho78/Parcial-Recetas/internal/catalog"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

type Request struct{}

type Response struct {
	Categories []Category `json:"categories"`
}

func NewHandler(catalog *catalog.Client) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

type Handler struct {
	catalog *catalog.Client
}

func (h *Handler) GetCategories(ctx context.Context, _ *Request) (*Response, error) {
	cats, err := h.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("getcategories: %w", err)
	}

	categories := make([]Category, len(cats))
	for i, c := range cats {
		categories[i] = Category{
			ID:          c.ID,
			Name:        c.Name,
			ImageURL:    c.ThumbURL,
			Description: c.Description,
		}
	}
	return &Response{
		Categories: categories,
	}, nil
}
