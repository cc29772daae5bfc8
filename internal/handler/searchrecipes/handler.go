// Package searchrecipes searches both recipe sources for a free-text
// query and merges the results behind the canonical identity.
package searchrecipes

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Moacho78/Parcial-Recetas/internal/catalog"
	"github.com/Moacho78/Parcial-Recetas/internal/recipe"
	"github.com/Moacho78/Parcial-Recetas/internal/recipedb"
)

type Request struct {
	Query string `json:"query"`
}

type Response struct {
	Recipes []*recipe.Recipe `json:"recipes"`
}

type catalogSearcher interface {
	SearchMeals(ctx context.Context, query string) ([]*catalog.Meal, error)
}

type userSearcher interface {
	SearchPublicRecipes(ctx context.Context, titlePrefix string) ([]*recipedb.UserRecipe, error)
}

func NewHandler(catalog catalogSearcher, users userSearcher) *Handler {
	return &Handler{
		catalog: catalog,
		users:   users,
	}
}

type Handler struct {
	catalog catalogSearcher
	users   userSearcher
}

// SearchRecipes fans out to the catalog's free-text search and the
// document store's title-prefix search, maps both result sets to
// canonical recipes, and suppresses duplicate canonical ids keeping the
// first occurrence. Catalog results order first.
func (h *Handler) SearchRecipes(ctx context.Context, req *Request) (*Response, error) {
	var meals []*catalog.Meal
	var userRecipes []*recipedb.UserRecipe

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		meals, err = h.catalog.SearchMeals(gctx, req.Query)
		return err
	})
	g.Go(func() error {
		var err error
		userRecipes, err = h.users.SearchPublicRecipes(gctx, req.Query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("searchrecipes: %w", err)
	}

	recipes := make([]*recipe.Recipe, 0, len(meals)+len(userRecipes))
	seen := make(map[string]bool, len(meals)+len(userRecipes))

	for _, meal := range meals {
		rec, err := recipe.FromCatalog(meal)
		if err != nil {
			return nil, fmt.Errorf("searchrecipes: mapping catalog record: %w", err)
		}
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		recipes = append(recipes, rec)
	}
	for _, ur := range userRecipes {
		rec, err := recipe.FromUser(ur)
		if err != nil {
			return nil, fmt.Errorf("searchrecipes: mapping user record: %w", err)
		}
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		recipes = append(recipes, rec)
	}

	return &Response{
		Recipes: recipes,
	}, nil
}
