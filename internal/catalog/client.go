// Package catalog is a client for the external read-only recipe catalog
// (TheMealDB JSON API). All endpoints return an envelope with a single
// named array field; an absent result is a null or empty array, never an
// error status.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public v1 endpoint of the catalog.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// ErrNotFound is returned when a lookup matches no catalog record.
var ErrNotFound = errors.New("catalog: meal not found")

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

type mealsEnvelope struct {
	Meals []*Meal `json:"meals"`
}

type categoriesEnvelope struct {
	Categories []*Category `json:"categories"`
}

// Categories returns all catalog categories.
func (c *Client) Categories(ctx context.Context) ([]*Category, error) {
	var env categoriesEnvelope
	if err := c.get(ctx, "/categories.php", nil, &env); err != nil {
		return nil, err
	}
	return env.Categories, nil
}

// MealsByCategory returns meal snippets for a category. Snippet records
// carry only the id, name, and thumbnail fields.
func (c *Client) MealsByCategory(ctx context.Context, category string) ([]*Meal, error) {
	var env mealsEnvelope
	if err := c.get(ctx, "/filter.php", map[string]string{"c": category}, &env); err != nil {
		return nil, err
	}
	return env.Meals, nil
}

// SearchMeals returns full records matching a free-text query. A query
// with no matches returns an empty slice.
func (c *Client) SearchMeals(ctx context.Context, query string) ([]*Meal, error) {
	var env mealsEnvelope
	if err := c.get(ctx, "/search.php", map[string]string{"s": query}, &env); err != nil {
		return nil, err
	}
	return env.Meals, nil
}

// LookupMeal returns the full record for a catalog id, or ErrNotFound
// when the catalog has no record for it.
func (c *Client) LookupMeal(ctx context.Context, id string) (*Meal, error) {
	var env mealsEnvelope
	if err := c.get(ctx, "/lookup.php", map[string]string{"i": id}, &env); err != nil {
		return nil, err
	}
	if len(env.Meals) == 0 {
		return nil, ErrNotFound
	}
	return env.Meals[0], nil
}

// RandomMeal returns a single random full record.
func (c *Client) RandomMeal(ctx context.Context) (*Meal, error) {
	var env mealsEnvelope
	if err := c.get(ctx, "/random.php", nil, &env); err != nil {
		return nil, err
	}
	if len(env.Meals) == 0 {
		return nil, ErrNotFound
	}
	return env.Meals[0], nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("catalog: requesting %s: %w", path, err)
	}
	if res.IsError() {
		return fmt.Errorf("catalog: requesting %s: unexpected status %s", path, res.Status())
	}
	return nil
}
