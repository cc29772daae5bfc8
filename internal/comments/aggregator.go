// Package comments aggregates recipe comments from the document store.
package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Moacho78/Parcial-Recetas/internal/recipedb"
)

// ErrEmptyComment is returned when a submitted comment is empty or all
// whitespace after trimming. Nothing is written to the backend.
var ErrEmptyComment = errors.New("comments: comment text is empty")

// Comment is a recipe comment as served to clients.
type Comment struct {
	ID       string `json:"id,omitempty"`
	RecipeID string `json:"recipeId"`
	Author   string `json:"author"`
	Text     string `json:"text"`

	// CreatedAt is the server-assigned creation time for confirmed
	// comments, or the local submission time for pending ones.
	CreatedAt time.Time `json:"createdAt"`

	// Pending marks a comment that has been accepted but whose position
	// in the server ordering is unconfirmed until the next listing.
	Pending bool `json:"pending,omitempty"`
}

// Store is the part of the document store the aggregator needs.
type Store interface {
	CommentsByRecipe(ctx context.Context, recipeID string) ([]*recipedb.Comment, error)
	AddComment(ctx context.Context, comment *recipedb.Comment) (*recipedb.Comment, error)
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{
		store: store,
	}
}

type Aggregator struct {
	store Store
}

// List returns the confirmed comments for a recipe, most recent first.
// A backend failure degrades to an empty list; it is logged, never
// propagated.
func (a *Aggregator) List(ctx context.Context, recipeID string) []*Comment {
	stored, err := a.store.CommentsByRecipe(ctx, recipeID)
	if err != nil {
		slog.WarnContext(ctx, "comments: listing comments", "recipeId", recipeID, "error", err)
		return []*Comment{}
	}
	comments := make([]*Comment, len(stored))
	for i, c := range stored {
		comments[i] = &Comment{
			ID:        c.ID,
			RecipeID:  c.RecipeID,
			Author:    c.Author,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}
	}
	return comments
}

// Add validates and persists a new comment. The returned comment is
// pending: its server ordering is confirmed by the next List call,
// which returns it with the server-assigned timestamp.
func (a *Aggregator) Add(ctx context.Context, recipeID string, author string, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	created, err := a.store.AddComment(ctx, &recipedb.Comment{
		Text:     text,
		Author:   author,
		RecipeID: recipeID,
	})
	if err != nil {
		return nil, fmt.Errorf("comments: adding comment: %w", err)
	}
	return &Comment{
		ID:        created.ID,
		RecipeID:  recipeID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
		Pending:   true,
	}, nil
}
