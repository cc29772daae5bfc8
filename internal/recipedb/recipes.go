package recipedb

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionRecipes  = "recetas"
	collectionComments = "comentarios"
)

// ErrNotFound is returned when a point read matches no document.
var ErrNotFound = errors.New("recipedb: document not found")

func NewStore(client *firestore.Client) *Store {
	return &Store{
		client: client,
	}
}

type Store struct {
	client *firestore.Client
}

// GetRecipe reads a user recipe by document id. Returns ErrNotFound when
// the document does not exist.
func (s *Store) GetRecipe(ctx context.Context, id string) (*UserRecipe, error) {
	doc, err := s.client.Collection(collectionRecipes).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("recipedb: getting recipe %s: %w", id, err)
	}
	var recipe UserRecipe
	if err := doc.DataTo(&recipe); err != nil {
		return nil, fmt.Errorf("recipedb: unmarshalling recipe %s: %w", id, err)
	}
	recipe.ID = doc.Ref.ID
	return &recipe, nil
}

// AddRecipe creates a user recipe with a server-assigned id and
// creation timestamp, returning the new id.
func (s *Store) AddRecipe(ctx context.Context, recipe *UserRecipe) (string, error) {
	doc := s.client.Collection(collectionRecipes).NewDoc()
	if _, err := doc.Create(ctx, recipe); err != nil {
		return "", fmt.Errorf("recipedb: creating recipe: %w", err)
	}
	return doc.ID, nil
}

// SearchPublicRecipes returns visible recipes whose title starts with
// the given prefix, ordered by title.
func (s *Store) SearchPublicRecipes(ctx context.Context, titlePrefix string) ([]*UserRecipe, error) {
	q := s.client.Collection(collectionRecipes).
		Where("visible", "==", true).
		OrderBy("titulo", firestore.Asc).
		StartAt(titlePrefix).
		EndAt(titlePrefix + "\uf8ff")
	return s.queryRecipes(ctx, q)
}

// RecipesByAuthor returns all recipes created by a user, visible or not.
func (s *Store) RecipesByAuthor(ctx context.Context, userID string) ([]*UserRecipe, error) {
	q := s.client.Collection(collectionRecipes).
		Where("userId", "==", userID)
	return s.queryRecipes(ctx, q)
}

func (s *Store) queryRecipes(ctx context.Context, q firestore.Query) ([]*UserRecipe, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var recipes []*UserRecipe
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("recipedb: iterating recipes: %w", err)
		}
		var recipe UserRecipe
		if err := doc.DataTo(&recipe); err != nil {
			return nil, fmt.Errorf("recipedb: unmarshalling recipe %s: %w", doc.Ref.ID, err)
		}
		recipe.ID = doc.Ref.ID
		recipes = append(recipes, &recipe)
	}
	return recipes, nil
}
