package recipedb

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// CommentsByRecipe returns all comments for a recipe id, most recent
// first. Ties on createdAt keep the backend's stable order.
func (s *Store) CommentsByRecipe(ctx context.Context, recipeID string) ([]*Comment, error) {
	iter := s.client.Collection(collectionComments).
		Where("id_plato", "==", recipeID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var comments []*Comment
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("recipedb: iterating comments: %w", err)
		}
		var comment Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, fmt.Errorf("recipedb: unmarshalling comment %s: %w", doc.Ref.ID, err)
		}
		comment.ID = doc.Ref.ID
		comments = append(comments, &comment)
	}
	return comments, nil
}

// AddComment creates a comment with a server-assigned id and creation
// timestamp, returning the stored comment with its id populated.
func (s *Store) AddComment(ctx context.Context, comment *Comment) (*Comment, error) {
	doc := s.client.Collection(collectionComments).NewDoc()
	if _, err := doc.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("recipedb: creating comment: %w", err)
	}
	created := *comment
	created.ID = doc.ID
	return &created, nil
}
