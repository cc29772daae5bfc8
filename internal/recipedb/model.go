// Package recipedb holds the Firestore models and store for
// user-authored recipes and recipe comments. Field names follow the
// existing collections (`recetas`, `comentarios`) and must not change.
package recipedb

import "time"

// UserRecipe is a user-authored recipe stored in the `recetas`
// collection. The document id is server-assigned and carried outside
// the document data.
type UserRecipe struct {
	// ID is the Firestore document id, populated on reads.
	ID string `firestore:"-"`

	// Title is the title of the recipe.
	Title string `firestore:"titulo"`

	// Ingredients are pre-formatted "name - measure" lines in authoring order.
	Ingredients []string `firestore:"ingredientes"`

	// Instructions is the free-text preparation instructions.
	Instructions string `firestore:"instrucciones"`

	// VideoURL is an optional URL of a video tutorial.
	VideoURL string `firestore:"videoUrl"`

	// Visible marks the recipe as publicly listed.
	Visible bool `firestore:"visible"`

	// UserID is the id of the authoring user.
	UserID string `firestore:"userId"`

	// ImageURL is the URL of the main image of the recipe.
	ImageURL string `firestore:"urlImage"`

	// CreatedAt is assigned by the server on write.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

// Comment is a recipe comment stored in the `comentarios` collection.
// Comments are never mutated or deleted once created.
type Comment struct {
	// ID is the Firestore document id, populated on reads.
	ID string `firestore:"-"`

	// Text is the comment body.
	Text string `firestore:"text"`

	// Author is the display label of the commenting user.
	Author string `firestore:"author"`

	// RecipeID is the id of the recipe the comment belongs to.
	RecipeID string `firestore:"id_plato"`

	// CreatedAt is assigned by the server on write.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}
