// Package recipe unifies the two recipe sources behind one canonical
// representation: the external read-only catalog and the user-authored
// document store. A canonical recipe is always derived from exactly one
// raw record; no field ever merges both sources.
package recipe

import (
	"errors"
	"strings"

	"github.com/Moacho78/Parcial-Recetas/internal/catalog"
	"github.com/Moacho78/Parcial-Recetas/internal/recipedb"
)

// Provenance tags which backend a record originated from. It is always
// supplied explicitly by the caller, never inferred from record shape.
type Provenance string

const (
	// ProvenanceCatalog marks records from the external catalog.
	ProvenanceCatalog Provenance = "catalog"
	// ProvenanceUser marks user-authored records from the document store.
	ProvenanceUser Provenance = "user"
)

// ErrMalformedRecord is returned when a raw record lacks its native id.
var ErrMalformedRecord = errors.New("recipe: record has no native id")

// Recipe is the canonical in-memory representation of a recipe,
// regardless of source.
type Recipe struct {
	// ID is the source record's native id, unprefixed. The catalog and
	// document-store id spaces are assumed disjoint.
	ID string `json:"id"`

	// Provenance is the source the recipe was derived from.
	Provenance Provenance `json:"provenance"`

	Title        string `json:"title"`
	ImageURL     string `json:"imageUrl"`
	Instructions string `json:"instructions"`
	VideoURL     string `json:"videoUrl,omitempty"`
	Category     string `json:"category,omitempty"`

	// Ingredients are independently formatted lines in catalog or
	// authoring order. Always non-nil, possibly empty.
	Ingredients []string `json:"ingredients"`
}

// CanonicalID produces the canonical identifier for a raw record's
// native id. Ids are used as-is; no prefixing distinguishes the two
// id spaces.
func CanonicalID(_ Provenance, nativeID string) string {
	return nativeID
}

// FromCatalog maps a raw catalog record to its canonical view. Slot
// pairs with a blank ingredient name are skipped; populated slots are
// formatted as "<name> - <measure>" even when the measure is empty.
func FromCatalog(meal *catalog.Meal) (*Recipe, error) {
	if meal.ID == "" {
		return nil, ErrMalformedRecord
	}
	ingredients := make([]string, 0, len(meal.Slots))
	for _, slot := range meal.Slots {
		if strings.TrimSpace(slot.Name) == "" {
			continue
		}
		ingredients = append(ingredients, slot.Name+" - "+slot.Measure)
	}
	return &Recipe{
		ID:           CanonicalID(ProvenanceCatalog, meal.ID),
		Provenance:   ProvenanceCatalog,
		Title:        meal.Name,
		ImageURL:     meal.ThumbURL,
		Instructions: meal.Instructions,
		VideoURL:     meal.YoutubeURL,
		Category:     meal.Category,
		Ingredients:  ingredients,
	}, nil
}

// FromUser maps a user-authored record to its canonical view. The
// ingredient lines pass through unchanged in length and order.
func FromUser(rec *recipedb.UserRecipe) (*Recipe, error) {
	if rec.ID == "" {
		return nil, ErrMalformedRecord
	}
	ingredients := make([]string, len(rec.Ingredients))
	copy(ingredients, rec.Ingredients)
	return &Recipe{
		ID:           CanonicalID(ProvenanceUser, rec.ID),
		Provenance:   ProvenanceUser,
		Title:        rec.Title,
		ImageURL:     rec.ImageURL,
		Instructions: rec.Instructions,
		VideoURL:     rec.VideoURL,
		Ingredients:  ingredients,
	}, nil
}
