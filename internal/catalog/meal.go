package catalog

import (
	"encoding/json"
	"fmt"
)

// MaxIngredientSlots is the fixed number of parallel ingredient/measure
// slot pairs in a catalog record. Any slot may be absent or null.
const MaxIngredientSlots = 20

// Category is a catalog category as returned by /categories.php.
type Category struct {
	ID          string
	Name        string
	ThumbURL    string
	Description string
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var fields map[string]*string
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("catalog: decoding category: %w", err)
	}
	c.ID = stringField(fields, "idCategory")
	c.Name = stringField(fields, "strCategory")
	c.ThumbURL = stringField(fields, "strCategoryThumb")
	c.Description = stringField(fields, "strCategoryDescription")
	return nil
}

// IngredientSlot is one of the parallel ingredient/measure pairs in a
// catalog record. Either field may be empty.
type IngredientSlot struct {
	Name    string
	Measure string
}

// Meal is a raw catalog record. Snippet endpoints (/filter.php) populate
// only ID, Name, and ThumbURL; the remaining fields decode as empty.
type Meal struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Instructions string
	ThumbURL     string
	YoutubeURL   string

	// Slots holds all MaxIngredientSlots slot pairs in catalog order,
	// including unpopulated ones. Callers decide how to skip blanks.
	Slots []IngredientSlot
}

func (m *Meal) UnmarshalJSON(data []byte) error {
	var fields map[string]*string
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("catalog: decoding meal: %w", err)
	}
	m.ID = stringField(fields, "idMeal")
	m.Name = stringField(fields, "strMeal")
	m.Category = stringField(fields, "strCategory")
	m.Area = stringField(fields, "strArea")
	m.Instructions = stringField(fields, "strInstructions")
	m.ThumbURL = stringField(fields, "strMealThumb")
	m.YoutubeURL = stringField(fields, "strYoutube")

	m.Slots = make([]IngredientSlot, 0, MaxIngredientSlots)
	for i := 1; i <= MaxIngredientSlots; i++ {
		m.Slots = append(m.Slots, IngredientSlot{
			Name:    stringField(fields, fmt.Sprintf("strIngredient%d", i)),
			Measure: stringField(fields, fmt.Sprintf("strMeasure%d", i)),
		})
	}
	return nil
}

func stringField(fields map[string]*string, key string) string {
	if v := fields[key]; v != nil {
		return *v
	}
	return ""
}
