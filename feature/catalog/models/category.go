package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Category classifies a book. Values are stored as integers.
type Category int

const (
	CategoryFantasy Category = iota
	CategoryFiction
	CategoryHistorical
	CategoryHorror
	CategoryRomance
	CategoryThriller
)

var categoryNames = []string{"Fantasy", "Fiction", "Historical", "Horror", "Romance", "Thriller"}

// Categories returns every category in declaration order.
func Categories() []Category {
	all := make([]Category, len(categoryNames))
	for i := range categoryNames {
		all[i] = Category(i)
	}
	return all
}

// IsValid reports whether c is a declared category.
func (c Category) IsValid() bool {
	return c >= CategoryFantasy && c <= CategoryThriller
}

func (c Category) String() string {
	if !c.IsValid() {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// ParseCategory accepts a category name (case-insensitive) or its numeric value.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for i, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return Category(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Category(n).IsValid() {
		return Category(n), nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalJSON encodes the category by name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a name or a number.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseCategory(name)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("category must be a name or a number: %w", err)
	}
	if !Category(n).IsValid() {
		return fmt.Errorf("unknown category %d", n)
	}
	*c = Category(n)
	return nil
}
