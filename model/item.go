package model

import "strings"

// Category is the closed set of rentable categories. Items store the raw
// string; NormalizeCategory maps user input onto one of these.
type Category string

const (
	CategoryDress  Category = "dress"
	CategoryShoes  Category = "shoes"
	CategoryBag    Category = "bag"
	CategoryJacket Category = "jacket"
)

var categorySynonyms = map[string]Category{
	"dress":   CategoryDress,
	"dresses": CategoryDress,
	"shoe":    CategoryShoes,
	"shoes":   CategoryShoes,
	"bag":     CategoryBag,
	"bags":    CategoryBag,
	"jacket":  CategoryJacket,
	"jackets": CategoryJacket,
}

// NormalizeCategory resolves a free-form category string (case-insensitive,
// plural forms accepted) to its canonical value. ok is false for anything
// outside the known set.
func NormalizeCategory(s string) (Category, bool) {
	c, ok := categorySynonyms[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

type Item struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	PricePerDay float64  `json:"pricePerDay"`
	Sizes       []string `json:"sizes"`
	Color       string   `json:"color"`
	Style       string   `json:"style,omitempty"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Alt         string   `json:"alt"`
}

// ItemPatch is a merge patch for Update: nil fields are left untouched.
type ItemPatch struct {
	Name        *string   `json:"name,omitempty"`
	Category    *string   `json:"category,omitempty"`
	PricePerDay *float64  `json:"pricePerDay,omitempty"`
	Sizes       *[]string `json:"sizes,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Style       *string   `json:"style,omitempty"`
	Description *string   `json:"description,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Alt         *string   `json:"alt,omitempty"`
}

// Apply merges the patch into it.
func (p ItemPatch) Apply(it *Item) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.PricePerDay != nil {
		it.PricePerDay = *p.PricePerDay
	}
	if p.Sizes != nil {
		it.Sizes = *p.Sizes
	}
	if p.Color != nil {
		it.Color = *p.Color
	}
	if p.Style != nil {
		it.Style = *p.Style
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Images != nil {
		it.Images = *p.Images
	}
	if p.Alt != nil {
		it.Alt = *p.Alt
	}
}
