package item

import "glamrent/model"

type CreateItemReq struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	PricePerDay float64  `json:"pricePerDay" validate:"required,gte=0"`
	Sizes       []string `json:"sizes" validate:"required,min=1"`
	Color       string   `json:"color" validate:"required"`
	Style       string   `json:"style"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Alt         string   `json:"alt"`
}

// ToModel fills the optional presentation fields the way the storefront
// always has: style falls back to the category, description and alt are
// derived from name and color, images get the placeholder.
func (r CreateItemReq) ToModel() model.Item {
	it := model.Item{
		Name:        r.Name,
		Category:    r.Category,
		PricePerDay: r.PricePerDay,
		Sizes:       r.Sizes,
		Color:       r.Color,
		Style:       r.Style,
		Description: r.Description,
		Images:      r.Images,
		Alt:         r.Alt,
	}
	if it.Style == "" {
		it.Style = it.Category
	}
	if it.Description == "" {
		it.Description = it.Name + " - " + it.Color
	}
	if len(it.Images) == 0 {
		it.Images = []string{"/images/placeholder.jpg"}
	}
	if it.Alt == "" {
		it.Alt = it.Name + " in " + it.Color
	}
	return it
}

// UpdateItemReq is a merge patch; absent fields stay as they are.
type UpdateItemReq struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	PricePerDay *float64  `json:"pricePerDay"`
	Sizes       *[]string `json:"sizes"`
	Color       *string   `json:"color"`
	Style       *string   `json:"style"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	Alt         *string   `json:"alt"`
}

func (r UpdateItemReq) ToPatch() model.ItemPatch {
	return model.ItemPatch{
		Name:        r.Name,
		Category:    r.Category,
		PricePerDay: r.PricePerDay,
		Sizes:       r.Sizes,
		Color:       r.Color,
		Style:       r.Style,
		Description: r.Description,
		Images:      r.Images,
		Alt:         r.Alt,
	}
}

// ItemSummary is the list/search projection: first image only.
type ItemSummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	PricePerDay float64  `json:"pricePerDay"`
	Sizes       []string `json:"sizes"`
	Color       string   `json:"color"`
	Style       string   `json:"style,omitempty"`
	Image       string   `json:"image,omitempty"`
	Alt         string   `json:"alt"`
}

func Summarize(it model.Item) ItemSummary {
	s := ItemSummary{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		PricePerDay: it.PricePerDay,
		Sizes:       it.Sizes,
		Color:       it.Color,
		Style:       it.Style,
		Alt:         it.Alt,
	}
	if len(it.Images) > 0 {
		s.Image = it.Images[0]
	}
	return s
}
