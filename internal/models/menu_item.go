package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// PriceOnRequest marks an item sold "sob consulta"
const PriceOnRequest Price = -1

// Price is a menu price in BRL; PriceOnRequest means the price is given on request
type Price float64

// IsOnRequest reports whether the price is the "sob consulta" sentinel
func (p Price) IsOnRequest() bool {
	return p == PriceOnRequest
}

// Valid reports whether p is either the sentinel or a non-negative amount
func (p Price) Valid() bool {
	return p.IsOnRequest() || (p >= 0 && !math.IsNaN(float64(p)) && !math.IsInf(float64(p), 0))
}

// Display formats the price the way the public menu shows it
func (p Price) Display() string {
	if p.IsOnRequest() {
		return "Sob Consulta"
	}
	s := fmt.Sprintf("%.2f", float64(p))
	return "R$ " + strings.Replace(s, ".", ",", 1)
}

// Topping is an optional add-on sold with an item
type Topping struct {
	ID    uint   `json:"id,omitempty" example:"3"`
	Name  string `json:"name" example:"Bacon"`
	Price Price  `json:"price" example:"4.5"`
}

// MenuItem is a single product of a bar menu
type MenuItem struct {
	ID               uint       `json:"id" example:"101"`
	Name             string     `json:"name" example:"Caipirinha"`
	Description      string     `json:"description" example:"Cachaça, limão e açúcar"`
	Price            Price      `json:"price" example:"24.9"`
	ImageURL         string     `json:"imageUrl" example:"caipirinha.jpg"`
	CategoryID       uint       `json:"categoryId" example:"7"`
	BarID            uint       `json:"barId" example:"1"`
	SubCategory      string     `json:"subCategory" example:"Clássicos"`
	SubCategoryOrder int        `json:"subCategoryOrder" example:"1"`
	Order            int        `json:"order" example:"3"`
	Toppings         []Topping  `json:"toppings"`
	Seals            []string   `json:"seals"`
	Visible          Visibility `json:"visible" swaggertype:"string" enums:"VISIBLE,PAUSED"`
}

// UnmarshalJSON reads the legacy subCategoryName field and defaults visibility
func (m *MenuItem) UnmarshalJSON(data []byte) error {
	type alias MenuItem
	aux := struct {
		*alias
		SubCategoryName string `json:"subCategoryName"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if strings.TrimSpace(m.SubCategory) == "" {
		m.SubCategory = aux.SubCategoryName
	}
	m.SubCategory = strings.TrimSpace(m.SubCategory)
	if m.Visible == "" {
		m.Visible = VisibilityVisible
	}
	return nil
}

// WineAttributes returns the vinho:* pseudo seals of the item
func (m *MenuItem) WineAttributes() []WineAttribute {
	var out []WineAttribute
	for _, id := range m.Seals {
		if attr, ok := ParseWineAttribute(id); ok {
			out = append(out, attr)
		}
	}
	return out
}

// Validate checks the fields the API requires before any request is sent
func (m *MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if m.CategoryID == 0 {
		return fmt.Errorf("categoryId is required")
	}
	if m.BarID == 0 {
		return fmt.Errorf("barId is required")
	}
	if !m.Price.Valid() {
		return fmt.Errorf("price must be zero or positive, or -1 for sob consulta")
	}
	for _, t := range m.Toppings {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("topping name is required")
		}
		if t.Price < 0 {
			return fmt.Errorf("topping %q price must not be negative", t.Name)
		}
	}
	for _, s := range m.Seals {
		if !IsKnownSeal(s) {
			if _, ok := ParseWineAttribute(s); !ok {
				return fmt.Errorf("unknown seal %q", s)
			}
		}
	}
	return nil
}
