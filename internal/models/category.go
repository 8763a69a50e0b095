package models

import (
	"fmt"
	"strings"
)

// Category is a top level section of a bar menu
type Category struct {
	ID    uint   `json:"id" example:"7"`
	Name  string `json:"name" example:"Drinks"`
	BarID uint   `json:"barId" example:"1"`
	Order int    `json:"order" example:"2"`
}

// Validate checks required fields
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if c.BarID == 0 {
		return fmt.Errorf("barId is required")
	}
	return nil
}

// SubCategory groups items inside a category. ID is zero when the record was
// only observed on items and never created on the API.
type SubCategory struct {
	ID         uint   `json:"id,omitempty" example:"12"`
	Name       string `json:"name" example:"Clássicos"`
	CategoryID uint   `json:"categoryId" example:"7"`
	BarID      uint   `json:"barId" example:"1"`
	Order      int    `json:"order" example:"1"`
}

// NormalizeName is the case-insensitive identity of a subcategory name
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Key is the synthetic identity of a subcategory inside its bar and category
func (s SubCategory) Key() string {
	return fmt.Sprintf("%d/%d/%s", s.BarID, s.CategoryID, NormalizeName(s.Name))
}
