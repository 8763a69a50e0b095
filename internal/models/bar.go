package models

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Bar is an establishment with its own menu and theme
type Bar struct {
	ID          uint     `json:"id" example:"1"`
	Name        string   `json:"name" example:"Bar do Zé"`
	Slug        string   `json:"slug" example:"bar-do-ze"`
	LogoURL     string   `json:"logoUrl" example:"logo.png"`
	CoverURL    string   `json:"coverImageUrl" example:"cover.jpg"`
	CoverImages []string `json:"coverImages"`
	PopupURL    string   `json:"popupImageUrl" example:"popup.jpg"`
	Instagram   string   `json:"instagram,omitempty"`
	Facebook    string   `json:"facebook,omitempty"`
	WhatsApp    string   `json:"whatsapp,omitempty"`
	Website     string   `json:"website,omitempty"`

	PrimaryColor    string `json:"primaryColor,omitempty" example:"#111111"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`

	// SealColors overrides catalog seal colors, keyed by seal id
	SealColors map[string]string `json:"sealColors,omitempty"`
}

// Validate checks required fields, theme colors and the seal override keys
func (b *Bar) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(b.Slug) == "" {
		return fmt.Errorf("slug is required")
	}
	for field, c := range map[string]string{
		"primaryColor":    b.PrimaryColor,
		"secondaryColor":  b.SecondaryColor,
		"backgroundColor": b.BackgroundColor,
		"textColor":       b.TextColor,
	} {
		if c != "" && !hexColor.MatchString(c) {
			return fmt.Errorf("%s must be a hex color", field)
		}
	}
	for id, c := range b.SealColors {
		if !IsKnownSeal(id) {
			return fmt.Errorf("seal %q cannot be recolored", id)
		}
		if c != "" && !hexColor.MatchString(c) {
			return fmt.Errorf("color for seal %q must be a hex color", id)
		}
	}
	return nil
}

// Images lists every image reference held by the bar
func (b *Bar) Images() []string {
	out := []string{b.LogoURL, b.CoverURL, b.PopupURL}
	return append(out, b.CoverImages...)
}
