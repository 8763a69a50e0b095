package models

import (
	"fmt"
	"strings"
	"time"
)

// Event is a dated happening at a bar
type Event struct {
	ID          uint   `json:"id" example:"5"`
	BarID       uint   `json:"barId" example:"1"`
	Title       string `json:"title" example:"Noite do Samba"`
	Description string `json:"description"`
	Date        string `json:"date" example:"2026-11-20"`
	StartTime   string `json:"startTime" example:"21:00"`
	ImageURL    string `json:"imageUrl"`
	Price       Price  `json:"price" example:"30"`
	Active      bool   `json:"active"`
}

// Validate checks required fields and the date/time formats
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if e.BarID == 0 {
		return fmt.Errorf("barId is required")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	if e.StartTime != "" {
		if _, err := time.Parse("15:04", e.StartTime); err != nil {
			return fmt.Errorf("startTime must be HH:MM")
		}
	}
	if !e.Price.Valid() {
		return fmt.Errorf("price must be zero or positive, or -1 for sob consulta")
	}
	return nil
}

// OperationalDetail describes how a bar operates on a given date
type OperationalDetail struct {
	ID          uint   `json:"id" example:"9"`
	BarID       uint   `json:"barId" example:"1"`
	Date        string `json:"date" example:"2026-11-20"`
	OpensAt     string `json:"opensAt" example:"18:00"`
	ClosesAt    string `json:"closesAt" example:"02:00"`
	ArtistName  string `json:"artistName,omitempty"`
	CoverCharge Price  `json:"coverCharge"`
	Notes       string `json:"notes,omitempty"`
	Closed      bool   `json:"closed"`
}

// Validate checks required fields and formats
func (o *OperationalDetail) Validate() error {
	if o.BarID == 0 {
		return fmt.Errorf("barId is required")
	}
	if _, err := time.Parse("2006-01-02", o.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	if o.Closed {
		return nil
	}
	for field, v := range map[string]string{"opensAt": o.OpensAt, "closesAt": o.ClosesAt} {
		if _, err := time.Parse("15:04", v); err != nil {
			return fmt.Errorf("%s must be HH:MM", field)
		}
	}
	if !o.CoverCharge.Valid() {
		return fmt.Errorf("coverCharge must be zero or positive, or -1 for sob consulta")
	}
	return nil
}
