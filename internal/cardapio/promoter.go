package cardapio

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cardapio-admin-svc/internal/models"
)

const promoterPath = "/api/promoter"

// ListPromoterEvents returns the events the promoter sells guest list spots for
func (c *Client) ListPromoterEvents(ctx context.Context) ([]models.PromoterEvent, error) {
	var events []models.PromoterEvent
	err := c.doJSON(ctx, http.MethodGet, promoterPath+"/events", nil, nil, &events)
	return events, err
}

func guestsPath(listID uint) string {
	return fmt.Sprintf("%s/guest-lists/%d/guests", promoterPath, listID)
}

// ListGuests returns the guests of a guest list
func (c *Client) ListGuests(ctx context.Context, listID uint) ([]models.Guest, error) {
	if err := requireID(listID, "guest list"); err != nil {
		return nil, err
	}
	var guests []models.Guest
	err := c.doJSON(ctx, http.MethodGet, guestsPath(listID), nil, nil, &guests)
	return guests, err
}

// AddGuest adds one guest; there is no batch endpoint
func (c *Client) AddGuest(ctx context.Context, listID uint, guest *models.Guest) (*models.Guest, error) {
	if err := requireID(listID, "guest list"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(guest.Name) == "" {
		return nil, Invalid("guest name is required")
	}
	guest.GuestListID = listID
	var created models.Guest
	if err := c.doJSON(ctx, http.MethodPost, guestsPath(listID), nil, guest, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
