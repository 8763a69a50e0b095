package service

import (
	"context"
	"fmt"
	"strings"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/guestimport"
	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/pkg/logger"
)

// ImportFailure is one parsed guest the API refused
type ImportFailure struct {
	Entry guestimport.Entry `json:"entry"`
	Error string            `json:"error" example:"menu API returned 409: guest already on the list"`
}

// ImportResult tallies a bulk guest import
type ImportResult struct {
	Parsed   int             `json:"parsed" example:"3"`
	Imported int             `json:"imported" example:"3"`
	Failed   int             `json:"failed" example:"0"`
	Skipped  []string        `json:"skipped,omitempty"`
	Failures []ImportFailure `json:"failures,omitempty"`
	Guests   []models.Guest  `json:"guests"`
}

// PromoterService defines the interface for the promoter dashboard
type PromoterService interface {
	ListEvents(ctx context.Context) ([]models.PromoterEvent, error)
	ListGuests(ctx context.Context, listID uint) ([]models.Guest, error)
	AddGuest(ctx context.Context, listID uint, guest *models.Guest) (*models.Guest, error)
	PreviewImport(text string) guestimport.Result
	ImportGuests(ctx context.Context, listID uint, text string) (*ImportResult, error)
	Summary(ctx context.Context, listID uint) (*models.GuestListSummary, error)
	ExportGuests(ctx context.Context, listID uint) ([]byte, string, error)
}

// promoterService implements PromoterService
type promoterService struct {
	api     PromoterAPI
	auditor *Auditor
	logger  *logger.Logger
}

// NewPromoterService creates a new instance of PromoterService
func NewPromoterService(api PromoterAPI, auditor *Auditor, logger *logger.Logger) PromoterService {
	return &promoterService{
		api:     api,
		auditor: auditor,
		logger:  logger,
	}
}

func (s *promoterService) ListEvents(ctx context.Context) ([]models.PromoterEvent, error) {
	return s.api.ListPromoterEvents(ctx)
}

func (s *promoterService) ListGuests(ctx context.Context, listID uint) ([]models.Guest, error) {
	if listID == 0 {
		return nil, cardapio.Invalid("guest list id is required")
	}
	return s.api.ListGuests(ctx, listID)
}

// AddGuest adds one guest, normalizing the whatsapp number to digits
func (s *promoterService) AddGuest(ctx context.Context, listID uint, guest *models.Guest) (*models.Guest, error) {
	if listID == 0 {
		return nil, cardapio.Invalid("guest list id is required")
	}
	guest.Name = strings.TrimSpace(guest.Name)
	if guest.Name == "" {
		return nil, cardapio.Invalid("guest name is required")
	}
	guest.WhatsApp = onlyDigits(guest.WhatsApp)
	guest.GuestListID = listID
	return s.api.AddGuest(ctx, listID, guest)
}

// PreviewImport parses pasted text without sending anything
func (s *promoterService) PreviewImport(text string) guestimport.Result {
	return guestimport.Parse(text)
}

// ImportGuests parses text and adds every entry one by one. Earlier
// successes are kept when a later entry fails.
func (s *promoterService) ImportGuests(ctx context.Context, listID uint, text string) (*ImportResult, error) {
	if listID == 0 {
		return nil, cardapio.Invalid("guest list id is required")
	}
	parsed := guestimport.Parse(text)
	if len(parsed.Entries) == 0 {
		return nil, cardapio.Invalid("no guests found in the pasted text")
	}

	op := s.auditor.Start(models.OpGuestImport,
		fmt.Sprintf("Importing %d guests into list %d", len(parsed.Entries), listID), 0)

	res := &ImportResult{Parsed: len(parsed.Entries), Skipped: parsed.Skipped}
	for _, entry := range parsed.Entries {
		if err := ctx.Err(); err != nil {
			res.Failed++
			res.Failures = append(res.Failures, ImportFailure{Entry: entry, Error: err.Error()})
			continue
		}
		guest, err := s.api.AddGuest(ctx, listID, &models.Guest{
			GuestListID: listID,
			Name:        entry.Name,
			WhatsApp:    entry.WhatsApp,
		})
		if err != nil {
			res.Failed++
			res.Failures = append(res.Failures, ImportFailure{Entry: entry, Error: err.Error()})
			s.logger.WithError(err).WithFields(map[string]interface{}{
				"guest_list_id": listID,
				"line":          entry.Line,
			}).Warn("Failed to import guest")
			continue
		}
		res.Imported++
		res.Guests = append(res.Guests, *guest)
	}

	op.Finish(statusFor(res.Imported, res.Failed),
		fmt.Sprintf("Imported %d of %d guests into list %d", res.Imported, res.Parsed, listID), res)
	return res, nil
}

// Summary counts the guests of a list
func (s *promoterService) Summary(ctx context.Context, listID uint) (*models.GuestListSummary, error) {
	guests, err := s.ListGuests(ctx, listID)
	if err != nil {
		return nil, err
	}
	sum := &models.GuestListSummary{GuestListID: listID, Total: len(guests)}
	for _, g := range guests {
		if g.WhatsApp != "" {
			sum.WithWhatsApp++
		}
		if g.CheckedIn {
			sum.CheckedIn++
		}
	}
	return sum, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
