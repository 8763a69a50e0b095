package service

import (
	"context"
	"io"
	"sort"
	"strings"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/pkg/logger"
)

// EventView is an event with its flyer resolved
type EventView struct {
	models.Event
	DisplayImageURL string `json:"displayImageUrl"`
}

// EventService defines the interface for events and operational details
type EventService interface {
	ListEvents(ctx context.Context, barID uint) ([]EventView, error)
	GetEvent(ctx context.Context, id uint) (*EventView, error)
	CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	UploadEventImage(ctx context.Context, filename string, content io.Reader) (string, error)

	ListOperationalDetails(ctx context.Context, barID uint) ([]models.OperationalDetail, error)
	CreateOperationalDetail(ctx context.Context, d *models.OperationalDetail) (*models.OperationalDetail, error)
	UpdateOperationalDetail(ctx context.Context, d *models.OperationalDetail) (*models.OperationalDetail, error)
	DeleteOperationalDetail(ctx context.Context, id uint) error
}

// eventService implements EventService
type eventService struct {
	api    EventAPI
	images ImageResolver
	logger *logger.Logger
}

// NewEventService creates a new instance of EventService
func NewEventService(api EventAPI, images ImageResolver, logger *logger.Logger) EventService {
	return &eventService{
		api:    api,
		images: images,
		logger: logger,
	}
}

// ListEvents returns the events of a bar sorted by date and start time
func (s *eventService) ListEvents(ctx context.Context, barID uint) ([]EventView, error) {
	events, err := s.api.ListEvents(ctx, barID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].StartTime < events[j].StartTime
	})

	refs := make([]string, 0, len(events))
	for i := range events {
		refs = append(refs, events[i].ImageURL)
	}
	resolved := s.images.ResolveBatch(ctx, refs)

	views := make([]EventView, 0, len(events))
	for i := range events {
		views = append(views, EventView{Event: events[i], DisplayImageURL: resolved[events[i].ImageURL]})
	}
	return views, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*EventView, error) {
	event, err := s.api.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	resolved := s.images.ResolveBatch(ctx, []string{event.ImageURL})
	return &EventView{Event: *event, DisplayImageURL: resolved[event.ImageURL]}, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	return s.api.CreateEvent(ctx, event)
}

func (s *eventService) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	return s.api.UpdateEvent(ctx, event)
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	return s.api.DeleteEvent(ctx, id)
}

// UploadEventImage stores a flyer and returns its public URL
func (s *eventService) UploadEventImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", cardapio.Invalid("filename is required")
	}
	url, err := s.api.UploadEventImage(ctx, uniqueName(filename), content)
	if err != nil {
		return "", err
	}
	s.logger.WithField("url", url).Info("Event image uploaded")
	return url, nil
}

// ListOperationalDetails returns the details of a bar sorted by date
func (s *eventService) ListOperationalDetails(ctx context.Context, barID uint) ([]models.OperationalDetail, error) {
	details, err := s.api.ListOperationalDetails(ctx, barID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(details, func(i, j int) bool { return details[i].Date < details[j].Date })
	return details, nil
}

func (s *eventService) CreateOperationalDetail(ctx context.Context, d *models.OperationalDetail) (*models.OperationalDetail, error) {
	return s.api.CreateOperationalDetail(ctx, d)
}

func (s *eventService) UpdateOperationalDetail(ctx context.Context, d *models.OperationalDetail) (*models.OperationalDetail, error) {
	return s.api.UpdateOperationalDetail(ctx, d)
}

func (s *eventService) DeleteOperationalDetail(ctx context.Context, id uint) error {
	return s.api.DeleteOperationalDetail(ctx, id)
}
