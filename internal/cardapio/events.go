package cardapio

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"cardapio-admin-svc/internal/models"
)

const (
	eventsPath      = "/api/events"
	operationalPath = "/api/operational-details"
)

func barQuery(barID uint) url.Values {
	q := url.Values{}
	if barID != 0 {
		q.Set("barId", strconv.FormatUint(uint64(barID), 10))
	}
	return q
}

// ListEvents returns the events of a bar, or all when barID is zero
func (c *Client) ListEvents(ctx context.Context, barID uint) ([]models.Event, error) {
	var events []models.Event
	err := c.doJSON(ctx, http.MethodGet, eventsPath, barQuery(barID), nil, &events)
	return events, err
}

// GetEvent returns one event
func (c *Client) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	if err := requireID(id, "event"); err != nil {
		return nil, err
	}
	var event models.Event
	if err := c.doJSON(ctx, http.MethodGet, idPath(eventsPath, id), nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateEvent creates an event
func (c *Client) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := event.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var created models.Event
	if err := c.doJSON(ctx, http.MethodPost, eventsPath, nil, event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEvent replaces an event
func (c *Client) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := requireID(event.ID, "event"); err != nil {
		return nil, err
	}
	if err := event.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var updated models.Event
	if err := c.doJSON(ctx, http.MethodPut, idPath(eventsPath, event.ID), nil, event, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent deletes an event
func (c *Client) DeleteEvent(ctx context.Context, id uint) error {
	if err := requireID(id, "event"); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, idPath(eventsPath, id), nil, nil, nil)
}

type uploadResult struct {
	URL string `json:"url"`
}

// UploadEventImage sends an event flyer to the storage service and returns its public URL
func (c *Client) UploadEventImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	var res uploadResult
	if err := c.upload(ctx, eventsPath+"/upload-image", filename, nil, content, &res); err != nil {
		return "", err
	}
	if res.URL == "" {
		return "", &APIError{StatusCode: http.StatusBadGateway, Message: "storage did not return an image URL"}
	}
	return res.URL, nil
}

// ListOperationalDetails returns operational details of a bar
func (c *Client) ListOperationalDetails(ctx context.Context, barID uint) ([]models.OperationalDetail, error) {
	var details []models.OperationalDetail
	err := c.doJSON(ctx, http.MethodGet, operationalPath, barQuery(barID), nil, &details)
	return details, err
}

// CreateOperationalDetail creates an operational detail
func (c *Client) CreateOperationalDetail(ctx context.Context, d *models.OperationalDetail) (*models.OperationalDetail, error) {
	if err := d.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var created models.OperationalDetail
	if err := c.doJSON(ctx, http.MethodPost, operationalPath, nil, d, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOperationalDetail replaces an operational detail
func (c *Client) UpdateOperationalDetail(ctx context.Context, d *models.OperationalDetail) (*models.OperationalDetail, error) {
	if err := requireID(d.ID, "operational detail"); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var updated models.OperationalDetail
	if err := c.doJSON(ctx, http.MethodPut, idPath(operationalPath, d.ID), nil, d, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOperationalDetail deletes an operational detail
func (c *Client) DeleteOperationalDetail(ctx context.Context, id uint) error {
	if err := requireID(id, "operational detail"); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, idPath(operationalPath, id), nil, nil, nil)
}
