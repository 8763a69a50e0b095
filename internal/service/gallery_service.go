package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/imageref"
	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/pkg/logger"

	"github.com/google/uuid"
)

// RefreshResult is the outcome of reloading the image index
type RefreshResult struct {
	Images int `json:"images" example:"120"`
}

// GalleryService defines the interface for the image library and resolution
type GalleryService interface {
	EnsureWarm(ctx context.Context) error
	Refresh(ctx context.Context) (*RefreshResult, error)
	Resolve(ctx context.Context, value string) string
	ResolveBatch(ctx context.Context, values []string) map[string]string
	List(ctx context.Context) ([]models.GalleryImage, error)
	Upload(ctx context.Context, filename, folder string, content io.Reader) (*models.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

// galleryService implements GalleryService
type galleryService struct {
	api      GalleryAPI
	index    *imageref.Index
	resolver *imageref.Resolver
	logger   *logger.Logger

	// serializes refreshes so concurrent callers do not list the gallery twice
	refreshMu sync.Mutex
}

// NewGalleryService creates a new instance of GalleryService
func NewGalleryService(api GalleryAPI, index *imageref.Index, resolver *imageref.Resolver, logger *logger.Logger) GalleryService {
	return &galleryService{
		api:      api,
		index:    index,
		resolver: resolver,
		logger:   logger,
	}
}

// EnsureWarm loads the index once; later calls are no-ops
func (s *galleryService) EnsureWarm(ctx context.Context) error {
	if warm, _ := s.index.Warm(); warm {
		return nil
	}
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	if warm, _ := s.index.Warm(); warm {
		return nil
	}
	_, err := s.refreshLocked(ctx)
	return err
}

// Refresh reloads the index from the gallery listing
func (s *galleryService) Refresh(ctx context.Context) (*RefreshResult, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *galleryService) refreshLocked(ctx context.Context) (*RefreshResult, error) {
	images, err := s.api.ListGallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	s.index.Replace(images)
	s.logger.WithField("images", len(images)).Info("Image index refreshed")
	return &RefreshResult{Images: len(images)}, nil
}

// Resolve returns a displayable URL for one stored reference
func (s *galleryService) Resolve(ctx context.Context, value string) string {
	s.warmBestEffort(ctx)
	return s.resolver.Resolve(value)
}

// ResolveBatch resolves many references against one warm index
func (s *galleryService) ResolveBatch(ctx context.Context, values []string) map[string]string {
	s.warmBestEffort(ctx)
	return s.resolver.ResolveAll(values)
}

// warmBestEffort resolves against a cold index when the gallery is down
func (s *galleryService) warmBestEffort(ctx context.Context) {
	if err := s.EnsureWarm(ctx); err != nil {
		s.logger.WithError(err).Warn("Resolving images without a warm index")
	}
}

func (s *galleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	return s.api.ListGallery(ctx)
}

// Upload stores an image under a unique name and indexes it
func (s *galleryService) Upload(ctx context.Context, filename, folder string, content io.Reader) (*models.GalleryImage, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, cardapio.Invalid("filename is required")
	}
	img, err := s.api.UploadImage(ctx, uniqueName(filename), folder, content)
	if err != nil {
		return nil, err
	}
	s.index.Add(*img)
	return img, nil
}

// Delete removes an image from the gallery and from the index
func (s *galleryService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return cardapio.Invalid("image id is required")
	}
	var url string
	if images, err := s.api.ListGallery(ctx); err == nil {
		for _, img := range images {
			if img.ID == id {
				url = img.URL
				break
			}
		}
	}
	if err := s.api.DeleteImage(ctx, id); err != nil {
		return err
	}
	if url != "" {
		s.index.Remove(url)
	}
	return nil
}

// uniqueName keeps the extension and prefixes a short uuid so uploads never
// overwrite an existing file with the same name
func uniqueName(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return uuid.New().String()[:8] + "-" + base
}
