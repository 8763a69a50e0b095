package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/pkg/logger"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 2 * time.Minute

// GalleryScheduler keeps the image index in sync with the gallery
type GalleryScheduler struct {
	galleryService service.GalleryService
	auditor        *service.Auditor
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
	warmup         sync.WaitGroup
}

// NewGalleryScheduler creates a new gallery scheduler
func NewGalleryScheduler(galleryService service.GalleryService, auditor *service.Auditor, logger *logger.Logger, cronExpression string) *GalleryScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &GalleryScheduler{
		galleryService: galleryService,
		auditor:        auditor,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
	}
}

// Start schedules the refresh job, runs it once right away and starts the cron
func (s *GalleryScheduler) Start() error {
	s.logger.Info("Starting gallery scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling gallery refresh job")
	if _, err := s.cron.AddFunc(s.cronExpression, s.refreshGallery); err != nil {
		return fmt.Errorf("failed to schedule gallery refresh job: %w", err)
	}

	// warm the index before the first request needs it
	s.warmup.Add(1)
	go func() {
		defer s.warmup.Done()
		s.refreshGallery()
	}()

	s.cron.Start()
	s.logger.Info("Gallery scheduler started successfully")
	return nil
}

// Stop gracefully stops the scheduler
func (s *GalleryScheduler) Stop() {
	s.logger.Info("Stopping gallery scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.warmup.Wait()
	s.logger.Info("Gallery scheduler stopped successfully")
}

// refreshGallery is the scheduled job that reloads the image index
func (s *GalleryScheduler) refreshGallery() {
	op := s.auditor.Start(models.OpGalleryRefresh, "Starting scheduled gallery refresh", 0)

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	res, err := s.galleryService.Refresh(ctx)
	if err != nil {
		op.Fail(err)
		return
	}
	op.Finish(models.OperationSuccess, fmt.Sprintf("Gallery refreshed with %d images", res.Images), res)
}
