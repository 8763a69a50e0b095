package service

import (
	"context"
	"fmt"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/pkg/logger"
)

// ImageResolver turns stored image references into displayable URLs
type ImageResolver interface {
	ResolveBatch(ctx context.Context, values []string) map[string]string
}

// ItemView is a menu item with its display fields resolved
type ItemView struct {
	models.MenuItem
	DisplayImageURL string                 `json:"displayImageUrl" example:"https://storage.example.com/cardapio/caipirinha.jpg"`
	PriceLabel      string                 `json:"priceLabel" example:"R$ 24,90"`
	Wine            []models.WineAttribute `json:"wine,omitempty"`
}

// BarView is a bar with every image reference resolved
type BarView struct {
	models.Bar
	DisplayImages map[string]string `json:"displayImages"`
	Seals         []models.Seal     `json:"seals"`
}

// MenuService defines the interface for menu business operations
type MenuService interface {
	ListBars(ctx context.Context) ([]models.Bar, error)
	GetBar(ctx context.Context, id uint) (*BarView, error)
	CreateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error)
	UpdateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error)
	DeleteBar(ctx context.Context, id uint) error

	ListCategories(ctx context.Context, barID uint) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	ListItems(ctx context.Context, filter cardapio.ItemFilter) ([]ItemView, error)
	GetItem(ctx context.Context, id uint) (*ItemView, error)
	CreateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	UpdateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	DeleteItem(ctx context.Context, id uint) error
	ToggleVisibility(ctx context.Context, id uint) (*models.MenuItem, error)
	BulkDelete(ctx context.Context, ids []uint) *BulkResult
	BulkSetVisibility(ctx context.Context, ids []uint, visibility models.Visibility) *BulkResult

	ListTrash(ctx context.Context, barID uint) ([]models.TrashEntry, error)
	RestoreTrash(ctx context.Context, id uint) error

	ListSeals(ctx context.Context, barID uint) ([]models.Seal, error)
	WineValues(ctx context.Context, barID uint, attribute string) ([]string, error)
}

// menuService implements MenuService
type menuService struct {
	api         MenuAPI
	images      ImageResolver
	auditor     *Auditor
	concurrency int
	logger      *logger.Logger
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(api MenuAPI, images ImageResolver, auditor *Auditor, concurrency int, logger *logger.Logger) MenuService {
	return &menuService{
		api:         api,
		images:      images,
		auditor:     auditor,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (s *menuService) ListBars(ctx context.Context) ([]models.Bar, error) {
	return s.api.ListBars(ctx)
}

// GetBar returns the bar with resolved images and its seal palette
func (s *menuService) GetBar(ctx context.Context, id uint) (*BarView, error) {
	bar, err := s.api.GetBar(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BarView{
		Bar:           *bar,
		DisplayImages: s.images.ResolveBatch(ctx, bar.Images()),
		Seals:         models.SealsForBar(bar.SealColors),
	}, nil
}

func (s *menuService) CreateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error) {
	if err := bar.Validate(); err != nil {
		return nil, cardapio.Invalid("%s", err.Error())
	}
	return s.api.CreateBar(ctx, bar)
}

func (s *menuService) UpdateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error) {
	if err := bar.Validate(); err != nil {
		return nil, cardapio.Invalid("%s", err.Error())
	}
	return s.api.UpdateBar(ctx, bar)
}

func (s *menuService) DeleteBar(ctx context.Context, id uint) error {
	return s.api.DeleteBar(ctx, id)
}

func (s *menuService) ListCategories(ctx context.Context, barID uint) ([]models.Category, error) {
	return s.api.ListCategories(ctx, barID)
}

func (s *menuService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	return s.api.CreateCategory(ctx, category)
}

func (s *menuService) UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	return s.api.UpdateCategory(ctx, category)
}

func (s *menuService) DeleteCategory(ctx context.Context, id uint) error {
	return s.api.DeleteCategory(ctx, id)
}

// ListItems returns items with resolved images and price labels
func (s *menuService) ListItems(ctx context.Context, filter cardapio.ItemFilter) ([]ItemView, error) {
	items, err := s.api.ListItems(ctx, filter)
	if err != nil {
		return nil, err
	}
	refs := make([]string, 0, len(items))
	for i := range items {
		refs = append(refs, items[i].ImageURL)
	}
	resolved := s.images.ResolveBatch(ctx, refs)

	views := make([]ItemView, 0, len(items))
	for i := range items {
		views = append(views, s.view(&items[i], resolved))
	}
	return views, nil
}

func (s *menuService) GetItem(ctx context.Context, id uint) (*ItemView, error) {
	item, err := s.api.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(item, s.images.ResolveBatch(ctx, []string{item.ImageURL}))
	return &view, nil
}

func (s *menuService) view(item *models.MenuItem, resolved map[string]string) ItemView {
	return ItemView{
		MenuItem:        *item,
		DisplayImageURL: resolved[item.ImageURL],
		PriceLabel:      item.Price.Display(),
		Wine:            item.WineAttributes(),
	}
}

func (s *menuService) CreateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if item.Visible == "" {
		item.Visible = models.VisibilityVisible
	}
	return s.api.CreateItem(ctx, item)
}

func (s *menuService) UpdateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	return s.api.UpdateItem(ctx, item)
}

func (s *menuService) DeleteItem(ctx context.Context, id uint) error {
	return s.api.DeleteItem(ctx, id)
}

// ToggleVisibility flips an item between VISIBLE and PAUSED
func (s *menuService) ToggleVisibility(ctx context.Context, id uint) (*models.MenuItem, error) {
	item, err := s.api.GetItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load item %d: %w", id, err)
	}
	item.Visible = item.Visible.Toggle()
	updated, err := s.api.UpdateItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update item %d: %w", id, err)
	}
	s.logger.WithFields(map[string]interface{}{
		"item_id": id,
		"visible": updated.Visible,
	}).Info("Item visibility toggled")
	return updated, nil
}

// BulkDelete deletes every id concurrently and reports per-id failures
func (s *menuService) BulkDelete(ctx context.Context, ids []uint) *BulkResult {
	ids = dedupe(ids)
	op := s.auditor.Start(models.OpBulkDelete, fmt.Sprintf("Deleting %d items", len(ids)), 0)

	res := runBulk(ctx, s.concurrency, ids, s.api.DeleteItem)

	op.Finish(statusFor(res.Succeeded, res.Failed),
		fmt.Sprintf("Deleted %d of %d items", res.Succeeded, res.Requested), res)
	return res
}

// BulkSetVisibility sets the same visibility on every id
func (s *menuService) BulkSetVisibility(ctx context.Context, ids []uint, visibility models.Visibility) *BulkResult {
	ids = dedupe(ids)
	op := s.auditor.Start(models.OpBulkVisibility, fmt.Sprintf("Setting %d items to %s", len(ids), visibility), 0)

	res := runBulk(ctx, s.concurrency, ids, func(ctx context.Context, id uint) error {
		item, err := s.api.GetItem(ctx, id)
		if err != nil {
			return err
		}
		if item.Visible == visibility {
			return nil
		}
		item.Visible = visibility
		_, err = s.api.UpdateItem(ctx, item)
		return err
	})

	op.Finish(statusFor(res.Succeeded, res.Failed),
		fmt.Sprintf("Updated %d of %d items", res.Succeeded, res.Requested), res)
	return res
}

func (s *menuService) ListTrash(ctx context.Context, barID uint) ([]models.TrashEntry, error) {
	return s.api.ListTrash(ctx, barID)
}

func (s *menuService) RestoreTrash(ctx context.Context, id uint) error {
	return s.api.RestoreTrash(ctx, id)
}

// ListSeals returns the catalog, with the bar's overrides when barID is set
func (s *menuService) ListSeals(ctx context.Context, barID uint) ([]models.Seal, error) {
	if barID == 0 {
		return models.SealCatalog(), nil
	}
	bar, err := s.api.GetBar(ctx, barID)
	if err != nil {
		return nil, err
	}
	return models.SealsForBar(bar.SealColors), nil
}

// WineValues lists the distinct values already used for a wine attribute
func (s *menuService) WineValues(ctx context.Context, barID uint, attribute string) ([]string, error) {
	switch attribute {
	case models.WineCountry, models.WineGrape, models.WineType, models.WineRegion:
	default:
		return nil, cardapio.Invalid("unknown wine attribute %q", attribute)
	}
	items, err := s.api.ListItems(ctx, cardapio.ItemFilter{BarID: barID})
	if err != nil {
		return nil, err
	}
	return models.WineValues(items, attribute), nil
}
