package service

import (
	"context"
	"io"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/models"
)

// MenuAPI is the part of the menu API used for bars, categories and items
type MenuAPI interface {
	ListBars(ctx context.Context) ([]models.Bar, error)
	GetBar(ctx context.Context, id uint) (*models.Bar, error)
	CreateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error)
	UpdateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error)
	DeleteBar(ctx context.Context, id uint) error

	ListCategories(ctx context.Context, barID uint) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	ListItems(ctx context.Context, filter cardapio.ItemFilter) ([]models.MenuItem, error)
	GetItem(ctx context.Context, id uint) (*models.MenuItem, error)
	CreateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	UpdateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	DeleteItem(ctx context.Context, id uint) error

	ListSubCategories(ctx context.Context, barID, categoryID uint) ([]models.SubCategory, error)
	CreateSubCategory(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error)
	UpdateSubCategory(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error)
	ReorderSubCategories(ctx context.Context, barID, categoryID uint, orderedIDs []uint) error

	ListTrash(ctx context.Context, barID uint) ([]models.TrashEntry, error)
	RestoreTrash(ctx context.Context, id uint) error
}

// GalleryAPI is the shared image library
type GalleryAPI interface {
	ListGallery(ctx context.Context) ([]models.GalleryImage, error)
	UploadImage(ctx context.Context, filename, folder string, content io.Reader) (*models.GalleryImage, error)
	DeleteImage(ctx context.Context, id string) error
}

// EventAPI covers events and operational details
type EventAPI interface {
	ListEvents(ctx context.Context, barID uint) ([]models.Event, error)
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	UploadEventImage(ctx context.Context, filename string, content io.Reader) (string, error)

	ListOperationalDetails(ctx context.Context, barID uint) ([]models.OperationalDetail, error)
	CreateOperationalDetail(ctx context.Context, d *models.OperationalDetail) (*models.OperationalDetail, error)
	UpdateOperationalDetail(ctx context.Context, d *models.OperationalDetail) (*models.OperationalDetail, error)
	DeleteOperationalDetail(ctx context.Context, id uint) error
}

// PromoterAPI covers promoter events and guest lists
type PromoterAPI interface {
	ListPromoterEvents(ctx context.Context) ([]models.PromoterEvent, error)
	ListGuests(ctx context.Context, listID uint) ([]models.Guest, error)
	AddGuest(ctx context.Context, listID uint, guest *models.Guest) (*models.Guest, error)
}

var (
	_ MenuAPI     = (*cardapio.Client)(nil)
	_ GalleryAPI  = (*cardapio.Client)(nil)
	_ EventAPI    = (*cardapio.Client)(nil)
	_ PromoterAPI = (*cardapio.Client)(nil)
)
