package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/guestimport"
	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/repository"
	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/internal/subcategory"
)

type mockMenuService struct {
	mock.Mock
}

func (m *mockMenuService) ListBars(ctx context.Context) ([]models.Bar, error) {
	args := m.Called(ctx)
	bars, _ := args.Get(0).([]models.Bar)
	return bars, args.Error(1)
}

func (m *mockMenuService) GetBar(ctx context.Context, id uint) (*service.BarView, error) {
	args := m.Called(ctx, id)
	bar, _ := args.Get(0).(*service.BarView)
	return bar, args.Error(1)
}

func (m *mockMenuService) CreateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error) {
	args := m.Called(ctx, bar)
	out, _ := args.Get(0).(*models.Bar)
	return out, args.Error(1)
}

func (m *mockMenuService) UpdateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error) {
	args := m.Called(ctx, bar)
	out, _ := args.Get(0).(*models.Bar)
	return out, args.Error(1)
}

func (m *mockMenuService) DeleteBar(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMenuService) ListCategories(ctx context.Context, barID uint) ([]models.Category, error) {
	args := m.Called(ctx, barID)
	out, _ := args.Get(0).([]models.Category)
	return out, args.Error(1)
}

func (m *mockMenuService) CreateCategory(ctx context.Context, c *models.Category) (*models.Category, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*models.Category)
	return out, args.Error(1)
}

func (m *mockMenuService) UpdateCategory(ctx context.Context, c *models.Category) (*models.Category, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*models.Category)
	return out, args.Error(1)
}

func (m *mockMenuService) DeleteCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMenuService) ListItems(ctx context.Context, filter cardapio.ItemFilter) ([]service.ItemView, error) {
	args := m.Called(ctx, filter)
	out, _ := args.Get(0).([]service.ItemView)
	return out, args.Error(1)
}

func (m *mockMenuService) GetItem(ctx context.Context, id uint) (*service.ItemView, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*service.ItemView)
	return out, args.Error(1)
}

func (m *mockMenuService) CreateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	args := m.Called(ctx, item)
	out, _ := args.Get(0).(*models.MenuItem)
	return out, args.Error(1)
}

func (m *mockMenuService) UpdateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	args := m.Called(ctx, item)
	out, _ := args.Get(0).(*models.MenuItem)
	return out, args.Error(1)
}

func (m *mockMenuService) DeleteItem(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMenuService) ToggleVisibility(ctx context.Context, id uint) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.MenuItem)
	return out, args.Error(1)
}

func (m *mockMenuService) BulkDelete(ctx context.Context, ids []uint) *service.BulkResult {
	return m.Called(ctx, ids).Get(0).(*service.BulkResult)
}

func (m *mockMenuService) BulkSetVisibility(ctx context.Context, ids []uint, v models.Visibility) *service.BulkResult {
	return m.Called(ctx, ids, v).Get(0).(*service.BulkResult)
}

func (m *mockMenuService) ListTrash(ctx context.Context, barID uint) ([]models.TrashEntry, error) {
	args := m.Called(ctx, barID)
	out, _ := args.Get(0).([]models.TrashEntry)
	return out, args.Error(1)
}

func (m *mockMenuService) RestoreTrash(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMenuService) ListSeals(ctx context.Context, barID uint) ([]models.Seal, error) {
	args := m.Called(ctx, barID)
	out, _ := args.Get(0).([]models.Seal)
	return out, args.Error(1)
}

func (m *mockMenuService) WineValues(ctx context.Context, barID uint, attribute string) ([]string, error) {
	args := m.Called(ctx, barID, attribute)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

type mockQuickEditService struct {
	mock.Mock
}

func (m *mockQuickEditService) Load(ctx context.Context, barID, categoryID uint) (*service.QuickEditView, error) {
	args := m.Called(ctx, barID, categoryID)
	out, _ := args.Get(0).(*service.QuickEditView)
	return out, args.Error(1)
}

func (m *mockQuickEditService) Save(ctx context.Context, barID, categoryID uint, edits []subcategory.Edit) (*service.QuickEditResult, error) {
	args := m.Called(ctx, barID, categoryID, edits)
	out, _ := args.Get(0).(*service.QuickEditResult)
	return out, args.Error(1)
}

type mockPromoterService struct {
	mock.Mock
}

func (m *mockPromoterService) ListEvents(ctx context.Context) ([]models.PromoterEvent, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.PromoterEvent)
	return out, args.Error(1)
}

func (m *mockPromoterService) ListGuests(ctx context.Context, listID uint) ([]models.Guest, error) {
	args := m.Called(ctx, listID)
	out, _ := args.Get(0).([]models.Guest)
	return out, args.Error(1)
}

func (m *mockPromoterService) AddGuest(ctx context.Context, listID uint, guest *models.Guest) (*models.Guest, error) {
	args := m.Called(ctx, listID, guest)
	out, _ := args.Get(0).(*models.Guest)
	return out, args.Error(1)
}

func (m *mockPromoterService) PreviewImport(text string) guestimport.Result {
	return m.Called(text).Get(0).(guestimport.Result)
}

func (m *mockPromoterService) ImportGuests(ctx context.Context, listID uint, text string) (*service.ImportResult, error) {
	args := m.Called(ctx, listID, text)
	out, _ := args.Get(0).(*service.ImportResult)
	return out, args.Error(1)
}

func (m *mockPromoterService) Summary(ctx context.Context, listID uint) (*models.GuestListSummary, error) {
	args := m.Called(ctx, listID)
	out, _ := args.Get(0).(*models.GuestListSummary)
	return out, args.Error(1)
}

func (m *mockPromoterService) ExportGuests(ctx context.Context, listID uint) ([]byte, string, error) {
	args := m.Called(ctx, listID)
	out, _ := args.Get(0).([]byte)
	return out, args.String(1), args.Error(2)
}

type mockOperationLogService struct {
	mock.Mock
}

func (m *mockOperationLogService) List(filter repository.OperationLogFilter, page, limit int) ([]models.OperationLog, int64, error) {
	args := m.Called(filter, page, limit)
	out, _ := args.Get(0).([]models.OperationLog)
	return out, args.Get(1).(int64), args.Error(2)
}

func (m *mockOperationLogService) Get(documentID string) (*models.OperationLog, error) {
	args := m.Called(documentID)
	out, _ := args.Get(0).(*models.OperationLog)
	return out, args.Error(1)
}
