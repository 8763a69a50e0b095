package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/pkg/logger"
)

func newMenuService(api *fakeMenuAPI, repo *fakeLogRepo) MenuService {
	log := logger.NewNop()
	return NewMenuService(api, identityResolver{}, NewAuditor(repo, log), 3, log)
}

func drink(id uint, sub string, order int) models.MenuItem {
	return models.MenuItem{
		ID:               id,
		Name:             "Drink",
		Price:            20,
		CategoryID:       7,
		BarID:            1,
		SubCategory:      sub,
		SubCategoryOrder: order,
		Visible:          models.VisibilityVisible,
	}
}

func TestMenuService_ToggleTwiceRestoresVisibility(t *testing.T) {
	api := newFakeMenuAPI(drink(1, "", 0))
	svc := newMenuService(api, newFakeLogRepo())
	ctx := context.Background()

	first, err := svc.ToggleVisibility(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityPaused, first.Visible)

	second, err := svc.ToggleVisibility(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityVisible, second.Visible)
	assert.Equal(t, models.VisibilityVisible, api.item(1).Visible)
}

func TestMenuService_ToggleMissingItem(t *testing.T) {
	svc := newMenuService(newFakeMenuAPI(), newFakeLogRepo())

	_, err := svc.ToggleVisibility(context.Background(), 9)
	assert.True(t, cardapio.IsNotFound(err))
}

func TestMenuService_BulkDeleteCountsFailures(t *testing.T) {
	api := newFakeMenuAPI(drink(1, "", 0), drink(2, "", 0), drink(3, "", 0), drink(4, "", 0))
	api.failDelete[2] = &cardapio.APIError{StatusCode: 500, Message: "boom"}
	repo := newFakeLogRepo()
	svc := newMenuService(api, repo)

	// 9 does not exist, 3 is repeated, 0 is ignored
	res := svc.BulkDelete(context.Background(), []uint{1, 2, 3, 9, 3, 0, 4})

	assert.Equal(t, 5, res.Requested)
	assert.Equal(t, 3, res.Succeeded)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, uint(2), res.Failures[0].ID)
	assert.Equal(t, uint(9), res.Failures[1].ID)
	assert.False(t, res.OK())

	remaining, _ := api.ListItems(context.Background(), cardapio.ItemFilter{})
	require.Len(t, remaining, 1)
	assert.Equal(t, uint(2), remaining[0].ID)
	assert.Equal(t, models.OperationPartial, repo.lastStatus(models.OpBulkDelete))
}

func TestMenuService_BulkSetVisibility(t *testing.T) {
	paused := drink(2, "", 0)
	paused.Visible = models.VisibilityPaused
	api := newFakeMenuAPI(drink(1, "", 0), paused, drink(3, "", 0))
	api.failUpdate[3] = errors.New("timeout")
	repo := newFakeLogRepo()
	svc := newMenuService(api, repo)

	res := svc.BulkSetVisibility(context.Background(), []uint{1, 2, 3}, models.VisibilityPaused)

	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, models.VisibilityPaused, api.item(1).Visible)
	assert.Equal(t, models.VisibilityPaused, api.item(2).Visible)
	assert.Equal(t, models.VisibilityVisible, api.item(3).Visible)
	// 2 was already paused
	assert.Equal(t, 1, api.itemUpdates)
	assert.Equal(t, models.OperationPartial, repo.lastStatus(models.OpBulkVisibility))
}

func TestMenuService_ListItemsViews(t *testing.T) {
	onRequest := drink(1, "", 0)
	onRequest.Price = models.PriceOnRequest
	onRequest.ImageURL = "caipirinha.jpg"
	onRequest.Seals = []string{"vinho:pais:Chile", "vegano"}
	svc := newMenuService(newFakeMenuAPI(onRequest), newFakeLogRepo())

	views, err := svc.ListItems(context.Background(), cardapio.ItemFilter{BarID: 1})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Sob Consulta", views[0].PriceLabel)
	assert.Equal(t, "caipirinha.jpg", views[0].DisplayImageURL)
	assert.Equal(t, []models.WineAttribute{{Attribute: models.WineCountry, Value: "Chile"}}, views[0].Wine)
}

func TestMenuService_SealsAndWineValues(t *testing.T) {
	a := drink(1, "", 0)
	a.Seals = []string{"vinho:uva:Malbec"}
	b := drink(2, "", 0)
	b.Seals = []string{"vinho:uva:Carménère", "vinho:uva:Malbec"}
	api := newFakeMenuAPI(a, b)
	api.bars[1] = &models.Bar{ID: 1, Name: "Bar", SealColors: map[string]string{"vegano": "#000000"}}
	svc := newMenuService(api, newFakeLogRepo())
	ctx := context.Background()

	seals, err := svc.ListSeals(ctx, 1)
	require.NoError(t, err)
	for _, s := range seals {
		if s.ID == "vegano" {
			assert.Equal(t, "#000000", s.Color)
			assert.True(t, s.Custom)
		}
	}

	values, err := svc.WineValues(ctx, 1, models.WineGrape)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carménère", "Malbec"}, values)

	_, err = svc.WineValues(ctx, 1, "safra")
	assert.True(t, cardapio.IsValidation(err))
}

func TestMenuService_CreateBarValidatesBeforeCalling(t *testing.T) {
	api := newFakeMenuAPI()
	svc := newMenuService(api, newFakeLogRepo())

	_, err := svc.CreateBar(context.Background(), &models.Bar{Name: "Bar", PrimaryColor: "red"})
	assert.True(t, cardapio.IsValidation(err))
	assert.Empty(t, api.bars)
}
