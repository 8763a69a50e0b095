package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/subcategory"
	"cardapio-admin-svc/pkg/logger"
)

func quickEditFixture() (*fakeMenuAPI, *fakeLogRepo, QuickEditService) {
	api := newFakeMenuAPI(
		drink(1, "Clássicos", 1),
		drink(2, "clássicos", 1),
		drink(3, "Clássicos", 1),
		drink(4, "Autorais", 2),
		models.MenuItem{ID: 5, Name: "Água", CategoryID: 8, BarID: 1, SubCategory: "Clássicos"},
	)
	api.subs = []models.SubCategory{
		{ID: 20, Name: "Clássicos", CategoryID: 7, BarID: 1, Order: 1},
		{ID: 21, Name: "Autorais", CategoryID: 7, BarID: 1, Order: 2},
	}
	repo := newFakeLogRepo()
	log := logger.NewNop()
	return api, repo, NewQuickEditService(api, NewAuditor(repo, log), 2, log)
}

// editsFrom turns the loaded view into submitted rows
func editsFrom(entries []subcategory.Entry) []subcategory.Edit {
	edits := make([]subcategory.Edit, 0, len(entries))
	for _, e := range entries {
		edits = append(edits, subcategory.Edit{ID: e.ID, OriginalName: e.OriginalName, Name: e.Name, Position: e.Position})
	}
	return edits
}

func TestQuickEdit_Load(t *testing.T) {
	_, _, svc := quickEditFixture()

	view, err := svc.Load(context.Background(), 1, 7)
	require.NoError(t, err)
	require.Len(t, view.Entries, 2)
	assert.Equal(t, "Clássicos", view.Entries[0].Name)
	assert.Equal(t, 3, view.Entries[0].ItemCount)
	assert.Equal(t, uint(20), view.Entries[0].ID)
	assert.Equal(t, subcategory.SourceBoth, view.Entries[0].Source)
	assert.Equal(t, "Autorais", view.Entries[1].Name)
}

func TestQuickEdit_RenameUpdatesExactlyMatchingItems(t *testing.T) {
	api, repo, svc := quickEditFixture()
	ctx := context.Background()

	view, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)
	edits := editsFrom(view.Entries)
	edits[0].Name = "Clássicos da Casa"

	res, err := svc.Save(ctx, 1, 7, edits)
	require.NoError(t, err)

	assert.Equal(t, view.Entries[0].ItemCount, res.ItemsUpdated)
	assert.Equal(t, 1, res.Renamed)
	assert.Zero(t, res.Failed)
	assert.False(t, res.ReorderFallback)
	for _, id := range []uint{1, 2, 3} {
		assert.Equal(t, "Clássicos da Casa", api.item(id).SubCategory)
	}
	assert.Equal(t, "Autorais", api.item(4).SubCategory)
	assert.Equal(t, "Clássicos", api.item(5).SubCategory, "other categories are untouched")

	require.Len(t, api.subUpdates, 1)
	assert.Equal(t, uint(20), api.subUpdates[0].ID)
	assert.Equal(t, "Clássicos da Casa", api.subUpdates[0].Name)
	assert.Empty(t, api.reorderCalls)
	assert.Equal(t, models.OperationSuccess, repo.lastStatus(models.OpQuickEditSave))
}

func TestQuickEdit_SwapNames(t *testing.T) {
	api, _, svc := quickEditFixture()
	ctx := context.Background()

	view, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)
	edits := editsFrom(view.Entries)
	edits[0].Name, edits[1].Name = "Autorais", "Clássicos"

	res, err := svc.Save(ctx, 1, 7, edits)
	require.NoError(t, err)
	assert.Equal(t, 4, res.ItemsUpdated)
	assert.Equal(t, "Autorais", api.item(1).SubCategory)
	assert.Equal(t, "Clássicos", api.item(4).SubCategory)
}

func TestQuickEdit_ReorderUsesEndpoint(t *testing.T) {
	api, _, svc := quickEditFixture()
	ctx := context.Background()

	view, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)
	edits := editsFrom(view.Entries)
	edits[0].Position, edits[1].Position = 2, 1

	res, err := svc.Save(ctx, 1, 7, edits)
	require.NoError(t, err)
	assert.True(t, res.Reordered)
	assert.False(t, res.ReorderFallback)
	assert.Equal(t, [][]uint{{21, 20}}, api.reorderCalls)
	assert.Zero(t, res.ItemsUpdated)
}

func TestQuickEdit_ReorderFallsBackToItemOrder(t *testing.T) {
	api, _, svc := quickEditFixture()
	api.reorderErr = errors.New("not implemented")
	ctx := context.Background()

	view, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)
	edits := editsFrom(view.Entries)
	edits[0].Position, edits[1].Position = 2, 1

	res, err := svc.Save(ctx, 1, 7, edits)
	require.NoError(t, err)
	assert.True(t, res.ReorderFallback)
	assert.True(t, res.Reordered)
	assert.Equal(t, 4, res.ItemsUpdated)
	assert.Equal(t, 1, api.item(4).SubCategoryOrder)
	assert.Equal(t, 2, api.item(1).SubCategoryOrder)

	reloaded, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, "Autorais", reloaded.Entries[0].Name)
}

func TestQuickEdit_FailedRenameIsNotReappliedByItemOrder(t *testing.T) {
	api, _, svc := quickEditFixture()
	api.subs = nil
	api.failOnce[1] = errors.New("boom")
	ctx := context.Background()

	view, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)
	edits := editsFrom(view.Entries)
	edits[0].Name = "Renamed"
	edits[0].Position, edits[1].Position = 2, 1

	res, err := svc.Save(ctx, 1, 7, edits)
	require.NoError(t, err)
	assert.True(t, res.ReorderFallback)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "item 1")
	// two renames plus three order rewrites; item 1 is never sent again
	assert.Equal(t, 5, res.ItemsUpdated)
	assert.Equal(t, 5, api.itemUpdates)

	assert.Equal(t, "Clássicos", api.item(1).SubCategory)
	assert.Equal(t, 1, api.item(1).SubCategoryOrder)
	for _, id := range []uint{2, 3} {
		assert.Equal(t, "Renamed", api.item(id).SubCategory)
		assert.Equal(t, 2, api.item(id).SubCategoryOrder)
	}
	assert.Equal(t, 1, api.item(4).SubCategoryOrder)
}

func TestQuickEdit_RejectsMissingSubcategory(t *testing.T) {
	api, repo, svc := quickEditFixture()
	ctx := context.Background()

	view, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)
	edits := editsFrom(view.Entries)[1:]
	edits[0].Position = 1

	_, err = svc.Save(ctx, 1, 7, edits)
	var pe *subcategory.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "Clássicos")
	assert.Empty(t, api.reorderCalls)
	assert.Empty(t, repo.created)
}

func TestQuickEdit_AdditionCreatesRecordAndReorders(t *testing.T) {
	api, _, svc := quickEditFixture()
	ctx := context.Background()

	view, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)
	edits := append(editsFrom(view.Entries), subcategory.Edit{Name: "Sem Álcool", Position: 0})

	res, err := svc.Save(ctx, 1, 7, edits)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	require.Len(t, api.subCreates, 1)
	assert.Equal(t, "Sem Álcool", api.subCreates[0].Name)
	assert.Equal(t, uint(7), api.subCreates[0].CategoryID)

	newID := api.subCreates[0].ID
	assert.Equal(t, [][]uint{{newID, 20, 21}}, api.reorderCalls)
	assert.Equal(t, newID, res.Final[0].ID)
}

func TestQuickEdit_RejectsCollidingRename(t *testing.T) {
	api, repo, svc := quickEditFixture()
	ctx := context.Background()

	view, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)
	edits := editsFrom(view.Entries)
	edits[1].Name = "CLÁSSICOS"

	_, err = svc.Save(ctx, 1, 7, edits)
	var pe *subcategory.PlanError
	assert.ErrorAs(t, err, &pe)
	assert.Zero(t, api.itemUpdates)
	assert.Empty(t, repo.created)
}

func TestQuickEdit_NoChanges(t *testing.T) {
	api, repo, svc := quickEditFixture()
	ctx := context.Background()

	view, err := svc.Load(ctx, 1, 7)
	require.NoError(t, err)

	res, err := svc.Save(ctx, 1, 7, editsFrom(view.Entries))
	require.NoError(t, err)
	assert.Zero(t, res.ItemsUpdated)
	assert.Zero(t, api.itemUpdates)
	assert.Empty(t, repo.created)
}
