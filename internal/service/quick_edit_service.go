package service

import (
	"context"
	"fmt"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/subcategory"
	"cardapio-admin-svc/pkg/logger"
)

// QuickEditView is the subcategory list shown in the quick edit modal
type QuickEditView struct {
	BarID      uint                `json:"barId" example:"1"`
	CategoryID uint                `json:"categoryId" example:"7"`
	Entries    []subcategory.Entry `json:"entries"`
	Collapsed  []string            `json:"collapsed,omitempty"`
}

// QuickEditResult tallies what saving the quick edit changed
type QuickEditResult struct {
	Renamed         int                `json:"renamed" example:"1"`
	ItemsUpdated    int                `json:"itemsUpdated" example:"4"`
	Created         int                `json:"created" example:"1"`
	Reordered       bool               `json:"reordered"`
	ReorderFallback bool               `json:"reorderFallback"`
	Failed          int                `json:"failed" example:"0"`
	Errors          []string           `json:"errors,omitempty"`
	Final           []subcategory.Edit `json:"final"`
}

// QuickEditService loads and saves the subcategory quick edit of a category
type QuickEditService interface {
	Load(ctx context.Context, barID, categoryID uint) (*QuickEditView, error)
	Save(ctx context.Context, barID, categoryID uint, edits []subcategory.Edit) (*QuickEditResult, error)
}

// quickEditService implements QuickEditService
type quickEditService struct {
	api         MenuAPI
	auditor     *Auditor
	concurrency int
	logger      *logger.Logger
}

// NewQuickEditService creates a new instance of QuickEditService
func NewQuickEditService(api MenuAPI, auditor *Auditor, concurrency int, logger *logger.Logger) QuickEditService {
	return &quickEditService{
		api:         api,
		auditor:     auditor,
		concurrency: concurrency,
		logger:      logger,
	}
}

// snapshot is the state both Load and Save start from
type snapshot struct {
	items  []models.MenuItem
	merged subcategory.Result
}

func (s *quickEditService) snapshot(ctx context.Context, barID, categoryID uint) (*snapshot, error) {
	if categoryID == 0 {
		return nil, cardapio.Invalid("categoryId is required")
	}
	items, err := s.api.ListItems(ctx, cardapio.ItemFilter{BarID: barID, CategoryID: categoryID})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	remote, err := s.api.ListSubCategories(ctx, barID, categoryID)
	if err != nil {
		// items alone still give a usable list
		s.logger.WithError(err).WithField("category_id", categoryID).Warn("Failed to list subcategory records, using item data only")
		remote = nil
	}
	return &snapshot{
		items:  items,
		merged: subcategory.Merge(subcategory.Derive(items, categoryID), remote, categoryID, barID),
	}, nil
}

// Load returns the merged subcategory list of a category
func (s *quickEditService) Load(ctx context.Context, barID, categoryID uint) (*QuickEditView, error) {
	snap, err := s.snapshot(ctx, barID, categoryID)
	if err != nil {
		return nil, err
	}
	if len(snap.merged.Collapsed) > 0 {
		s.logger.WithFields(map[string]interface{}{
			"category_id": categoryID,
			"collapsed":   snap.merged.Collapsed,
		}).Warn("Subcategory names collapsed under the same key")
	}
	return &QuickEditView{
		BarID:      barID,
		CategoryID: categoryID,
		Entries:    snap.merged.Entries,
		Collapsed:  snap.merged.Collapsed,
	}, nil
}

// Save applies renames, additions and the new order. Steps run in that order;
// a failing step is reported and never rolls back earlier ones.
func (s *quickEditService) Save(ctx context.Context, barID, categoryID uint, edits []subcategory.Edit) (*QuickEditResult, error) {
	snap, err := s.snapshot(ctx, barID, categoryID)
	if err != nil {
		return nil, err
	}
	plan, err := subcategory.BuildPlan(snap.merged.Entries, edits)
	if err != nil {
		return nil, err
	}

	res := &QuickEditResult{Final: plan.Final}
	if plan.Empty() {
		return res, nil
	}

	op := s.auditor.Start(models.OpQuickEditSave,
		fmt.Sprintf("Saving quick edit of category %d: %d renames, %d additions", categoryID, len(plan.Renames), len(plan.Additions)), barID)

	positions := make(map[string]int, len(plan.Final))
	for _, row := range plan.Final {
		positions[models.NormalizeName(row.Name)] = row.Position
	}

	s.applyRenames(ctx, snap.items, plan, barID, categoryID, positions, res)
	s.applyAdditions(ctx, plan, barID, categoryID, positions, res)
	if plan.Reordered {
		s.applyOrder(ctx, snap.items, plan, barID, categoryID, positions, res)
	}

	op.Finish(statusFor(res.Renamed+res.Created+res.ItemsUpdated, res.Failed),
		fmt.Sprintf("Quick edit of category %d saved with %d failures", categoryID, res.Failed), res)
	return res, nil
}

// applyRenames rewrites the subcategory of every matching item. New names
// come from a snapshot of the original names, so swaps apply cleanly.
func (s *quickEditService) applyRenames(ctx context.Context, items []models.MenuItem, plan *subcategory.Plan, barID, categoryID uint, positions map[string]int, res *QuickEditResult) {
	if len(plan.Renames) == 0 {
		return
	}
	renameTo := make(map[string]string, len(plan.Renames))
	for _, r := range plan.Renames {
		renameTo[models.NormalizeName(r.From)] = r.To
	}

	renamed := map[uint]models.MenuItem{}
	var ids []uint
	for i := range items {
		to, ok := renameTo[models.NormalizeName(items[i].SubCategory)]
		if !ok {
			continue
		}
		item := items[i]
		item.SubCategory = to
		renamed[item.ID] = item
		ids = append(ids, item.ID)
	}

	bulk := runBulk(ctx, s.concurrency, ids, func(ctx context.Context, id uint) error {
		item := renamed[id]
		_, err := s.api.UpdateItem(ctx, &item)
		return err
	})
	res.ItemsUpdated += bulk.Succeeded
	s.recordFailures(res, "item", bulk)
	confirm(items, renamed, bulk)

	for _, r := range plan.Renames {
		if r.ID == 0 {
			res.Renamed++
			continue
		}
		_, err := s.api.UpdateSubCategory(ctx, &models.SubCategory{
			ID:         r.ID,
			Name:       r.To,
			CategoryID: categoryID,
			BarID:      barID,
			Order:      positions[models.NormalizeName(r.To)],
		})
		if err != nil {
			s.fail(res, fmt.Sprintf("rename %q to %q", r.From, r.To), err)
			continue
		}
		res.Renamed++
	}
}

func (s *quickEditService) applyAdditions(ctx context.Context, plan *subcategory.Plan, barID, categoryID uint, positions map[string]int, res *QuickEditResult) {
	for _, a := range plan.Additions {
		created, err := s.api.CreateSubCategory(ctx, &models.SubCategory{
			Name:       a.Name,
			CategoryID: categoryID,
			BarID:      barID,
			Order:      positions[models.NormalizeName(a.Name)],
		})
		if err != nil {
			s.fail(res, fmt.Sprintf("create %q", a.Name), err)
			continue
		}
		res.Created++
		for i := range plan.Final {
			if plan.Final[i].IsNew() && models.NormalizeName(plan.Final[i].Name) == models.NormalizeName(a.Name) {
				plan.Final[i].ID = created.ID
			}
		}
	}
}

// applyOrder stores the new order through the reorder endpoint, or rewrites
// subCategoryOrder on every item when that is not possible
func (s *quickEditService) applyOrder(ctx context.Context, items []models.MenuItem, plan *subcategory.Plan, barID, categoryID uint, positions map[string]int, res *QuickEditResult) {
	ids := make([]uint, 0, len(plan.Final))
	complete := true
	for _, row := range plan.Final {
		if row.ID == 0 {
			complete = false
			break
		}
		ids = append(ids, row.ID)
	}

	if complete {
		err := s.api.ReorderSubCategories(ctx, barID, categoryID, ids)
		if err == nil {
			res.Reordered = true
			return
		}
		s.logger.WithError(err).WithField("category_id", categoryID).Warn("Reorder endpoint failed, rewriting item order")
	}

	res.ReorderFallback = true
	ordered := map[uint]models.MenuItem{}
	var itemIDs []uint
	for i := range items {
		pos, ok := positions[models.NormalizeName(items[i].SubCategory)]
		if !ok || items[i].SubCategoryOrder == pos {
			continue
		}
		item := items[i]
		item.SubCategoryOrder = pos
		ordered[item.ID] = item
		itemIDs = append(itemIDs, item.ID)
	}
	bulk := runBulk(ctx, s.concurrency, itemIDs, func(ctx context.Context, id uint) error {
		item := ordered[id]
		_, err := s.api.UpdateItem(ctx, &item)
		return err
	})
	res.ItemsUpdated += bulk.Succeeded
	s.recordFailures(res, "item", bulk)
	confirm(items, ordered, bulk)
	res.Reordered = bulk.Failed == 0
}

// confirm copies the updates the API accepted back into the snapshot, so
// later steps build on confirmed state only
func confirm(items []models.MenuItem, updated map[uint]models.MenuItem, bulk *BulkResult) {
	failed := make(map[uint]bool, len(bulk.Failures))
	for _, f := range bulk.Failures {
		failed[f.ID] = true
	}
	for i := range items {
		if next, ok := updated[items[i].ID]; ok && !failed[items[i].ID] {
			items[i] = next
		}
	}
}

func (s *quickEditService) recordFailures(res *QuickEditResult, what string, bulk *BulkResult) {
	for _, f := range bulk.Failures {
		res.Failed++
		res.Errors = append(res.Errors, fmt.Sprintf("%s %d: %s", what, f.ID, f.Error))
	}
}

func (s *quickEditService) fail(res *QuickEditResult, what string, err error) {
	res.Failed++
	res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", what, err))
	s.logger.WithError(err).Error("Quick edit step failed: " + what)
}
