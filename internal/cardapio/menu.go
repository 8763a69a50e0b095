package cardapio

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cardapio-admin-svc/internal/models"
)

const (
	barsPath          = "/api/cardapio/bars"
	categoriesPath    = "/api/cardapio/categories"
	itemsPath         = "/api/cardapio/items"
	subCategoriesPath = "/api/cardapio/subcategories"
)

// ItemFilter narrows ListItems
type ItemFilter struct {
	BarID      uint
	CategoryID uint
}

func (f ItemFilter) values() url.Values {
	q := url.Values{}
	if f.BarID != 0 {
		q.Set("barId", strconv.FormatUint(uint64(f.BarID), 10))
	}
	if f.CategoryID != 0 {
		q.Set("categoryId", strconv.FormatUint(uint64(f.CategoryID), 10))
	}
	return q
}

// itemWire is the item shape the API stores: visible as 1/0 and the legacy
// subCategoryName mirrored from subCategory
type itemWire struct {
	models.MenuItem
	Visible         int    `json:"visible"`
	SubCategoryName string `json:"subCategoryName"`
}

func toWire(item *models.MenuItem) itemWire {
	return itemWire{
		MenuItem:        *item,
		Visible:         item.Visible.WireValue(),
		SubCategoryName: item.SubCategory,
	}
}

// ListBars returns every bar
func (c *Client) ListBars(ctx context.Context) ([]models.Bar, error) {
	var bars []models.Bar
	err := c.doJSON(ctx, http.MethodGet, barsPath, nil, nil, &bars)
	return bars, err
}

// GetBar returns one bar
func (c *Client) GetBar(ctx context.Context, id uint) (*models.Bar, error) {
	if err := requireID(id, "bar"); err != nil {
		return nil, err
	}
	var bar models.Bar
	if err := c.doJSON(ctx, http.MethodGet, idPath(barsPath, id), nil, nil, &bar); err != nil {
		return nil, err
	}
	return &bar, nil
}

// CreateBar creates a bar
func (c *Client) CreateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error) {
	if err := bar.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var created models.Bar
	if err := c.doJSON(ctx, http.MethodPost, barsPath, nil, bar, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBar replaces a bar
func (c *Client) UpdateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error) {
	if err := requireID(bar.ID, "bar"); err != nil {
		return nil, err
	}
	if err := bar.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var updated models.Bar
	if err := c.doJSON(ctx, http.MethodPut, idPath(barsPath, bar.ID), nil, bar, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBar deletes a bar
func (c *Client) DeleteBar(ctx context.Context, id uint) error {
	if err := requireID(id, "bar"); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, idPath(barsPath, id), nil, nil, nil)
}

// ListCategories returns the categories of a bar
func (c *Client) ListCategories(ctx context.Context, barID uint) ([]models.Category, error) {
	var categories []models.Category
	err := c.doJSON(ctx, http.MethodGet, categoriesPath, barQuery(barID), nil, &categories)
	return categories, err
}

// CreateCategory creates a category
func (c *Client) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var created models.Category
	if err := c.doJSON(ctx, http.MethodPost, categoriesPath, nil, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCategory replaces a category
func (c *Client) UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := requireID(category.ID, "category"); err != nil {
		return nil, err
	}
	if err := category.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var updated models.Category
	if err := c.doJSON(ctx, http.MethodPut, idPath(categoriesPath, category.ID), nil, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory deletes a category
func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	if err := requireID(id, "category"); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, idPath(categoriesPath, id), nil, nil, nil)
}

// ListItems returns menu items matching the filter
func (c *Client) ListItems(ctx context.Context, filter ItemFilter) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := c.doJSON(ctx, http.MethodGet, itemsPath, filter.values(), nil, &items)
	return items, err
}

// GetItem returns one menu item
func (c *Client) GetItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	if err := requireID(id, "item"); err != nil {
		return nil, err
	}
	var item models.MenuItem
	if err := c.doJSON(ctx, http.MethodGet, idPath(itemsPath, id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem creates a menu item
func (c *Client) CreateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := item.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var created models.MenuItem
	if err := c.doJSON(ctx, http.MethodPost, itemsPath, nil, toWire(item), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateItem replaces a menu item
func (c *Client) UpdateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := requireID(item.ID, "item"); err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, Invalid("%s", err.Error())
	}
	var updated models.MenuItem
	if err := c.doJSON(ctx, http.MethodPut, idPath(itemsPath, item.ID), nil, toWire(item), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItem moves a menu item to the trash
func (c *Client) DeleteItem(ctx context.Context, id uint) error {
	if err := requireID(id, "item"); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, idPath(itemsPath, id), nil, nil, nil)
}

// ListSubCategories returns the subcategory records the API knows for a category
func (c *Client) ListSubCategories(ctx context.Context, barID, categoryID uint) ([]models.SubCategory, error) {
	if err := requireID(categoryID, "category"); err != nil {
		return nil, err
	}
	var subs []models.SubCategory
	err := c.doJSON(ctx, http.MethodGet, subCategoriesPath, ItemFilter{BarID: barID, CategoryID: categoryID}.values(), nil, &subs)
	return subs, err
}

// CreateSubCategory creates a subcategory record
func (c *Client) CreateSubCategory(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error) {
	if strings.TrimSpace(sub.Name) == "" {
		return nil, Invalid("subcategory name is required")
	}
	if err := requireID(sub.CategoryID, "category"); err != nil {
		return nil, err
	}
	var created models.SubCategory
	if err := c.doJSON(ctx, http.MethodPost, subCategoriesPath, nil, sub, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSubCategory renames or reorders a subcategory record
func (c *Client) UpdateSubCategory(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error) {
	if err := requireID(sub.ID, "subcategory"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(sub.Name) == "" {
		return nil, Invalid("subcategory name is required")
	}
	var updated models.SubCategory
	if err := c.doJSON(ctx, http.MethodPut, idPath(subCategoriesPath, sub.ID), nil, sub, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

type reorderRequest struct {
	CategoryID uint   `json:"categoryId"`
	BarID      uint   `json:"barId"`
	OrderedIDs []uint `json:"orderedIds"`
}

// ReorderSubCategories stores the order of a category's subcategories
func (c *Client) ReorderSubCategories(ctx context.Context, barID, categoryID uint, orderedIDs []uint) error {
	if err := requireID(categoryID, "category"); err != nil {
		return err
	}
	if len(orderedIDs) == 0 {
		return Invalid("orderedIds must not be empty")
	}
	body := reorderRequest{CategoryID: categoryID, BarID: barID, OrderedIDs: orderedIDs}
	return c.doJSON(ctx, http.MethodPost, subCategoriesPath+"/reorder", nil, body, nil)
}
