// Package subcategory reconciles the subcategories observed on menu items
// with the subcategory records stored by the menu API.
package subcategory

import (
	"sort"
	"strings"

	"cardapio-admin-svc/internal/models"
)

// Source tells where a merged entry was observed
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
	SourceBoth   Source = "both"
)

// Derived is a subcategory synthesized from items
type Derived struct {
	Name      string
	Order     int
	ItemCount int
}

// Entry is one row of the quick edit list
type Entry struct {
	ID            uint   `json:"id,omitempty" example:"12"`
	Name          string `json:"name" example:"Clássicos"`
	OriginalName  string `json:"originalName" example:"Clássicos"`
	CategoryID    uint   `json:"categoryId" example:"7"`
	BarID         uint   `json:"barId" example:"1"`
	Position      int    `json:"position" example:"1"`
	OriginalOrder int    `json:"originalOrder" example:"3"`
	ItemCount     int    `json:"itemCount" example:"4"`
	Source        Source `json:"source" example:"both"`
}

// Key is the case-insensitive identity of the entry inside its category
func (e Entry) Key() string {
	return models.NormalizeName(e.OriginalName)
}

// Result is the canonical list plus the names that collapsed into another entry
type Result struct {
	Entries   []Entry  `json:"entries"`
	Collapsed []string `json:"collapsed,omitempty"`
}

// Derive scans items of one category for non-empty subcategory names. The
// order of a derived entry is the subCategoryOrder of its first item when set;
// entries without one follow the highest known order in first-appearance order.
func Derive(items []models.MenuItem, categoryID uint) []Derived {
	var out []Derived
	pos := map[string]int{}
	maxOrder := 0

	for i := range items {
		it := &items[i]
		if categoryID != 0 && it.CategoryID != categoryID {
			continue
		}
		name := strings.TrimSpace(it.SubCategory)
		if name == "" {
			continue
		}
		key := models.NormalizeName(name)
		if idx, ok := pos[key]; ok {
			out[idx].ItemCount++
			continue
		}
		pos[key] = len(out)
		out = append(out, Derived{Name: name, Order: it.SubCategoryOrder, ItemCount: 1})
		if it.SubCategoryOrder > maxOrder {
			maxOrder = it.SubCategoryOrder
		}
	}

	for i := range out {
		if out[i].Order <= 0 {
			maxOrder++
			out[i].Order = maxOrder
		}
	}
	return out
}

// Merge builds the canonical list. Local entries win; remote records only add
// names absent locally, lending their id to a local entry that has none.
// Remote records of other categories (or bars, when barID is set) are ignored.
func Merge(local []Derived, remote []models.SubCategory, categoryID, barID uint) Result {
	var res Result
	byKey := map[string]*Entry{}
	var entries []*Entry

	for _, d := range local {
		name := strings.TrimSpace(d.Name)
		key := models.NormalizeName(name)
		if key == "" {
			continue
		}
		if e, ok := byKey[key]; ok {
			e.ItemCount += d.ItemCount
			res.Collapsed = append(res.Collapsed, name)
			continue
		}
		e := &Entry{
			Name:          name,
			OriginalName:  name,
			CategoryID:    categoryID,
			BarID:         barID,
			OriginalOrder: d.Order,
			ItemCount:     d.ItemCount,
			Source:        SourceLocal,
		}
		byKey[key] = e
		entries = append(entries, e)
	}

	remoteSeen := map[string]bool{}
	for _, r := range remote {
		if r.CategoryID != 0 && categoryID != 0 && r.CategoryID != categoryID {
			continue
		}
		if r.BarID != 0 && barID != 0 && r.BarID != barID {
			continue
		}
		name := strings.TrimSpace(r.Name)
		key := models.NormalizeName(name)
		if key == "" {
			continue
		}
		if remoteSeen[key] {
			res.Collapsed = append(res.Collapsed, name)
			continue
		}
		remoteSeen[key] = true

		if e, ok := byKey[key]; ok {
			if e.ID == 0 {
				e.ID = r.ID
			}
			e.Source = SourceBoth
			continue
		}
		e := &Entry{
			ID:            r.ID,
			Name:          name,
			OriginalName:  name,
			CategoryID:    categoryID,
			BarID:         barID,
			OriginalOrder: r.Order,
			Source:        SourceRemote,
		}
		byKey[key] = e
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].OriginalOrder != entries[j].OriginalOrder {
			return entries[i].OriginalOrder < entries[j].OriginalOrder
		}
		ki, kj := entries[i].Key(), entries[j].Key()
		if ki != kj {
			return ki < kj
		}
		return entries[i].Name < entries[j].Name
	})

	res.Entries = make([]Entry, len(entries))
	for i, e := range entries {
		e.Position = i + 1
		res.Entries[i] = *e
	}
	return res
}
