package subcategory

import (
	"fmt"
	"sort"
	"strings"

	"cardapio-admin-svc/internal/models"
)

// Edit is one row of the quick edit list as submitted by the admin.
// OriginalName is empty for rows added in the modal.
type Edit struct {
	ID           uint   `json:"id,omitempty" example:"12"`
	OriginalName string `json:"originalName" example:"Clássicos"`
	Name         string `json:"name" binding:"required" example:"Clássicos da Casa"`
	Position     int    `json:"position" example:"1"`
}

// IsNew reports whether the row was added in the modal
func (e Edit) IsNew() bool {
	return strings.TrimSpace(e.OriginalName) == ""
}

// Rename moves every item from one name to another
type Rename struct {
	ID   uint   `json:"id,omitempty"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Plan is what saving the quick edit has to do
type Plan struct {
	Renames   []Rename `json:"renames"`
	Additions []Edit   `json:"additions"`
	Reordered bool     `json:"reordered"`
	// Final is the submitted list sorted by position, with ids filled from the original list
	Final []Edit `json:"final"`
}

// Empty reports whether there is nothing to save
func (p *Plan) Empty() bool {
	return len(p.Renames) == 0 && len(p.Additions) == 0 && !p.Reordered
}

// PlanError is a rejected quick edit
type PlanError struct {
	Message string
}

func (e *PlanError) Error() string {
	return e.Message
}

func planErr(format string, args ...interface{}) error {
	return &PlanError{Message: fmt.Sprintf(format, args...)}
}

// BuildPlan diffs the submitted rows against the merged list they were built
// from. Names must stay unique inside the category, so a rename can never
// silently collapse two subcategories.
func BuildPlan(original []Entry, edits []Edit) (*Plan, error) {
	origByKey := make(map[string]Entry, len(original))
	for _, e := range original {
		origByKey[e.Key()] = e
	}

	rows := make([]Edit, len(edits))
	copy(rows, edits)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	plan := &Plan{}
	seenNew := map[string]string{}
	seenOrig := map[string]bool{}

	for i := range rows {
		row := &rows[i]
		row.Name = strings.TrimSpace(row.Name)
		row.OriginalName = strings.TrimSpace(row.OriginalName)
		if row.Name == "" {
			return nil, planErr("subcategory name is required")
		}

		newKey := models.NormalizeName(row.Name)
		if prev, dup := seenNew[newKey]; dup {
			return nil, planErr("subcategory %q is used twice (also as %q)", row.Name, prev)
		}
		seenNew[newKey] = row.Name

		if row.IsNew() {
			if _, clash := origByKey[newKey]; clash && !renamedAway(rows, newKey) {
				return nil, planErr("subcategory %q already exists", row.Name)
			}
			plan.Additions = append(plan.Additions, *row)
			continue
		}

		origKey := models.NormalizeName(row.OriginalName)
		orig, ok := origByKey[origKey]
		if !ok {
			return nil, planErr("unknown subcategory %q", row.OriginalName)
		}
		if seenOrig[origKey] {
			return nil, planErr("subcategory %q is edited twice", row.OriginalName)
		}
		seenOrig[origKey] = true
		if row.ID == 0 {
			row.ID = orig.ID
		}
		if newKey != origKey {
			if _, clash := origByKey[newKey]; clash && !renamedAway(rows, newKey) {
				return nil, planErr("cannot rename %q to %q: name already exists", orig.OriginalName, row.Name)
			}
		}
		if row.Name != orig.OriginalName {
			plan.Renames = append(plan.Renames, Rename{ID: row.ID, From: orig.OriginalName, To: row.Name})
		}
	}

	// removing a subcategory is not a quick edit
	for _, e := range original {
		if !seenOrig[e.Key()] {
			return nil, planErr("subcategory %q is missing", e.OriginalName)
		}
	}

	// expected order: untouched original order, additions appended
	var expected, actual []string
	for _, e := range original {
		expected = append(expected, "orig:"+e.Key())
	}
	for _, a := range plan.Additions {
		expected = append(expected, "new:"+models.NormalizeName(a.Name))
	}
	for _, row := range rows {
		if row.IsNew() {
			actual = append(actual, "new:"+models.NormalizeName(row.Name))
		} else {
			actual = append(actual, "orig:"+models.NormalizeName(row.OriginalName))
		}
	}
	plan.Reordered = !equalStrings(expected, actual)

	for i := range rows {
		rows[i].Position = i + 1
	}
	plan.Final = rows
	return plan, nil
}

// renamedAway reports whether the original subcategory with key is renamed to something else in rows
func renamedAway(rows []Edit, key string) bool {
	for _, r := range rows {
		if !r.IsNew() && models.NormalizeName(r.OriginalName) == key && models.NormalizeName(r.Name) != key {
			return true
		}
	}
	return false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
