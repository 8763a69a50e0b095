package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/repository"
)

// fakeMenuAPI is an in-memory menu API
type fakeMenuAPI struct {
	mu     sync.Mutex
	bars   map[uint]*models.Bar
	items  map[uint]*models.MenuItem
	subs   []models.SubCategory
	nextID uint

	failDelete   map[uint]error
	failUpdate   map[uint]error
	failOnce     map[uint]error
	reorderErr   error
	itemUpdates  int
	subUpdates   []models.SubCategory
	subCreates   []models.SubCategory
	reorderCalls [][]uint
}

func newFakeMenuAPI(items ...models.MenuItem) *fakeMenuAPI {
	f := &fakeMenuAPI{
		bars:       map[uint]*models.Bar{},
		items:      map[uint]*models.MenuItem{},
		nextID:     100,
		failDelete: map[uint]error{},
		failUpdate: map[uint]error{},
		failOnce:   map[uint]error{},
	}
	for i := range items {
		it := items[i]
		f.items[it.ID] = &it
	}
	return f
}

func (f *fakeMenuAPI) item(id uint) models.MenuItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.items[id]
}

func (f *fakeMenuAPI) ListBars(ctx context.Context) ([]models.Bar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Bar
	for _, b := range f.bars {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeMenuAPI) GetBar(ctx context.Context, id uint) (*models.Bar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bars[id]
	if !ok {
		return nil, &cardapio.APIError{StatusCode: 404, Message: "Not Found"}
	}
	cp := *b
	return &cp, nil
}

func (f *fakeMenuAPI) CreateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	cp := *bar
	cp.ID = f.nextID
	f.bars[cp.ID] = &cp
	return &cp, nil
}

func (f *fakeMenuAPI) UpdateBar(ctx context.Context, bar *models.Bar) (*models.Bar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *bar
	f.bars[cp.ID] = &cp
	return &cp, nil
}

func (f *fakeMenuAPI) DeleteBar(ctx context.Context, id uint) error { return nil }

func (f *fakeMenuAPI) ListCategories(ctx context.Context, barID uint) ([]models.Category, error) {
	return nil, nil
}

func (f *fakeMenuAPI) CreateCategory(ctx context.Context, c *models.Category) (*models.Category, error) {
	return c, nil
}

func (f *fakeMenuAPI) UpdateCategory(ctx context.Context, c *models.Category) (*models.Category, error) {
	return c, nil
}

func (f *fakeMenuAPI) DeleteCategory(ctx context.Context, id uint) error { return nil }

func (f *fakeMenuAPI) ListItems(ctx context.Context, filter cardapio.ItemFilter) ([]models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.MenuItem
	for _, it := range f.items {
		if filter.CategoryID != 0 && it.CategoryID != filter.CategoryID {
			continue
		}
		if filter.BarID != 0 && it.BarID != filter.BarID {
			continue
		}
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMenuAPI) GetItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return nil, &cardapio.APIError{StatusCode: 404, Message: "Not Found"}
	}
	cp := *it
	return &cp, nil
}

func (f *fakeMenuAPI) CreateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	cp := *item
	cp.ID = f.nextID
	f.items[cp.ID] = &cp
	return &cp, nil
}

func (f *fakeMenuAPI) UpdateItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failUpdate[item.ID]; err != nil {
		return nil, err
	}
	if err := f.failOnce[item.ID]; err != nil {
		delete(f.failOnce, item.ID)
		return nil, err
	}
	if _, ok := f.items[item.ID]; !ok {
		return nil, &cardapio.APIError{StatusCode: 404, Message: "Not Found"}
	}
	cp := *item
	f.items[item.ID] = &cp
	f.itemUpdates++
	return &cp, nil
}

func (f *fakeMenuAPI) DeleteItem(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failDelete[id]; err != nil {
		return err
	}
	if _, ok := f.items[id]; !ok {
		return &cardapio.APIError{StatusCode: 404, Message: "Not Found"}
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMenuAPI) ListSubCategories(ctx context.Context, barID, categoryID uint) ([]models.SubCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.SubCategory, len(f.subs))
	copy(out, f.subs)
	return out, nil
}

func (f *fakeMenuAPI) CreateSubCategory(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	cp := *sub
	cp.ID = f.nextID
	f.subs = append(f.subs, cp)
	f.subCreates = append(f.subCreates, cp)
	return &cp, nil
}

func (f *fakeMenuAPI) UpdateSubCategory(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.subs {
		if f.subs[i].ID == sub.ID {
			f.subs[i] = *sub
		}
	}
	f.subUpdates = append(f.subUpdates, *sub)
	return sub, nil
}

func (f *fakeMenuAPI) ReorderSubCategories(ctx context.Context, barID, categoryID uint, ids []uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reorderCalls = append(f.reorderCalls, ids)
	return f.reorderErr
}

func (f *fakeMenuAPI) ListTrash(ctx context.Context, barID uint) ([]models.TrashEntry, error) {
	return nil, nil
}

func (f *fakeMenuAPI) RestoreTrash(ctx context.Context, id uint) error { return nil }

// fakeGalleryAPI is an in-memory image library
type fakeGalleryAPI struct {
	mu        sync.Mutex
	images    []models.GalleryImage
	listCalls int
	listErr   error
}

func (f *fakeGalleryAPI) ListGallery(ctx context.Context) ([]models.GalleryImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.GalleryImage, len(f.images))
	copy(out, f.images)
	return out, nil
}

func (f *fakeGalleryAPI) UploadImage(ctx context.Context, filename, folder string, content io.Reader) (*models.GalleryImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := io.ReadAll(content); err != nil {
		return nil, err
	}
	img := models.GalleryImage{
		ID:       fmt.Sprintf("img-%d", len(f.images)+1),
		Filename: filename,
		URL:      "https://storage.example.com/" + folder + "/" + filename,
		Folder:   folder,
	}
	f.images = append(f.images, img)
	return &img, nil
}

func (f *fakeGalleryAPI) DeleteImage(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, img := range f.images {
		if img.ID == id {
			f.images = append(f.images[:i], f.images[i+1:]...)
			return nil
		}
	}
	return &cardapio.APIError{StatusCode: 404, Message: "Not Found"}
}

// fakePromoterAPI stores guests per list
type fakePromoterAPI struct {
	mu      sync.Mutex
	guests  map[uint][]models.Guest
	failFor map[string]error
}

func newFakePromoterAPI() *fakePromoterAPI {
	return &fakePromoterAPI{guests: map[uint][]models.Guest{}, failFor: map[string]error{}}
}

func (f *fakePromoterAPI) ListPromoterEvents(ctx context.Context) ([]models.PromoterEvent, error) {
	return []models.PromoterEvent{{ID: 1, Title: "Noite do Samba", GuestListID: 17}}, nil
}

func (f *fakePromoterAPI) ListGuests(ctx context.Context, listID uint) ([]models.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Guest(nil), f.guests[listID]...), nil
}

func (f *fakePromoterAPI) AddGuest(ctx context.Context, listID uint, guest *models.Guest) (*models.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[guest.Name]; err != nil {
		return nil, err
	}
	cp := *guest
	cp.ID = uint(len(f.guests[listID]) + 1)
	f.guests[listID] = append(f.guests[listID], cp)
	return &cp, nil
}

// fakeLogRepo records operation log writes
type fakeLogRepo struct {
	mu      sync.Mutex
	created []models.OperationLog
	status  map[string]string
	summary map[string]string

	lastFilter repository.OperationLogFilter
	lastLimit  int
	lastOffset int
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{status: map[string]string{}, summary: map[string]string{}}
}

func (r *fakeLogRepo) Create(log *models.OperationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, *log)
	r.status[log.DocumentID] = log.Status
	return nil
}

func (r *fakeLogRepo) UpdateStatus(documentID, status, message, summary string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[documentID] = status
	r.summary[documentID] = summary
	return nil
}

func (r *fakeLogRepo) GetByDocumentID(documentID string) (*models.OperationLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.created {
		if l.DocumentID == documentID {
			l.Status = r.status[documentID]
			return &l, nil
		}
	}
	return nil, fmt.Errorf("record not found")
}

func (r *fakeLogRepo) List(filter repository.OperationLogFilter, limit, offset int) ([]models.OperationLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter, r.lastLimit, r.lastOffset = filter, limit, offset
	return r.created, int64(len(r.created)), nil
}

// lastStatus returns the final status of the only operation with code
func (r *fakeLogRepo) lastStatus(code string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.created) - 1; i >= 0; i-- {
		if r.created[i].OperationCode == code {
			return r.status[r.created[i].DocumentID]
		}
	}
	return ""
}

// identityResolver returns every reference unchanged
type identityResolver struct{}

func (identityResolver) ResolveBatch(ctx context.Context, values []string) map[string]string {
	out := make(map[string]string, len(values))
	for _, v := range values {
		out[v] = v
	}
	return out
}
