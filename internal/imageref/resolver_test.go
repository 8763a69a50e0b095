package imageref

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardapio-admin-svc/internal/models"
)

const placeholder = "/images/placeholder.png"

func newResolver(images ...models.GalleryImage) (*Resolver, *Index) {
	idx := NewIndex()
	if len(images) > 0 {
		idx.Replace(images)
	}
	return NewResolver(idx, Options{
		Placeholder:  placeholder,
		TrustedHosts: []string{"storage.example.com"},
		LegacyHosts:  []string{"old-cdn.example.com"},
	}), idx
}

func TestResolve_Policy(t *testing.T) {
	r, _ := newResolver(
		models.GalleryImage{Filename: "burger.jpg", URL: "https://storage.example.com/cardapio/burger.jpg"},
		models.GalleryImage{Filename: "logo bar.png", URL: "https://storage.example.com/bars/logo%20bar.png"},
	)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "  ", placeholder},
		{"blob passes", "blob:https://admin/123", "blob:https://admin/123"},
		{"data passes", "data:image/png;base64,AAA", "data:image/png;base64,AAA"},
		{"cloudinary never trusted", "https://res.cloudinary.com/demo/image/upload/burger.jpg", placeholder},
		{"cloudinary without scheme", "res.cloudinary.com/demo/burger.jpg", placeholder},
		{"bare filename indexed", "burger.jpg", "https://storage.example.com/cardapio/burger.jpg"},
		{"bare filename unknown", "pizza.jpg", placeholder},
		{"relative path by last segment", "uploads/2023/burger.jpg", "https://storage.example.com/cardapio/burger.jpg"},
		{"legacy url by last segment", "https://old-cdn.example.com/img/burger.jpg?v=2", "https://storage.example.com/cardapio/burger.jpg"},
		{"legacy url unknown", "https://old-cdn.example.com/img/pizza.jpg", placeholder},
		{"trusted url passes", "https://storage.example.com/x/pizza.jpg", "https://storage.example.com/x/pizza.jpg"},
		{"other absolute url passes", "https://images.example.org/pizza.jpg", "https://images.example.org/pizza.jpg"},
		{"escaped segment", "https://old-cdn.example.com/logo%20bar.png", "https://storage.example.com/bars/logo%20bar.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.value))
		})
	}
}

func TestResolve_UnknownFilenamesFallBackToPlaceholder(t *testing.T) {
	r, idx := newResolver(models.GalleryImage{Filename: "known.jpg", URL: "https://storage.example.com/known.jpg"})
	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("file-%d.jpg", i)
		assert.Equal(t, placeholder, r.Resolve(name))
		assert.Equal(t, placeholder, r.Resolve("some/dir/"+name))
	}

	idx.Add(models.GalleryImage{Filename: "file-7.jpg", URL: "https://storage.example.com/file-7.jpg"})
	assert.Equal(t, "https://storage.example.com/file-7.jpg", r.Resolve("file-7.jpg"))
	assert.Equal(t, "https://storage.example.com/file-7.jpg", r.Resolve("some/dir/file-7.jpg"))
}

func TestIndex_ReplaceRemoveAndWarm(t *testing.T) {
	idx := NewIndex()
	warm, _ := idx.Warm()
	assert.False(t, warm)

	idx.Replace([]models.GalleryImage{
		{Filename: "a.jpg", URL: "https://s/a.jpg"},
		{Filename: "b.jpg", URL: "https://s/b-v2.jpg"},
		{Filename: "", URL: ""},
	})
	warm, at := idx.Warm()
	require.True(t, warm)
	assert.False(t, at.IsZero())
	assert.Equal(t, 3, idx.Len()) // a.jpg, b.jpg and the b-v2.jpg segment

	idx.Remove("https://s/b-v2.jpg")
	_, ok := idx.Lookup("b.jpg")
	assert.False(t, ok)
	_, ok = idx.Lookup("b-v2.jpg")
	assert.False(t, ok)

	idx.Replace(nil)
	assert.Equal(t, 0, idx.Len())
}

func TestIndex_ConcurrentAccess(t *testing.T) {
	r, idx := newResolver()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			idx.Add(models.GalleryImage{Filename: fmt.Sprintf("%d.jpg", i), URL: fmt.Sprintf("https://s/%d.jpg", i)})
		}(i)
		go func(i int) {
			defer wg.Done()
			_ = r.Resolve(fmt.Sprintf("%d.jpg", i))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, idx.Len())
}

func TestResolveAll(t *testing.T) {
	r, _ := newResolver(models.GalleryImage{Filename: "a.jpg", URL: "https://storage.example.com/a.jpg"})
	got := r.ResolveAll([]string{"a.jpg", "b.jpg"})
	assert.Equal(t, map[string]string{"a.jpg": "https://storage.example.com/a.jpg", "b.jpg": placeholder}, got)
}
