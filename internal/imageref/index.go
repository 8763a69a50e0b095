// Package imageref turns stored image references into displayable URLs.
package imageref

import (
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"cardapio-admin-svc/internal/models"
)

// Index maps gallery file names to their public URLs. It is safe for
// concurrent use and never evicts; Replace swaps the whole content.
type Index struct {
	mu       sync.RWMutex
	byName   map[string]string
	warmedAt time.Time
}

// NewIndex creates an empty, cold index
func NewIndex() *Index {
	return &Index{byName: make(map[string]string)}
}

// Replace swaps the index content with the given gallery listing and marks it warm
func (i *Index) Replace(images []models.GalleryImage) {
	next := make(map[string]string, len(images)*2)
	for _, img := range images {
		addTo(next, img)
	}
	i.mu.Lock()
	i.byName = next
	i.warmedAt = time.Now()
	i.mu.Unlock()
}

// Add registers one image, used right after an upload
func (i *Index) Add(img models.GalleryImage) {
	i.mu.Lock()
	addTo(i.byName, img)
	i.mu.Unlock()
}

// Remove drops every name pointing to url
func (i *Index) Remove(publicURL string) {
	i.mu.Lock()
	for k, v := range i.byName {
		if v == publicURL {
			delete(i.byName, k)
		}
	}
	i.mu.Unlock()
}

// Lookup finds value by exact name first, then by its last path segment
func (i *Index) Lookup(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	i.mu.RLock()
	defer i.mu.RUnlock()

	if u, ok := i.byName[value]; ok {
		return u, true
	}
	if seg := lastSegment(value); seg != "" && seg != value {
		if u, ok := i.byName[seg]; ok {
			return u, true
		}
	}
	return "", false
}

// Len returns the number of indexed names
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byName)
}

// Warm reports whether the index has been populated at least once, and when
func (i *Index) Warm() (bool, time.Time) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return !i.warmedAt.IsZero(), i.warmedAt
}

func addTo(m map[string]string, img models.GalleryImage) {
	if img.URL == "" {
		return
	}
	if img.Filename != "" {
		m[img.Filename] = img.URL
	}
	if seg := lastSegment(img.URL); seg != "" {
		if _, taken := m[seg]; !taken {
			m[seg] = img.URL
		}
	}
}

// lastSegment returns the file name part of a path or URL, without query or fragment
func lastSegment(value string) string {
	p := value
	if u, err := url.Parse(value); err == nil && u.Path != "" {
		p = u.Path
	} else if idx := strings.IndexAny(p, "?#"); idx >= 0 {
		p = p[:idx]
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	seg := path.Base(p)
	if unescaped, err := url.PathUnescape(seg); err == nil {
		seg = unescaped
	}
	if seg == "." || seg == "/" {
		return ""
	}
	return seg
}
