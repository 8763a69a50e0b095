package imageref

import (
	"net/url"
	"strings"
)

const cloudinaryHost = "cloudinary.com"

// Resolver applies the display policy for stored image references
type Resolver struct {
	index        *Index
	placeholder  string
	trustedHosts []string
	legacyHosts  []string
}

// Options configures a Resolver
type Options struct {
	Placeholder  string
	TrustedHosts []string
	LegacyHosts  []string
}

// NewResolver creates a resolver backed by index
func NewResolver(index *Index, opts Options) *Resolver {
	return &Resolver{
		index:        index,
		placeholder:  opts.Placeholder,
		trustedHosts: lowerAll(opts.TrustedHosts),
		legacyHosts:  lowerAll(opts.LegacyHosts),
	}
}

// Placeholder returns the fallback asset URL
func (r *Resolver) Placeholder() string {
	return r.placeholder
}

// Resolve returns a displayable URL for value, or the placeholder.
//
// blob: and data: URLs pass through. Cloudinary URLs are never trusted.
// Otherwise the index is consulted (exact name, then last path segment);
// absolute URLs not in the index pass through unless they point at a legacy host.
func (r *Resolver) Resolve(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return r.placeholder
	}

	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "blob:") || strings.HasPrefix(lower, "data:") {
		return value
	}

	var host string
	absolute := strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "//")
	if absolute {
		if u, err := url.Parse(value); err == nil {
			host = strings.ToLower(u.Hostname())
		}
		if hostMatches(host, []string{cloudinaryHost}) {
			return r.placeholder
		}
		if hostMatches(host, r.trustedHosts) {
			return value
		}
	} else if strings.Contains(lower, cloudinaryHost) {
		return r.placeholder
	}

	if u, ok := r.index.Lookup(value); ok {
		return u
	}

	if absolute && host != "" && !hostMatches(host, r.legacyHosts) {
		return value
	}
	return r.placeholder
}

// ResolveAll resolves a batch, keeping the input keys
func (r *Resolver) ResolveAll(values []string) map[string]string {
	out := make(map[string]string, len(values))
	for _, v := range values {
		out[v] = r.Resolve(v)
	}
	return out
}

func hostMatches(host string, candidates []string) bool {
	if host == "" {
		return false
	}
	for _, c := range candidates {
		if host == c || strings.HasSuffix(host, "."+c) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
