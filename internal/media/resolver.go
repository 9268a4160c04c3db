// Package media resolves media references delivered by the API into
// absolute URLs. Avatars and attachments may arrive as paths relative to the
// platform media host.
package media

import "strings"

type Resolver struct {
	baseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve prefixes relative references with the media base URL. Absolute
// URLs and empty references pass through untouched; the content of the
// reference is never interpreted beyond that.
func (r *Resolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return r.baseURL + ref
}
