// Package photos turns stored photo keys into absolute URLs the client can
// download without credentials.
package photos

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Resolver maps a photo key to a URL. An empty key yields an empty URL.
type Resolver interface {
	URL(ctx context.Context, key string) (string, error)
}

// StaticResolver joins keys onto a fixed public base URL. Keys that already
// are absolute URLs are returned unchanged.
type StaticResolver struct {
	baseURL string
}

// NewStaticResolver validates baseURL, which must be absolute.
func NewStaticResolver(baseURL string) (*StaticResolver, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid photo base URL %q: %w", baseURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("photo base URL %q must be absolute", baseURL)
	}
	return &StaticResolver{baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (r *StaticResolver) URL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if u, err := url.Parse(key); err == nil && u.IsAbs() {
		return key, nil
	}

	segments := strings.Split(strings.TrimLeft(key, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return r.baseURL + "/" + strings.Join(segments, "/"), nil
}
