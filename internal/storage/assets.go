package storage

import (
	"context"
	"strings"
)

// AssetResolver turns a catalog asset key such as "ingredients/milk.jpg"
// into a URL the browser can load.
type AssetResolver interface {
	URL(ctx context.Context, asset string) (string, error)
}

type staticResolver struct {
	baseURL string
}

// NewStaticResolver serves assets from a fixed base URL (CDN or the
// frontend's own /assets directory).
func NewStaticResolver(baseURL string) AssetResolver {
	return &staticResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *staticResolver) URL(_ context.Context, asset string) (string, error) {
	if asset == "" {
		return "", nil
	}
	return r.baseURL + "/" + strings.TrimLeft(asset, "/"), nil
}
