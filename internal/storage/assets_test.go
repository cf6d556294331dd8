package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver(t *testing.T) {
	r := NewStaticResolver("http://localhost:5173/assets/")

	got, err := r.URL(context.Background(), "/ingredients/milk.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173/assets/ingredients/milk.jpg", got)

	empty, err := r.URL(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestS3Storage_PresignsGet(t *testing.T) {
	s := NewS3Storage("ap-southeast-1", "winecraft-assets", "AKIDEXAMPLE", "secret", "catalog", 15*time.Minute)

	raw, err := s.URL(context.Background(), "wines/wine-collection.jpg")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.Host, "winecraft-assets.s3."), u.Host)
	assert.Equal(t, "/catalog/wines/wine-collection.jpg", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestS3Storage_EmptyAsset(t *testing.T) {
	s := NewS3Storage("ap-southeast-1", "winecraft-assets", "AKIDEXAMPLE", "secret", "", 0)

	got, err := s.URL(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "ingredients/apple.jpg", s.objectKey("ingredients/apple.jpg"))
}
