package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingResolver struct{}

func (failingResolver) URL(context.Context, string) (string, error) {
	return "", errors.New("bucket unavailable")
}

func TestCatalogService_Ingredients(t *testing.T) {
	sf := setupStorefront(t)

	groups := sf.catalogSvc.Ingredients(context.Background())
	assert.Len(t, groups.Flavors, 3)
	assert.Len(t, groups.Fruits, 5)
	assert.Len(t, groups.Vegetables, 2)
	assert.Len(t, groups.Others, 3)
	assert.Len(t, groups.AddOns, 2)
	assert.Equal(t, model.MaxAddOns, groups.MaxAddOns)
	assert.Equal(t, "http://cdn.test/assets/ingredients/apple.jpg", groups.Fruits[0].Asset)

	again := sf.catalogSvc.Ingredients(context.Background())
	assert.Equal(t, groups.Fruits[0].Asset, again.Fruits[0].Asset, "resolving must not touch the catalog")
}

func TestCatalogService_AssetFallback(t *testing.T) {
	svc := NewCatalogService(setupCatalog(t), failingResolver{})

	groups := svc.Ingredients(context.Background())
	assert.Equal(t, "ingredients/apple.jpg", groups.Fruits[0].Asset)

	wine, err := svc.FindWine(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "wines/wine-collection.jpg", wine.Image)
}

func TestCatalogService_Options(t *testing.T) {
	sf := setupStorefront(t)

	opts := sf.catalogSvc.Options()
	assert.Len(t, opts.Bottles, 4)
	assert.Len(t, opts.Accessories, 4)
	assert.Equal(t, "1000ml", opts.DefaultBottle)
	assert.Equal(t, AlcoholRange{Min: 0, Max: 50, Default: 10}, opts.Alcohol)
	assert.Equal(t, []int{250, 1000, 2500}, opts.DonationTiers)

	opts.DonationTiers[0] = 1
	assert.Equal(t, 250, DonationTiers[0])
}

func TestCatalogService_Wines(t *testing.T) {
	sf := setupStorefront(t)
	ctx := context.Background()

	wines := sf.catalogSvc.Wines(ctx)
	require.Len(t, wines, 6)
	assert.Equal(t, "http://cdn.test/assets/wines/wine-collection.jpg", wines[0].Image)

	wine, err := sf.catalogSvc.FindWine(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "Harvest Moon", wine.Name)

	_, err = sf.catalogSvc.FindWine(ctx, 0)
	assert.ErrorIs(t, err, ErrWineNotFound)
}
