package service

import (
	"context"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/internal/storage"
	"github.com/ikkim/winecraft-backend/pkg/logger"
)

// IngredientGroups is the configurator menu, one list per category.
type IngredientGroups struct {
	Flavors    []model.Ingredient `json:"flavors"`
	Fruits     []model.Ingredient `json:"fruits"`
	Vegetables []model.Ingredient `json:"vegetables"`
	Others     []model.Ingredient `json:"others"`
	AddOns     []model.Ingredient `json:"add_ons"`
	MaxAddOns  int                `json:"max_add_ons"`
}

type CatalogOptionsView struct {
	Bottles       []model.BottleOption    `json:"bottles"`
	Accessories   []model.AccessoryOption `json:"accessories"`
	DefaultBottle string                  `json:"default_bottle"`
	Alcohol       AlcoholRange            `json:"alcohol"`
	DonationTiers []int                   `json:"donation_tiers"`
}

type AlcoholRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type CatalogService interface {
	Ingredients(ctx context.Context) IngredientGroups
	Options() CatalogOptionsView
	Wines(ctx context.Context) []model.ReadyMadeWine
	FindWine(ctx context.Context, id int) (model.ReadyMadeWine, error)
}

type catalogService struct {
	catalog repository.CatalogRepository
	assets  storage.AssetResolver
}

func NewCatalogService(catalog repository.CatalogRepository, assets storage.AssetResolver) CatalogService {
	return &catalogService{catalog: catalog, assets: assets}
}

func (s *catalogService) Ingredients(ctx context.Context) IngredientGroups {
	return IngredientGroups{
		Flavors:    s.withURLs(ctx, s.catalog.Flavors()),
		Fruits:     s.withURLs(ctx, s.catalog.Ingredients(model.CategoryFruit)),
		Vegetables: s.withURLs(ctx, s.catalog.Ingredients(model.CategoryVegetable)),
		Others:     s.withURLs(ctx, s.catalog.Ingredients(model.CategoryOther)),
		AddOns:     s.withURLs(ctx, s.catalog.Ingredients(model.CategoryAddOn)),
		MaxAddOns:  model.MaxAddOns,
	}
}

func (s *catalogService) Options() CatalogOptionsView {
	return CatalogOptionsView{
		Bottles:       s.catalog.Bottles(),
		Accessories:   s.catalog.Accessories(),
		DefaultBottle: model.DefaultBottle,
		Alcohol: AlcoholRange{
			Min:     model.MinAlcoholPercentage,
			Max:     model.MaxAlcoholPercentage,
			Default: model.DefaultAlcoholPercentage,
		},
		DonationTiers: append([]int{}, DonationTiers...),
	}
}

func (s *catalogService) Wines(ctx context.Context) []model.ReadyMadeWine {
	wines := s.catalog.Wines()
	for i := range wines {
		wines[i].Image = s.resolve(ctx, wines[i].Image)
	}
	return wines
}

func (s *catalogService) FindWine(ctx context.Context, id int) (model.ReadyMadeWine, error) {
	wine, ok := s.catalog.FindWine(id)
	if !ok {
		return model.ReadyMadeWine{}, ErrWineNotFound
	}
	wine.Image = s.resolve(ctx, wine.Image)
	return wine, nil
}

func (s *catalogService) withURLs(ctx context.Context, items []model.Ingredient) []model.Ingredient {
	for i := range items {
		items[i].Asset = s.resolve(ctx, items[i].Asset)
	}
	return items
}

// resolve falls back to the raw key when the asset backend fails so the
// menu still renders.
func (s *catalogService) resolve(ctx context.Context, asset string) string {
	url, err := s.assets.URL(ctx, asset)
	if err != nil {
		logger.Warn("Failed to resolve asset URL", map[string]interface{}{
			"asset": asset,
			"error": err.Error(),
		})
		return asset
	}
	return url
}
