package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/pkg/logger"
)

var (
	ErrDuplicateIngredientKey = errors.New("duplicate ingredient key")
	ErrInvalidWineCatalog     = errors.New("invalid ready-made wine catalog")
)

type CatalogRepository interface {
	Flavors() []model.Ingredient
	Ingredients(category model.IngredientCategory) []model.Ingredient
	FindIngredient(key string) (model.Ingredient, bool)
	FindIngredientIn(category model.IngredientCategory, key string) (model.Ingredient, bool)
	Bottles() []model.BottleOption
	FindBottle(key string) (model.BottleOption, bool)
	Accessories() []model.AccessoryOption
	FindAccessory(key string) (model.AccessoryOption, bool)
	Wines() []model.ReadyMadeWine
	FindWine(id int) (model.ReadyMadeWine, bool)
}

type CatalogOptions struct {
	// Symmetric mirrors every declared pair so an exclusion applies in both
	// directions. Off keeps the table as authored.
	Symmetric bool
	// Wines replaces the built-in ready-made catalog when non-empty.
	Wines []model.ReadyMadeWine
}

type catalogRepository struct {
	byCategory  map[model.IngredientCategory][]model.Ingredient
	byKey       map[string]model.Ingredient
	bottles     []model.BottleOption
	accessories []model.AccessoryOption
	wines       []model.ReadyMadeWine
}

// NewCatalogRepository builds the read-only catalog. Ingredient keys must be
// unique across every category.
func NewCatalogRepository(opts CatalogOptions) (CatalogRepository, error) {
	r, err := buildCatalog(map[model.IngredientCategory][]model.Ingredient{
		model.CategoryFlavor:    DefaultFlavors(),
		model.CategoryFruit:     DefaultFruits(),
		model.CategoryVegetable: DefaultVegetables(),
		model.CategoryOther:     DefaultOthers(),
		model.CategoryAddOn:     DefaultAddOns(),
	}, opts)
	if err != nil {
		logger.Error("Failed to build catalog", err)
		return nil, err
	}
	return r, nil
}

func buildCatalog(groups map[model.IngredientCategory][]model.Ingredient, opts CatalogOptions) (*catalogRepository, error) {
	r := &catalogRepository{
		byCategory:  groups,
		byKey:       make(map[string]model.Ingredient),
		bottles:     DefaultBottles(),
		accessories: DefaultAccessories(),
		wines:       DefaultWines(),
	}
	if len(opts.Wines) > 0 {
		r.wines = append([]model.ReadyMadeWine{}, opts.Wines...)
	}

	for _, category := range append([]model.IngredientCategory{model.CategoryFlavor}, model.MixCategories...) {
		for _, ing := range r.byCategory[category] {
			if existing, ok := r.byKey[ing.Key]; ok {
				return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateIngredientKey, ing.Key, existing.Category, category)
			}
			r.byKey[ing.Key] = ing
		}
	}

	if opts.Symmetric {
		r.symmetrize()
	}

	logger.Debug("Catalog loaded", map[string]interface{}{
		"ingredients": len(r.byKey),
		"bottles":     len(r.bottles),
		"accessories": len(r.accessories),
		"wines":       len(r.wines),
		"symmetric":   opts.Symmetric,
	})
	return r, nil
}

// symmetrize adds a -> b for every declared b -> a between known ingredients.
func (r *catalogRepository) symmetrize() {
	added := 0
	for _, ing := range r.byKey {
		for _, other := range ing.Incompatible {
			target, ok := r.byKey[other]
			if !ok || target.Excludes(ing.Key) {
				continue
			}
			target.Incompatible = append(append([]string{}, target.Incompatible...), ing.Key)
			r.byKey[other] = target
			added++
		}
	}
	for category, list := range r.byCategory {
		for i := range list {
			list[i] = r.byKey[list[i].Key]
		}
		r.byCategory[category] = list
	}
	logger.Debug("Catalog incompatibility table symmetrized", map[string]interface{}{
		"pairs_added": added,
	})
}

func (r *catalogRepository) Flavors() []model.Ingredient {
	return r.Ingredients(model.CategoryFlavor)
}

func (r *catalogRepository) Ingredients(category model.IngredientCategory) []model.Ingredient {
	return append([]model.Ingredient{}, r.byCategory[category]...)
}

func (r *catalogRepository) FindIngredient(key string) (model.Ingredient, bool) {
	ing, ok := r.byKey[key]
	return ing, ok
}

func (r *catalogRepository) FindIngredientIn(category model.IngredientCategory, key string) (model.Ingredient, bool) {
	ing, ok := r.byKey[key]
	if !ok || ing.Category != category {
		return model.Ingredient{}, false
	}
	return ing, true
}

func (r *catalogRepository) Bottles() []model.BottleOption {
	return append([]model.BottleOption{}, r.bottles...)
}

func (r *catalogRepository) FindBottle(key string) (model.BottleOption, bool) {
	for _, b := range r.bottles {
		if b.Key == key {
			return b, true
		}
	}
	return model.BottleOption{}, false
}

func (r *catalogRepository) Accessories() []model.AccessoryOption {
	return append([]model.AccessoryOption{}, r.accessories...)
}

func (r *catalogRepository) FindAccessory(key string) (model.AccessoryOption, bool) {
	for _, a := range r.accessories {
		if a.Key == key {
			return a, true
		}
	}
	return model.AccessoryOption{}, false
}

func (r *catalogRepository) Wines() []model.ReadyMadeWine {
	return append([]model.ReadyMadeWine{}, r.wines...)
}

func (r *catalogRepository) FindWine(id int) (model.ReadyMadeWine, bool) {
	for _, w := range r.wines {
		if w.ID == id {
			return w, true
		}
	}
	return model.ReadyMadeWine{}, false
}

// LoadWinesFile reads a ready-made catalog written by the seed tool.
func LoadWinesFile(path string) ([]model.ReadyMadeWine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wines file: %w", err)
	}

	var wines []model.ReadyMadeWine
	if err := json.Unmarshal(data, &wines); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWineCatalog, err)
	}

	seen := make(map[int]struct{}, len(wines))
	for _, w := range wines {
		if w.ID <= 0 || w.Name == "" || w.Price < 0 {
			return nil, fmt.Errorf("%w: wine %d is incomplete", ErrInvalidWineCatalog, w.ID)
		}
		if _, dup := seen[w.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate wine id %d", ErrInvalidWineCatalog, w.ID)
		}
		seen[w.ID] = struct{}{}
	}

	logger.Info("Ready-made wines loaded from file", map[string]interface{}{
		"path":  path,
		"count": len(wines),
	})
	return wines, nil
}
