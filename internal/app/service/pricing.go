package service

import (
	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
)

const (
	BasePrice         = 1000
	FruitPrice        = 150
	VegetablePrice    = 100
	OtherPrice        = 200
	AddOnPrice        = 100
	MinOrderQuantity  = 1
	MaxOrderQuantity  = 999 // bottles per configuration or cart line
	priceLineBase     = "base"
	priceLineBottle   = "bottle"
	priceLineNecklace = "accessory"
)

// perIngredient is the surcharge for one ingredient of each mix group.
var perIngredient = map[model.IngredientCategory]int{
	model.CategoryFruit:     FruitPrice,
	model.CategoryVegetable: VegetablePrice,
	model.CategoryOther:     OtherPrice,
	model.CategoryAddOn:     AddOnPrice,
}

type PriceLine struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Amount int    `json:"amount"` // contribution to one bottle
}

// PriceQuote itemizes a configuration. UnitPrice is the sum of Lines and
// Total is UnitPrice times Quantity.
type PriceQuote struct {
	Lines     []PriceLine `json:"lines"`
	UnitPrice int         `json:"unit_price"`
	Quantity  int         `json:"quantity"`
	Total     int         `json:"total"`
}

type PricingEngine interface {
	ComputeTotal(selection model.Selection) int
	UnitPrice(selection model.Selection) int
	Quote(selection model.Selection) PriceQuote
}

type pricingEngine struct {
	catalog repository.CatalogRepository
}

func NewPricingEngine(catalog repository.CatalogRepository) PricingEngine {
	return &pricingEngine{catalog: catalog}
}

func (p *pricingEngine) ComputeTotal(selection model.Selection) int {
	return p.Quote(selection).Total
}

func (p *pricingEngine) UnitPrice(selection model.Selection) int {
	return p.Quote(selection).UnitPrice
}

// Quote prices a selection. Unknown bottle or accessory keys add nothing.
func (p *pricingEngine) Quote(selection model.Selection) PriceQuote {
	lines := []PriceLine{{Code: priceLineBase, Label: "Base wine", Count: 1, Amount: BasePrice}}

	for _, category := range model.MixCategories {
		n := len(selection.Keys(category))
		if n == 0 {
			continue
		}
		lines = append(lines, PriceLine{
			Code:   string(category),
			Label:  categoryLabel(category),
			Count:  n,
			Amount: n * perIngredient[category],
		})
	}

	if bottle, ok := p.catalog.FindBottle(selection.Bottle); ok && bottle.Price > 0 {
		lines = append(lines, PriceLine{Code: priceLineBottle, Label: bottle.Name, Count: 1, Amount: bottle.Price})
	}
	if selection.Accessory != "" {
		if accessory, ok := p.catalog.FindAccessory(selection.Accessory); ok {
			lines = append(lines, PriceLine{Code: priceLineNecklace, Label: accessory.Name, Count: 1, Amount: accessory.Price})
		}
	}

	unit := 0
	for _, l := range lines {
		unit += l.Amount
	}

	quantity := clampQuantity(selection.Quantity)

	return PriceQuote{
		Lines:     lines,
		UnitPrice: unit,
		Quantity:  quantity,
		Total:     unit * quantity,
	}
}

func categoryLabel(category model.IngredientCategory) string {
	switch category {
	case model.CategoryFruit:
		return "Fruits"
	case model.CategoryVegetable:
		return "Vegetables"
	case model.CategoryOther:
		return "Other ingredients"
	case model.CategoryAddOn:
		return "Add-ons"
	}
	return string(category)
}

// clampQuantity bounds a quantity to [MinOrderQuantity, MaxOrderQuantity].
func clampQuantity(quantity int) int {
	switch {
	case quantity < MinOrderQuantity:
		return MinOrderQuantity
	case quantity > MaxOrderQuantity:
		return MaxOrderQuantity
	}
	return quantity
}
