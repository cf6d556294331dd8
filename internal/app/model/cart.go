package model

import "math"

type ProductKind string // what a cart line or favorite points at

const (
	KindReadyMade ProductKind = "ready-made"
	KindCustom    ProductKind = "custom"
)

func (k ProductKind) IsValid() bool {
	return k == KindReadyMade || k == KindCustom
}

// CustomConfiguration is the frozen configurator state attached to a custom
// cart line.
type CustomConfiguration struct {
	MainFlavor        string   `json:"main_flavor"`
	Fruits            []string `json:"fruits"`
	Vegetables        []string `json:"vegetables"`
	Others            []string `json:"others"`
	AddOns            []string `json:"add_ons"`
	AlcoholPercentage int      `json:"alcohol_percentage"`
	BottleSize        string   `json:"bottle_size"`
	NecklaceAddOn     string   `json:"necklace_add_on,omitempty"`
}

type CartLineItem struct {
	ID            string               `json:"id"`          // line identity, unique within a cart
	ProductRef    string               `json:"product_ref"` // ready-made-<id> or custom-<millis>
	Name          string               `json:"name"`
	Price         int                  `json:"price"` // unit price snapshot
	Quantity      int                  `json:"quantity"`
	Kind          ProductKind          `json:"type"`
	Image         string               `json:"image,omitempty"`
	Alcohol       string               `json:"alcohol,omitempty"`
	Ingredients   []string             `json:"ingredients,omitempty"`
	CustomDetails *CustomConfiguration `json:"custom_details,omitempty"`
}

// Subtotal is price times quantity; ok is false when it does not fit in an
// int or either factor is negative.
func (i CartLineItem) Subtotal() (int, bool) {
	return MulAmount(i.Price, i.Quantity)
}

// SumLines totals price times quantity and the quantities of items. ok is
// false as soon as any product or running sum cannot be represented.
func SumLines(items []CartLineItem) (total, count int, ok bool) {
	for _, item := range items {
		var sub int
		if sub, ok = item.Subtotal(); !ok {
			return 0, 0, false
		}
		if total, ok = AddAmount(total, sub); !ok {
			return 0, 0, false
		}
		if count, ok = AddAmount(count, item.Quantity); !ok {
			return 0, 0, false
		}
	}
	return total, count, true
}

// MulAmount multiplies two non-negative amounts.
func MulAmount(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

// AddAmount adds two non-negative amounts.
func AddAmount(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// CartState is a by-value snapshot of a cart. Total and ItemCount are derived
// from Items when the snapshot is taken.
type CartState struct {
	Items     []CartLineItem `json:"items"`
	Total     int            `json:"total"`
	ItemCount int            `json:"item_count"`
}
