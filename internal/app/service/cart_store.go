package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ikkim/winecraft-backend/internal/app/model"
)

var (
	ErrInvalidCartItem   = errors.New("invalid cart item")
	ErrDuplicateCartLine = errors.New("cart line already exists")
	ErrQuantityTooLarge  = errors.New("quantity exceeds the order limit")
	ErrCartTotalTooLarge = errors.New("cart total is too large")
)

// CartStore is an ordered list of cart lines. Adds always append a new
// line; identity is the line ID, assigned here when missing. Every line
// quantity stays within MaxOrderQuantity and the totals always fit in an
// int. Not safe for concurrent use.
type CartStore struct {
	items []model.CartLineItem
	newID func() string
}

func NewCartStore() *CartStore {
	return &CartStore{newID: uuid.NewString}
}

func (c *CartStore) AddItem(item model.CartLineItem) (model.CartLineItem, error) {
	if item.Quantity < 1 || item.Price < 0 || item.Name == "" || !item.Kind.IsValid() {
		return model.CartLineItem{}, ErrInvalidCartItem
	}
	if item.Quantity > MaxOrderQuantity {
		return model.CartLineItem{}, ErrQuantityTooLarge
	}
	if item.ID == "" {
		item.ID = c.newID()
	} else if c.indexOf(item.ID) >= 0 {
		return model.CartLineItem{}, ErrDuplicateCartLine
	}
	next := append(c.Items(), item)
	if _, _, ok := model.SumLines(next); !ok {
		return model.CartLineItem{}, ErrCartTotalTooLarge
	}
	c.items = next
	return item, nil
}

// UpdateQuantity sets the quantity of a line in place. Anything below one
// removes the line. Returns ErrCartItemNotFound for unknown lines and leaves
// the cart untouched when the quantity is over the limit.
func (c *CartStore) UpdateQuantity(id string, quantity int) error {
	if quantity < 1 {
		if !c.RemoveItem(id) {
			return ErrCartItemNotFound
		}
		return nil
	}
	i := c.indexOf(id)
	if i < 0 {
		return ErrCartItemNotFound
	}
	if quantity > MaxOrderQuantity {
		return ErrQuantityTooLarge
	}
	next := c.Items()
	next[i].Quantity = quantity
	if _, _, ok := model.SumLines(next); !ok {
		return ErrCartTotalTooLarge
	}
	c.items = next
	return nil
}

// RemoveItem deletes the first line with the given ID. Missing IDs are a no-op.
func (c *CartStore) RemoveItem(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return true
}

func (c *CartStore) Clear() {
	c.items = nil
}

func (c *CartStore) Find(id string) (model.CartLineItem, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return model.CartLineItem{}, false
	}
	return c.items[i], true
}

func (c *CartStore) Items() []model.CartLineItem {
	return append([]model.CartLineItem{}, c.items...)
}

// Total and ItemCount cannot overflow; AddItem and UpdateQuantity refuse
// any change that would.
func (c *CartStore) Total() int {
	total, _, _ := model.SumLines(c.items)
	return total
}

func (c *CartStore) ItemCount() int {
	_, count, _ := model.SumLines(c.items)
	return count
}

func (c *CartStore) IsEmpty() bool {
	return len(c.items) == 0
}

// Snapshot copies the cart by value, including nested slices, so later
// mutations never leak into a handed-off state.
func (c *CartStore) Snapshot() model.CartState {
	items := make([]model.CartLineItem, len(c.items))
	for i, item := range c.items {
		item.Ingredients = append([]string(nil), item.Ingredients...)
		if item.CustomDetails != nil {
			details := *item.CustomDetails
			details.Fruits = append([]string{}, details.Fruits...)
			details.Vegetables = append([]string{}, details.Vegetables...)
			details.Others = append([]string{}, details.Others...)
			details.AddOns = append([]string{}, details.AddOns...)
			item.CustomDetails = &details
		}
		items[i] = item
	}
	return model.CartState{
		Items:     items,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

func (c *CartStore) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
