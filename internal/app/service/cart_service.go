package service

import (
	"context"
	"errors"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/pkg/logger"
)

var (
	ErrWineNotFound     = errors.New("wine not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")
)

type CartService interface {
	GetCart(session *Session) model.CartState
	AddReadyMadeWine(ctx context.Context, session *Session, wineID int) (model.CartLineItem, model.CartState, error)
	UpdateQuantity(session *Session, lineID string, quantity int) (model.CartState, error)
	RemoveItem(session *Session, lineID string) (model.CartState, error)
	ClearCart(session *Session) model.CartState
	Checkout(ctx context.Context, session *Session) (*HandoffTicket, error)
}

type cartService struct {
	catalog  CatalogService
	checkout CheckoutService
}

func NewCartService(catalog CatalogService, checkout CheckoutService) CartService {
	return &cartService{
		catalog:  catalog,
		checkout: checkout,
	}
}

func (s *cartService) GetCart(session *Session) model.CartState {
	var state model.CartState
	_ = session.Do(func(st SessionState) error {
		state = st.Cart.Snapshot()
		return nil
	})
	return state
}

// AddReadyMadeWine appends a new line for the wine. Adding the same wine
// twice yields two lines.
func (s *cartService) AddReadyMadeWine(ctx context.Context, session *Session, wineID int) (model.CartLineItem, model.CartState, error) {
	logger.Info("Adding ready-made wine to cart", map[string]interface{}{
		"session_id": session.ID,
		"wine_id":    wineID,
	})

	wine, err := s.catalog.FindWine(ctx, wineID)
	if err != nil {
		logger.Warn("Cannot add to cart: wine not found", map[string]interface{}{
			"session_id": session.ID,
			"wine_id":    wineID,
		})
		return model.CartLineItem{}, model.CartState{}, err
	}

	var (
		added model.CartLineItem
		state model.CartState
	)
	err = session.Do(func(st SessionState) error {
		item, err := st.Cart.AddItem(model.CartLineItem{
			ProductRef:  wine.ProductRef(),
			Name:        wine.Name,
			Price:       wine.Price,
			Quantity:    1,
			Kind:        model.KindReadyMade,
			Image:       wine.Image,
			Alcohol:     wine.Alcohol,
			Ingredients: append([]string{}, wine.Ingredients...),
		})
		if err != nil {
			return err
		}
		added = item
		state = st.Cart.Snapshot()
		return nil
	})
	if err != nil {
		logger.Error("Failed to add wine to cart", err, map[string]interface{}{
			"session_id": session.ID,
			"wine_id":    wineID,
		})
		return model.CartLineItem{}, model.CartState{}, err
	}

	logger.Info("Wine added to cart", map[string]interface{}{
		"session_id": session.ID,
		"line_id":    added.ID,
		"item_count": state.ItemCount,
	})
	return added, state, nil
}

func (s *cartService) UpdateQuantity(session *Session, lineID string, quantity int) (model.CartState, error) {
	var state model.CartState
	err := session.Do(func(st SessionState) error {
		if err := st.Cart.UpdateQuantity(lineID, quantity); err != nil {
			return err
		}
		state = st.Cart.Snapshot()
		return nil
	})
	if err != nil {
		logger.Warn("Cart quantity update refused", map[string]interface{}{
			"session_id": session.ID,
			"line_id":    lineID,
			"quantity":   quantity,
			"error":      err.Error(),
		})
		return model.CartState{}, err
	}

	logger.Info("Cart quantity updated", map[string]interface{}{
		"session_id": session.ID,
		"line_id":    lineID,
		"quantity":   quantity,
	})
	return state, nil
}

func (s *cartService) RemoveItem(session *Session, lineID string) (model.CartState, error) {
	var state model.CartState
	err := session.Do(func(st SessionState) error {
		if !st.Cart.RemoveItem(lineID) {
			return ErrCartItemNotFound
		}
		state = st.Cart.Snapshot()
		return nil
	})
	if err != nil {
		return model.CartState{}, err
	}

	logger.Info("Cart line removed", map[string]interface{}{
		"session_id": session.ID,
		"line_id":    lineID,
	})
	return state, nil
}

func (s *cartService) ClearCart(session *Session) model.CartState {
	var state model.CartState
	_ = session.Do(func(st SessionState) error {
		st.Cart.Clear()
		state = st.Cart.Snapshot()
		return nil
	})
	logger.Info("Cart cleared", map[string]interface{}{
		"session_id": session.ID,
	})
	return state
}

// Checkout hands a by-value snapshot of the cart to checkout. The cart
// itself is left as is.
func (s *cartService) Checkout(ctx context.Context, session *Session) (*HandoffTicket, error) {
	var snapshot model.CartState
	err := session.Do(func(st SessionState) error {
		if st.Cart.IsEmpty() {
			return ErrEmptyCart
		}
		snapshot = st.Cart.Snapshot()
		return nil
	})
	if err != nil {
		logger.Warn("Cart checkout refused", map[string]interface{}{
			"session_id": session.ID,
			"reason":     err.Error(),
		})
		return nil, err
	}

	return s.checkout.Handoff(ctx, model.CheckoutPayload{Cart: &snapshot})
}
