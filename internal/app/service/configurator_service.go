package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/pkg/logger"
)

var ErrFlavorRequired = errors.New("main flavor is required")

// ConfiguratorView is everything the configurator screen renders. All
// derived values are computed from the selection at read time.
type ConfiguratorView struct {
	Selection  model.Selection                       `json:"selection"`
	Quote      PriceQuote                            `json:"quote"`
	TotalPrice int                                   `json:"total_price"`
	Mood       model.Mood                            `json:"mood"`
	MoodLabel  string                                `json:"mood_label"`
	Notice     *Notice                               `json:"notice,omitempty"`
	Blocked    map[model.IngredientCategory][]string `json:"blocked"`
	CanCommit  bool                                  `json:"can_commit"`
}

type ConfiguratorService interface {
	View(session *Session) ConfiguratorView
	Toggle(session *Session, category model.IngredientCategory, key string) (ToggleResult, ConfiguratorView, error)
	SetFlavor(session *Session, key string) ConfiguratorView
	SetBottle(session *Session, key string) ConfiguratorView
	SetAccessory(session *Session, key string) ConfiguratorView
	SetAlcoholPercentage(session *Session, pct int) ConfiguratorView
	SetQuantity(session *Session, quantity int) ConfiguratorView
	SetName(session *Session, name string) ConfiguratorView
	Reset(session *Session) ConfiguratorView
	// AddToCart commits the configuration as a custom cart line.
	AddToCart(session *Session) (model.CartLineItem, model.CartState, error)
	// ProceedToCheckout commits the configuration as a standalone order.
	ProceedToCheckout(ctx context.Context, session *Session) (*HandoffTicket, error)
}

type configuratorService struct {
	catalog  repository.CatalogRepository
	pricing  PricingEngine
	checkout CheckoutService
	now      func() int64
}

func NewConfiguratorService(catalog repository.CatalogRepository, pricing PricingEngine, checkout CheckoutService) ConfiguratorService {
	return &configuratorService{
		catalog:  catalog,
		pricing:  pricing,
		checkout: checkout,
		now:      nowMillis,
	}
}

func (s *configuratorService) View(session *Session) ConfiguratorView {
	var view ConfiguratorView
	_ = session.Do(func(st SessionState) error {
		view = s.view(st.Selection)
		return nil
	})
	return view
}

func (s *configuratorService) Toggle(session *Session, category model.IngredientCategory, key string) (ToggleResult, ConfiguratorView, error) {
	var (
		result ToggleResult
		view   ConfiguratorView
	)
	err := session.Do(func(st SessionState) error {
		var err error
		result, err = st.Selection.Toggle(category, key)
		if err != nil {
			return err
		}
		view = s.view(st.Selection)
		return nil
	})
	if err != nil {
		logger.Warn("Ingredient toggle refused", map[string]interface{}{
			"session_id": session.ID,
			"category":   category,
			"key":        key,
			"error":      err.Error(),
		})
		return ToggleResult{}, ConfiguratorView{}, err
	}

	logger.Debug("Ingredient toggled", map[string]interface{}{
		"session_id": session.ID,
		"category":   category,
		"key":        key,
		"outcome":    result.Outcome,
		"conflicts":  result.Conflicts,
	})
	return result, view, nil
}

func (s *configuratorService) SetFlavor(session *Session, key string) ConfiguratorView {
	return s.mutate(session, func(m *SelectionManager) { m.SetFlavor(key) })
}

func (s *configuratorService) SetBottle(session *Session, key string) ConfiguratorView {
	return s.mutate(session, func(m *SelectionManager) { m.SetBottle(key) })
}

func (s *configuratorService) SetAccessory(session *Session, key string) ConfiguratorView {
	return s.mutate(session, func(m *SelectionManager) { m.SetAccessory(key) })
}

func (s *configuratorService) SetAlcoholPercentage(session *Session, pct int) ConfiguratorView {
	return s.mutate(session, func(m *SelectionManager) { m.SetAlcoholPercentage(pct) })
}

func (s *configuratorService) SetQuantity(session *Session, quantity int) ConfiguratorView {
	return s.mutate(session, func(m *SelectionManager) { m.SetQuantity(quantity) })
}

func (s *configuratorService) SetName(session *Session, name string) ConfiguratorView {
	return s.mutate(session, func(m *SelectionManager) { m.SetName(name) })
}

func (s *configuratorService) Reset(session *Session) ConfiguratorView {
	return s.mutate(session, func(m *SelectionManager) { m.Reset() })
}

func (s *configuratorService) AddToCart(session *Session) (model.CartLineItem, model.CartState, error) {
	var (
		added model.CartLineItem
		state model.CartState
	)
	err := session.Do(func(st SessionState) error {
		sel := st.Selection.Selection()
		if sel.Flavor == "" {
			return ErrFlavorRequired
		}

		item, err := st.Cart.AddItem(s.customLine(sel))
		if err != nil {
			return err
		}
		added = item
		state = st.Cart.Snapshot()
		return nil
	})
	if err != nil {
		logger.Warn("Custom wine not added to cart", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return model.CartLineItem{}, model.CartState{}, err
	}

	logger.Info("Custom wine added to cart", map[string]interface{}{
		"session_id":  session.ID,
		"line_id":     added.ID,
		"product_ref": added.ProductRef,
		"unit_price":  added.Price,
		"quantity":    added.Quantity,
	})
	return added, state, nil
}

func (s *configuratorService) ProceedToCheckout(ctx context.Context, session *Session) (*HandoffTicket, error) {
	var order model.OrderDescriptor
	err := session.Do(func(st SessionState) error {
		sel := st.Selection.Selection()
		if sel.Flavor == "" {
			return ErrFlavorRequired
		}
		order = model.OrderDescriptor{
			Name:              sel.DisplayName(),
			Flavor:            sel.Flavor,
			Fruits:            sel.Fruits,
			Vegetables:        sel.Vegetables,
			Others:            sel.Others,
			AddOns:            sel.AddOns,
			AlcoholPercentage: sel.AlcoholPercentage,
			Quantity:          sel.Quantity,
			Bottle:            sel.Bottle,
			Accessory:         sel.Accessory,
			TotalPrice:        s.pricing.ComputeTotal(sel),
		}
		return nil
	})
	if err != nil {
		logger.Warn("Custom wine checkout refused", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	return s.checkout.Handoff(ctx, model.CheckoutPayload{Custom: &order})
}

func (s *configuratorService) mutate(session *Session, fn func(m *SelectionManager)) ConfiguratorView {
	var view ConfiguratorView
	_ = session.Do(func(st SessionState) error {
		fn(st.Selection)
		view = s.view(st.Selection)
		return nil
	})
	return view
}

func (s *configuratorService) view(m *SelectionManager) ConfiguratorView {
	sel := m.Selection()
	quote := s.pricing.Quote(sel)
	mood := ClassifyMood(sel.AlcoholPercentage)
	return ConfiguratorView{
		Selection:  sel,
		Quote:      quote,
		TotalPrice: quote.Total,
		Mood:       mood,
		MoodLabel:  mood.Label(),
		Notice:     m.Notice(),
		Blocked:    m.Blocked(),
		CanCommit:  sel.Flavor != "",
	}
}

// customLine freezes a selection into a cart line priced per bottle.
func (s *configuratorService) customLine(sel model.Selection) model.CartLineItem {
	return model.CartLineItem{
		ProductRef:  fmt.Sprintf("custom-%d", s.now()),
		Name:        sel.DisplayName(),
		Price:       s.pricing.UnitPrice(sel),
		Quantity:    sel.Quantity,
		Kind:        model.KindCustom,
		Alcohol:     fmt.Sprintf("%d%%", sel.AlcoholPercentage),
		Ingredients: s.ingredientNames(sel),
		CustomDetails: &model.CustomConfiguration{
			MainFlavor:        sel.Flavor,
			Fruits:            sel.Fruits,
			Vegetables:        sel.Vegetables,
			Others:            sel.Others,
			AddOns:            sel.AddOns,
			AlcoholPercentage: sel.AlcoholPercentage,
			BottleSize:        sel.Bottle,
			NecklaceAddOn:     sel.Accessory,
		},
	}
}

// ingredientNames lists display names in flavor, fruit, vegetable, other,
// add-on order. Unknown keys are shown as is.
func (s *configuratorService) ingredientNames(sel model.Selection) []string {
	names := make([]string, 0, 1+len(sel.MixKeys()))
	if ing, ok := s.catalog.FindIngredient(sel.Flavor); ok {
		names = append(names, ing.Name)
	} else {
		names = append(names, sel.Flavor)
	}
	for _, key := range sel.MixKeys() {
		if ing, ok := s.catalog.FindIngredient(key); ok {
			names = append(names, ing.Name)
			continue
		}
		names = append(names, key)
	}
	return names
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
