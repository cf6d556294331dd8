package service

import (
	"errors"
	"strings"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/pkg/logger"
)

var (
	ErrInvalidCategory         = errors.New("category is not toggleable")
	ErrEmptyIngredientKey      = errors.New("ingredient key is required")
	ErrIngredientWrongCategory = errors.New("ingredient belongs to another category")
)

type NoticeCode string

const (
	NoticeIncompatible NoticeCode = "INCOMPATIBLE_INGREDIENT"
	NoticeAddOnLimit   NoticeCode = "ADD_ON_LIMIT_REACHED"
)

// Notice is the single advisory message shown above the configurator.
type Notice struct {
	Code    NoticeCode `json:"code"`
	Message string     `json:"message"`
}

type ToggleOutcome string

const (
	ToggleAdded    ToggleOutcome = "added"
	ToggleRemoved  ToggleOutcome = "removed"
	ToggleRejected ToggleOutcome = "rejected"
)

type ToggleResult struct {
	Outcome   ToggleOutcome `json:"outcome"`
	Notice    *Notice       `json:"notice,omitempty"`
	Conflicts []string      `json:"conflicts,omitempty"`
}

// SelectionManager owns one configurator selection and its notice slot.
// It is not safe for concurrent use; the owning session serializes access.
type SelectionManager struct {
	catalog   repository.CatalogRepository
	checker   CompatibilityChecker
	selection model.Selection
	notice    *Notice
}

func NewSelectionManager(catalog repository.CatalogRepository, checker CompatibilityChecker) *SelectionManager {
	return &SelectionManager{
		catalog:   catalog,
		checker:   checker,
		selection: model.NewSelection(),
	}
}

// Selection returns a copy of the current state.
func (m *SelectionManager) Selection() model.Selection {
	return m.selection.Clone()
}

func (m *SelectionManager) Notice() *Notice {
	if m.notice == nil {
		return nil
	}
	n := *m.notice
	return &n
}

// Toggle removes key from the category when present, otherwise tries to add
// it. Add-ons hit the capacity check before compatibility. A rejection leaves
// the selection untouched and fills the notice slot.
func (m *SelectionManager) Toggle(category model.IngredientCategory, key string) (ToggleResult, error) {
	if !category.IsMix() {
		return ToggleResult{}, ErrInvalidCategory
	}
	if key == "" {
		return ToggleResult{}, ErrEmptyIngredientKey
	}

	if m.selection.Contains(category, key) {
		m.selection.SetKeys(category, without(m.selection.Keys(category), key))
		m.notice = nil
		return ToggleResult{Outcome: ToggleRemoved}, nil
	}

	if ing, known := m.catalog.FindIngredient(key); known && ing.Category != category {
		return ToggleResult{}, ErrIngredientWrongCategory
	} else if !known {
		logger.Warn("Toggling ingredient missing from catalog", map[string]interface{}{
			"category": category,
			"key":      key,
		})
	}

	if category == model.CategoryAddOn && len(m.selection.AddOns) >= model.MaxAddOns {
		m.notice = &Notice{Code: NoticeAddOnLimit, Message: "You can choose up to 3 add-ons"}
		return ToggleResult{Outcome: ToggleRejected, Notice: m.Notice()}, nil
	}

	if conflicts := m.checker.Conflicts(key, m.selection.MixKeys()); len(conflicts) > 0 {
		m.notice = &Notice{Code: NoticeIncompatible, Message: "Can't mix with other selected ingredients"}
		return ToggleResult{Outcome: ToggleRejected, Notice: m.Notice(), Conflicts: conflicts}, nil
	}

	m.selection.SetKeys(category, append(m.selection.Keys(category), key))
	m.notice = nil
	return ToggleResult{Outcome: ToggleAdded}, nil
}

// SetFlavor replaces the main flavor. An empty key clears it.
func (m *SelectionManager) SetFlavor(key string) {
	if key != "" {
		if _, ok := m.catalog.FindIngredientIn(model.CategoryFlavor, key); !ok {
			logger.Warn("Unknown flavor selected", map[string]interface{}{"flavor": key})
		}
	}
	m.selection.Flavor = key
}

// SetBottle replaces the bottle size. An empty key restores the default.
func (m *SelectionManager) SetBottle(key string) {
	if key == "" {
		key = model.DefaultBottle
	}
	if _, ok := m.catalog.FindBottle(key); !ok {
		logger.Warn("Unknown bottle selected", map[string]interface{}{"bottle": key})
	}
	m.selection.Bottle = key
}

// SetAccessory picks a necklace. Picking the current one again, or an empty
// key, removes it.
func (m *SelectionManager) SetAccessory(key string) {
	if key == "" || key == m.selection.Accessory {
		m.selection.Accessory = ""
		return
	}
	if _, ok := m.catalog.FindAccessory(key); !ok {
		logger.Warn("Unknown accessory selected", map[string]interface{}{"accessory": key})
	}
	m.selection.Accessory = key
}

func (m *SelectionManager) SetAlcoholPercentage(pct int) {
	if pct < model.MinAlcoholPercentage {
		pct = model.MinAlcoholPercentage
	}
	if pct > model.MaxAlcoholPercentage {
		pct = model.MaxAlcoholPercentage
	}
	m.selection.AlcoholPercentage = pct
}

// SetQuantity clamps to [MinOrderQuantity, MaxOrderQuantity], like the
// alcohol slider clamps its range.
func (m *SelectionManager) SetQuantity(quantity int) {
	m.selection.Quantity = clampQuantity(quantity)
}

func (m *SelectionManager) SetName(name string) {
	m.selection.Name = strings.TrimSpace(name)
}

// Reset restores a fresh selection and clears the notice.
func (m *SelectionManager) Reset() {
	m.selection = model.NewSelection()
	m.notice = nil
}

// Blocked lists catalog ingredients, per mix group, that a toggle would
// currently reject.
func (m *SelectionManager) Blocked() map[model.IngredientCategory][]string {
	mix := m.selection.MixKeys()
	blocked := make(map[model.IngredientCategory][]string)
	for _, category := range model.MixCategories {
		atCapacity := category == model.CategoryAddOn && len(m.selection.AddOns) >= model.MaxAddOns
		for _, ing := range m.catalog.Ingredients(category) {
			if m.selection.Contains(category, ing.Key) {
				continue
			}
			if atCapacity || !m.checker.IsCompatible(ing.Key, mix) {
				blocked[category] = append(blocked[category], ing.Key)
			}
		}
	}
	return blocked
}

func without(keys []string, key string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
