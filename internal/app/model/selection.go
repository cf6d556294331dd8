package model

const (
	MaxAddOns                = 3
	MinAlcoholPercentage     = 0
	MaxAlcoholPercentage     = 50
	DefaultAlcoholPercentage = 10
	DefaultBottle            = "1000ml"
	DefaultCustomWineName    = "Custom Wine"
)

// Selection is the configurator state of one session. Multi-select groups
// keep insertion order. Empty Flavor or Accessory means "not chosen".
type Selection struct {
	Name              string   `json:"name"`
	Flavor            string   `json:"flavor,omitempty"`
	Fruits            []string `json:"fruits"`
	Vegetables        []string `json:"vegetables"`
	Others            []string `json:"others"`
	AddOns            []string `json:"add_ons"`
	AlcoholPercentage int      `json:"alcohol_percentage"`
	Quantity          int      `json:"quantity"`
	Bottle            string   `json:"bottle"`
	Accessory         string   `json:"accessory,omitempty"`
}

func NewSelection() Selection {
	return Selection{
		Fruits:            []string{},
		Vegetables:        []string{},
		Others:            []string{},
		AddOns:            []string{},
		AlcoholPercentage: DefaultAlcoholPercentage,
		Quantity:          1,
		Bottle:            DefaultBottle,
	}
}

// Clone returns a deep copy so callers never share slices with the owner.
func (s Selection) Clone() Selection {
	c := s
	c.Fruits = append([]string{}, s.Fruits...)
	c.Vegetables = append([]string{}, s.Vegetables...)
	c.Others = append([]string{}, s.Others...)
	c.AddOns = append([]string{}, s.AddOns...)
	return c
}

// Keys returns the keys chosen in a multi-select group.
func (s Selection) Keys(category IngredientCategory) []string {
	switch category {
	case CategoryFruit:
		return s.Fruits
	case CategoryVegetable:
		return s.Vegetables
	case CategoryOther:
		return s.Others
	case CategoryAddOn:
		return s.AddOns
	}
	return nil
}

// SetKeys replaces the keys of a multi-select group.
func (s *Selection) SetKeys(category IngredientCategory, keys []string) {
	switch category {
	case CategoryFruit:
		s.Fruits = keys
	case CategoryVegetable:
		s.Vegetables = keys
	case CategoryOther:
		s.Others = keys
	case CategoryAddOn:
		s.AddOns = keys
	}
}

func (s Selection) Contains(category IngredientCategory, key string) bool {
	for _, k := range s.Keys(category) {
		if k == key {
			return true
		}
	}
	return false
}

// MixKeys is the union of fruits, vegetables, others and add-ons. Flavor never
// participates in compatibility.
func (s Selection) MixKeys() []string {
	keys := make([]string, 0, len(s.Fruits)+len(s.Vegetables)+len(s.Others)+len(s.AddOns))
	for _, category := range MixCategories {
		keys = append(keys, s.Keys(category)...)
	}
	return keys
}

// DisplayName falls back to the default label when the shopper left the
// name blank.
func (s Selection) DisplayName() string {
	if s.Name == "" {
		return DefaultCustomWineName
	}
	return s.Name
}
