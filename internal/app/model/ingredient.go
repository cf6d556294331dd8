package model

type IngredientCategory string // configurator ingredient group

const (
	CategoryFlavor    IngredientCategory = "flavor"    // main flavor, single-select
	CategoryFruit     IngredientCategory = "fruit"     // multi-select
	CategoryVegetable IngredientCategory = "vegetable" // multi-select
	CategoryOther     IngredientCategory = "other"     // multi-select
	CategoryAddOn     IngredientCategory = "add_on"    // multi-select, capped
)

// MixCategories are the multi-select groups that take part in compatibility
// checks, in the order their keys are unioned.
var MixCategories = []IngredientCategory{
	CategoryFruit,
	CategoryVegetable,
	CategoryOther,
	CategoryAddOn,
}

func (c IngredientCategory) IsValid() bool {
	switch c {
	case CategoryFlavor, CategoryFruit, CategoryVegetable, CategoryOther, CategoryAddOn:
		return true
	}
	return false
}

// IsMix reports whether the category is one of the toggleable multi-select groups.
func (c IngredientCategory) IsMix() bool {
	for _, mix := range MixCategories {
		if c == mix {
			return true
		}
	}
	return false
}

type Ingredient struct {
	Key          string             `json:"id"`                 // catalog-wide unique key
	Name         string             `json:"name"`               // display name
	Category     IngredientCategory `json:"category"`           // ingredient group
	Asset        string             `json:"image"`              // asset key
	Description  string             `json:"description"`        // short blurb
	Taste        string             `json:"taste,omitempty"`    // flavor only
	Benefits     string             `json:"benefits,omitempty"` // flavor only
	Note         string             `json:"note,omitempty"`     // compatibility hint shown to the shopper
	Incompatible []string           `json:"incompatible"`       // keys this ingredient must not be mixed with
}

// Excludes reports whether key appears in this ingredient's declared
// incompatible set. The relation is directed.
func (i Ingredient) Excludes(key string) bool {
	for _, k := range i.Incompatible {
		if k == key {
			return true
		}
	}
	return false
}

type BottleOption struct {
	Key       string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`      // added to the configuration price
	ListPrice int    `json:"list_price"` // shelf price shown on the option card
}

// AccessoryOption is a necklace charm that can be attached to a bottle.
type AccessoryOption struct {
	Key         string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ListPrice   int    `json:"list_price"`
}
