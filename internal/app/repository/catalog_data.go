package repository

import "github.com/ikkim/winecraft-backend/internal/app/model"

// Built-in catalog. Incompatible lists are kept exactly as merchandising
// authored them, including keys that name no ingredient in the catalog
// (orange-peel, moringa, ...) and one-directional pairs.

func DefaultFlavors() []model.Ingredient {
	return []model.Ingredient{
		{
			Key:          "sweet",
			Name:         "Sweet & Fruity",
			Category:     model.CategoryFlavor,
			Asset:        "ingredients/grapes.jpg",
			Description:  "Rich, fruity notes with natural sweetness",
			Taste:        "Smooth, well-balanced with hints of berries and honey",
			Benefits:     "Rich in antioxidants, promotes heart health",
			Incompatible: []string{},
		},
		{
			Key:          "dry",
			Name:         "Dry & Crisp",
			Category:     model.CategoryFlavor,
			Asset:        "ingredients/lemon.jpg",
			Description:  "Clean, refreshing with citrus undertones",
			Taste:        "Sharp, acidic finish with mineral notes",
			Benefits:     "Aids digestion, low in sugar content",
			Incompatible: []string{},
		},
		{
			Key:          "herbal",
			Name:         "Herbal & Earthy",
			Category:     model.CategoryFlavor,
			Asset:        "ingredients/ginger.jpg",
			Description:  "Complex botanical blend with earthy notes",
			Taste:        "Robust flavor with herbal complexity",
			Benefits:     "Anti-inflammatory properties, digestive aid",
			Incompatible: []string{},
		},
	}
}

func DefaultFruits() []model.Ingredient {
	return []model.Ingredient{
		{
			Key:          "apple",
			Name:         "Apple",
			Category:     model.CategoryFruit,
			Asset:        "ingredients/apple.jpg",
			Description:  "Crisp and sweet",
			Note:         "Generally safe",
			Incompatible: []string{},
		},
		{
			Key:          "banana",
			Name:         "Banana",
			Category:     model.CategoryFruit,
			Asset:        "ingredients/banana.jpg",
			Description:  "Creamy tropical flavor",
			Note:         "Not applicable to: Milk, Orange Peel, Grapes, Lemon, Watermelon, Cucumber",
			Incompatible: []string{"milk", "orange-peel", "grapes", "lemon", "watermelon", "cucumber"},
		},
		{
			Key:          "grapes",
			Name:         "Grapes",
			Category:     model.CategoryFruit,
			Asset:        "ingredients/grapes.jpg",
			Description:  "Classic wine base",
			Note:         "Not applicable to: Milk, Banana",
			Incompatible: []string{"milk", "banana"},
		},
		{
			Key:          "lemon",
			Name:         "Lemon",
			Category:     model.CategoryFruit,
			Asset:        "ingredients/lemon.jpg",
			Description:  "Zesty citrus flavor",
			Note:         "Not applicable to: Milk, Coffee, Cucumber, Tomato",
			Incompatible: []string{"milk", "coffee", "cucumber", "tomato"},
		},
		{
			Key:          "mango-carabao",
			Name:         "Mango (Carabao)",
			Category:     model.CategoryFruit,
			Asset:        "ingredients/mango.jpg",
			Description:  "Sweet Filipino mango",
			Note:         "Not applicable to: Milk when unripe or sour",
			Incompatible: []string{"milk-when-unripe"},
		},
	}
}

func DefaultVegetables() []model.Ingredient {
	return []model.Ingredient{
		{
			Key:          "bitter-melon",
			Name:         "Bitter Melon (Ampalaya)",
			Category:     model.CategoryVegetable,
			Asset:        "ingredients/bitter-melon.jpg",
			Description:  "Unique bitter flavor",
			Note:         "Not applicable to: Milk, Chocolate, Coffee",
			Incompatible: []string{"milk", "chocolate", "coffee"},
		},
		{
			Key:          "carrots",
			Name:         "Carrots",
			Category:     model.CategoryVegetable,
			Asset:        "ingredients/apple.jpg",
			Description:  "Sweet and earthy",
			Note:         "Generally safe",
			Incompatible: []string{},
		},
	}
}

func DefaultOthers() []model.Ingredient {
	return []model.Ingredient{
		{
			Key:          "chocolate",
			Name:         "Chocolate",
			Category:     model.CategoryOther,
			Asset:        "ingredients/chocolate.jpg",
			Description:  "Rich cocoa flavor",
			Note:         "Not applicable to: Bitter Melon, Moringa, Sweet Potato Leaves, Ginger",
			Incompatible: []string{"bitter-melon", "moringa", "sweet-potato", "ginger"},
		},
		{
			Key:          "milk",
			Name:         "Milk",
			Category:     model.CategoryOther,
			Asset:        "ingredients/milk.jpg",
			Description:  "Creamy dairy base",
			Note:         "Not applicable to: Many fruits and vegetables",
			Incompatible: []string{"banana", "lemon", "orange-peel", "tangerine", "grapes", "tomato", "cucumber", "papaya", "bitter-melon"},
		},
		{
			Key:          "ginger",
			Name:         "Ginger",
			Category:     model.CategoryOther,
			Asset:        "ingredients/ginger.jpg",
			Description:  "Spicy warming flavor",
			Note:         "Not applicable to: Chocolate",
			Incompatible: []string{"chocolate"},
		},
	}
}

func DefaultAddOns() []model.Ingredient {
	return []model.Ingredient{
		{
			Key:          "jasmine-tea",
			Name:         "Jasmine Tea",
			Category:     model.CategoryAddOn,
			Asset:        "ingredients/grapes.jpg",
			Description:  "Floral aromatic tea",
			Note:         "Generally safe",
			Incompatible: []string{},
		},
		{
			Key:          "lemongrass",
			Name:         "Lemongrass (Tanglad)",
			Category:     model.CategoryAddOn,
			Asset:        "ingredients/ginger.jpg",
			Description:  "Citrusy herbal flavor",
			Note:         "Not applicable to: Milk",
			Incompatible: []string{"milk"},
		},
	}
}

// DefaultBottles is ordered cheapest tier first.
func DefaultBottles() []model.BottleOption {
	return []model.BottleOption{
		{Key: "1000ml", Name: "1000ml Glass Storage Jar", Price: 0, ListPrice: 50},
		{Key: "1500ml", Name: "1500ml Red Cherry Jar", Price: 300, ListPrice: 75},
		{Key: "3000ml", Name: "3000ml Large Jar", Price: 800, ListPrice: 150},
		{Key: "3800ml", Name: "3800ml Premium Jar", Price: 1200, ListPrice: 200},
	}
}

func DefaultAccessories() []model.AccessoryOption {
	return []model.AccessoryOption{
		{Key: "potion-sugar", Name: "Potion Sugar", Description: "Small color change with glittery effect", Price: 150, ListPrice: 100},
		{Key: "magical-honey", Name: "Magical Honey", Description: "Small color change effect", Price: 200, ListPrice: 120},
		{Key: "poisonous-flower", Name: "Deadly Poisonous Sweeten Flower", Description: "Small color change effect", Price: 250, ListPrice: 150},
		{Key: "criminal-wine", Name: "Criminal Wine 4% Alcohol", Description: "Classic small addition", Price: 300, ListPrice: 200},
	}
}

func DefaultWines() []model.ReadyMadeWine {
	const image = "wines/wine-collection.jpg"
	return []model.ReadyMadeWine{
		{ID: 1, Name: "Ruby Elegance", Description: "Rich red wine blend with notes of cherry and oak", Price: 1500, Alcohol: "12%", Rating: 4.8, Image: image, Badge: "Bestseller", Ingredients: []string{"Red Grapes", "Cherry", "Oak Infusion"}},
		{ID: 2, Name: "Golden Sunset", Description: "Crisp white wine with citrus and tropical notes", Price: 1200, Alcohol: "11%", Rating: 4.6, Image: image, Badge: "New", Ingredients: []string{"White Grapes", "Lemon", "Mango"}},
		{ID: 3, Name: "Midnight Blush", Description: "Sophisticated rosé with floral undertones", Price: 1350, Alcohol: "10%", Rating: 4.7, Image: image, Badge: "Limited", Ingredients: []string{"Rosé Grapes", "Rose Petals", "Strawberry"}},
		{ID: 4, Name: "Forest Mystique", Description: "Herbal wine blend with botanical complexity", Price: 1600, Alcohol: "13%", Rating: 4.9, Image: image, Badge: "Premium", Ingredients: []string{"Grapes", "Moringa", "Ginger"}},
		{ID: 5, Name: "Tropical Paradise", Description: "Exotic fruit wine with vibrant tropical flavors", Price: 1400, Alcohol: "9%", Rating: 4.5, Image: image, Badge: "Seasonal", Ingredients: []string{"Mango", "Papaya", "Coconut Water"}},
		{ID: 6, Name: "Harvest Moon", Description: "Traditional blend with earthy and robust character", Price: 1750, Alcohol: "14%", Rating: 4.8, Image: image, Badge: "Classic", Ingredients: []string{"Red Grapes", "Rice Wine", "Hibiscus"}},
	}
}
