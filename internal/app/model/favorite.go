package model

// FavoriteItem is keyed by product reference; a favorites list never holds
// two items with the same ID.
type FavoriteItem struct {
	ID    string      `json:"id"` // product reference
	Name  string      `json:"name"`
	Price int         `json:"price"`
	Kind  ProductKind `json:"type"`
	Image string      `json:"image,omitempty"`
}
