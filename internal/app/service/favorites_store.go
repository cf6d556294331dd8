package service

import "github.com/ikkim/winecraft-backend/internal/app/model"

// FavoritesStore is an insertion-ordered set of favorites keyed by product
// reference. Not safe for concurrent use.
type FavoritesStore struct {
	items []model.FavoriteItem
}

func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{}
}

// Toggle removes the item when present, otherwise adds it. Returns whether
// the item is a favorite afterwards.
func (f *FavoritesStore) Toggle(item model.FavoriteItem) bool {
	if f.IsFavorite(item.ID) {
		f.Remove(item.ID)
		return false
	}
	f.Add(item)
	return true
}

// Add drops any entry with the same ID, then appends the item.
func (f *FavoritesStore) Add(item model.FavoriteItem) {
	f.Remove(item.ID)
	f.items = append(f.items, item)
}

func (f *FavoritesStore) Remove(id string) bool {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

func (f *FavoritesStore) IsFavorite(id string) bool {
	for _, item := range f.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (f *FavoritesStore) List() []model.FavoriteItem {
	return append([]model.FavoriteItem{}, f.items...)
}

func (f *FavoritesStore) Count() int {
	return len(f.items)
}
