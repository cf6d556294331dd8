package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/pkg/logger"
)

var ErrInvalidFavorite = errors.New("favorite needs an id, a name and a type")

const readyMadeRefPrefix = "ready-made-"

type FavoritesView struct {
	Items []model.FavoriteItem `json:"items"`
	Count int                  `json:"count"`
}

type FavoritesService interface {
	List(session *Session) FavoritesView
	// Toggle flips membership and reports whether the item is a favorite
	// afterwards.
	Toggle(ctx context.Context, session *Session, item model.FavoriteItem) (bool, FavoritesView, error)
	IsFavorite(session *Session, ref string) bool
}

type favoritesService struct {
	catalog CatalogService
}

func NewFavoritesService(catalog CatalogService) FavoritesService {
	return &favoritesService{catalog: catalog}
}

func (s *favoritesService) List(session *Session) FavoritesView {
	var view FavoritesView
	_ = session.Do(func(st SessionState) error {
		view = favoritesView(st.Favorites)
		return nil
	})
	return view
}

// Toggle fills ready-made favorites from the catalog so name and price
// cannot be spoofed by the caller. Custom favorites are taken as given.
// Removing only needs the ID.
func (s *favoritesService) Toggle(ctx context.Context, session *Session, item model.FavoriteItem) (bool, FavoritesView, error) {
	resolved := false
	if !s.IsFavorite(session, item.ID) {
		var err error
		item, err = s.resolve(ctx, item)
		if err != nil {
			logger.Warn("Favorite rejected", map[string]interface{}{
				"session_id": session.ID,
				"id":         item.ID,
				"error":      err.Error(),
			})
			return false, FavoritesView{}, err
		}
		resolved = true
	}

	var (
		now  bool
		view FavoritesView
	)
	_ = session.Do(func(st SessionState) error {
		switch {
		case st.Favorites.IsFavorite(item.ID):
			st.Favorites.Remove(item.ID)
		case resolved:
			st.Favorites.Add(item)
			now = true
		}
		view = favoritesView(st.Favorites)
		return nil
	})

	logger.Info("Favorite toggled", map[string]interface{}{
		"session_id": session.ID,
		"id":         item.ID,
		"favorite":   now,
		"count":      view.Count,
	})
	return now, view, nil
}

func (s *favoritesService) IsFavorite(session *Session, ref string) bool {
	var fav bool
	_ = session.Do(func(st SessionState) error {
		fav = st.Favorites.IsFavorite(ref)
		return nil
	})
	return fav
}

func (s *favoritesService) resolve(ctx context.Context, item model.FavoriteItem) (model.FavoriteItem, error) {
	if idText, ok := strings.CutPrefix(item.ID, readyMadeRefPrefix); ok {
		id, err := strconv.Atoi(idText)
		if err != nil {
			return item, ErrWineNotFound
		}
		wine, err := s.catalog.FindWine(ctx, id)
		if err != nil {
			return item, err
		}
		return model.FavoriteItem{
			ID:    wine.ProductRef(),
			Name:  wine.Name,
			Price: wine.Price,
			Kind:  model.KindReadyMade,
			Image: wine.Image,
		}, nil
	}

	if item.ID == "" || item.Name == "" || item.Price < 0 || !item.Kind.IsValid() {
		return item, ErrInvalidFavorite
	}
	return item, nil
}

func favoritesView(store *FavoritesStore) FavoritesView {
	return FavoritesView{Items: store.List(), Count: store.Count()}
}
