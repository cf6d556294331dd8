package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/internal/errors"
	"github.com/ikkim/winecraft-backend/internal/middleware"
)

type FavoritesController struct {
	favoritesService service.FavoritesService
}

func NewFavoritesController(favoritesService service.FavoritesService) *FavoritesController {
	return &FavoritesController{
		favoritesService: favoritesService,
	}
}

type ToggleFavoriteRequest struct {
	ID    string            `json:"id" binding:"required"`
	Name  string            `json:"name"`
	Price int               `json:"price"`
	Kind  model.ProductKind `json:"type"`
	Image string            `json:"image"`
}

// GET /api/v1/favorites
func (ctrl *FavoritesController) GetFavorites(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.favoritesService.List(session))
}

// ToggleFavorite adds the item when absent and removes it when present
// POST /api/v1/favorites/toggle
func (ctrl *FavoritesController) ToggleFavorite(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid favorite request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.RespondWithValidationError(c, map[string]string{"id": "Product reference is required"})
		return
	}

	favorite, view, err := ctrl.favoritesService.Toggle(c.Request.Context(), session, model.FavoriteItem{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
		Kind:  req.Kind,
		Image: req.Image,
	})
	if err != nil {
		errors.ParseAndRespond(c, err, "toggle favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorite":  favorite,
		"favorites": view,
	})
}

// CheckFavorite reports whether a product reference is saved
// GET /api/v1/favorites/:ref
func (ctrl *FavoritesController) CheckFavorite(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	ref := c.Param("ref")
	c.JSON(http.StatusOK, gin.H{
		"id":       ref,
		"favorite": ctrl.favoritesService.IsFavorite(session, ref),
	})
}
