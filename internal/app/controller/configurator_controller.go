package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/internal/errors"
	"github.com/ikkim/winecraft-backend/internal/middleware"
)

type ConfiguratorController struct {
	configuratorService service.ConfiguratorService
}

func NewConfiguratorController(configuratorService service.ConfiguratorService) *ConfiguratorController {
	return &ConfiguratorController{
		configuratorService: configuratorService,
	}
}

type ToggleIngredientRequest struct {
	Category model.IngredientCategory `json:"category" binding:"required"`
	Key      string                   `json:"key" binding:"required"`
}

// OptionKeyRequest selects a flavor, bottle or accessory. An empty key
// clears the bottle back to the default and the accessory to none.
type OptionKeyRequest struct {
	Key string `json:"key"`
}

type AlcoholRequest struct {
	Percentage *int `json:"percentage" binding:"required"`
}

type QuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type NameRequest struct {
	Name string `json:"name"`
}

// GET /api/v1/configurator
func (ctrl *ConfiguratorController) GetConfiguration(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.configuratorService.View(session))
}

// ToggleIngredient adds or removes one fruit, vegetable, other or add-on.
// Incompatible or over-limit picks answer 200 with a notice and an
// unchanged selection.
// POST /api/v1/configurator/toggle
func (ctrl *ConfiguratorController) ToggleIngredient(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req ToggleIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid toggle request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Choose a category and an ingredient")
		return
	}

	result, view, err := ctrl.configuratorService.Toggle(session, req.Category, req.Key)
	if err != nil {
		errors.ParseAndRespond(c, err, "toggle ingredient")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":       result,
		"configurator": view,
	})
}

// PUT /api/v1/configurator/flavor
func (ctrl *ConfiguratorController) SetFlavor(c *gin.Context) {
	ctrl.withKey(c, ctrl.configuratorService.SetFlavor)
}

// PUT /api/v1/configurator/bottle
func (ctrl *ConfiguratorController) SetBottle(c *gin.Context) {
	ctrl.withKey(c, ctrl.configuratorService.SetBottle)
}

// PUT /api/v1/configurator/accessory
func (ctrl *ConfiguratorController) SetAccessory(c *gin.Context) {
	ctrl.withKey(c, ctrl.configuratorService.SetAccessory)
}

// PUT /api/v1/configurator/alcohol
func (ctrl *ConfiguratorController) SetAlcohol(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req AlcoholRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, map[string]string{"percentage": "Enter an alcohol percentage"})
		return
	}
	c.JSON(http.StatusOK, ctrl.configuratorService.SetAlcoholPercentage(session, *req.Percentage))
}

// PUT /api/v1/configurator/quantity
func (ctrl *ConfiguratorController) SetQuantity(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, map[string]string{"quantity": "Enter a quantity"})
		return
	}
	c.JSON(http.StatusOK, ctrl.configuratorService.SetQuantity(session, *req.Quantity))
}

// PUT /api/v1/configurator/name
func (ctrl *ConfiguratorController) SetName(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request body")
		return
	}
	c.JSON(http.StatusOK, ctrl.configuratorService.SetName(session, req.Name))
}

// DELETE /api/v1/configurator
func (ctrl *ConfiguratorController) Reset(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.configuratorService.Reset(session))
}

// AddToCart commits the current configuration as a custom cart line
// POST /api/v1/configurator/cart
func (ctrl *ConfiguratorController) AddToCart(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	item, cart, err := ctrl.configuratorService.AddToCart(session)
	if err != nil {
		errors.ParseAndRespond(c, err, "add custom wine to cart")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item": item,
		"cart": cart,
	})
}

// ProceedToCheckout hands the configuration to checkout as a standalone order
// POST /api/v1/configurator/checkout
func (ctrl *ConfiguratorController) ProceedToCheckout(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	ticket, err := ctrl.configuratorService.ProceedToCheckout(c.Request.Context(), session)
	if err != nil {
		errors.ParseAndRespond(c, err, "custom wine checkout")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

func (ctrl *ConfiguratorController) withKey(c *gin.Context, set func(*service.Session, string) service.ConfiguratorView) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req OptionKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request body")
		return
	}
	c.JSON(http.StatusOK, set(session, req.Key))
}
