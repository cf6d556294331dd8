package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/internal/errors"
	"github.com/ikkim/winecraft-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type UpdateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the session's cart
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.cartService.GetCart(session))
}

// AddWine adds one bottle of a ready-made wine as a new line
// POST /api/v1/cart/wines/:id
func (ctrl *CartController) AddWine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	session, ok := currentSession(c)
	if !ok {
		return
	}

	wineID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid wine ID for cart", map[string]interface{}{
			"wine_id": c.Param("id"),
		})
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid wine ID")
		return
	}

	item, cart, err := ctrl.cartService.AddReadyMadeWine(c.Request.Context(), session, wineID)
	if err != nil {
		errors.ParseAndRespond(c, err, "add to cart")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item": item,
		"cart": cart,
	})
}

// UpdateCartItem sets a line's quantity; below one removes the line
// PUT /api/v1/cart/:lineId
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, map[string]string{"quantity": "Enter a quantity"})
		return
	}

	cart, err := ctrl.cartService.UpdateQuantity(session, c.Param("lineId"), *req.Quantity)
	if err != nil {
		errors.ParseAndRespond(c, err, "update cart")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// DELETE /api/v1/cart/:lineId
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	cart, err := ctrl.cartService.RemoveItem(session, c.Param("lineId"))
	if err != nil {
		errors.ParseAndRespond(c, err, "remove from cart")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.cartService.ClearCart(session))
}

// Checkout hands a snapshot of the cart to checkout
// POST /api/v1/cart/checkout
func (ctrl *CartController) Checkout(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	ticket, err := ctrl.cartService.Checkout(c.Request.Context(), session)
	if err != nil {
		errors.ParseAndRespond(c, err, "cart checkout")
		return
	}
	c.JSON(http.StatusCreated, ticket)
}
