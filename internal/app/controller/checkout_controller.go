package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/internal/errors"
	"github.com/ikkim/winecraft-backend/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CheckoutController struct {
	checkoutService service.CheckoutService
}

func NewCheckoutController(checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

type DonationRequest struct {
	Type   model.DonationType `json:"type" binding:"required"`
	Amount int                `json:"amount" binding:"required"`
}

// Donate hands a donation to checkout
// POST /api/v1/donations
func (ctrl *CheckoutController) Donate(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid donation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.DonationInvalid, "Please choose a donation amount")
		return
	}

	ticket, err := ctrl.checkoutService.Donate(c.Request.Context(), model.Donation{Type: req.Type, Amount: req.Amount})
	if err != nil {
		errors.ParseAndRespond(c, err, "donation")
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GetSummary renders the checkout screen for a handoff token. A payload that
// cannot be trusted still answers 200 with a degraded summary.
// GET /api/v1/checkout/:token?delivery=express
func (ctrl *CheckoutController) GetSummary(c *gin.Context) {
	delivery := model.DeliveryOption(c.DefaultQuery("delivery", string(model.DeliveryStandard)))

	summary, err := ctrl.checkoutService.Summary(c.Request.Context(), c.Param("token"), delivery)
	if err != nil {
		errors.ParseAndRespond(c, err, "checkout summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Summarize derives a summary from a raw payload without storing it
// POST /api/v1/checkout/summary
func (ctrl *CheckoutController) Summarize(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		errors.BadRequest(c, errors.CheckoutInvalidPayload, "Could not read request body")
		return
	}

	delivery := model.DeliveryOption(c.DefaultQuery("delivery", string(model.DeliveryStandard)))
	c.JSON(http.StatusOK, ctrl.checkoutService.Summarize(raw, delivery))
}

// Confirm validates the customer form and confirms the order
// POST /api/v1/checkout/:token/confirm
func (ctrl *CheckoutController) Confirm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var customer model.CustomerInfo
	if err := c.ShouldBindJSON(&customer); err != nil {
		log.Warn("Invalid confirm request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request body")
		return
	}

	confirmation, err := ctrl.checkoutService.Confirm(c.Request.Context(), c.Param("token"), customer)
	if err != nil {
		errors.ParseAndRespond(c, err, "confirm checkout")
		return
	}
	c.JSON(http.StatusCreated, confirmation)
}

// GET /api/v1/checkout/confirmations/:reference
func (ctrl *CheckoutController) GetConfirmation(c *gin.Context) {
	confirmation, err := ctrl.checkoutService.FindConfirmation(c.Request.Context(), c.Param("reference"))
	if err != nil {
		errors.ParseAndRespond(c, err, "find confirmation")
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// DownloadReceipt streams the XLSX receipt
// GET /api/v1/checkout/confirmations/:reference/receipt
func (ctrl *CheckoutController) DownloadReceipt(c *gin.Context) {
	reference := c.Param("reference")

	data, err := ctrl.checkoutService.Receipt(c.Request.Context(), reference)
	if err != nil {
		errors.ParseAndRespond(c, err, "receipt")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "receipt-"+reference+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, data)
}
