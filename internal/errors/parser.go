package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/internal/app/service"
)

// ErrorInfo is the HTTP rendering of a service error.
type ErrorInfo struct {
	Status  int
	Code    string // see codes.go
	Message string // shopper-facing text
}

// ParseError maps a service error onto a status, a code and a message.
// Unknown errors become a 500 whose message depends on context, so
// internals never leak to the shopper.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	for _, m := range sentinels {
		if errors.Is(err, m.err) {
			return m.info
		}
	}

	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{
			Status:  http.StatusServiceUnavailable,
			Code:    InternalStorageError,
			Message: "A backing service is unavailable. Please try again shortly",
		}
	}

	return ErrorInfo{
		Status:  http.StatusInternalServerError,
		Code:    InternalServerError,
		Message: defaultErrorMessage(context),
	}
}

// ParseAndRespond writes the parsed error. Customer validation errors keep
// their per-field messages.
func ParseAndRespond(c *gin.Context, err error, context string) {
	var verr *service.CustomerValidationError
	if errors.As(err, &verr) {
		RespondWithFieldErrors(c, CheckoutInvalidCustomer, "Please check your details", verr.Fields)
		return
	}

	info := ParseError(err, context)
	RespondWithError(c, info.Status, info.Code, info.Message)
}

type sentinel struct {
	err  error
	info ErrorInfo
}

var sentinels = []sentinel{
	{service.ErrSessionNotFound, ErrorInfo{http.StatusNotFound, SessionNotFound, "Your session has expired. Please start again"}},

	{service.ErrWineNotFound, ErrorInfo{http.StatusNotFound, CatalogWineNotFound, "Wine not found"}},
	{service.ErrInvalidCategory, ErrorInfo{http.StatusBadRequest, CatalogInvalidCategory, "Unknown ingredient category"}},
	{service.ErrIngredientWrongCategory, ErrorInfo{http.StatusBadRequest, CatalogWrongCategory, "That ingredient belongs to another group"}},
	{service.ErrEmptyIngredientKey, ErrorInfo{http.StatusBadRequest, CatalogEmptyIngredient, "Choose an ingredient"}},

	{service.ErrFlavorRequired, ErrorInfo{http.StatusUnprocessableEntity, ConfigFlavorRequired, "Please choose a main flavor first"}},

	{service.ErrCartItemNotFound, ErrorInfo{http.StatusNotFound, CartItemNotFound, "That item is no longer in your cart"}},
	{service.ErrEmptyCart, ErrorInfo{http.StatusUnprocessableEntity, CartEmpty, "Your cart is empty"}},
	{service.ErrInvalidCartItem, ErrorInfo{http.StatusBadRequest, CartInvalidItem, "That item cannot be added to the cart"}},
	{service.ErrQuantityTooLarge, ErrorInfo{http.StatusUnprocessableEntity, CartQuantityTooLarge, "That quantity is over the order limit"}},
	{service.ErrCartTotalTooLarge, ErrorInfo{http.StatusUnprocessableEntity, CartTotalTooLarge, "Your cart total is too large to process"}},

	{service.ErrInvalidFavorite, ErrorInfo{http.StatusBadRequest, FavoriteInvalid, "That item cannot be saved as a favorite"}},

	{service.ErrInvalidCheckoutPayload, ErrorInfo{http.StatusBadRequest, CheckoutInvalidPayload, "Nothing to check out"}},
	{service.ErrInvalidDonation, ErrorInfo{http.StatusBadRequest, DonationInvalid, "Please choose a valid donation amount"}},
	{service.ErrHandoffNotFound, ErrorInfo{http.StatusNotFound, CheckoutHandoffNotFound, "Your checkout has expired. Please start checkout again"}},
	{service.ErrDegradedCheckout, ErrorInfo{http.StatusUnprocessableEntity, CheckoutDegraded, "We couldn't read your order details. Please start checkout again"}},
	{service.ErrInvalidCustomer, ErrorInfo{http.StatusBadRequest, CheckoutInvalidCustomer, "Please check your details"}},
	{service.ErrConfirmationNotFound, ErrorInfo{http.StatusNotFound, CheckoutConfirmationNotFound, "Order reference not found"}},

	{repository.ErrSnapshotNotFound, ErrorInfo{http.StatusNotFound, CheckoutHandoffNotFound, "Your checkout has expired. Please start checkout again"}},
}

func defaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "checkout") || strings.Contains(contextLower, "confirm") {
		return "We couldn't complete your checkout. Please try again shortly"
	}
	if strings.Contains(contextLower, "cart") {
		return "We couldn't update your cart. Please try again shortly"
	}
	if strings.Contains(contextLower, "receipt") {
		return "We couldn't prepare your receipt. Please try again shortly"
	}

	return "Something went wrong. Please try again later"
}
