package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/internal/messaging"
	"github.com/ikkim/winecraft-backend/internal/middleware"
	"github.com/ikkim/winecraft-backend/internal/storage"
	"github.com/ikkim/winecraft-backend/pkg/payment/gcash"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router   *gin.Engine
	sessions service.SessionService
}

func setupControllerTest(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	catalog, err := repository.NewCatalogRepository(repository.CatalogOptions{})
	require.NoError(t, err)
	checker := service.NewCompatibilityChecker(catalog)

	gcashClient, err := gcash.NewClient(gcash.Config{AccountName: "Shekar Wine Co.", AccountNumber: "+63 917 123 4567"})
	require.NoError(t, err)

	sessionService := service.NewSessionService(catalog, checker, time.Hour)
	catalogService := service.NewCatalogService(catalog, storage.NewStaticResolver("/assets"))
	checkoutService := service.NewCheckoutService(
		repository.NewMemorySnapshotRepository(),
		repository.NewMemorySnapshotRepository(),
		gcashClient,
		messaging.NewNopPublisher(),
		service.CheckoutConfig{
			HandoffTTL:          30 * time.Minute,
			StandardDeliveryFee: 100,
			ExpressDeliveryFee:  200,
			MealCost:            50,
			PublicBaseURL:       "http://localhost:8080",
		},
	)

	sessionCtrl := NewSessionController(sessionService)
	catalogCtrl := NewCatalogController(catalogService)
	configuratorCtrl := NewConfiguratorController(service.NewConfiguratorService(catalog, service.NewPricingEngine(catalog), checkoutService))
	cartCtrl := NewCartController(service.NewCartService(catalogService, checkoutService))
	favoritesCtrl := NewFavoritesController(service.NewFavoritesService(catalogService))
	checkoutCtrl := NewCheckoutController(checkoutService)
	sessionMW := middleware.NewSessionMiddleware(sessionService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/sessions", sessionCtrl.CreateSession)
	v1.GET("/catalog/ingredients", catalogCtrl.GetIngredients)
	v1.GET("/catalog/options", catalogCtrl.GetOptions)
	v1.GET("/catalog/wines", catalogCtrl.GetWines)
	v1.GET("/catalog/wines/:id", catalogCtrl.GetWine)
	v1.POST("/donations", checkoutCtrl.Donate)
	v1.POST("/checkout/summary", checkoutCtrl.Summarize)
	v1.GET("/checkout/confirmations/:reference", checkoutCtrl.GetConfirmation)
	v1.GET("/checkout/confirmations/:reference/receipt", checkoutCtrl.DownloadReceipt)
	v1.GET("/checkout/:token", checkoutCtrl.GetSummary)
	v1.POST("/checkout/:token/confirm", checkoutCtrl.Confirm)

	shopper := v1.Group("", sessionMW.RequireSession())
	shopper.DELETE("/sessions/current", sessionCtrl.EndSession)
	shopper.GET("/configurator", configuratorCtrl.GetConfiguration)
	shopper.DELETE("/configurator", configuratorCtrl.Reset)
	shopper.POST("/configurator/toggle", configuratorCtrl.ToggleIngredient)
	shopper.PUT("/configurator/flavor", configuratorCtrl.SetFlavor)
	shopper.PUT("/configurator/bottle", configuratorCtrl.SetBottle)
	shopper.PUT("/configurator/accessory", configuratorCtrl.SetAccessory)
	shopper.PUT("/configurator/alcohol", configuratorCtrl.SetAlcohol)
	shopper.PUT("/configurator/quantity", configuratorCtrl.SetQuantity)
	shopper.PUT("/configurator/name", configuratorCtrl.SetName)
	shopper.POST("/configurator/cart", configuratorCtrl.AddToCart)
	shopper.POST("/configurator/checkout", configuratorCtrl.ProceedToCheckout)
	shopper.GET("/cart", cartCtrl.GetCart)
	shopper.DELETE("/cart", cartCtrl.ClearCart)
	shopper.POST("/cart/wines/:id", cartCtrl.AddWine)
	shopper.POST("/cart/checkout", cartCtrl.Checkout)
	shopper.PUT("/cart/:lineId", cartCtrl.UpdateCartItem)
	shopper.DELETE("/cart/:lineId", cartCtrl.RemoveFromCart)
	shopper.GET("/favorites", favoritesCtrl.GetFavorites)
	shopper.POST("/favorites/toggle", favoritesCtrl.ToggleFavorite)
	shopper.GET("/favorites/:ref", favoritesCtrl.CheckFavorite)

	return &testServer{router: router, sessions: sessionService}
}

// do sends a JSON request on behalf of sessionID (empty for none).
func (ts *testServer) do(t *testing.T, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionIDHeader, sessionID)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) newSession(t *testing.T) string {
	w := ts.do(t, http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		SessionID string `json:"session_id"`
	}
	decode(t, w, &resp)
	return resp.SessionID
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
