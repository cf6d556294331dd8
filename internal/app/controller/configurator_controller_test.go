package controller

import (
	"net/http"
	"testing"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toggleResponse struct {
	Result       service.ToggleResult     `json:"result"`
	Configurator service.ConfiguratorView `json:"configurator"`
}

func TestConfiguratorController_RequiresSession(t *testing.T) {
	ts := setupControllerTest(t)

	w := ts.do(t, http.MethodGet, "/api/v1/configurator", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_REQUIRED")
}

func TestConfiguratorController_BuildWine(t *testing.T) {
	ts := setupControllerTest(t)
	sessionID := ts.newSession(t)

	w := ts.do(t, http.MethodPut, "/api/v1/configurator/flavor", sessionID, OptionKeyRequest{Key: "sweet"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/configurator/toggle", sessionID, ToggleIngredientRequest{Category: model.CategoryFruit, Key: "apple"})
	require.Equal(t, http.StatusOK, w.Code)
	var toggled toggleResponse
	decode(t, w, &toggled)
	assert.Equal(t, service.ToggleAdded, toggled.Result.Outcome)
	assert.Equal(t, 1150, toggled.Configurator.TotalPrice)
	assert.True(t, toggled.Configurator.CanCommit)

	w = ts.do(t, http.MethodPut, "/api/v1/configurator/alcohol", sessionID, map[string]int{"percentage": 0})
	require.Equal(t, http.StatusOK, w.Code)
	var view service.ConfiguratorView
	decode(t, w, &view)
	assert.Equal(t, 0, view.Selection.AlcoholPercentage)
	assert.Equal(t, model.MoodNonAlcoholic, view.Mood)

	w = ts.do(t, http.MethodPut, "/api/v1/configurator/quantity", sessionID, map[string]int{"quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &view)
	assert.Equal(t, 2300, view.TotalPrice)

	w = ts.do(t, http.MethodPut, "/api/v1/configurator/name", sessionID, NameRequest{Name: "Sunday Red"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &view)
	assert.Equal(t, "Sunday Red", view.Selection.Name)
}

func TestConfiguratorController_RejectedToggleIsNotAnError(t *testing.T) {
	ts := setupControllerTest(t)
	sessionID := ts.newSession(t)

	ts.do(t, http.MethodPost, "/api/v1/configurator/toggle", sessionID, ToggleIngredientRequest{Category: model.CategoryOther, Key: "milk"})
	w := ts.do(t, http.MethodPost, "/api/v1/configurator/toggle", sessionID, ToggleIngredientRequest{Category: model.CategoryFruit, Key: "banana"})
	require.Equal(t, http.StatusOK, w.Code)

	var toggled toggleResponse
	decode(t, w, &toggled)
	assert.Equal(t, service.ToggleRejected, toggled.Result.Outcome)
	require.NotNil(t, toggled.Configurator.Notice)
	assert.Equal(t, service.NoticeIncompatible, toggled.Configurator.Notice.Code)
	assert.Equal(t, "Can't mix with other selected ingredients", toggled.Configurator.Notice.Message)
	assert.Empty(t, toggled.Configurator.Selection.Fruits)
}

func TestConfiguratorController_ToggleValidation(t *testing.T) {
	ts := setupControllerTest(t)
	sessionID := ts.newSession(t)

	w := ts.do(t, http.MethodPost, "/api/v1/configurator/toggle", sessionID, `{"category":"fruit"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_INPUT")

	w = ts.do(t, http.MethodPost, "/api/v1/configurator/toggle", sessionID, ToggleIngredientRequest{Category: "spice", Key: "pepper"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CATALOG_INVALID_CATEGORY")

	w = ts.do(t, http.MethodPost, "/api/v1/configurator/toggle", sessionID, ToggleIngredientRequest{Category: model.CategoryFruit, Key: "milk"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CATALOG_WRONG_CATEGORY")

	w = ts.do(t, http.MethodPut, "/api/v1/configurator/alcohol", sessionID, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfiguratorController_CommitRequiresFlavor(t *testing.T) {
	ts := setupControllerTest(t)
	sessionID := ts.newSession(t)

	w := ts.do(t, http.MethodPost, "/api/v1/configurator/cart", sessionID, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "CONFIG_FLAVOR_REQUIRED")

	w = ts.do(t, http.MethodPost, "/api/v1/configurator/checkout", sessionID, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConfiguratorController_CommitAndReset(t *testing.T) {
	ts := setupControllerTest(t)
	sessionID := ts.newSession(t)
	ts.do(t, http.MethodPut, "/api/v1/configurator/flavor", sessionID, OptionKeyRequest{Key: "dry"})
	ts.do(t, http.MethodPut, "/api/v1/configurator/bottle", sessionID, OptionKeyRequest{Key: "3000ml"})

	w := ts.do(t, http.MethodPost, "/api/v1/configurator/cart", sessionID, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var added struct {
		Item model.CartLineItem `json:"item"`
		Cart model.CartState    `json:"cart"`
	}
	decode(t, w, &added)
	assert.Equal(t, 1800, added.Item.Price)
	assert.Equal(t, model.KindCustom, added.Item.Kind)

	w = ts.do(t, http.MethodPost, "/api/v1/configurator/checkout", sessionID, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var ticket service.HandoffTicket
	decode(t, w, &ticket)
	assert.Equal(t, model.PayloadCustom, ticket.Kind)

	w = ts.do(t, http.MethodDelete, "/api/v1/configurator", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view service.ConfiguratorView
	decode(t, w, &view)
	assert.Empty(t, view.Selection.Flavor)
	assert.Equal(t, "1000ml", view.Selection.Bottle)
}
