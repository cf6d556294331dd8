package controller

import (
	"net/http"
	"testing"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogController_GetIngredients(t *testing.T) {
	ts := setupControllerTest(t)

	w := ts.do(t, http.MethodGet, "/api/v1/catalog/ingredients", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var groups service.IngredientGroups
	decode(t, w, &groups)
	assert.Len(t, groups.Flavors, 3)
	assert.Equal(t, 3, groups.MaxAddOns)
	assert.Equal(t, "/assets/ingredients/apple.jpg", groups.Fruits[0].Asset)
}

func TestCatalogController_GetOptions(t *testing.T) {
	ts := setupControllerTest(t)

	w := ts.do(t, http.MethodGet, "/api/v1/catalog/options", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var opts service.CatalogOptionsView
	decode(t, w, &opts)
	assert.Equal(t, "1000ml", opts.DefaultBottle)
	assert.Equal(t, []int{250, 1000, 2500}, opts.DonationTiers)
}

func TestCatalogController_Wines(t *testing.T) {
	ts := setupControllerTest(t)

	w := ts.do(t, http.MethodGet, "/api/v1/catalog/wines", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Wines []model.ReadyMadeWine `json:"wines"`
		Count int                   `json:"count"`
	}
	decode(t, w, &list)
	assert.Equal(t, 6, list.Count)

	w = ts.do(t, http.MethodGet, "/api/v1/catalog/wines/4", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Forest Mystique")

	w = ts.do(t, http.MethodGet, "/api/v1/catalog/wines/42", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CATALOG_WINE_NOT_FOUND")

	w = ts.do(t, http.MethodGet, "/api/v1/catalog/wines/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_ID")
}
