package service

import (
	"testing"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionManager_Defaults(t *testing.T) {
	m := setupSelectionManager(t)
	sel := m.Selection()

	assert.Empty(t, sel.Flavor)
	assert.Equal(t, "1000ml", sel.Bottle)
	assert.Equal(t, 10, sel.AlcoholPercentage)
	assert.Equal(t, 1, sel.Quantity)
	assert.Nil(t, m.Notice())
}

func TestSelectionManager_ToggleIdempotent(t *testing.T) {
	cases := []struct {
		category model.IngredientCategory
		key      string
	}{
		{model.CategoryFruit, "apple"},
		{model.CategoryVegetable, "carrots"},
		{model.CategoryOther, "ginger"},
		{model.CategoryAddOn, "jasmine-tea"},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			m := setupSelectionManager(t)
			_, err := m.Toggle(model.CategoryFruit, "grapes")
			require.NoError(t, err)
			before := m.Selection()

			first, err := m.Toggle(tc.category, tc.key)
			require.NoError(t, err)
			assert.Equal(t, ToggleAdded, first.Outcome)

			second, err := m.Toggle(tc.category, tc.key)
			require.NoError(t, err)
			assert.Equal(t, ToggleRemoved, second.Outcome)

			assert.Equal(t, before, m.Selection())
		})
	}
}

func TestSelectionManager_BananaRejectedWithMilk(t *testing.T) {
	m := setupSelectionManager(t)
	_, err := m.Toggle(model.CategoryOther, "milk")
	require.NoError(t, err)
	before := m.Selection()

	result, err := m.Toggle(model.CategoryFruit, "banana")
	require.NoError(t, err)

	assert.Equal(t, ToggleRejected, result.Outcome)
	require.NotNil(t, result.Notice)
	assert.Equal(t, NoticeIncompatible, result.Notice.Code)
	assert.Equal(t, "Can't mix with other selected ingredients", result.Notice.Message)
	assert.Equal(t, []string{"milk"}, result.Conflicts)
	assert.Equal(t, before, m.Selection())
	assert.Equal(t, result.Notice, m.Notice())
}

func TestSelectionManager_FlavorNeverConflicts(t *testing.T) {
	m := setupSelectionManager(t)
	m.SetFlavor("sweet")

	result, err := m.Toggle(model.CategoryFruit, "banana")
	require.NoError(t, err)
	assert.Equal(t, ToggleAdded, result.Outcome)
}

func TestSelectionManager_AsymmetricOrderDependence(t *testing.T) {
	m := setupSelectionManager(t)

	_, err := m.Toggle(model.CategoryAddOn, "lemongrass")
	require.NoError(t, err)
	result, err := m.Toggle(model.CategoryOther, "milk")
	require.NoError(t, err)
	assert.Equal(t, ToggleAdded, result.Outcome, "milk does not list lemongrass")

	m.Reset()
	_, err = m.Toggle(model.CategoryOther, "milk")
	require.NoError(t, err)
	result, err = m.Toggle(model.CategoryAddOn, "lemongrass")
	require.NoError(t, err)
	assert.Equal(t, ToggleRejected, result.Outcome)
}

func TestSelectionManager_AddOnCap(t *testing.T) {
	m := setupSelectionManager(t)
	for _, key := range []string{"jasmine-tea", "lemongrass"} {
		r, err := m.Toggle(model.CategoryAddOn, key)
		require.NoError(t, err)
		require.Equal(t, ToggleAdded, r.Outcome)
	}

	third, err := m.Toggle(model.CategoryAddOn, "butterfly-pea")
	require.NoError(t, err)
	assert.Equal(t, ToggleAdded, third.Outcome)

	fourth, err := m.Toggle(model.CategoryAddOn, "pandan")
	require.NoError(t, err)
	assert.Equal(t, ToggleRejected, fourth.Outcome)
	require.NotNil(t, fourth.Notice)
	assert.Equal(t, NoticeAddOnLimit, fourth.Notice.Code)
	assert.Equal(t, "You can choose up to 3 add-ons", fourth.Notice.Message)
	assert.Len(t, m.Selection().AddOns, 3)

	// Swap one out and the new one fits.
	_, err = m.Toggle(model.CategoryAddOn, "butterfly-pea")
	require.NoError(t, err)
	swapped, err := m.Toggle(model.CategoryAddOn, "pandan")
	require.NoError(t, err)
	assert.Equal(t, ToggleAdded, swapped.Outcome)
	assert.Equal(t, []string{"jasmine-tea", "lemongrass", "pandan"}, m.Selection().AddOns)
}

func TestSelectionManager_CapacityCheckedBeforeCompatibility(t *testing.T) {
	m := setupSelectionManager(t)
	_, _ = m.Toggle(model.CategoryOther, "milk")
	for _, key := range []string{"jasmine-tea", "rose", "mint"} {
		_, err := m.Toggle(model.CategoryAddOn, key)
		require.NoError(t, err)
	}

	result, err := m.Toggle(model.CategoryAddOn, "lemongrass")
	require.NoError(t, err)
	assert.Equal(t, ToggleRejected, result.Outcome)
	assert.Equal(t, NoticeAddOnLimit, result.Notice.Code)
}

func TestSelectionManager_NoticeSlot(t *testing.T) {
	m := setupSelectionManager(t)
	_, _ = m.Toggle(model.CategoryOther, "milk")

	_, _ = m.Toggle(model.CategoryFruit, "banana")
	require.NotNil(t, m.Notice())

	// A successful select overwrites the slot.
	_, _ = m.Toggle(model.CategoryFruit, "apple")
	assert.Nil(t, m.Notice())

	_, _ = m.Toggle(model.CategoryFruit, "grapes")
	require.NotNil(t, m.Notice())

	// So does a deselect.
	_, _ = m.Toggle(model.CategoryFruit, "apple")
	assert.Nil(t, m.Notice())
}

func TestSelectionManager_ToggleErrors(t *testing.T) {
	m := setupSelectionManager(t)

	_, err := m.Toggle(model.CategoryFlavor, "sweet")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = m.Toggle(model.IngredientCategory("spice"), "pepper")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = m.Toggle(model.CategoryFruit, "")
	assert.ErrorIs(t, err, ErrEmptyIngredientKey)

	_, err = m.Toggle(model.CategoryFruit, "milk")
	assert.ErrorIs(t, err, ErrIngredientWrongCategory)

	assert.Equal(t, model.NewSelection(), m.Selection())
}

func TestSelectionManager_UnknownIngredientIsPermissive(t *testing.T) {
	m := setupSelectionManager(t)
	_, _ = m.Toggle(model.CategoryOther, "milk")

	result, err := m.Toggle(model.CategoryFruit, "dragonfruit")
	require.NoError(t, err)
	assert.Equal(t, ToggleAdded, result.Outcome)
	assert.Contains(t, m.Selection().Fruits, "dragonfruit")
}

func TestSelectionManager_SingleSelectFields(t *testing.T) {
	m := setupSelectionManager(t)

	m.SetFlavor("sweet")
	m.SetFlavor("herbal")
	assert.Equal(t, "herbal", m.Selection().Flavor)

	m.SetBottle("3000ml")
	assert.Equal(t, "3000ml", m.Selection().Bottle)
	m.SetBottle("")
	assert.Equal(t, "1000ml", m.Selection().Bottle)

	m.SetAccessory("potion-sugar")
	assert.Equal(t, "potion-sugar", m.Selection().Accessory)
	m.SetAccessory("magical-honey")
	assert.Equal(t, "magical-honey", m.Selection().Accessory)
	m.SetAccessory("magical-honey")
	assert.Empty(t, m.Selection().Accessory, "reselecting the same necklace removes it")
}

func TestSelectionManager_Clamping(t *testing.T) {
	m := setupSelectionManager(t)

	m.SetAlcoholPercentage(-4)
	assert.Equal(t, 0, m.Selection().AlcoholPercentage)
	m.SetAlcoholPercentage(75)
	assert.Equal(t, 50, m.Selection().AlcoholPercentage)
	m.SetAlcoholPercentage(12)
	assert.Equal(t, 12, m.Selection().AlcoholPercentage)

	m.SetQuantity(0)
	assert.Equal(t, 1, m.Selection().Quantity)
	m.SetQuantity(6)
	assert.Equal(t, 6, m.Selection().Quantity)
	m.SetQuantity(1<<62 + 1)
	assert.Equal(t, MaxOrderQuantity, m.Selection().Quantity)

	m.SetName("  Birthday Batch ")
	assert.Equal(t, "Birthday Batch", m.Selection().Name)
}

func TestSelectionManager_SelectionIsACopy(t *testing.T) {
	m := setupSelectionManager(t)
	_, _ = m.Toggle(model.CategoryFruit, "apple")

	sel := m.Selection()
	sel.Fruits[0] = "tampered"

	assert.Equal(t, []string{"apple"}, m.Selection().Fruits)
}

func TestSelectionManager_Blocked(t *testing.T) {
	m := setupSelectionManager(t)
	_, _ = m.Toggle(model.CategoryOther, "milk")

	blocked := m.Blocked()
	assert.ElementsMatch(t, []string{"banana", "grapes", "lemon"}, blocked[model.CategoryFruit])
	assert.ElementsMatch(t, []string{"bitter-melon"}, blocked[model.CategoryVegetable])
	assert.ElementsMatch(t, []string{"lemongrass"}, blocked[model.CategoryAddOn])
}
