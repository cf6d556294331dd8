package service

import (
	"math"
	"testing"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
)

func selection(mod func(s *model.Selection)) model.Selection {
	s := model.NewSelection()
	if mod != nil {
		mod(&s)
	}
	return s
}

func TestPricingEngine_ComputeTotal(t *testing.T) {
	engine := NewPricingEngine(setupCatalog(t))

	tests := []struct {
		name string
		sel  model.Selection
		want int
	}{
		{
			name: "sweet with apple in default bottle",
			sel: selection(func(s *model.Selection) {
				s.Flavor = "sweet"
				s.Fruits = []string{"apple"}
			}),
			want: 1150,
		},
		{
			name: "base only",
			sel:  selection(nil),
			want: 1000,
		},
		{
			name: "every group, bottle and accessory",
			sel: selection(func(s *model.Selection) {
				s.Fruits = []string{"apple", "grapes"}
				s.Vegetables = []string{"carrots"}
				s.Others = []string{"ginger"}
				s.AddOns = []string{"jasmine-tea", "lemongrass"}
				s.Bottle = "1500ml"
				s.Accessory = "magical-honey"
			}),
			want: 1000 + 300 + 100 + 200 + 200 + 300 + 200,
		},
		{
			name: "quantity multiplies everything",
			sel: selection(func(s *model.Selection) {
				s.Fruits = []string{"apple"}
				s.Bottle = "3800ml"
				s.Accessory = "criminal-wine"
				s.Quantity = 3
			}),
			want: (1000 + 150 + 1200 + 300) * 3,
		},
		{
			name: "unknown bottle and accessory add nothing",
			sel: selection(func(s *model.Selection) {
				s.Bottle = "9000ml"
				s.Accessory = "glitter-bomb"
			}),
			want: 1000,
		},
		{
			name: "unknown ingredient keys still count per group",
			sel: selection(func(s *model.Selection) {
				s.Fruits = []string{"dragonfruit"}
			}),
			want: 1150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ComputeTotal(tt.sel))
		})
	}
}

func TestPricingEngine_Deterministic(t *testing.T) {
	engine := NewPricingEngine(setupCatalog(t))

	a := selection(func(s *model.Selection) {
		s.Flavor = "herbal"
		s.Vegetables = []string{"carrots"}
		s.Bottle = "3000ml"
	})
	b := a.Clone()

	assert.Equal(t, engine.ComputeTotal(a), engine.ComputeTotal(b))
	assert.Equal(t, engine.ComputeTotal(a), engine.ComputeTotal(a))
}

func TestPricingEngine_Monotonic(t *testing.T) {
	engine := NewPricingEngine(setupCatalog(t))
	base := selection(func(s *model.Selection) { s.Flavor = "dry" })
	start := engine.ComputeTotal(base)

	steps := []func(s *model.Selection){
		func(s *model.Selection) { s.Fruits = append(s.Fruits, "apple") },
		func(s *model.Selection) { s.Vegetables = append(s.Vegetables, "carrots") },
		func(s *model.Selection) { s.Others = append(s.Others, "ginger") },
		func(s *model.Selection) { s.AddOns = append(s.AddOns, "jasmine-tea") },
		func(s *model.Selection) { s.Accessory = "potion-sugar" },
		func(s *model.Selection) { s.Quantity++ },
	}
	for i, step := range steps {
		next := base.Clone()
		step(&next)
		assert.GreaterOrEqual(t, engine.ComputeTotal(next), start, "step %d", i)
	}

	prev := -1
	for _, bottle := range []string{"1000ml", "1500ml", "3000ml", "3800ml"} {
		s := base.Clone()
		s.Bottle = bottle
		total := engine.ComputeTotal(s)
		assert.GreaterOrEqual(t, total, prev, bottle)
		prev = total
	}
}

func TestPricingEngine_QuoteLinesSumToUnitPrice(t *testing.T) {
	engine := NewPricingEngine(setupCatalog(t))
	sel := selection(func(s *model.Selection) {
		s.Fruits = []string{"apple", "grapes"}
		s.AddOns = []string{"jasmine-tea"}
		s.Bottle = "3000ml"
		s.Accessory = "poisonous-flower"
		s.Quantity = 2
	})

	quote := engine.Quote(sel)

	sum := 0
	for _, line := range quote.Lines {
		sum += line.Amount
	}
	assert.Equal(t, quote.UnitPrice, sum)
	assert.Equal(t, 2, quote.Quantity)
	assert.Equal(t, quote.UnitPrice*2, quote.Total)
	assert.Equal(t, engine.ComputeTotal(sel), quote.Total)
	assert.Equal(t, 1000+300+100+800+250, engine.UnitPrice(sel))
}

func TestPricingEngine_QuantityIsCapped(t *testing.T) {
	engine := NewPricingEngine(setupCatalog(t))

	for _, quantity := range []int{MaxOrderQuantity + 1, 1<<62 + 1, math.MaxInt} {
		sel := selection(func(s *model.Selection) {
			s.Flavor = "sweet"
			s.Quantity = quantity
		})
		quote := engine.Quote(sel)
		assert.Equal(t, MaxOrderQuantity, quote.Quantity, "quantity %d", quantity)
		assert.Equal(t, BasePrice*MaxOrderQuantity, quote.Total, "quantity %d", quantity)
	}
}
