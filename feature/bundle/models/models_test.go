package models_test

import (
	"testing"

	"bundle-importer/feature/bundle/models"

	"github.com/stretchr/testify/assert"
)

func TestInputType_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   models.InputType
		want bool
	}{
		{"Dropdown", models.InputTypeDropdown, true},
		{"Radio", models.InputTypeRadio, true},
		{"Checkbox", models.InputTypeCheckbox, true},
		{"Multi", models.InputTypeMulti, true},
		{"Select", models.InputTypeSelect, true},
		{"Unknown", models.InputType("slider"), false},
		{"Empty", models.InputType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Valid())
		})
	}
}

func TestPriceType_Valid(t *testing.T) {
	assert.True(t, models.PriceTypeFixed.Valid())
	assert.True(t, models.PriceTypePercent.Valid())
	assert.False(t, models.PriceType("relative").Valid())
	assert.False(t, models.PriceType("").Valid())
}

func TestProduct_HasSpecifiedOptions(t *testing.T) {
	unspecified := &models.Product{ID: 1}
	assert.False(t, unspecified.HasSpecifiedOptions())

	// An empty non-nil list is a specified, intentionally empty configuration
	empty := &models.Product{ID: 2, Options: []*models.Option{}}
	assert.True(t, empty.HasSpecifiedOptions())

	populated := &models.Product{ID: 3, Options: []*models.Option{{InputType: models.InputTypeSelect}}}
	assert.True(t, populated.HasSpecifiedOptions())
}
