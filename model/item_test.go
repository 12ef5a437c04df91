package model_test

import (
	"testing"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockStatusOf(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderPoint int
		want         constant.StockStatus
	}{
		{name: "empty shelf", quantity: 0, reorderPoint: 2, want: constant.StockStatusOut},
		{name: "empty with zero reorder point", quantity: 0, reorderPoint: 0, want: constant.StockStatusOut},
		{name: "at reorder point", quantity: 2, reorderPoint: 2, want: constant.StockStatusLow},
		{name: "below reorder point", quantity: 1, reorderPoint: 2, want: constant.StockStatusLow},
		{name: "one above", quantity: 3, reorderPoint: 2, want: constant.StockStatusOK},
		{name: "no reorder point", quantity: 1, reorderPoint: 0, want: constant.StockStatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.StockStatusOf(tt.quantity, tt.reorderPoint))
		})
	}
}

func TestItem_Derive(t *testing.T) {
	it := model.Item{QuantityOnHand: 1, ReorderPoint: 3}
	it.Derive()
	assert.Equal(t, constant.StockStatusLow, it.StockStatus)
	assert.Equal(t, 3, it.UnitsNeeded)

	it.QuantityOnHand = 10
	it.Derive()
	assert.Equal(t, constant.StockStatusOK, it.StockStatus)
	assert.Zero(t, it.UnitsNeeded)

	it.QuantityOnHand = 0
	it.Derive()
	assert.Equal(t, constant.StockStatusOut, it.StockStatus)
	assert.Equal(t, 4, it.UnitsNeeded)
}

func TestStringList(t *testing.T) {
	var s model.StringList

	require.NoError(t, s.Scan([]byte(`["WRF555SDFZ","WRS325SDHZ"]`)))
	assert.Equal(t, model.StringList{"WRF555SDFZ", "WRS325SDHZ"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s)

	require.NoError(t, s.Scan(""))
	assert.Nil(t, s)

	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan(`not json`))

	v, err := model.StringList{"A1"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["A1"]`, v)

	v, err = model.StringList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestOrderItemRequest_LineTotal(t *testing.T) {
	priced := model.OrderItemRequest{Price: decimal.NewNullDecimal(decimal.RequireFromString("19.99")), Quantity: 3}
	assert.True(t, decimal.RequireFromString("59.97").Equal(priced.LineTotal()))

	unpriced := model.OrderItemRequest{Quantity: 5}
	assert.True(t, unpriced.LineTotal().IsZero())
}
