package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_JSONShape(t *testing.T) {
	order := &Order{
		OrderNumber: 7,
		OrderID:     "2026-11-8a6e0804-2bd0-4672-b79d-d97027f9071a",
		UserID:      3,
		OrderedAt:   time.Date(2026, time.November, 27, 10, 30, 0, 0, time.UTC),
		Items: []OrderItem{
			{ProductID: "sku-1", Quantity: 2, UnitPrice: decimal.RequireFromString("89.99")},
		},
		Payment:  PaymentCreditCard,
		Shipping: ShippingStandard,
		Total:    decimal.RequireFromString("179.98"),
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.EqualValues(t, 7, decoded["order_number"])
	assert.EqualValues(t, 3, decoded["user_id"])
	assert.Equal(t, "Credit Card", decoded["payment_method"])
	assert.Equal(t, "Standard", decoded["shipping_method"])
	assert.Equal(t, "2026-11-27T10:30:00Z", decoded["ordered_at"])

	// Monetary fields marshal as bare JSON numbers, not strings.
	assert.EqualValues(t, 179.98, decoded["total"])

	items, ok := decoded["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "sku-1", item["product_id"])
	assert.EqualValues(t, 2, item["quantity"])

	// No coupon applied: code omitted, flag helper agrees.
	_, hasCoupon := decoded["coupon_code"]
	assert.False(t, hasCoupon)
	assert.False(t, order.CouponApplied())
}

func TestMethodVariants(t *testing.T) {
	assert.True(t, PaymentPayPal.IsKnown())
	assert.False(t, PaymentMethod("Barter").IsKnown())
	assert.Equal(t, "Next Day", ShippingNextDay.String())
	assert.True(t, ShippingExpedited.IsKnown())
	assert.False(t, ShippingMethod("Teleport").IsKnown())
}
