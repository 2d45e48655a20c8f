package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order, referencing a catalog product.
type OrderItem struct {
	ProductID string          `json:"product_id"` // References Product.ID in the loaded catalog.
	Quantity  int             `json:"quantity"`   // Always >= 1.
	UnitPrice decimal.Decimal `json:"unit_price"` // Catalog price at generation time.
}

// Order is one generated purchase record. Orders are constructed fresh
// per generation step and are immutable once produced.
type Order struct {
	OrderNumber       int             `json:"order_number"`          // Sequential, 1-based across the whole run.
	OrderID           string          `json:"order_id"`              // "<year>-<month>-<uuid>" of the sale anchor date.
	UserID            int             `json:"user_id"`               // Drawn from 1..MaxUsers.
	Subscriber        bool            `json:"subscriber"`            // Subscribers get free shipping.
	OrderedAt         time.Time       `json:"ordered_at"`            // Within the jitter window around the anchor date.
	Items             []OrderItem     `json:"items"`                 // Non-empty, distinct products.
	Payment           PaymentMethod   `json:"payment_method"`        // Weighted random choice.
	Shipping          ShippingMethod  `json:"shipping_method"`       // Weighted random choice.
	Total             decimal.Decimal `json:"total"`                 // Sum of unit price times quantity.
	CouponCode        string          `json:"coupon_code,omitempty"` // Empty when no coupon applied.
	CouponValue       decimal.Decimal `json:"coupon_value"`          // Discount amount, zero when no coupon.
	SalesTax          decimal.Decimal `json:"sales_tax"`             // Tax amount at a sampled 1-10% rate.
	GiftWrap          bool            `json:"gift_wrap"`             // Requested gift wrapping.
	ShippingCost      decimal.Decimal `json:"shipping_cost"`         // Zero for subscribers.
	EstimatedDelivery time.Time       `json:"estimated_delivery"`    // Order date plus 3-30 days.
	Platform          string          `json:"platform"`              // User-agent string of the ordering client.
	NetTotal          decimal.Decimal `json:"net_total"`             // Total minus coupon, tax and shipping.
}

// CouponApplied reports whether a discount coupon was applied to the order.
func (o *Order) CouponApplied() bool {
	return o.CouponCode != ""
}
