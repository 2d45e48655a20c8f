package entity

// ShippingMethod represents how an order is shipped.
type ShippingMethod string

const (
	// ShippingStandard is the default ground shipping tier.
	ShippingStandard ShippingMethod = "Standard"
	// ShippingExpedited is the faster paid shipping tier.
	ShippingExpedited ShippingMethod = "Expedited"
	// ShippingNextDay delivers on the next business day.
	ShippingNextDay ShippingMethod = "Next Day"
)

// String returns the string representation of the ShippingMethod.
func (s ShippingMethod) String() string {
	return string(s)
}

// IsKnown checks if the ShippingMethod is one of the default variants.
func (s ShippingMethod) IsKnown() bool {
	switch s {
	case ShippingStandard, ShippingExpedited, ShippingNextDay:
		return true
	default:
		return false
	}
}
