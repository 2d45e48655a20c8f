package entity

// PaymentMethod represents how an order was paid for. The known variants
// below cover the default configuration; additional methods may be
// introduced through the payment weights configuration.
type PaymentMethod string

const (
	// PaymentCreditCard indicates payment by credit card.
	PaymentCreditCard PaymentMethod = "Credit Card"
	// PaymentDebitCard indicates payment by debit card.
	PaymentDebitCard PaymentMethod = "Debit Card"
	// PaymentPayPal indicates payment through PayPal.
	PaymentPayPal PaymentMethod = "PayPal"
	// PaymentDigitalWallet indicates payment through a digital wallet.
	PaymentDigitalWallet PaymentMethod = "Digital Wallet"
	// PaymentBNPL indicates a buy-now-pay-later plan.
	PaymentBNPL PaymentMethod = "BNPL"
	// PaymentCOD indicates cash on delivery.
	PaymentCOD PaymentMethod = "COD"
)

// String returns the string representation of the PaymentMethod.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsKnown checks if the PaymentMethod is one of the default variants.
func (p PaymentMethod) IsKnown() bool {
	switch p {
	case PaymentCreditCard, PaymentDebitCard, PaymentPayPal,
		PaymentDigitalWallet, PaymentBNPL, PaymentCOD:
		return true
	default:
		return false
	}
}
