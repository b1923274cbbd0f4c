package enum

// PaymentMethod represents how an order (or a slice of one) was paid
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodBNPL       PaymentMethod = "bnpl"
	PaymentMethodMembership PaymentMethod = "membership"
	// PaymentMethodSplit is a pseudo-method set on an order when it carries
	// more than one payment detail. Individual payment details never use it.
	PaymentMethodSplit PaymentMethod = "split"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Valid reports whether the method is one of the accepted payment methods,
// including the split pseudo-method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodUPI, PaymentMethodBNPL, PaymentMethodMembership, PaymentMethodSplit:
		return true
	}
	return false
}
