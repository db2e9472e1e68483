package pricing

// FulfillmentMode determines whether an order pays a delivery fee.
type FulfillmentMode string

const (
	ModeDelivery FulfillmentMode = "delivery"
	ModePickup   FulfillmentMode = "pickup"
)

// FeePolicy computes the delivery fee for an order. Injected into the
// order controller so the tiering rules can change without touching the
// pricing arithmetic.
type FeePolicy interface {
	Fee(mode FulfillmentMode, postalCode string) float64
}

// TieredPostalFee buckets the fee by the first digit of the postal code:
// 0-3 pays the low band, 4-6 the mid band, 7-9 the high band. Pickup is
// always free. The bands carry no verified business meaning; they mirror
// the store's current placeholder policy.
type TieredPostalFee struct {
	Low  float64
	Mid  float64
	High float64
}

// DefaultFeePolicy matches the fee table used by the customer front-end.
func DefaultFeePolicy() TieredPostalFee {
	return TieredPostalFee{Low: 5.00, Mid: 8.00, High: 12.00}
}

func (t TieredPostalFee) Fee(mode FulfillmentMode, postalCode string) float64 {
	if mode != ModeDelivery {
		return 0
	}
	if postalCode == "" {
		return t.Low
	}
	switch d := postalCode[0]; {
	case d >= '0' && d <= '3':
		return t.Low
	case d >= '4' && d <= '6':
		return t.Mid
	case d >= '7' && d <= '9':
		return t.High
	}
	return t.Low
}
