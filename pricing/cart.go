package pricing

// Cart is the explicit, serializable cart state. The browser keeps one of
// these per session and the server rebuilds it from the submitted order
// payload; there is no ambient global cart anywhere.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add puts a line into the cart. A quantity below 1 is clamped to 1.
// Lines for the same product merge (quantities summed) only when they
// share the same customization fingerprint; any difference in extras,
// removed ingredients or observation keeps them apart.
func (c *Cart) Add(line Line) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	fp := line.Customization.Fingerprint()
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID &&
			c.Lines[i].Customization.Fingerprint() == fp {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// Subtotal sums every line total, before the delivery fee.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}

// Total is the order total: subtotal plus the delivery fee.
func (c *Cart) Total(deliveryFee float64) float64 {
	return c.Subtotal() + deliveryFee
}

// IsEmpty reports whether the cart has no lines. Empty carts are rejected
// at submission time.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
