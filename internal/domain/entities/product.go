package entities

// Product is a line item of the order that originated a payment.
//
// The sum of line-item totals is assumed to match the order total upstream;
// this service does not re-validate it.

type Product struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Total returns the line-item total.
func (p Product) Total() float64 {
	return float64(p.Quantity) * p.UnitPrice
}
