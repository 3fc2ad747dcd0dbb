package models

// Order is a single delivery order as returned by the backend. Feedback is
// free-form customer text; an empty string means no feedback was left.
type Order struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	Feedback     string  `json:"feedback"`
}

// WithFeedback returns the subset of orders carrying non-empty feedback text.
// The result is always a fresh slice; the input is not modified.
func WithFeedback(orders []Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Feedback != "" {
			result = append(result, o)
		}
	}
	return result
}
