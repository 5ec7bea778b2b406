package payments

// CreateOrderRequest payment order for a parking booking
type CreateOrderRequest struct {
	Reference   string  `json:"reference"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

// Order payment order created by the payments service
type Order struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	ApprovalURL string `json:"approval_url"`
	Status      string `json:"status"`
}

// ErrorResponse error model from the payments service
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
