package models

type OrderResponse struct {
	Status  bool   `json:"status"`
	OrderID string `json:"order_id"`
	Link    string `json:"link"`
}

// ErrorResponse is the body for request-level rejections, e.g. an unknown
// user id.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the body for pipeline failures. Status is always false;
// the error text is deliberately coarse so upstream internals never leak.
type FailureResponse struct {
	Status bool   `json:"status"`
	Error  string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
