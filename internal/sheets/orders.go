package sheets

import (
	"time"

	"fbs-backend/internal/models"
)

// OrdersClient writes the orders collection. Orders are created once in
// processing state and patched at most once more when the pipeline finishes.
type OrdersClient struct {
	client *Client
}

func NewOrdersClient(baseURL string) *OrdersClient {
	return &OrdersClient{client: NewClient(baseURL)}
}

func (o *OrdersClient) Create(order models.Order) error {
	return o.client.Create([]models.Order{order})
}

func (o *OrdersClient) MarkReady(id, filename, link string, at time.Time) error {
	return o.client.UpdateByID(id, []models.OrderUpdate{{
		Status:      models.OrderStatusReady,
		Filename:    filename,
		DropboxLink: link,
		UpdatedAt:   at,
	}})
}
