package services

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const orderIDLength = 6

// NewOrderID generates the external-facing order handle, ord_ followed by a
// short random token. Collision-resistant across concurrent requests without
// any shared state.
func NewOrderID() (string, error) {
	id, err := gonanoid.New(orderIDLength)
	if err != nil {
		return "", err
	}
	return "ord_" + id, nil
}
