package models

type OrderRequest struct {
	UserID string `json:"user_id" example:"u1"`
	URL    string `json:"url" example:"https://example.com/item/123"`
	Source string `json:"source" example:"marketplace"`
}
