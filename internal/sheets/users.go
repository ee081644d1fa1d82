package sheets

import (
	"fbs-backend/internal/models"
)

// UsersClient reads and rewrites the users collection. It never caches; the
// store is the source of truth on every call.
type UsersClient struct {
	client *Client
}

func NewUsersClient(baseURL string) *UsersClient {
	return &UsersClient{client: NewClient(baseURL)}
}

func (u *UsersClient) List() ([]models.User, error) {
	var users []models.User
	if err := u.client.List(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateCredits overwrites a user's credit balance. Plain read-modify-write:
// two concurrent pipelines debiting the same user can lose an update.
func (u *UsersClient) UpdateCredits(id, credits string) error {
	return u.client.UpdateByID(id, []models.CreditsUpdate{{Credits: credits}})
}
