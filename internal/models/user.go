package models

// User is a row in the users collection of the record store. Credits travel
// as a decimal string because the store persists every cell as text.
type User struct {
	ID      string `json:"id"`
	Credits string `json:"credits"`
}

// CreditsUpdate is the partial-update payload for a user row.
type CreditsUpdate struct {
	Credits string `json:"credits"`
}
