package models

// Actor is the acting-user context resolved by the platform gateway.
// Admin gates the privileged operations (setting the mechanic directly,
// force-releasing someone else's booking, adding out-of-stock parts).
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Admin bool   `json:"admin,omitempty"`
}
