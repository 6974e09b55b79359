package models

// Vehicle is the car a booking is raised against. It is a value on the
// booking, never a pointer: a booking with no vehicle payload carries the
// empty placeholder vehicle after normalization.
type Vehicle struct {
	ID       string   `json:"id"`
	Make     string   `json:"make"`
	Model    string   `json:"model"`
	Plate    string   `json:"plate"`
	Bookings []string `json:"bookings"`
}

// Mechanic identifies the assigned mechanic. A nil mechanic on a booking
// means unassigned.
type Mechanic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}
