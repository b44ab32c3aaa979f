package domain

import "time"

// Profile holds the display/contact fields a user manages on the settings
// page. Keyed by account id; upserts overwrite every field.
type Profile struct {
	AccountID string
	Name      string
	Phone     string
	Country   string
	Province  string
	City      string
	Street    string
	UpdatedAt time.Time
}
