package models

import "time"

// School is the organizational boundary (tenant) a user may belong to
// via User.SchoolID.
type School struct {
	// SchoolID is the unique identifier of the school.
	SchoolID int64 `json:"id"`

	// Name is the display name of the school.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the school was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the School model.
func (s School) TableName() string {
	return "schools"
}
