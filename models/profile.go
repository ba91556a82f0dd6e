package models

// ProfileID is the fixed primary key of the single profile row.
// The row is never created or deleted through the API, only updated.
const ProfileID int64 = 1

// Profile is the owner's profile record. Exactly one row exists.
type Profile struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Roles           []string `json:"roles"`
	ExperienceYears int64    `json:"experienceYears"`
	ProjectCount    int64    `json:"projectCount"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
