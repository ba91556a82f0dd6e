package models

import "encoding/json"

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SkillCreateRequest is the body of POST /api/skills.
type SkillCreateRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// TimelineRequest is the body of POST /api/timeline and PUT /api/timeline/{id}.
// EndDate and Organization are optional; empty strings are normalised to
// absent values before the entry is persisted.
type TimelineRequest struct {
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
}

// GearCreateRequest is the body of POST /api/gear.
type GearCreateRequest struct {
	Name string `json:"name"`
}

// ProfileUpdateRequest is the body of POST /api/profile.
//
// ExperienceYears and ProjectCount use json.Number so the admin UI may send
// them either as JSON numbers or as numeric strings. Values that do not
// parse to an integer are rejected at the service layer instead of being
// coerced to zero.
type ProfileUpdateRequest struct {
	Name            string      `json:"name"`
	Roles           []string    `json:"roles"`
	ExperienceYears json.Number `json:"experienceYears"`
	ProjectCount    json.Number `json:"projectCount"`
}
