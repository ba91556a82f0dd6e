package models

// TimelineEntry is a single entry of the career timeline collection.
//
// EndDate and Organization are optional: a nil EndDate marks an ongoing
// entry, which is distinct from an empty string. The repository persists
// them as SQL NULL.
type TimelineEntry struct {
	ID           int64   `json:"id"`
	StartDate    string  `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Title        string  `json:"title"`
	Organization *string `json:"organization"`
	Description  string  `json:"description"`
	Order        int64   `json:"order"`
}

// TableName returns the name of the database table
// associated with the TimelineEntry model.
func (t TimelineEntry) TableName() string {
	return "timeline"
}
