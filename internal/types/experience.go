package types

// Experience represents a single work history entry. Bullets preserve the
// order they appeared in the source text. An empty EndDate means the role is
// ongoing.
type Experience struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets"`
	Tech      []string `json:"tech"`
}

// Education represents a degree or program entry.
type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field,omitempty"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	GPA       string `json:"gpa,omitempty"`
}
