package types

// Project represents a personal or professional project entry.
type Project struct {
	Name     string   `json:"name"`
	OneLiner string   `json:"one_liner,omitempty"`
	Bullets  []string `json:"bullets"`
	Tech     []string `json:"tech"`
	Links    []string `json:"links"`
}

// Publication represents a published paper or article.
type Publication struct {
	Title string   `json:"title"`
	Venue string   `json:"venue"`
	Year  string   `json:"year"`
	Links []string `json:"links"`
}

// Certification represents a professional certification.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date,omitempty"`
}
