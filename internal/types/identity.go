package types

// LinkKind classifies a profile or portfolio URL.
type LinkKind string

// Recognized link kinds. URLs that match none of the known hosts are tagged
// LinkOther.
const (
	LinkLinkedIn  LinkKind = "linkedin"
	LinkGitHub    LinkKind = "github"
	LinkPortfolio LinkKind = "portfolio"
	LinkOther     LinkKind = "other"
)

// Link is a tagged URL attached to an identity or project.
type Link struct {
	Type LinkKind `json:"type"`
	URL  string   `json:"url"`
}

// Identity holds the contact block of a resume.
type Identity struct {
	Name     string `json:"name"`
	Headline string `json:"headline,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Links    []Link `json:"links"`
}
