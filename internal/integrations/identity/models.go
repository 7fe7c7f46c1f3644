package identity

// User is the member record returned by the identity provider.
type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	Rating      int    `json:"rating"`
	Division    string `json:"division"`
	Country     string `json:"country"`
	ATCRating   int    `json:"atcRating"`
	PilotRating int    `json:"pilotRating"`
}

// StaffMember is one entry of the provider's staff roster.
type StaffMember struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Division  string `json:"division"`
	Country   string `json:"country"`
}
