package domain

// GuestName is shown in greetings when the user never supplied a name.
const GuestName = "Traveler"

// User is the mock identity written on login or signup.
// There is no password: the presence of the record is the whole session.
type User struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// DisplayName returns Name, falling back to GuestName.
func (u User) DisplayName() string {
	if u.Name == "" {
		return GuestName
	}
	return u.Name
}
