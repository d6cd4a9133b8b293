package leads

import "strings"

// UserInfo is a visitor's submitted contact details.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate checks the contact fields and returns the trimmed UserInfo.
// Name and email are required; phone is optional. Email format beyond
// non-emptiness is the backend's responsibility.
func Validate(name, email, phone string) (UserInfo, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return UserInfo{}, ErrNameRequired
	}
	if email == "" {
		return UserInfo{}, ErrEmailRequired
	}

	return UserInfo{Name: name, Email: email, Phone: phone}, nil
}
