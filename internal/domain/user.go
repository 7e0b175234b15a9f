package domain

// Role separates shoppers from the admin console
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// User is the signed-in identity carried by a session token
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Role      Role   `json:"role"`
}

// IsAdmin reports whether the user may use the admin console
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsGuest reports whether the caller browses without signing in
func (u User) IsGuest() bool {
	return u.Role == RoleGuest || u.Role == ""
}

// GuestUser is the identity of an anonymous browser, keyed by a client-chosen id
func GuestUser(sessionID string) User {
	if sessionID == "" {
		sessionID = "anonymous"
	}
	return User{ID: "guest:" + sessionID, Name: "Guest", Role: RoleGuest}
}

// Address is a saved delivery address
type Address struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	FullAddress string `json:"fullAddress"`
	IsDefault   bool   `json:"isDefault"`
}

// PaymentMethod is a saved card; only the last four digits are kept
type PaymentMethod struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Last4     string `json:"last4"`
	Expiry    string `json:"expiry"`
	IsDefault bool   `json:"isDefault"`
}
