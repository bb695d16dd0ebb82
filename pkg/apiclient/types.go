package apiclient

import (
	"time"

	"github.com/google/uuid"
)

// RegisterParams is the payload for POST /api/auth/register.
type RegisterParams struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	AccessToken     string `json:"accessToken"`
	RefreshToken    string `json:"refreshToken"`
	NeedsOnboarding bool   `json:"needsOnboarding"`
}

// RefreshResponse is returned by the token-refresh endpoint. The refresh
// token is not rotated by that call, so only the access token comes back.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// User is the authenticated profile returned by GET /api/users/me.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Roles         []string  `json:"roles"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FullName joins the user's first and last name for display.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
