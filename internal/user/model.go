package user

import (
	"time"

	"github.com/MikeMC777/commerce-api/internal/auth"
)

type Role struct {
	ID        int64
	Authority auth.Role
}

type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	BirthDate    *time.Time
	PasswordHash string
	Roles        []Role
}

func (u *User) HasRole(r auth.Role) bool {
	for _, have := range u.Roles {
		if have.Authority == r {
			return true
		}
	}
	return false
}

func (u *User) Principal() auth.Principal {
	p := auth.Principal{UserID: u.ID, Email: u.Email}
	for _, r := range u.Roles {
		p.Roles = append(p.Roles, r.Authority)
	}
	return p
}

// Profile is the caller's own view of their account.
// swagger:model
type Profile struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	BirthDate string   `json:"birthDate,omitempty" example:"2001-07-25"`
	Roles     []string `json:"roles"`
}

func (u *User) Profile() Profile {
	out := Profile{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Roles: make([]string, 0, len(u.Roles))}
	if u.BirthDate != nil {
		out.BirthDate = u.BirthDate.Format(time.DateOnly)
	}
	for _, r := range u.Roles {
		out.Roles = append(out.Roles, string(r.Authority))
	}
	return out
}

// Credentials is the login body.
// swagger:model LoginRequest
type Credentials struct {
	Email    string `json:"email"    validate:"required,email" example:"maria@gmail.com"`
	Password string `json:"password" validate:"required"       example:"123456"`
}

// Token is the login response.
// swagger:model
type Token struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"86400"`
}
