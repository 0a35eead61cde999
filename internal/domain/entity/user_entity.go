package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash; the plaintext password never reaches
// this struct.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool

	FullName    string
	PhoneNumber string
	Location    string
	Address     string
	City        string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// RecordLogin refreshes the audit timestamps after a successful login.
func (u *User) RecordLogin(now time.Time) {
	t := now.UTC()
	u.LastLoginAt = &t
	u.UpdatedAt = t
}

// FullAddress joins the optional address parts that are present.
func (u *User) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.Address, u.City, u.Location} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// HasCompleteProfile reports whether the contact-relevant fields are filled.
func (u *User) HasCompleteProfile() bool {
	return strings.TrimSpace(u.FullName) != "" &&
		strings.TrimSpace(u.Email) != "" &&
		strings.TrimSpace(u.PhoneNumber) != ""
}
