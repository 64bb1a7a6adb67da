package models

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	RoleSecretary Role = "secretary"
)

// UserStatus enum
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// PasswordCost is the bcrypt cost used by SetPassword
var PasswordCost = bcrypt.DefaultCost

// User represents a practice account stored in the users collection
type User struct {
	BaseModel
	Email            string     `json:"email"`
	Password         string     `json:"password"` // bcrypt hash; the collection is never sent to clients as-is
	Name             string     `json:"name"`
	Role             Role       `json:"role"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address,omitempty"`
	Specialty        string     `json:"specialty,omitempty"`
	AssignedDoctorID string     `json:"assignedDoctorId,omitempty"`
	Status           UserStatus `json:"status"`
	CreatedAt        string     `json:"createdAt,omitempty"`
}

// UserSanitized represents the user data that is safe to hand to callers and sessions.
type UserSanitized struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Role             Role       `json:"role"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address,omitempty"`
	Specialty        string     `json:"specialty,omitempty"`
	AssignedDoctorID string     `json:"assignedDoctorId,omitempty"`
	Status           UserStatus `json:"status"`
	CreatedAt        string     `json:"createdAt,omitempty"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's stored password.
// Records written by older clients may still hold the password in clear text.
func (u *User) CheckPassword(password string) bool {
	if u.HasLegacyPassword() {
		return subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasLegacyPassword reports whether the stored password is not a bcrypt hash.
// A clear-text password may itself start with "$2", so the whole hash is parsed.
func (u *User) HasLegacyPassword() bool {
	_, err := bcrypt.Cost([]byte(u.Password))
	return err != nil
}

// IsSuspended reports whether the account is blocked from logging in.
func (u *User) IsSuspended() bool {
	return u.Status == UserStatusSuspended
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             u.Role,
		Phone:            u.Phone,
		Address:          u.Address,
		Specialty:        u.Specialty,
		AssignedDoctorID: u.AssignedDoctorID,
		Status:           u.Status,
		CreatedAt:        u.CreatedAt,
	}
}
