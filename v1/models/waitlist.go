package models

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// WaitlistEntry represents the waitlist_entries table
type WaitlistEntry struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:text;not null" json:"name"`
	Email     string    `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	Role      string    `gorm:"column:role;type:varchar(50);not null" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM
func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}

// CreateWaitlistRequest is the signup payload
type CreateWaitlistRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Validate checks the payload and returns the first offending field
func (r *CreateWaitlistRequest) Validate() *ValidationError {
	if strings.TrimSpace(r.Name) == "" {
		return Invalid("name", "Name is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return Invalid("email", "Please enter a valid email address")
	}
	if !oneOf(WaitlistRoles, r.Role) {
		return Invalid("role", "Invalid role")
	}
	return nil
}
