package services

import "strings"

// RoleClassifier decides whether an authenticated identity is an admin.
// Admin status is an email allow-list, not a profile attribute.
type RoleClassifier struct {
	adminEmails map[string]struct{}
}

// NewRoleClassifier builds a classifier from a comma-separated allow-list
func NewRoleClassifier(adminEmails string) *RoleClassifier {
	emails := make(map[string]struct{})
	for _, email := range strings.Split(adminEmails, ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			emails[email] = struct{}{}
		}
	}
	return &RoleClassifier{adminEmails: emails}
}

// IsAdmin reports whether the email is on the allow-list. Matching is
// case-insensitive and ignores surrounding whitespace.
func (c *RoleClassifier) IsAdmin(email string) bool {
	_, ok := c.adminEmails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
