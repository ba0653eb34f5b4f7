// Package models holds the data exchanged with the Devraha API.
package models

// Subject is a signed-in principal as reported by the API. Admins never carry
// EmergencyRecoveryContact.
type Subject struct {
	ID                       string `json:"id"`
	Email                    string `json:"email"`
	Name                     string `json:"name"`
	IsVerified               bool   `json:"isVerified"`
	TwoFactorEnabled         bool   `json:"twoFactorEnabled"`
	DateOfBirth              string `json:"dateOfBirth,omitempty"`
	EmergencyRecoveryContact string `json:"emergencyRecoveryContact,omitempty"`
}

// Clone returns a copy of s, or nil for a nil receiver.
func (s *Subject) Clone() *Subject {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
