package dashboard

import "github.com/ArowuTest/intern-dashboard/internal/models"

// CredentialChecker decides whether password unlocks record. Swapping the
// implementation is the only change needed to move to hashed passwords.
type CredentialChecker interface {
	Check(record *models.Intern, password string) bool
}

// PlaintextChecker compares passwords as submitted. The listing endpoint
// never exposes stored passwords, so when the record carries none any
// non-empty password is accepted.
type PlaintextChecker struct{}

// Check implements CredentialChecker
func (PlaintextChecker) Check(record *models.Intern, password string) bool {
	if record.Password != "" {
		return record.Password == password
	}
	return password != ""
}
