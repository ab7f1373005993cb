package domain

import "time"

// User is an account able to authenticate against the API. Admin users may
// mutate roster resources; everyone else is read-only beyond their own
// account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
