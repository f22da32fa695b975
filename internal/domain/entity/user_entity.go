package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for the directory domain.
// The identifier is generated by the system at creation time and never reused.
//
// A user with a non-nil ExclusionReason is excluded; there is no transition
// back to active.
type User struct {
	ID              string
	DisplayName     string
	EmailAddress    string
	ExclusionReason *ExclusionReason
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates an active user with a fresh identifier.
func NewUser(displayName, emailAddress string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		DisplayName:  displayName,
		EmailAddress: emailAddress,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Exclude marks the user as excluded with the given reason. Excluding an
// already-excluded user overwrites the reason; there is no un-ban.
func (u *User) Exclude(reason ExclusionReason) {
	r := reason
	u.ExclusionReason = &r
	u.UpdatedAt = time.Now().UTC()
}

func (u *User) IsExcluded() bool {
	return u.ExclusionReason != nil
}
