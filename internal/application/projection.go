package application

import "user-directory/internal/domain/entity"

// UserProjection is the externally-visible view of a user. It is what the
// API returns and what gets mirrored into the cache; it is rebuildable at
// any time from the durable record.
type UserProjection struct {
	ID                  string `json:"id"`
	DisplayName         string `json:"display_name"`
	EmailAddress        string `json:"email_address"`
	ExclusionReasonCode *byte  `json:"exclusion_reason_code,omitempty"`
}

func ProjectionOf(u *entity.User) *UserProjection {
	p := &UserProjection{
		ID:           u.ID,
		DisplayName:  u.DisplayName,
		EmailAddress: u.EmailAddress,
	}
	if u.ExclusionReason != nil {
		code := byte(*u.ExclusionReason)
		p.ExclusionReasonCode = &code
	}
	return p
}
