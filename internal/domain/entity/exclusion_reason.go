package entity

import "errors"

// ExclusionReason is the small enumerated code attached to an excluded user.
type ExclusionReason byte

const (
	ReasonUnsportsmanlike ExclusionReason = 1
	ReasonCheating        ExclusionReason = 2
	ReasonPaymentFraud    ExclusionReason = 3
)

// DefaultExclusionReasonID is applied when a caller bans without a reason.
const DefaultExclusionReasonID byte = 2

var ErrInvalidReasonCode = errors.New("invalid exclusion reason code")

var reasonNames = map[ExclusionReason]string{
	ReasonUnsportsmanlike: "unsportsmanlike_conduct",
	ReasonCheating:        "cheating",
	ReasonPaymentFraud:    "payment_fraud",
}

// ExclusionReasonFromID resolves a raw reason code into a domain value.
// Unknown codes fail with ErrInvalidReasonCode.
func ExclusionReasonFromID(id byte) (ExclusionReason, error) {
	r := ExclusionReason(id)
	if _, ok := reasonNames[r]; !ok {
		return 0, ErrInvalidReasonCode
	}
	return r, nil
}

func (r ExclusionReason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}
