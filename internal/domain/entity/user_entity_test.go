package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u := NewUser("Jane Doe", "jane.doe@example.com")

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Jane Doe", u.DisplayName)
	assert.Equal(t, "jane.doe@example.com", u.EmailAddress)
	assert.Nil(t, u.ExclusionReason)
	assert.False(t, u.IsExcluded())

	other := NewUser("Jane Doe", "jane.doe@example.com")
	assert.NotEqual(t, u.ID, other.ID, "identifiers are fresh per creation")
}

func TestExcludeIsOneWay(t *testing.T) {
	u := NewUser("Jane Doe", "jane.doe@example.com")

	u.Exclude(ReasonCheating)

	require.NotNil(t, u.ExclusionReason)
	assert.True(t, u.IsExcluded())
	assert.Equal(t, ReasonCheating, *u.ExclusionReason)
}

func TestExcludeOverwritesReason(t *testing.T) {
	u := NewUser("Jane Doe", "jane.doe@example.com")

	u.Exclude(ReasonCheating)
	u.Exclude(ReasonPaymentFraud)

	require.NotNil(t, u.ExclusionReason)
	assert.Equal(t, ReasonPaymentFraud, *u.ExclusionReason)
}

func TestExclusionReasonFromID(t *testing.T) {
	r, err := ExclusionReasonFromID(2)
	require.NoError(t, err)
	assert.Equal(t, ReasonCheating, r)
	assert.Equal(t, "cheating", r.String())

	_, err = ExclusionReasonFromID(99)
	assert.ErrorIs(t, err, ErrInvalidReasonCode)
}

func TestDefaultExclusionReasonIDIsKnown(t *testing.T) {
	r, err := ExclusionReasonFromID(DefaultExclusionReasonID)
	require.NoError(t, err)
	assert.Equal(t, ReasonCheating, r)
}
