package statuses

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "already canonical", raw: "completed", want: "completed"},
		{name: "uppercase", raw: "COMPLETED", want: "completed"},
		{name: "surrounding whitespace", raw: "  Completed  ", want: "completed"},
		{name: "hyphenated", raw: "checked-out", want: "checked_out"},
		{name: "spaces", raw: "No Show", want: "no_show"},
		{name: "mixed punctuation run", raw: "pending -- refund!!", want: "pending_refund"},
		{name: "slash separator", raw: "cancelled/refunded", want: "cancelled_refunded"},
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: "   ", want: ""},
		{name: "punctuation only", raw: "---", want: ""},
		{name: "digits preserved", raw: "closed (v2)", want: "closed_v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestEligibilitySets(t *testing.T) {
	assert.True(t, BookingEligible(Normalize("Completed")))
	assert.True(t, BookingEligible("attended"))
	assert.False(t, BookingEligible("cancelled"))
	assert.False(t, BookingEligible(""))

	assert.True(t, RentalEligible(Normalize("Returned")))
	assert.True(t, RentalEligible("active"))
	assert.False(t, RentalEligible("checked_out"))

	assert.True(t, AccommodationEligible(Normalize("Checked-Out")))
	assert.True(t, AccommodationEligible("confirmed"))
	assert.False(t, AccommodationEligible("returned"))
}

func TestIsNegative(t *testing.T) {
	for _, token := range []string{"cancelled", "canceled", "refunded", "voided", "disputed", "no_show", "deleted", "pending_refund"} {
		assert.True(t, IsNegative(token), token)
	}
	assert.False(t, IsNegative("completed"))
	assert.False(t, IsNegative(""))
}
