package statuses

import (
	"regexp"
	"strings"
)

// The three transactional sources feed the ledger with free-form status
// text ("Checked Out", "pending-refund", "NO SHOW"). Everything is reduced
// to a canonical token before it is compared against the eligibility sets
// or stored on a ledger row.

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize reduces raw status text to a canonical token: trimmed,
// lowercased, with every run of non-alphanumeric characters collapsed to a
// single underscore. Empty or whitespace-only input yields "".
func Normalize(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = nonAlnum.ReplaceAllString(token, "_")
	return strings.Trim(token, "_")
}

// Eligible status tokens per source: consummated, chargeable
// transactions. Reversal tokens from the negative set also reach the
// ledger so the aggregator can net them; anything else is excluded at
// extraction.
var (
	bookingEligible = map[string]struct{}{
		"completed": {},
		"done":      {},
		"attended":  {},
		"finished":  {},
	}
	rentalEligible = map[string]struct{}{
		"completed": {},
		"returned":  {},
		"closed":    {},
		"active":    {},
		"done":      {},
	}
	accommodationEligible = map[string]struct{}{
		"completed":   {},
		"checked_out": {},
		"closed":      {},
		"active":      {},
		"confirmed":   {},
	}
)

// negative holds reversal-style tokens. Rows carrying these still
// materialize in the ledger; the aggregator nets their amounts out of the
// expected totals into the refunded total.
var negative = map[string]struct{}{
	"cancelled":      {},
	"canceled":       {},
	"refunded":       {},
	"voided":         {},
	"disputed":       {},
	"no_show":        {},
	"deleted":        {},
	"pending_refund": {},
}

// BookingEligible reports whether the token is a chargeable booking status.
func BookingEligible(token string) bool {
	_, ok := bookingEligible[token]
	return ok
}

// RentalEligible reports whether the token is a chargeable rental status.
func RentalEligible(token string) bool {
	_, ok := rentalEligible[token]
	return ok
}

// AccommodationEligible reports whether the token is a chargeable
// accommodation status.
func AccommodationEligible(token string) bool {
	_, ok := accommodationEligible[token]
	return ok
}

// IsNegative reports whether the token represents a reversal (refund,
// cancellation, dispute, void, no-show).
func IsNegative(token string) bool {
	_, ok := negative[token]
	return ok
}
