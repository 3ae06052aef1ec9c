package services

import (
	"github.com/plannivo/revenue-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Commission resolution is a strict three-tier cascade: a booking-level
// override beats the instructor x service policy, which beats the
// instructor-wide default. The first tier with a non-empty type wins
// entirely; tiers are never blended.

var hundred = decimal.NewFromInt(100)

// commissionTier pairs a policy candidate with the provenance label
// recorded on the ledger row.
type commissionTier struct {
	policy *domain.CommissionPolicy
	source domain.CommissionSource
}

// ResolveCommission determines the effective commission for a booking and
// computes the payout amount from the selected formula. baseAmount must be
// the same amount the ledger row itself records so the percentage formula
// tracks actual revenue. Returns nil when no tier applies.
func ResolveCommission(b domain.BookingRecord, baseAmount decimal.Decimal) *domain.CommissionResult {
	tiers := []commissionTier{
		{policy: b.OverridePolicy, source: domain.CommissionSourceOverride},
		{policy: b.ServicePolicy, source: domain.CommissionSourceService},
		{policy: b.DefaultPolicy, source: domain.CommissionSourceDefault},
	}

	for _, tier := range tiers {
		if tier.policy == nil || tier.policy.Type == "" {
			continue
		}
		return &domain.CommissionResult{
			Type:   tier.policy.Type,
			Value:  tier.policy.Value,
			Source: tier.source,
			Amount: commissionAmount(tier.policy.Type, tier.policy.Value, baseAmount, b.DurationHours),
		}
	}
	return nil
}

// commissionAmount dispatches on the formula type. Amounts are rounded to
// currency-minor-unit precision. Unknown types pay zero rather than fail.
func commissionAmount(ct domain.CommissionType, value, baseAmount, durationHours decimal.Decimal) decimal.Decimal {
	switch ct {
	case domain.CommissionPercentage:
		return baseAmount.Mul(value).Div(hundred).Round(2)
	case domain.CommissionFixedPerLesson:
		return value.Round(2)
	case domain.CommissionFixedPerHour:
		hours := durationHours
		// A zero or missing duration still pays one hour; malformed data
		// must not zero out an instructor's payout.
		if hours.LessThanOrEqual(decimal.Zero) {
			hours = decimal.NewFromInt(1)
		}
		return hours.Mul(value).Round(2)
	default:
		return decimal.Zero
	}
}
