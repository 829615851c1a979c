// Package fire turns a raw FIRE snapshot into the progress, status and tier
// classifications a view renders. Pure functions, no side effects.
package fire

import (
	"fmt"
	"math"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
)

// Tier is a traffic-light classification for a snapshot metric.
type Tier string

const (
	TierPositive Tier = "positive"
	TierCaution  Tier = "caution"
	TierNegative Tier = "negative"
)

// Classification thresholds. Savings rate and emergency months map to
// tiers at these floors.
const (
	savingsRatePositive = 30.0
	savingsRateCaution  = 15.0
	emergencyPositive   = 6.0
	emergencyCaution    = 3.0
)

// Presentation is the display-ready derivation of one snapshot.
type Presentation struct {
	HasProfile    bool
	Progress      float64 // percent, clamped to [0, 100]
	OnTrack       bool
	StatusLabel   string
	SavingsTier   Tier
	EmergencyTier Tier
}

// Present derives the presentation contract from a snapshot. A nil snapshot
// or one without a profile yields the pending state: the view shows
// loading/empty instead of classifying garbage.
func Present(s *domain.FireSnapshot) Presentation {
	if s == nil || !s.HasProfile {
		return Presentation{}
	}
	return Presentation{
		HasProfile:    true,
		Progress:      clamp(s.FireProgress, 0, 100),
		OnTrack:       s.OnTrack,
		StatusLabel:   statusLabel(s),
		SavingsTier:   SavingsRateTier(s.SavingsRate),
		EmergencyTier: EmergencyFundTier(s.EmergencyMonths),
	}
}

// SavingsRateTier classifies a savings rate percentage.
func SavingsRateTier(rate float64) Tier {
	switch {
	case rate >= savingsRatePositive:
		return TierPositive
	case rate >= savingsRateCaution:
		return TierCaution
	default:
		return TierNegative
	}
}

// EmergencyFundTier classifies months of expenses covered.
func EmergencyFundTier(months float64) Tier {
	switch {
	case months >= emergencyPositive:
		return TierPositive
	case months >= emergencyCaution:
		return TierCaution
	default:
		return TierNegative
	}
}

func statusLabel(s *domain.FireSnapshot) string {
	if s.OnTrack {
		return "On Track"
	}
	return fmt.Sprintf("%d yr to go", int(math.Ceil(s.YearsToFire)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
