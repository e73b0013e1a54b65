package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ServiceTier represents the service level selected for a delivery.
// Each tier carries a fixed per-kilometer rate and an assumed average
// transit speed used for the delivery-time estimate. The tier is chosen
// at creation and never changes (re-pricing requires a new record).
type ServiceTier int

const (
	// TierUnknown represents an invalid or undefined tier.
	TierUnknown ServiceTier = iota

	// TierStandard is the base service level.
	TierStandard

	// TierExpress is the accelerated service level.
	TierExpress

	// TierVIP is the premium service level.
	TierVIP
)

func getTierStrings() map[ServiceTier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[ServiceTier]string{
		TierStandard: "standard",
		TierExpress:  "express",
		TierVIP:      "vip",
	}
}

// Validate checks if the ServiceTier value is valid.
func (t ServiceTier) Validate() error {
	if _, ok := getTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceTier", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the lowercase tier name used on the wire and in storage.
func (t ServiceTier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TierFromString parses a tier name as produced by String.
// Unknown names fail with a ValueIsInvalidError, which callers surface
// as an invalid-parameter rejection before any pricing arithmetic runs.
func TierFromString(raw string) (ServiceTier, error) {
	for tier, name := range getTierStrings() {
		if name == raw {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause("serviceTier", fmt.Errorf("%q is not a valid tier", raw))
}

// RatePerKm returns the tier's rate in currency units per kilometer.
func (t ServiceTier) RatePerKm() float64 {
	switch t {
	case TierStandard:
		return 2
	case TierExpress:
		return 5
	case TierVIP:
		return 7
	default:
		return 0
	}
}

// AverageSpeedKmh returns the assumed average transit speed for the tier,
// in kilometers per hour.
func (t ServiceTier) AverageSpeedKmh() float64 {
	switch t {
	case TierStandard:
		return 50
	case TierExpress:
		return 80
	case TierVIP:
		return 120
	default:
		return 0
	}
}
