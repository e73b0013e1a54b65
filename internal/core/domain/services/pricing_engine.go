package services

import (
	"fmt"
	"math"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
)

const (
	// DefaultMinimumPrice is the floor applied to every computed price.
	DefaultMinimumPrice = 500

	// DefaultDriverShare is the fraction of the price paid out to the
	// driver who completed the delivery.
	DefaultDriverShare = 0.70
)

// PricingEngine turns an estimated distance, service tier and package
// category into a binding quote, and derives driver earnings from a
// price. It is deterministic: the same inputs always produce the same
// quote.
type PricingEngine struct {
	minimumPrice int
	driverShare  float64
}

// NewPricingEngine creates a pricing engine. The minimum price must be
// positive and the driver share must lie in (0, 1].
func NewPricingEngine(minimumPrice int, driverShare float64) (PricingEngine, error) {
	if minimumPrice <= 0 {
		return PricingEngine{}, errs.NewValueIsInvalidErrorWithCause(
			"minimumPrice", fmt.Errorf("%d is not greater than 0", minimumPrice))
	}
	if driverShare <= 0 || driverShare > 1 {
		return PricingEngine{}, errs.NewValueIsInvalidErrorWithCause(
			"driverShare", fmt.Errorf("%f is not in (0, 1]", driverShare))
	}

	return PricingEngine{minimumPrice: minimumPrice, driverShare: driverShare}, nil
}

// Price computes the quote for a delivery over the given road distance.
//
// The price is tier rate per km, times the distance, times the category
// multiplier, rounded to the nearest whole unit and never below the
// configured minimum. The time bound is the distance divided by the
// tier's average speed.
func (p PricingEngine) Price(
	distanceKm float64,
	tier delivery.ServiceTier,
	category delivery.PackageCategory,
) (delivery.Quote, error) {
	if err := tier.Validate(); err != nil {
		return delivery.Quote{}, err
	}
	if err := category.Validate(); err != nil {
		return delivery.Quote{}, err
	}
	if distanceKm < 0 {
		return delivery.Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"distanceKm", fmt.Errorf("%f is negative", distanceKm))
	}

	price := int(math.Round(tier.RatePerKm() * distanceKm * category.Multiplier()))
	if price < p.minimumPrice {
		price = p.minimumPrice
	}

	return delivery.NewQuote(distanceKm, price, distanceKm/tier.AverageSpeedKmh())
}

// Earnings returns the driver payout for a completed delivery at the
// given price, rounded to the nearest whole unit. Earnings are always
// derived on read and never stored.
func (p PricingEngine) Earnings(price int) int {
	return int(math.Round(float64(price) * p.driverShare))
}

// DriverShare reports the configured payout fraction.
func (p PricingEngine) DriverShare() float64 {
	return p.driverShare
}
