package delivery

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrQuoteIsNotConstructed is returned when attempting to use an
// improperly initialized Quote.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")

// Quote is the immutable pricing result computed once, server-side, at
// record creation: road distance, final price (floor already applied),
// and the maximum delivery time. Values supplied by clients are never
// accepted as quotes; the pricing engine is the only producer.
type Quote struct { //nolint:recvcheck //using for validation
	distanceKm           float64
	price                int
	maxDeliveryTimeHours float64

	guard guard.ConstructorGuard
}

// NewQuote creates a validated Quote.
// Distance and delivery time must be non-negative, price must be positive.
func NewQuote(distanceKm float64, price int, maxDeliveryTimeHours float64) (Quote, error) {
	quote := Quote{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quote.setDistanceKm(distanceKm),
		quote.setPrice(price),
		quote.setMaxDeliveryTimeHours(maxDeliveryTimeHours),
	); err != nil {
		return Quote{}, err
	}

	return quote, nil
}

// Validate checks that the Quote was created via NewQuote.
func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// DistanceKm returns the estimated road distance in kilometers.
func (q Quote) DistanceKm() float64 {
	return q.distanceKm
}

// Price returns the final price in currency units.
func (q Quote) Price() int {
	return q.price
}

// MaxDeliveryTimeHours returns the unrounded delivery-time estimate.
// Formatting (half-hour rounding, hours+minutes) is a presentation
// concern left to the caller.
func (q Quote) MaxDeliveryTimeHours() float64 {
	return q.maxDeliveryTimeHours
}

func (q *Quote) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceKm", fmt.Errorf("%f is not greater than or equal to 0", distanceKm))
	}
	q.distanceKm = distanceKm
	return nil
}

func (q *Quote) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	q.price = price
	return nil
}

func (q *Quote) setMaxDeliveryTimeHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxDeliveryTimeHours", fmt.Errorf("%f is not greater than or equal to 0", hours))
	}
	q.maxDeliveryTimeHours = hours
	return nil
}
