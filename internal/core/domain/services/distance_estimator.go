package services

import (
	"fmt"
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// DefaultRoadFactor is the canonical multiplier applied to the
// great-circle distance to approximate real road travel.
const DefaultRoadFactor = 1.2

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceEstimator approximates the road distance between two regions.
//
// The estimate is the haversine great-circle distance between the region
// coordinates, multiplied by a fixed road factor. It is a geometric
// approximation: no road-network routing is involved.
//
// Properties relied on by the rest of the engine:
//   - Estimate(a, a) = 0 for every region a
//   - Estimate(a, b) = Estimate(b, a)
//   - Estimate(a, b) > 0 whenever a and b differ
type DistanceEstimator struct {
	roadFactor float64
}

// NewDistanceEstimator creates an estimator with the given road factor.
// The factor must be at least 1 (roads are never shorter than the
// great-circle line).
func NewDistanceEstimator(roadFactor float64) (DistanceEstimator, error) {
	if roadFactor < 1 {
		return DistanceEstimator{}, errs.NewValueIsInvalidErrorWithCause(
			"roadFactor", fmt.Errorf("%f is not greater than or equal to 1", roadFactor))
	}

	return DistanceEstimator{roadFactor: roadFactor}, nil
}

// Estimate returns the approximate road distance between two regions in
// kilometers. Returns 0 when the regions are equal. Fails when either
// region was not properly constructed.
func (e DistanceEstimator) Estimate(origin, destination kernel.Region) (float64, error) {
	if err := origin.Validate(); err != nil {
		return 0, err
	}
	if err := destination.Validate(); err != nil {
		return 0, err
	}

	if origin.IsEqual(destination) {
		return 0, nil
	}

	return haversine(origin.Coordinates(), destination.Coordinates()) * e.roadFactor, nil
}

// haversine computes the great-circle distance between two points in
// kilometers.
func haversine(a, b kernel.GeoPoint) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
