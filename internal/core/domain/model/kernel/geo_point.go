package kernel

import "fmt"

// GeoPoint is an immutable geographic coordinate in decimal degrees.
// Points are only produced by the region table, so no range validation
// is needed beyond what the table itself guarantees.
type GeoPoint struct {
	lat float64
	lon float64
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// String returns a human-readable representation, useful for logging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.4f,%.4f)", p.lat, p.lon)
}
