// Package kernel contains shared domain primitives used across aggregates:
// the UUID identity value object, geographic points, and the closed table
// of delivery regions.
package kernel
