// Package services contains stateless domain services: the distance
// estimator and the pricing engine. Both are read-only and side-effect
// free, hence freely shared between request handlers without locking.
package services
