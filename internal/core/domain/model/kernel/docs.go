// Package kernel contains shared value objects used across the domain model:
// identifiers (UUID, TrackingCode), contact and route primitives (Phone,
// Address, GeoPoint) and the Clock abstraction that keeps time-dependent
// domain logic deterministic and testable.
//
// All value objects are immutable and must be created through their
// constructor functions; zero values fail Validate.
package kernel
