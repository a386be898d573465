// Package services contains domain services that coordinate operations
// across multiple aggregates.
//
// Domain services hold business logic that does not naturally belong to a
// single aggregate. DriverDispatcher spans the Order and Driver aggregates:
// it picks the best available driver for a pending order and executes the
// assignment on both sides atomically in memory. Persistence of the changed
// aggregates stays with the calling use case.
package services
