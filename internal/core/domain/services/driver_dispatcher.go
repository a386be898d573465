package services

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/driver"
	"parcel/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no suitable driver is available for
// order dispatch. This occurs when either no drivers are provided or none
// of the provided drivers is currently available.
var ErrDriverNotFound = errors.New("driver not found")

// DriverDispatcher is a domain service responsible for finding and assigning
// the best available driver for a pending order.
//
// Business rules:
//   - Orders must be valid and in pending status before dispatch
//   - Only available drivers are considered
//   - Selection prioritizes the highest rating; ties keep the first seen
//   - Assignment updates both sides: the driver becomes busy and the order
//     moves to assigned with the driver's snapshot stamped on it
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch finds the best available driver for the given order and executes
// the assignment on both aggregates. Returns ErrDriverNotFound if no driver
// is available.
func (d DriverDispatcher) Dispatch(o *order.Order, drivers []*driver.Driver, now time.Time) (*driver.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	bestDriver, err := d.findBestDriver(drivers)
	if err != nil {
		return nil, err
	}

	snapshot, err := bestDriver.Snapshot()
	if err != nil {
		return nil, err
	}

	if err = o.Assign(bestDriver.ID(), snapshot, now); err != nil {
		return nil, err
	}

	if err = bestDriver.MarkBusy(); err != nil {
		return nil, err
	}

	return bestDriver, nil
}

// findBestDriver picks the available driver with the highest rating.
func (d DriverDispatcher) findBestDriver(drivers []*driver.Driver) (*driver.Driver, error) {
	var (
		bestDriver *driver.Driver
		bestRating = -1.0
	)

	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailable() {
			continue
		}

		if candidate.Rating() > bestRating {
			bestRating = candidate.Rating()
			bestDriver = candidate
		}
	}

	if bestDriver == nil {
		return nil, ErrDriverNotFound
	}

	return bestDriver, nil
}
