// Package timeline projects an order's recorded history into the
// customer-facing list of delivery stages.
//
// Projection is a pure read over the order aggregate. Every order yields the
// same five chain stages in order; stages the order has passed carry their
// recorded timestamps, stages still ahead carry estimates derived from the
// creation time. A cancelled order keeps the stages it completed and gains a
// terminal cancellation entry.
package timeline

import (
	"time"

	"parcel/internal/core/domain/model/order"
)

// Stage estimates as offsets from the order's creation time. They reflect
// average durations inside the Nairobi coverage zone.
var stageOffsets = map[order.Status]time.Duration{
	order.StatusAssigned:  5 * time.Minute,
	order.StatusPickedUp:  15 * time.Minute,
	order.StatusInTransit: 20 * time.Minute,
	order.StatusDelivered: 35 * time.Minute,
}

var stageDescriptions = map[order.Status]string{
	order.StatusPending:   "Order placed",
	order.StatusAssigned:  "Driver assigned",
	order.StatusPickedUp:  "Package picked up",
	order.StatusInTransit: "In transit to recipient",
	order.StatusDelivered: "Delivered",
}

// Entry is a single row of the projected timeline.
type Entry struct {
	Status      order.Status
	Description string
	Timestamp   time.Time
	// Estimated marks a stage the order has not reached yet; its Timestamp
	// is a forecast, not a recorded event.
	Estimated bool
	Completed bool
}

// Project builds the timeline for the given order.
//
// The result always starts with the five chain stages. Stages the order has
// reached are completed and stamped with their recorded transition times;
// the rest are estimated from the creation time. If the order was cancelled
// a final entry carries the cancellation reason. Projection never mutates
// the order and is idempotent.
func Project(o *order.Order) ([]Entry, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	stages := order.DeliveryStages()
	entries := make([]Entry, 0, len(stages)+1)
	for _, stage := range stages {
		entries = append(entries, projectStage(o, stage))
	}

	if cancelledAt := o.CancelledAt(); cancelledAt != nil {
		entries = append(entries, Entry{
			Status:      order.StatusCancelled,
			Description: "Cancelled: " + o.CancelReason(),
			Timestamp:   *cancelledAt,
			Completed:   true,
		})
	}

	return entries, nil
}

func projectStage(o *order.Order, stage order.Status) Entry {
	entry := Entry{
		Status:      stage,
		Description: stageDescriptions[stage],
	}

	if o.HasReached(stage) {
		entry.Completed = true
		entry.Timestamp = recordedAt(o, stage)
		return entry
	}

	entry.Estimated = true
	entry.Timestamp = o.CreatedAt().Add(stageOffsets[stage])
	return entry
}

func recordedAt(o *order.Order, stage order.Status) time.Time {
	switch stage {
	case order.StatusAssigned:
		return *o.AssignedAt()
	case order.StatusPickedUp:
		return *o.PickedUpAt()
	case order.StatusInTransit:
		return *o.InTransitAt()
	case order.StatusDelivered:
		return *o.DeliveredAt()
	default:
		return o.CreatedAt()
	}
}
