package order

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of a parcel delivery. It owns the delivery
// status state machine, the payment status axis, the per-transition
// timestamps the timeline is projected from, and post-delivery feedback.
//
// Invariants:
//   - identity (id, tracking code) is immutable once assigned
//   - status transitions follow the chain in status.go; terminal orders
//     accept no mutation except feedback on delivered ones
//   - each transition timestamp is set at most once and timestamps are
//     monotonically non-decreasing along the chain
//   - exactly one of deliveredAt/cancelledAt may ever be set
//   - the charged price is stamped at creation from the pricing breakdown
//     and never recomputed
//
// All mutation goes through the aggregate's methods; callers receive typed
// errors from internal/pkg/errs on every precondition violation. Operations
// take explicit time values; nothing here reads the wall clock.
type Order struct {
	id           kernel.UUID
	trackingCode kernel.TrackingCode
	customerID   kernel.UUID

	driverID *kernel.UUID
	driver   *DriverSnapshot

	route               Route
	pkg                 Package
	recipient           Recipient
	specialInstructions string

	status        Status
	paymentMethod PaymentMethod
	paymentTerm   PaymentTerm
	paymentStatus PaymentStatus

	// price is the charged total from the pricing breakdown, in whole
	// currency units
	price int

	cancelReason string

	createdAt   time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	inTransitAt *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time
	completedAt *time.Time

	customerFeedback *Feedback
	driverFeedback   *Feedback

	// version supports the repository's optimistic concurrency check
	version int

	isConstructed bool
}

// NewOrder creates an Order in Pending status with the charged price stamped
// from the pricing breakdown total. The id and tracking code are generated by
// the caller so creation stays deterministic under test.
func NewOrder(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	customerID kernel.UUID,
	route Route,
	pkg Package,
	recipient Recipient,
	specialInstructions string,
	paymentMethod PaymentMethod,
	paymentTerm PaymentTerm,
	price int,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:              StatusPending,
		paymentStatus:       PaymentStatusPending,
		specialInstructions: specialInstructions,
		version:             1,
		isConstructed:       true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTrackingCode(trackingCode),
		order.setCustomerID(customerID),
		order.setRoute(route),
		order.setPackage(pkg),
		order.setRecipient(recipient),
		order.setPaymentMethod(paymentMethod),
		order.setPaymentTerm(paymentTerm),
		order.setPrice(price),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrderParams carries the full persisted state of an order for
// reconstruction from storage.
type RestoreOrderParams struct {
	ID                  kernel.UUID
	TrackingCode        kernel.TrackingCode
	CustomerID          kernel.UUID
	DriverID            *kernel.UUID
	Driver              *DriverSnapshot
	Route               Route
	Package             Package
	Recipient           Recipient
	SpecialInstructions string
	Status              Status
	PaymentMethod       PaymentMethod
	PaymentTerm         PaymentTerm
	PaymentStatus       PaymentStatus
	Price               int
	CancelReason        string
	CreatedAt           time.Time
	AssignedAt          *time.Time
	PickedUpAt          *time.Time
	InTransitAt         *time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
	CompletedAt         *time.Time
	CustomerFeedback    *Feedback
	DriverFeedback      *Feedback
	Version             int
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any persisted status and the recorded
// transition timestamps; the restored order behaves identically to one that
// reached the same state through domain operations.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		driverID:            params.DriverID,
		driver:              params.Driver,
		specialInstructions: params.SpecialInstructions,
		cancelReason:        params.CancelReason,
		assignedAt:          params.AssignedAt,
		pickedUpAt:          params.PickedUpAt,
		inTransitAt:         params.InTransitAt,
		deliveredAt:         params.DeliveredAt,
		cancelledAt:         params.CancelledAt,
		completedAt:         params.CompletedAt,
		customerFeedback:    params.CustomerFeedback,
		driverFeedback:      params.DriverFeedback,
		isConstructed:       true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setTrackingCode(params.TrackingCode),
		order.setCustomerID(params.CustomerID),
		order.setRoute(params.Route),
		order.setPackage(params.Package),
		order.setRecipient(params.Recipient),
		order.setStatus(params.Status),
		order.setPaymentMethod(params.PaymentMethod),
		order.setPaymentTerm(params.PaymentTerm),
		order.setPaymentStatus(params.PaymentStatus),
		order.setPrice(params.Price),
		order.setCreatedAt(params.CreatedAt),
		order.setVersion(params.Version),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingCode returns the customer-facing tracking code.
func (o *Order) TrackingCode() kernel.TrackingCode {
	return o.trackingCode
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Driver returns the assigned driver's ID, or nil if unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DriverSnapshot returns the driver details stamped at assignment, or nil.
func (o *Order) DriverSnapshot() *DriverSnapshot {
	return o.driver
}

// Route returns the pickup/delivery address pair.
func (o *Order) Route() Route {
	return o.route
}

// Package returns the package descriptor.
func (o *Order) Package() Package {
	return o.pkg
}

// Recipient returns the recipient contact.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// SpecialInstructions returns the driver instructions, possibly empty.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentTerm returns when the order is paid.
func (o *Order) PaymentTerm() PaymentTerm {
	return o.paymentTerm
}

// PaymentStatus returns the current payment settlement status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Price returns the charged total in whole currency units.
func (o *Order) Price() int {
	return o.price
}

// CancelReason returns the cancellation reason, empty unless cancelled.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignedAt returns when a driver was assigned, or nil.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// PickedUpAt returns when the package was collected, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// InTransitAt returns when the delivery went in transit, or nil.
func (o *Order) InTransitAt() *time.Time {
	return o.inTransitAt
}

// DeliveredAt returns when the package was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CompletedAt returns when the order reached its terminal delivered state, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CustomerFeedback returns the customer's feedback entry, or nil.
func (o *Order) CustomerFeedback() *Feedback {
	return o.customerFeedback
}

// DriverFeedback returns the driver's feedback entry, or nil.
func (o *Order) DriverFeedback() *Feedback {
	return o.driverFeedback
}

// Version returns the persisted aggregate version the writer observed.
// The repository conditions updates on it for optimistic concurrency.
func (o *Order) Version() int {
	return o.version
}

// HasReached reports whether the order has reached or passed the given
// delivery stage, by chain position and independent of cancellation:
// a cancelled order keeps the stages it completed before cancellation.
func (o *Order) HasReached(stage Status) bool {
	switch stage {
	case StatusPending:
		return true
	case StatusAssigned:
		return o.assignedAt != nil
	case StatusPickedUp:
		return o.pickedUpAt != nil
	case StatusInTransit:
		return o.inTransitAt != nil
	case StatusDelivered:
		return o.deliveredAt != nil
	case StatusCancelled:
		return o.cancelledAt != nil
	default:
		return false
	}
}

// Assign assigns the order to a driver and moves it to Assigned.
//
// Legal only from Pending. Records assignedAt and attaches the driver
// snapshot for display; the snapshot is frozen at assignment time.
func (o *Order) Assign(driverID kernel.UUID, snapshot DriverSnapshot, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}
	if err := o.checkMonotonic(now); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.driver = &snapshot
	o.assignedAt = &now
	return nil
}

// Advance moves the order one step along the delivery chain and records the
// stage timestamp. Reaching Delivered additionally stamps completedAt.
// Transitions that skip a stage, move backward or leave a terminal status
// are rejected with an InvalidTransitionError.
func (o *Order) Advance(target Status, now time.Time) error {
	if err := o.checkMonotonic(now); err != nil {
		return err
	}

	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	switch newStatus {
	case StatusPickedUp:
		o.pickedUpAt = &now
	case StatusInTransit:
		o.inTransitAt = &now
	case StatusDelivered:
		o.deliveredAt = &now
		o.completedAt = &now
	}
	return nil
}

// Cancel cancels the order from any non-terminal status.
// A non-empty reason is required; it becomes the terminal timeline entry.
// After cancellation the order accepts no further mutation.
func (o *Order) Cancel(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancelReason")
	}
	if err := o.checkMonotonic(now); err != nil {
		return err
	}

	newStatus, err := o.status.CancelTransition()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	o.cancelledAt = &now
	return nil
}

// RecordPaymentStatus advances the payment axis. Re-recording Paid is an
// idempotent no-op; Refunded is only legal from Paid. Terminal delivery
// statuses lock the payment axis along with everything else.
func (o *Order) RecordPaymentStatus(target PaymentStatus) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(
			o.paymentStatus.String(), target.String(),
			fmt.Errorf("order is %s", o.status))
	}

	newStatus, changed, err := o.paymentStatus.Advance(target)
	if err != nil {
		return err
	}
	if changed {
		o.paymentStatus = newStatus
	}
	return nil
}

// RecordFeedback stores a rating and optional comment for the given role.
// Legal only on delivered orders; ratings outside [1, 5] are rejected.
// Re-recording replaces the previous entry for that role.
func (o *Order) RecordFeedback(role Role, rating int, comment string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if o.status != StatusDelivered {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), o.status.String(),
			fmt.Errorf("feedback requires status %s", StatusDelivered))
	}

	feedback, err := NewFeedback(rating, comment)
	if err != nil {
		return err
	}

	switch role {
	case RoleCustomer:
		o.customerFeedback = &feedback
	case RoleDriver:
		o.driverFeedback = &feedback
	}
	return nil
}

// checkMonotonic rejects a transition time earlier than the latest recorded
// timestamp, keeping the recorded chain non-decreasing.
func (o *Order) checkMonotonic(now time.Time) error {
	last := o.createdAt
	for _, ts := range []*time.Time{o.assignedAt, o.pickedUpAt, o.inTransitAt, o.deliveredAt, o.cancelledAt} {
		if ts != nil && ts.After(last) {
			last = *ts
		}
	}
	if now.Before(last) {
		return errs.NewValueIsInvalidErrorWithCause("timestamp",
			fmt.Errorf("%s is before the last recorded transition at %s",
				now.Format(time.RFC3339), last.Format(time.RFC3339)))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.trackingCode = code
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	o.route = route
	return nil
}

func (o *Order) setPackage(pkg Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	o.pkg = pkg
	return nil
}

func (o *Order) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	o.recipient = recipient
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setPaymentTerm(term PaymentTerm) error {
	if err := term.Validate(); err != nil {
		return err
	}
	o.paymentTerm = term
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", price))
	}
	o.price = price
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setVersion(version int) error {
	if version <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
