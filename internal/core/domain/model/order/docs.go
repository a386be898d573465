// Package order contains the Order aggregate root and its state machines.
//
// An order moves along a fixed delivery chain
//
//	pending -> assigned -> picked_up -> in_transit -> delivered
//
// with cancelled reachable from any non-terminal status. Delivered and
// cancelled are terminal: no status transition leaves them, and every
// mutating operation except feedback recording (delivered only) is rejected.
//
// Payment status is an independent axis (pending -> paid | failed, refunded
// only from paid) but shares the terminal lock of the delivery status.
//
// The aggregate is mutated only through its methods; every method validates
// its precondition and fails fast with a typed error from internal/pkg/errs.
// All time values are passed in explicitly so the aggregate stays
// deterministic under test.
package order
