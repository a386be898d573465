// Package pricing implements the delivery pricing engine: a pure,
// deterministic calculator from delivery conditions to a cost breakdown.
//
// The engine performs no I/O and holds no state beyond the Tariff it was
// constructed with. Time-derived surcharge flags (after-hours, weekend) are
// supplied by callers so the calculation stays independently testable.
//
// Every charge is rounded to a whole currency unit before summation, so the
// displayed components always sum exactly to the displayed total.
package pricing
