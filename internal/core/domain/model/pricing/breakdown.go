package pricing

import (
	"errors"

	"parcel/internal/pkg/guard"
)

// ErrPriceBreakdownIsNotConstructed indicates that a PriceBreakdown did not
// come out of Tariff.Calculate.
var ErrPriceBreakdownIsNotConstructed = errors.New("PriceBreakdown must be produced by Tariff.Calculate")

// PriceBreakdown is the immutable result of a pricing calculation.
// All monetary values are non-negative whole currency units.
//
// Invariants (maintained by Tariff.Calculate):
//   - Subtotal == BaseFare + DistanceFee
//   - Total == Subtotal + all surcharges, floored at the tariff's minimum charge
//   - DriverEarnings + CompanyCommission == Total
type PriceBreakdown struct {
	baseFare          int
	distanceFee       int
	subtotal          int
	fragileCharge     int
	insuranceCharge   int
	afterHoursCharge  int
	weekendCharge     int
	total             int
	driverEarnings    int
	companyCommission int

	guard guard.ConstructorGuard
}

// Validate ensures the breakdown came out of Tariff.Calculate.
func (b PriceBreakdown) Validate() error {
	return b.guard.Validate(ErrPriceBreakdownIsNotConstructed)
}

// BaseFare returns the fixed charge applied to every order.
func (b PriceBreakdown) BaseFare() int {
	return b.baseFare
}

// DistanceFee returns the per-kilometer charge component.
func (b PriceBreakdown) DistanceFee() int {
	return b.distanceFee
}

// Subtotal returns base fare plus distance fee.
func (b PriceBreakdown) Subtotal() int {
	return b.subtotal
}

// FragileCharge returns the fragile-handling surcharge.
func (b PriceBreakdown) FragileCharge() int {
	return b.fragileCharge
}

// InsuranceCharge returns the insurance surcharge.
func (b PriceBreakdown) InsuranceCharge() int {
	return b.insuranceCharge
}

// AfterHoursCharge returns the after-hours surcharge.
func (b PriceBreakdown) AfterHoursCharge() int {
	return b.afterHoursCharge
}

// WeekendCharge returns the weekend surcharge.
func (b PriceBreakdown) WeekendCharge() int {
	return b.weekendCharge
}

// Total returns the charged price, floored at the minimum charge.
func (b PriceBreakdown) Total() int {
	return b.total
}

// DriverEarnings returns the driver's share of the total.
func (b PriceBreakdown) DriverEarnings() int {
	return b.driverEarnings
}

// CompanyCommission returns the company's share of the total.
func (b PriceBreakdown) CompanyCommission() int {
	return b.companyCommission
}
