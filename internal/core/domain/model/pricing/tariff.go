package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

// ErrTariffIsNotConstructed indicates that a Tariff was not created via
// NewTariff or DefaultTariff.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff or DefaultTariff")

// Default tariff constants, in whole currency units and fractional rates.
const (
	defaultBaseFare       = 80
	defaultPerKmRate      = 11.0
	defaultFragileRate    = 0.20
	defaultInsuranceRate  = 0.20
	defaultAfterHoursRate = 0.10
	defaultWeekendRate    = 0.10
	defaultMinimumCharge  = 150
	defaultCommissionRate = 0.15
)

// After-hours window boundaries (local hours).
const (
	afterHoursEveningStart = 19
	afterHoursMorningEnd   = 6
)

// Conditions are the delivery attributes the engine prices.
// DistanceKm must be positive; the boolean flags are supplied by the caller
// (time-of-request derivations included), never computed by the engine.
type Conditions struct {
	DistanceKm   float64
	IsFragile    bool
	HasInsurance bool
	IsAfterHours bool
	IsWeekend    bool
}

// ConditionsFor derives Conditions from a delivery request at the given
// local time: after-hours when hour >= 19 or < 6, weekend on Saturday and
// Sunday. It is a convenience for callers; Calculate only reads the flags.
func ConditionsFor(distanceKm float64, isFragile, hasInsurance bool, at time.Time) Conditions {
	hour := at.Hour()
	day := at.Weekday()
	return Conditions{
		DistanceKm:   distanceKm,
		IsFragile:    isFragile,
		HasInsurance: hasInsurance,
		IsAfterHours: hour >= afterHoursEveningStart || hour < afterHoursMorningEnd,
		IsWeekend:    day == time.Saturday || day == time.Sunday,
	}
}

// Tariff holds the configurable pricing constants and exposes the
// calculation. It is a value object; use DefaultTariff for the standard
// rates or NewTariff to configure them.
//
// Example:
//
//	tariff := pricing.DefaultTariff()
//	breakdown, err := tariff.Calculate(pricing.Conditions{DistanceKm: 12, IsFragile: true})
//	if err != nil {
//	    // distance was not positive
//	}
//	fmt.Println(breakdown.Total())
type Tariff struct { //nolint:recvcheck //using for validation
	baseFare       int
	perKmRate      float64
	fragileRate    float64
	insuranceRate  float64
	afterHoursRate float64
	weekendRate    float64
	minimumCharge  int
	commissionRate float64

	guard guard.ConstructorGuard
}

// NewTariff creates a Tariff with the given constants.
// Fares and the minimum charge must be non-negative whole currency units;
// every rate must lie in [0, 1].
func NewTariff(
	baseFare int,
	perKmRate float64,
	fragileRate, insuranceRate, afterHoursRate, weekendRate float64,
	minimumCharge int,
	commissionRate float64,
) (Tariff, error) {
	tariff := Tariff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tariff.setBaseFare(baseFare),
		tariff.setPerKmRate(perKmRate),
		tariff.setRate("fragileRate", &tariff.fragileRate, fragileRate),
		tariff.setRate("insuranceRate", &tariff.insuranceRate, insuranceRate),
		tariff.setRate("afterHoursRate", &tariff.afterHoursRate, afterHoursRate),
		tariff.setRate("weekendRate", &tariff.weekendRate, weekendRate),
		tariff.setMinimumCharge(minimumCharge),
		tariff.setRate("commissionRate", &tariff.commissionRate, commissionRate),
	); err != nil {
		return Tariff{}, err
	}

	return tariff, nil
}

// DefaultTariff returns the standard tariff: base fare 80, 11 per km, 20%
// fragile and insurance surcharges, 10% after-hours and weekend surcharges,
// minimum charge 150, 15% company commission.
func DefaultTariff() Tariff {
	tariff, err := NewTariff(
		defaultBaseFare,
		defaultPerKmRate,
		defaultFragileRate,
		defaultInsuranceRate,
		defaultAfterHoursRate,
		defaultWeekendRate,
		defaultMinimumCharge,
		defaultCommissionRate,
	)
	if err != nil {
		// defaults are compile-time constants; this cannot fail
		panic(err)
	}
	return tariff
}

// Validate ensures the Tariff was created through a constructor.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// MinimumCharge returns the floor applied to computed totals.
func (t Tariff) MinimumCharge() int {
	return t.minimumCharge
}

// Calculate prices a delivery. It is pure and total over positive distances:
// the only error is a non-positive DistanceKm, which callers are expected to
// reject before invoking the engine.
func (t Tariff) Calculate(conditions Conditions) (PriceBreakdown, error) {
	if err := t.Validate(); err != nil {
		return PriceBreakdown{}, err
	}
	if conditions.DistanceKm <= 0 {
		return PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%v is not greater than 0", conditions.DistanceKm))
	}

	distanceFee := roundToUnit(conditions.DistanceKm * t.perKmRate)
	subtotal := t.baseFare + distanceFee

	var fragileCharge, insuranceCharge, afterHoursCharge, weekendCharge int
	if conditions.IsFragile {
		fragileCharge = roundToUnit(float64(subtotal) * t.fragileRate)
	}
	if conditions.HasInsurance {
		insuranceCharge = roundToUnit(float64(subtotal) * t.insuranceRate)
	}
	if conditions.IsAfterHours {
		afterHoursCharge = roundToUnit(float64(subtotal) * t.afterHoursRate)
	}
	if conditions.IsWeekend {
		weekendCharge = roundToUnit(float64(subtotal) * t.weekendRate)
	}

	total := subtotal + fragileCharge + insuranceCharge + afterHoursCharge + weekendCharge
	if total < t.minimumCharge {
		total = t.minimumCharge
	}

	companyCommission := roundToUnit(float64(total) * t.commissionRate)
	driverEarnings := total - companyCommission

	return PriceBreakdown{
		baseFare:          t.baseFare,
		distanceFee:       distanceFee,
		subtotal:          subtotal,
		fragileCharge:     fragileCharge,
		insuranceCharge:   insuranceCharge,
		afterHoursCharge:  afterHoursCharge,
		weekendCharge:     weekendCharge,
		total:             total,
		driverEarnings:    driverEarnings,
		companyCommission: companyCommission,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// roundToUnit rounds to the nearest whole currency unit, half away from zero.
func roundToUnit(v float64) int {
	return int(math.Round(v))
}

func (t *Tariff) setBaseFare(baseFare int) error {
	if baseFare < 0 {
		return errs.NewValueIsInvalidErrorWithCause("baseFare",
			fmt.Errorf("%d is negative", baseFare))
	}
	t.baseFare = baseFare
	return nil
}

func (t *Tariff) setPerKmRate(perKmRate float64) error {
	if perKmRate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("perKmRate",
			fmt.Errorf("%v is negative", perKmRate))
	}
	t.perKmRate = perKmRate
	return nil
}

func (t *Tariff) setMinimumCharge(minimumCharge int) error {
	if minimumCharge < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minimumCharge",
			fmt.Errorf("%d is negative", minimumCharge))
	}
	t.minimumCharge = minimumCharge
	return nil
}

func (t *Tariff) setRate(name string, field *float64, rate float64) error {
	if rate < 0 || rate > 1 {
		return errs.NewValueIsOutOfRangeError(name, rate, 0, 1)
	}
	*field = rate
	return nil
}
