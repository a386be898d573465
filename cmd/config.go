package cmd

import (
	"fmt"
	"strconv"

	"parcel/internal/core/domain/model/pricing"
)

// Config carries all runtime settings, loaded from the environment in main.
// Tariff fields are optional; when left empty the default tariff applies.
type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	OpenAPIPath string

	TariffBaseFare       string
	TariffPerKmRate      string
	TariffFragileRate    string
	TariffInsuranceRate  string
	TariffAfterHoursRate string
	TariffWeekendRate    string
	TariffMinimumCharge  string
	TariffCommissionRate string
}

// DatabaseDSN builds the postgres connection string for GORM.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Tariff builds the pricing tariff from the configured knobs.
// All-empty knobs yield the default tariff; partially set knobs are an error
// so a typo in one variable does not silently reprice half the schedule.
func (c Config) Tariff() (pricing.Tariff, error) {
	knobs := []string{
		c.TariffBaseFare, c.TariffPerKmRate, c.TariffFragileRate,
		c.TariffInsuranceRate, c.TariffAfterHoursRate, c.TariffWeekendRate,
		c.TariffMinimumCharge, c.TariffCommissionRate,
	}

	allEmpty := true
	for _, knob := range knobs {
		if knob != "" {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return pricing.DefaultTariff(), nil
	}

	baseFare, err := strconv.Atoi(c.TariffBaseFare)
	if err != nil {
		return pricing.Tariff{}, fmt.Errorf("TARIFF_BASE_FARE: %w", err)
	}
	minimumCharge, err := strconv.Atoi(c.TariffMinimumCharge)
	if err != nil {
		return pricing.Tariff{}, fmt.Errorf("TARIFF_MINIMUM_CHARGE: %w", err)
	}

	rates := make([]float64, 0, 6)
	for _, knob := range []struct {
		name  string
		value string
	}{
		{"TARIFF_PER_KM_RATE", c.TariffPerKmRate},
		{"TARIFF_FRAGILE_RATE", c.TariffFragileRate},
		{"TARIFF_INSURANCE_RATE", c.TariffInsuranceRate},
		{"TARIFF_AFTER_HOURS_RATE", c.TariffAfterHoursRate},
		{"TARIFF_WEEKEND_RATE", c.TariffWeekendRate},
		{"TARIFF_COMMISSION_RATE", c.TariffCommissionRate},
	} {
		rate, parseErr := strconv.ParseFloat(knob.value, 64)
		if parseErr != nil {
			return pricing.Tariff{}, fmt.Errorf("%s: %w", knob.name, parseErr)
		}
		rates = append(rates, rate)
	}

	return pricing.NewTariff(
		baseFare,
		rates[0],
		rates[1], rates[2], rates[3], rates[4],
		minimumCharge,
		rates[5],
	)
}
