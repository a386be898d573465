package kernel

import (
	"crypto/rand"
	"fmt"
	"regexp"

	"parcel/internal/pkg/errs"
)

// ErrTrackingCodeIsNotConstructed indicates that a TrackingCode was not
// created via NewTrackingCode or TrackingCodeFromString.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode or TrackingCodeFromString")

// trackingCodePattern matches the customer-facing tracking code format.
var trackingCodePattern = regexp.MustCompile(`^PKA-[A-Z2-7]{8}$`)

// trackingCodeAlphabet is base32 without the easily confused 0/1/8/9 digits.
const trackingCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// TrackingCode is the customer-facing opaque identifier of an order,
// distinct from the internal order UUID. Codes are immutable once assigned
// and unique (enforced by the repository's unique index).
//
// Format: "PKA-" followed by 8 characters from a base32 alphabet, e.g.
// "PKA-K7KQWM3A".
type TrackingCode struct {
	value string
}

// NewTrackingCode generates a fresh random tracking code.
func NewTrackingCode() TrackingCode {
	buf := make([]byte, 8)
	// rand.Read never returns an error on supported platforms
	_, _ = rand.Read(buf)

	code := make([]byte, 8)
	for i, b := range buf {
		code[i] = trackingCodeAlphabet[int(b)%len(trackingCodeAlphabet)]
	}

	return TrackingCode{value: "PKA-" + string(code)}
}

// TrackingCodeFromString parses a tracking code from its string form,
// typically when handling a tracking lookup request or reconstructing an
// order from persistence.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	if s == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("trackingCode")
	}
	if !trackingCodePattern.MatchString(s) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("trackingCode",
			fmt.Errorf("%q does not match the tracking code format", s))
	}
	return TrackingCode{value: s}, nil
}

// String returns the tracking code in its display form.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate checks if the TrackingCode is properly constructed.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
