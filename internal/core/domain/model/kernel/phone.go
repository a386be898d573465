package kernel

import (
	"fmt"
	"regexp"

	"parcel/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed indicates that a Phone was not created via NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

// phonePattern matches the national mobile format: an optional +254 country
// prefix or a leading 0, followed by a 7xx/1xx operator block and 8 digits.
var phonePattern = regexp.MustCompile(`^(?:\+254|0)[17]\d{8}$`)

// Phone is a value object for a national-format mobile phone number.
// The raw input is validated on construction; the stored value keeps the
// caller's formatting (both "+2547..." and "07..." are accepted).
//
// Example:
//
//	phone, err := kernel.NewPhone("+254712345678")
//	if err != nil {
//	    // handle malformed number
//	}
type Phone struct {
	value string
}

// NewPhone validates and creates a Phone from its string form.
// An empty string yields a ValueIsRequiredError; a string that does not
// match the national format yields a ValueIsInvalidError.
func NewPhone(value string) (Phone, error) {
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(value) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q does not match the national mobile format", value))
	}
	return Phone{value: value}, nil
}

// String returns the phone number as provided by the caller.
func (p Phone) String() string {
	return p.value
}

// IsEqual compares two phone numbers by their stored form.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate checks if the Phone is properly constructed.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
