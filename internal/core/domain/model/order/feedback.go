package order

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// Rating bounds for delivery feedback.
const (
	minRating = 1
	maxRating = 5
)

// Role identifies which party of the delivery recorded a feedback entry.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleDriver:   "driver",
	}
}

// RoleFromString parses a role from its wire spelling.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire spelling of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Feedback is a rating with an optional comment, recordable only on a
// delivered order.
type Feedback struct {
	rating  int
	comment string
}

// NewFeedback validates and creates a feedback entry.
// The rating must lie in [1, 5]; the comment is optional.
func NewFeedback(rating int, comment string) (Feedback, error) {
	if rating < minRating || rating > maxRating {
		return Feedback{}, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	return Feedback{rating: rating, comment: comment}, nil
}

// Rating returns the recorded rating.
func (f Feedback) Rating() int {
	return f.rating
}

// Comment returns the free-form comment, possibly empty.
func (f Feedback) Comment() string {
	return f.comment
}
