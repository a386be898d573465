package order

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// PaymentStatus tracks payment settlement independently of the delivery
// status. Transitions: Pending -> Paid | Failed, Refunded only from Paid.
// Recording Paid on an already paid order is an idempotent no-op.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending is the initial payment status of every order.
	PaymentStatusPending

	// PaymentStatusPaid indicates the payment settled.
	PaymentStatusPaid

	// PaymentStatusFailed indicates the payment attempt failed.
	PaymentStatusFailed

	// PaymentStatusRefunded indicates a settled payment was returned.
	PaymentStatusRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown:  "unknown",
		PaymentStatusPending:  "pending",
		PaymentStatusPaid:     "paid",
		PaymentStatusFailed:   "failed",
		PaymentStatusRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a payment status from its wire spelling.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s && status != PaymentStatusUnknown {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// String returns the wire spelling of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the PaymentStatus value is one of the defined statuses.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok || s == PaymentStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// Advance transitions the payment status to target.
// The second return value reports whether the status actually changed:
// re-recording Paid over Paid is legal but changes nothing.
func (s PaymentStatus) Advance(target PaymentStatus) (PaymentStatus, bool, error) {
	if err := target.Validate(); err != nil {
		return PaymentStatusUnknown, false, errs.NewInvalidTransitionErrorWithCause(s.String(), target.String(), err)
	}

	if s == PaymentStatusPaid && target == PaymentStatusPaid {
		return s, false, nil
	}

	valid := (s == PaymentStatusPending && (target == PaymentStatusPaid || target == PaymentStatusFailed)) ||
		(s == PaymentStatusPaid && target == PaymentStatusRefunded)
	if !valid {
		return PaymentStatusUnknown, false, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, true, nil
}

// PaymentMethod is how the customer pays for a delivery.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	PaymentMethodMpesa
	PaymentMethodCash
	PaymentMethodCard
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		PaymentMethodMpesa:   "mpesa",
		PaymentMethodCash:    "cash",
		PaymentMethodCard:    "card",
	}
}

// PaymentMethodFromString parses a payment method from its wire spelling.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s && method != PaymentMethodUnknown {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the wire spelling of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the PaymentMethod value is one of the defined methods.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok || m == PaymentMethodUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentTerm is when the customer pays: up front or on delivery.
type PaymentTerm int

const (
	PaymentTermUnknown PaymentTerm = iota
	PaymentTermPayNow
	PaymentTermPayOnDelivery
)

func getPaymentTermStrings() map[PaymentTerm]string {
	return map[PaymentTerm]string{
		PaymentTermUnknown:       "unknown",
		PaymentTermPayNow:        "pay_now",
		PaymentTermPayOnDelivery: "pay_on_delivery",
	}
}

// PaymentTermFromString parses a payment term from its wire spelling.
func PaymentTermFromString(s string) (PaymentTerm, error) {
	for term, str := range getPaymentTermStrings() {
		if str == s && term != PaymentTermUnknown {
			return term, nil
		}
	}
	return PaymentTermUnknown, errs.NewValueIsInvalidErrorWithCause("paymentTerm",
		fmt.Errorf("%q is not a valid payment term", s))
}

// String returns the wire spelling of the payment term.
func (t PaymentTerm) String() string {
	if str, ok := getPaymentTermStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the PaymentTerm value is one of the defined terms.
func (t PaymentTerm) Validate() error {
	if _, ok := getPaymentTermStrings()[t]; !ok || t == PaymentTermUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentTerm",
			fmt.Errorf("%d is not a valid payment term", t))
	}
	return nil
}
