package domain

import "fmt"

type TravelClass string

const (
	TravelClassBusiness TravelClass = "Business"
	TravelClassEconomy  TravelClass = "Economy"
	TravelClassFirst    TravelClass = "First"
)

var TravelClasses = []TravelClass{TravelClassBusiness, TravelClassEconomy, TravelClassFirst}

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusCheckedIn BookingStatus = "Checked-in"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

var BookingStatuses = []BookingStatus{BookingStatusBooked, BookingStatusCheckedIn, BookingStatusCancelled}

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodPayPal PaymentMethod = "PayPal"
	PaymentMethodCash   PaymentMethod = "Cash"
)

var PaymentMethods = []PaymentMethod{PaymentMethodCard, PaymentMethodPayPal, PaymentMethodCash}

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

var PaymentStatuses = []PaymentStatus{PaymentStatusPaid, PaymentStatusPending, PaymentStatusFailed}

func (c TravelClass) Valid() bool   { return contains(TravelClasses, c) }
func (s BookingStatus) Valid() bool { return contains(BookingStatuses, s) }
func (m PaymentMethod) Valid() bool { return contains(PaymentMethods, m) }
func (s PaymentStatus) Valid() bool { return contains(PaymentStatuses, s) }

// ParseTravelClass returns Economy for an empty value.
func ParseTravelClass(v string) (TravelClass, error) {
	return parseChoice(v, TravelClassEconomy, TravelClasses, "travel_class")
}

// ParseBookingStatus returns Booked for an empty value.
func ParseBookingStatus(v string) (BookingStatus, error) {
	return parseChoice(v, BookingStatusBooked, BookingStatuses, "status")
}

// ParsePaymentMethod has no default: an empty method is rejected.
func ParsePaymentMethod(v string) (PaymentMethod, error) {
	return parseChoice(v, "", PaymentMethods, "method")
}

// ParsePaymentStatus returns Pending for an empty value.
func ParsePaymentStatus(v string) (PaymentStatus, error) {
	return parseChoice(v, PaymentStatusPending, PaymentStatuses, "status")
}

func parseChoice[T ~string](v string, def T, allowed []T, field string) (T, error) {
	if v == "" {
		if def == "" {
			return "", fmt.Errorf("%s: %w: value is required", field, ErrInvalidChoice)
		}
		return def, nil
	}
	if !contains(allowed, T(v)) {
		return "", fmt.Errorf("%s: %w: %q", field, ErrInvalidChoice, v)
	}
	return T(v), nil
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
