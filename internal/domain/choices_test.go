package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTravelClass(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected TravelClass
		wantErr  bool
	}{
		{name: "empty defaults to economy", input: "", expected: TravelClassEconomy},
		{name: "business", input: "Business", expected: TravelClassBusiness},
		{name: "economy", input: "Economy", expected: TravelClassEconomy},
		{name: "first", input: "First", expected: TravelClassFirst},
		{name: "lowercase rejected", input: "business", wantErr: true},
		{name: "unknown rejected", input: "Premium", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTravelClass(tc.input)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidChoice))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseBookingStatus_Default(t *testing.T) {
	got, err := ParseBookingStatus("")
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusBooked, got)

	got, err = ParseBookingStatus("Checked-in")
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusCheckedIn, got)

	_, err = ParseBookingStatus("Confirmed")
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestParsePaymentMethod_Required(t *testing.T) {
	_, err := ParsePaymentMethod("")
	assert.ErrorIs(t, err, ErrInvalidChoice)

	got, err := ParsePaymentMethod("PayPal")
	assert.NoError(t, err)
	assert.Equal(t, PaymentMethodPayPal, got)

	_, err = ParsePaymentMethod("Bitcoin")
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestParsePaymentStatus_Default(t *testing.T) {
	got, err := ParsePaymentStatus("")
	assert.NoError(t, err)
	assert.Equal(t, PaymentStatusPending, got)

	_, err = ParsePaymentStatus("Refunded")
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestChoiceValid(t *testing.T) {
	assert.True(t, TravelClassFirst.Valid())
	assert.False(t, TravelClass("Premium").Valid())
	assert.True(t, BookingStatusCancelled.Valid())
	assert.False(t, BookingStatus("").Valid())
	assert.True(t, PaymentMethodCash.Valid())
	assert.True(t, PaymentStatusFailed.Valid())
}
