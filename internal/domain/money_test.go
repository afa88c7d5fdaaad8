package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		input    string
		expected Money
		wantErr  bool
	}{
		{input: "0", expected: 0},
		{input: "12", expected: 1200},
		{input: "12.3", expected: 1230},
		{input: "12.34", expected: 1234},
		{input: "-5.05", expected: -505},
		{input: "999999.99", expected: MaxMoney},
		{input: "1000000.00", wantErr: true},
		{input: "1.234", wantErr: true},
		{input: "1.", wantErr: true},
		{input: ".5", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMoney(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "1.05", Money(105).String())
	assert.Equal(t, "-0.50", Money(-50).String())
	assert.Equal(t, "999999.99", MaxMoney.String())
}

func TestMoney_JSON(t *testing.T) {
	var payload struct {
		Price Money `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 199.9}`), &payload))
	assert.Equal(t, Money(19990), payload.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "250.00"}`), &payload))
	assert.Equal(t, Money(25000), payload.Price)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": "250.00"}`, string(out))
}
