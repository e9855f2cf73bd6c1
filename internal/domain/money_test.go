package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMajorUnits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "dollars and cents", input: "12.34", want: 1234},
		{name: "whole dollars", input: "5", want: 500},
		{name: "rounds sub-cent up", input: "0.005", want: 1},
		{name: "rounds sub-cent down to zero", input: "0.004", want: 0},
		{name: "negative passes through", input: "-1.50", want: -150},
		{name: "surrounding whitespace", input: " 2.00 ", want: 200},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMajorUnits(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$12.34", FormatCents(1234))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$1,234.56", FormatCents(123456))
	assert.Equal(t, "$1,234,567.89", FormatCents(123456789))
	assert.Equal(t, "-$12.34", FormatCents(-1234))
	assert.Equal(t, "$0.00", FormatCents(0))
}

func TestAmountRoundTrip(t *testing.T) {
	cents, err := ParseMajorUnits("12.34")
	assert.NoError(t, err)
	assert.Equal(t, int64(1234), cents)
	assert.Equal(t, "$12.34", FormatCents(cents))
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "1a2b3c4d...", TruncateID("1a2b3c4d-0000-0000-0000-000000000000"))
	assert.Equal(t, "short", TruncateID("short"))
}
