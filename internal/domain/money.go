package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"ledger-console/internal/errors"
)

// ParseMajorUnits converts a user-entered decimal amount in major currency
// units ("12.34") to an integer amount in minor units (1234), rounding to
// the nearest cent. All amounts cross the wire as minor-unit integers.
func ParseMajorUnits(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.NewAppError(errors.ValidationError, "Amount must be greater than zero").WithDetails(err.Error())
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

// FormatCents renders a minor-unit amount as a US dollar string,
// e.g. 123456 -> "$1,234.56".
func FormatCents(cents int64) string {
	d := decimal.NewFromInt(cents).Shift(-2)
	s := d.Abs().StringFixed(2)

	if dot := strings.IndexByte(s, '.'); dot > 3 {
		var b strings.Builder
		for i, r := range s[:dot] {
			if i > 0 && (dot-i)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteRune(r)
		}
		b.WriteString(s[dot:])
		s = b.String()
	}

	if cents < 0 {
		return "-$" + s
	}
	return "$" + s
}
