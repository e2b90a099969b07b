// Package money provides fixed-point currency arithmetic in integer minor
// units (centavos) and pt-BR display formatting. Amounts cross the wire as
// decimals and are converted to cents before any summation, so floating
// point never touches monetary values.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer centavos.
type Cents int64

// FromDecimal converts a decimal currency amount to cents, rounding
// half-up at the second fraction digit.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Shift(2).Round(0).IntPart())
}

// Decimal converts cents back to a two-place decimal.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// BRL renders cents as pt-BR currency, e.g. "R$ 1.250,00". Negative
// amounts carry a leading minus sign ("-R$ 50,00"); callers that need an
// explicit +/- on non-negative values prepend it themselves.
func (c Cents) BRL() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	reais := v / 100
	centavos := v % 100
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString("R$ ")
	b.WriteString(groupThousands(reais))
	b.WriteByte(',')
	b.WriteByte(byte('0' + centavos/10))
	b.WriteByte(byte('0' + centavos%10))
	return b.String()
}

// Summary is the income/expense/balance aggregate for one period.
// Balance is always income minus expense and may be negative.
type Summary struct {
	Income  Cents `json:"income"`
	Expense Cents `json:"expense"`
	Balance Cents `json:"balance"`
}

// Consumption renders a water volume with three fraction digits and the
// m³ suffix in pt-BR notation, e.g. "1.234,567 m³".
func Consumption(d decimal.Decimal) string {
	s := d.StringFixed(3)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")
	whole, _ := strconv.ParseInt(intPart, 10, 64)
	out := groupThousands(whole) + "," + fracPart + " m³"
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands renders a non-negative integer with "." as the
// thousands separator.
func groupThousands(v int64) string {
	digits := []byte{}
	if v == 0 {
		return "0"
	}
	for i := 0; v > 0; i++ {
		if i > 0 && i%3 == 0 {
			digits = append([]byte{'.'}, digits...)
		}
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}
