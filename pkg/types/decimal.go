package types

import (
	"fmt"
	"strconv"
)

// Decimal is a non-negative fixed-point number stored as an integer count
// of its smallest fractional unit. All arithmetic producing a Decimal is
// done on scaled integers (multiply before divide), so formatting is exact
// and reproducible across platforms: no floats, no locale surprises.
type Decimal struct {
	units  int64
	places uint8
}

// Centi builds a two-fractional-digit Decimal from hundredths.
// Centi(5000).String() == "50.00".
func Centi(units int64) Decimal {
	if units < 0 {
		units = 0
	}
	return Decimal{units: units, places: 2}
}

// Deci builds a one-fractional-digit Decimal from tenths.
// Deci(15).String() == "1.5".
func Deci(units int64) Decimal {
	if units < 0 {
		units = 0
	}
	return Decimal{units: units, places: 1}
}

// Units returns the raw scaled-integer value.
func (d Decimal) Units() int64 { return d.units }

func (d Decimal) IsZero() bool { return d.units == 0 }

func (d Decimal) scale() int64 {
	s := int64(1)
	for i := uint8(0); i < d.places; i++ {
		s *= 10
	}
	return s
}

// String renders the value with exactly d.places fractional digits.
func (d Decimal) String() string {
	if d.places == 0 {
		return strconv.FormatInt(d.units, 10)
	}
	s := d.scale()
	return fmt.Sprintf("%d.%0*d", d.units/s, int(d.places), d.units%s)
}

// MarshalJSON emits the value as a bare JSON number, keeping the fixed
// fractional width (e.g. 25.00 rather than 25).
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}
