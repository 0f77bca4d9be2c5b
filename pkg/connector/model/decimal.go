package model

import "github.com/shopspring/decimal"

type Decimal struct {
	value decimal.Decimal
}

func NewDecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{
		value: d,
	}, nil
}

func NewDecimalFromFloat(f float64) Decimal {
	return Decimal{value: decimal.NewFromFloat(f)}
}

func (d Decimal) Add(o Decimal) Decimal {
	return Decimal{value: d.value.Add(o.value)}
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) IsPositive() bool {
	return d.value.IsPositive()
}

func (d Decimal) Float64() float64 {
	f, _ := d.value.Float64()
	return f
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.value.UnmarshalJSON(b)
}

func (d Decimal) String() string {
	return d.value.String()
}
