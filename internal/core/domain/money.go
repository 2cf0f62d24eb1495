package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Money is an immutable amount compared by value. Arithmetic is
// decimal-exact, no float rounding.
type Money struct {
	amount decimal.Decimal
}

var ZeroMoney = Money{amount: decimal.Zero}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func ParseMoney(value string) (Money, error) {
	d, err := decimal.Parse(value)
	if err != nil {
		return Money{}, fmt.Errorf("parsing money value %q: %w", value, err)
	}
	return Money{amount: d}, nil
}

func MustParseMoney(value string) Money {
	return Money{amount: decimal.MustParse(value)}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) IsGreaterThanZero() bool {
	return m.amount.Cmp(decimal.Zero) > 0
}

func (m Money) Equal(other Money) bool {
	return m.amount.Cmp(other.amount) == 0
}

func (m Money) Add(other Money) (Money, error) {
	sum, err := m.amount.Add(other.amount)
	if err != nil {
		return Money{}, fmt.Errorf("money add: %w", err)
	}
	return Money{amount: sum}, nil
}

func (m Money) Multiply(quantity int32) (Money, error) {
	q, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return Money{}, fmt.Errorf("money multiply: %w", err)
	}
	product, err := m.amount.Mul(q)
	if err != nil {
		return Money{}, fmt.Errorf("money multiply: %w", err)
	}
	return Money{amount: product}, nil
}

// String renders the amount with two decimal places, the form used in
// catalogs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}
