// Package money provides the monetary value object used across the ledger.
//
// Invariants:
//   - Amounts are stored as int64 paise (the smallest INR unit) to avoid
//     floating point drift in balances.
//   - Arithmetic never overflows silently; operations that would exceed the
//     safe integer range return an error.
package money

import (
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidAmount is returned when an amount has more than two decimal
	// places or is not a finite number.
	ErrInvalidAmount = fmt.Errorf("invalid amount")

	// ErrAmountExceedsMaxSafeInt is returned when an operation would overflow
	// the underlying int64 representation.
	ErrAmountExceedsMaxSafeInt = fmt.Errorf("amount exceeds maximum safe integer value")
)

// Amount is an integer count of paise.
type Amount = int64

// Money represents a rupee value stored in paise.
type Money struct {
	amount Amount
}

// Zero is the zero rupee value.
var Zero = Money{}

// FromPaise builds a Money from an already-scaled paise count.
func FromPaise(p Amount) Money {
	return Money{amount: p}
}

// FromRupees builds a Money from a whole rupee count.
func FromRupees(r int64) Money {
	return Money{amount: r * 100}
}

// ParseRupees converts a rupee float (as received from forms or JSON) into
// Money, rejecting NaN/Inf and anything finer than paise.
func ParseRupees(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Zero, ErrInvalidAmount
	}
	scaled := v * 100
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) > 1e-6 {
		return Zero, ErrInvalidAmount
	}
	if rounded >= math.MaxInt64 || rounded <= math.MinInt64 {
		return Zero, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: int64(rounded)}, nil
}

// Paise returns the raw paise count.
func (m Money) Paise() Amount { return m.amount }

// Rupees returns the value as a rupee float. Display only; arithmetic stays
// in paise.
func (m Money) Rupees() float64 { return float64(m.amount) / 100 }

// Add returns m + o, guarding against overflow.
func (m Money) Add(o Money) (Money, error) {
	if o.amount > 0 && m.amount > math.MaxInt64-o.amount {
		return Zero, ErrAmountExceedsMaxSafeInt
	}
	if o.amount < 0 && m.amount < math.MinInt64-o.amount {
		return Zero, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount + o.amount}, nil
}

// Sub returns m - o, guarding against overflow.
func (m Money) Sub(o Money) (Money, error) {
	if o.amount == math.MinInt64 {
		return Zero, ErrAmountExceedsMaxSafeInt
	}
	return m.Add(Money{amount: -o.amount})
}

// IsPositive reports whether the value is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount > 0 }

// IsZero reports whether the value is exactly zero.
func (m Money) IsZero() bool { return m.amount == 0 }

// IsNegative reports whether the value is below zero.
func (m Money) IsNegative() bool { return m.amount < 0 }

// GreaterThan reports m > o.
func (m Money) GreaterThan(o Money) bool { return m.amount > o.amount }

// LessThan reports m < o.
func (m Money) LessThan(o Money) bool { return m.amount < o.amount }

// Equals reports m == o.
func (m Money) Equals(o Money) bool { return m.amount == o.amount }

// String renders the value as rupees with two decimals, e.g. "₹1000.00".
func (m Money) String() string {
	return "₹" + strconv.FormatFloat(m.Rupees(), 'f', 2, 64)
}

// MarshalJSON renders the value as a rupee number so API payloads read the
// way bank statements do.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Rupees(), 'f', 2, 64)), nil
}

// UnmarshalJSON parses a rupee number.
func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return ErrInvalidAmount
	}
	parsed, err := ParseRupees(v)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
