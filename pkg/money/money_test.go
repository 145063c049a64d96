package money_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/securebank/securebank/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRupees(t *testing.T) {
	m, err := money.ParseRupees(1000.50)
	require.NoError(t, err)
	assert.Equal(t, int64(100050), m.Paise())

	_, err = money.ParseRupees(10.005)
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = money.ParseRupees(math.NaN())
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = money.ParseRupees(math.Inf(1))
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestArithmetic(t *testing.T) {
	a := money.FromRupees(1000)
	b := money.FromRupees(200)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(1200), sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(800), diff)

	_, err = money.FromPaise(math.MaxInt64).Add(money.FromPaise(1))
	assert.ErrorIs(t, err, money.ErrAmountExceedsMaxSafeInt)
}

func TestComparisons(t *testing.T) {
	a := money.FromRupees(500)
	b := money.FromRupees(1000)

	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.IsPositive())
	assert.True(t, money.Zero.IsZero())
	assert.False(t, a.Equals(b))
}

func TestJSONRoundTrip(t *testing.T) {
	m := money.FromPaise(123456) // ₹1234.56

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", string(data))

	var back money.Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equals(back))

	var bad money.Money
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &bad))
}
