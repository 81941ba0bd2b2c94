package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"₦1,000.00", 1000},
		{"₦2,500", 2500},
		{"₦12,345.67", 12345.67},
		{"1234", 1234},
		{"  ₦ 99.9 ", 99.9},
		{"-₦5.25", -5.25},
		{"₦1.2.3", 1.2},
		{"₦10-20", 10},
		{"₦5.", 5},
		{"NGN 0.50 only", 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestParseNoNumber(t *testing.T) {
	for _, in := range []string{"", "₦", "free", "-", ".", "-."} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrNoNumber, in)
		assert.Equal(t, 0.0, Value(in), in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "₦1000.00", Format(1000))
	assert.Equal(t, "₦0.50", Format(0.5))
	assert.Equal(t, "₦19.99", Format(19.989))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.01, 0.1, 1, 9.995, 1000, 2500.5, 123456.78, 1e9 + 0.25} {
		got, err := Parse(Format(x))
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(got-x), 1e-2, "x=%v", x)
	}
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(250000), ToMinorUnits(2500))
	assert.Equal(t, int64(100000), ToMinorUnits(1000.00))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(30), ToMinorUnits(0.1+0.2))
	assert.Equal(t, int64(0), ToMinorUnits(0))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, LineTotal(19.99, 3).Equal(LineTotal(59.97, 1)))
}
