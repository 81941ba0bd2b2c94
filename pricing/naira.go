// ════════════════════════════════════════════════════════════
// Path: pricing/naira.go
// Naira display-string parsing and formatting
// ════════════════════════════════════════════════════════════

package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Glyph is the currency symbol every catalog price is prefixed with.
const Glyph = "₦"

// Currency is the ISO code handed to the payment widget.
const Currency = "NGN"

// ErrNoNumber is returned when a display string carries no numeric part.
var ErrNoNumber = errors.New("no numeric value in price string")

// Parse extracts the numeric value of a display price such as "₦1,250.50".
// Everything except digits, '.' and '-' is discarded first; the longest
// prefix of the remainder shaped like [-]digits[.digits] is then parsed.
func Parse(display string) (float64, error) {
	var kept strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			kept.WriteRune(r)
		}
	}
	raw := kept.String()

	end := 0
	if strings.HasPrefix(raw, "-") {
		end = 1
	}
	digits := 0
	seenPoint := false
	for end < len(raw) {
		c := raw[end]
		if c >= '0' && c <= '9' {
			digits++
			end++
			continue
		}
		if c == '.' && !seenPoint {
			seenPoint = true
			end++
			continue
		}
		break
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoNumber, display)
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(raw[:end], "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoNumber, display)
	}
	return value, nil
}

// Value is Parse with the safe default: unparseable prices count as 0.
func Value(display string) float64 {
	v, err := Parse(display)
	if err != nil {
		return 0
	}
	return v
}

// Format renders an amount the way the catalog does: glyph plus two decimals.
func Format(amount float64) string {
	return Glyph + strconv.FormatFloat(amount, 'f', 2, 64)
}

// ToMinorUnits converts a naira amount to kobo, rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// LineTotal returns unitPrice*quantity as a decimal so callers can sum exactly.
func LineTotal(unitPrice float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
}
