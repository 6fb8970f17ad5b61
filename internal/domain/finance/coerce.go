package finance

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Number coerces an arbitrary JSON-ish value to a decimal. Missing values,
// non-finite floats and garbled strings all coerce to zero; this function
// never fails. Data-quality problems therefore surface as zero-valued
// figures, not errors — use ParseNumber when that is unacceptable.
func Number(v interface{}) decimal.Decimal {
	d, err := ParseNumber(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseNumber is the strict variant of Number: it rejects non-finite floats,
// unparseable strings and unsupported types instead of defaulting to zero.
// nil and the empty string still coerce to zero, they mean "absent".
func ParseNumber(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return n, nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, fmt.Errorf("non-finite number %v", n)
		}
		return decimal.NewFromFloat(n), nil
	case float32:
		return ParseNumber(float64(n))
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return ParseNumber(string(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("unparseable number %q", n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported numeric type %T", v)
	}
}
