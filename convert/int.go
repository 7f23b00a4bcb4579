// Package convert contains functions to convert loosely typed values, as
// they come out of decoded config files, into Go types.
package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt tries to convert v into an int. Floats convert only if they are
// integral. Values outside the range of int do not convert.
func ToInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		if int64(int(v)) != v {
			return 0, false
		}
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return ToInt(uint64(v))
	case uint:
		return ToInt(uint64(v))
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case float32:
		return ToInt(float64(v))
	case float64:
		// -math.MinInt is 2^63 (2^31), exactly representable unlike math.MaxInt
		if v != math.Trunc(v) || v < math.MinInt || v >= -math.MinInt {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ToInts converts every element of vs with ToInt.
func ToInts(vs []any) ([]int, error) {
	ns := make([]int, len(vs))
	for i, v := range vs {
		n, ok := ToInt(v)
		if !ok {
			return nil, fmt.Errorf("element %d: cannot convert %s (%T) to int", i, ToString(v), v)
		}
		ns[i] = n
	}
	return ns, nil
}
