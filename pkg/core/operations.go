package core

import (
	"encoding/json"
	"math"
	"strconv"
)

// Operations performs integer arithmetic.
type Operations struct{}

// NewOperations creates a new Operations.
func NewOperations() *Operations {
	return &Operations{}
}

// Add returns a + b. Overflow wraps like any native int addition.
func (o *Operations) Add(a, b int) int {
	return a + b
}

// ParseAddend parses a base-10 integer argument.
func ParseAddend(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidAddend
	}
	return n, nil
}

// AddendFromValue converts a decoded value into an addend.
// Integral floats are accepted, so 5 and 5.0 are the same addend whichever
// decoder produced them.
func AddendFromValue(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return AddendFromValue(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, ErrInvalidAddend
		}
		return addendFromFloat(f)
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, ErrInvalidAddend
		}
		return int(n), nil
	case uint:
		if n > math.MaxInt {
			return 0, ErrInvalidAddend
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, ErrInvalidAddend
		}
		return int(n), nil
	case float64:
		return addendFromFloat(n)
	}
	return 0, ErrInvalidAddend
}

func addendFromFloat(f float64) (int, error) {
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, ErrInvalidAddend
	}
	return int(f), nil
}
