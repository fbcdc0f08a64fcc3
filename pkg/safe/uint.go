// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of built-in integer kinds accepted by the converters.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint8 converts v to uint8, rejecting negatives and values above math.MaxUint8.
func Uint8[T Integer](v T) (uint8, error) {
	u, err := unsigned(v, math.MaxUint8, "uint8")
	return uint8(u), err
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := unsigned(v, math.MaxUint32, "uint32")
	return uint32(u), err
}

// Uint64 converts v to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	return unsigned(v, math.MaxUint64, "uint64")
}

func unsigned[T Integer](v T, limit uint64, target string) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of %s range", v, target)
	}
	u := uint64(v)
	if u > limit {
		return 0, fmt.Errorf("value %d out of %s range", v, target)
	}
	return u, nil
}
