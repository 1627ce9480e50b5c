// Package safe provides overflow-checked integer conversions.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer types accepted by the conversions.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint8 converts v to uint8, rejecting negatives and values above math.MaxUint8.
func Uint8[T Integer](v T) (uint8, error) {
	u, err := narrow(v, math.MaxUint8, "uint8")
	return uint8(u), err
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := narrow(v, math.MaxUint32, "uint32")
	return uint32(u), err
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	return narrow(v, math.MaxUint64, "uint64")
}

func narrow[T Integer](v T, limit uint64, target string) (uint64, error) {
	if v < 0 || uint64(v) > limit {
		return 0, fmt.Errorf("value %d out of %s range", v, target)
	}
	return uint64(v), nil
}
