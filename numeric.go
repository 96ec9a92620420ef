// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

import (
	"encoding/binary"
	"math"

	"github.com/featurebasedb/tiledb/errors"
)

// decodeLE reads one little-endian scalar of type T from the head of b.
func decodeLE[T Numeric](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return T(int8(b[0]))
	case uint8:
		return T(b[0])
	case int16:
		return T(int16(binary.LittleEndian.Uint16(b)))
	case uint16:
		return T(binary.LittleEndian.Uint16(b))
	case int32:
		return T(int32(binary.LittleEndian.Uint32(b)))
	case uint32:
		return T(binary.LittleEndian.Uint32(b))
	case int64:
		return T(int64(binary.LittleEndian.Uint64(b)))
	case uint64:
		return T(binary.LittleEndian.Uint64(b))
	case float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case float64:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	}
	return zero
}

// encodeLE appends the little-endian bytes of v to dst and returns the
// extended slice.
func encodeLE[T Numeric](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case int8:
		return append(dst, byte(x))
	case uint8:
		return append(dst, x)
	case int16:
		return binary.LittleEndian.AppendUint16(dst, uint16(x))
	case uint16:
		return binary.LittleEndian.AppendUint16(dst, x)
	case int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(x))
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, x)
	case int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(x))
	case uint64:
		return binary.LittleEndian.AppendUint64(dst, x)
	case float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(x))
	case float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(x))
	}
	return dst
}

// isFinite reports whether v is neither NaN nor infinite. Integer kinds are
// always finite.
func isFinite[T Numeric](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	default:
		return true
	}
}

// isInteger reports whether T is one of the eight integer kinds.
func isInteger[T Numeric]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return false
	default:
		return true
	}
}

// validateDomain checks the invariants of Dimension.SetDomain: lo <= hi,
// and (for floats) neither endpoint is NaN or infinite.
func validateDomain[T Numeric](lo, hi T) error {
	if !isFinite(lo) || !isFinite(hi) {
		return errors.New(ErrCodeInvalidDomain, "domain endpoints must be finite")
	}
	if lo > hi {
		return errors.New(ErrCodeInvalidDomain, "domain lower bound exceeds upper bound")
	}
	return nil
}

// validateTileExtent checks the invariants of Dimension.SetTileExtent:
// positive, and for integer domains, no larger than the domain's range.
// The integer comparison is done as extent-1 > hi-lo rather than
// extent > hi-lo+1 so it doesn't overflow when hi-lo is already at the
// type's maximum representable width. For a signed domain wider than
// the type's maximum, hi-lo wraps negative; every positive extent of T
// then fits the range.
func validateTileExtent[T Numeric](extent, lo, hi T) error {
	var zero T
	if extent <= zero {
		return errors.New(ErrCodeInvalidTileExtent, "tile extent must be positive")
	}
	if isInteger[T]() {
		if r := hi - lo; r >= zero && extent-1 > r {
			return errors.New(ErrCodeInvalidTileExtent, "tile extent exceeds domain range")
		}
	}
	return nil
}

// nullExtentToRange implements set_null_tile_extent_to_range: hi-lo+1 for
// integers, hi-lo for floats.
func nullExtentToRange[T Numeric](lo, hi T) T {
	if isInteger[T]() {
		return hi - lo + 1
	}
	return hi - lo
}
