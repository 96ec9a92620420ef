// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

// CheckSubarrayBounds validates a raw subarray against a Domain. A nil
// subarray means "entire domain" and is always accepted.
// Otherwise raw is reinterpreted as 2*dom.DimNum() little-endian scalars
// of dom.Type(); for each dimension i, raw[2i] must be >= the dimension's
// low bound, raw[2i+1] must be <= its high bound, and raw[2i] <= raw[2i+1].
//
// Non-numeric domain types are rejected with UnsupportedDomainType rather
// than left to an assertion, since ordering comparisons are undefined for
// them.
func CheckSubarrayBounds(dom *Domain, raw []byte) error {
	if raw == nil {
		return nil
	}
	if !dom.Type().IsNumeric() {
		return newErrUnsupportedDomainType(dom.Type())
	}
	return dispatchCheckSubarrayBounds(dom, raw)
}

func dispatchCheckSubarrayBounds(dom *Domain, raw []byte) error {
	switch dom.Type() {
	case INT8:
		return checkSubarrayBounds[int8](dom, raw)
	case UINT8:
		return checkSubarrayBounds[uint8](dom, raw)
	case INT16:
		return checkSubarrayBounds[int16](dom, raw)
	case UINT16:
		return checkSubarrayBounds[uint16](dom, raw)
	case INT32:
		return checkSubarrayBounds[int32](dom, raw)
	case UINT32:
		return checkSubarrayBounds[uint32](dom, raw)
	case INT64:
		return checkSubarrayBounds[int64](dom, raw)
	case UINT64:
		return checkSubarrayBounds[uint64](dom, raw)
	case FLOAT32:
		return checkSubarrayBounds[float32](dom, raw)
	case FLOAT64:
		return checkSubarrayBounds[float64](dom, raw)
	default:
		return newErrUnsupportedDomainType(dom.Type())
	}
}

// checkSubarrayBounds is the monomorphic interior of the bounds check,
// instantiated once per numeric type by dispatchCheckSubarrayBounds.
func checkSubarrayBounds[T Numeric](dom *Domain, raw []byte) error {
	width := dom.Type().ByteWidth()
	n := dom.DimNum()
	if len(raw) < 2*n*width {
		return newErrSubarrayOutOfBounds()
	}
	for i := 0; i < n; i++ {
		lo := decodeLE[T](raw[2*i*width:])
		hi := decodeLE[T](raw[(2*i+1)*width:])
		if lo > hi {
			return newErrInvalidSubarrayRange()
		}
		dim := dom.Dimension(i)
		dimLo := decodeLE[T](dim.DomainBytes())
		dimHi := decodeLE[T](dim.DomainBytes()[width:])
		if lo < dimLo || hi > dimHi {
			return newErrSubarrayOutOfBounds()
		}
	}
	return nil
}
