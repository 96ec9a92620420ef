// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

// AttributeBuffer is a narrow, non-owning view over a caller-owned I/O
// buffer for one attribute. It never copies or frees the caller's memory;
// the caller guarantees the referenced slices remain valid until the
// query reaches a terminal status or is cancelled. The two variants
// mirror the two shapes an attribute buffer can take; exactly one of
// Fixed or Variable is populated.
//
// Size fields are pointers, not values, because on a READ the engine
// writes back the number of bytes it actually produced.
type AttributeBuffer struct {
	Fixed    *FixedBuffer
	Variable *VariableBuffer
}

// FixedBuffer is the view for a fixed-length attribute.
type FixedBuffer struct {
	Data     []byte
	DataSize *uint64
}

// VariableBuffer is the view for a variable-length attribute: an offsets
// index into a values payload.
type VariableBuffer struct {
	Offsets     []uint64
	OffsetsSize *uint64
	Values      []byte
	ValuesSize  *uint64
}

// NewFixedAttributeBuffer constructs an AttributeBuffer for a fixed-length
// attribute.
func NewFixedAttributeBuffer(data []byte, dataSize *uint64) AttributeBuffer {
	return AttributeBuffer{Fixed: &FixedBuffer{Data: data, DataSize: dataSize}}
}

// NewVariableAttributeBuffer constructs an AttributeBuffer for a
// variable-length attribute.
func NewVariableAttributeBuffer(offsets []uint64, offsetsSize *uint64, values []byte, valuesSize *uint64) AttributeBuffer {
	return AttributeBuffer{Variable: &VariableBuffer{
		Offsets:     offsets,
		OffsetsSize: offsetsSize,
		Values:      values,
		ValuesSize:  valuesSize,
	}}
}

// IsVariable reports whether the buffer is the variable-length variant.
func (b AttributeBuffer) IsVariable() bool { return b.Variable != nil }

// CheckVarAttrOffsets validates a variable-length attribute's offsets
// index against its values payload:
//
//   - any nil pointer among offsets/offsetsSize/valuesSize fails NullBuffer
//   - n == offsetsSize/8 offsets; n == 0 is trivially OK
//   - offsets[0] must be < valuesSize
//   - every subsequent offset must be strictly greater than the previous
//     one and also < valuesSize
func CheckVarAttrOffsets(offsets []uint64, offsetsSize, valuesSize *uint64) error {
	if offsets == nil || offsetsSize == nil || valuesSize == nil {
		return newErrNullBuffer()
	}

	n := *offsetsSize / 8
	if n == 0 {
		return nil
	}
	if n > uint64(len(offsets)) {
		return newErrInvalidOffsets(
			"invalid offsets; offsets_size %d implies %d offsets but only %d are present",
			*offsetsSize, n, len(offsets))
	}

	prev := offsets[0]
	if prev >= *valuesSize {
		return newErrInvalidOffsets(
			"invalid offsets; offset %d specified for buffer of size %d", prev, *valuesSize)
	}

	for i := uint64(1); i < n; i++ {
		if offsets[i] <= prev {
			return newErrInvalidOffsets(
				"invalid offsets; offsets must be given in strictly ascending order (offset %d at index %d)",
				offsets[i], i)
		}
		if offsets[i] >= *valuesSize {
			return newErrInvalidOffsets(
				"invalid offsets; offset %d specified for buffer of size %d", offsets[i], *valuesSize)
		}
		prev = offsets[i]
	}

	return nil
}

// CheckOffsets validates the receiver's own offsets/values, a
// convenience wrapper over the package-level function for use once a
// VariableBuffer is already constructed.
func (vb *VariableBuffer) CheckOffsets() error {
	return CheckVarAttrOffsets(vb.Offsets, vb.OffsetsSize, vb.ValuesSize)
}
