// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

// MergeBuffers merges a donor Query's registered attribute buffers into
// a receiver Query: for every attribute buffer registered on donor,
// either merge its contents into an already-registered buffer of the
// same name on receiver, or hand the donor's buffer over to receiver
// wholesale when receiver has no such attribute yet.
//
// The merge is not atomic across attributes: on the first failure,
// MergeBuffers returns immediately, leaving any attributes not yet
// visited untouched on the donor side. Go's garbage collector reclaims
// the donor's payload once the donor Query is no longer referenced, so
// there is no literal memory leak, only the same non-atomicity contract
// a manual-allocation implementation would have.
func MergeBuffers(receiver, donor *Query) error {
	for name, donorBuf := range donor.engine.AttributeBuffers() {
		existingBuf, ok := receiver.engine.AttributeBuffers()[name]
		if !ok {
			if err := receiver.engine.SetBuffer(name, donorBuf); err != nil {
				return receiver.logged(err)
			}
			continue
		}
		if err := mergeAttributeBuffer(existingBuf, donorBuf); err != nil {
			return receiver.logged(err)
		}
	}
	return nil
}

// mergeAttributeBuffer copies donor's payload into existing in place,
// failing with BufferSizeMismatch if a size disagrees. The primary
// payload (Data for a fixed attribute, Values for a variable one) is
// always checked and copied; the offsets index is additionally checked
// and copied only for a variable attribute.
func mergeAttributeBuffer(existing, donor AttributeBuffer) error {
	if existing.IsVariable() != donor.IsVariable() {
		return newErrBufferSizeMismatch(0, 0)
	}

	if existing.IsVariable() {
		ev, dv := existing.Variable, donor.Variable
		if *ev.ValuesSize != *dv.ValuesSize {
			return newErrBufferSizeMismatch(*ev.ValuesSize, *dv.ValuesSize)
		}
		copy(ev.Values[:*dv.ValuesSize], dv.Values[:*dv.ValuesSize])

		if *ev.OffsetsSize != *dv.OffsetsSize {
			return newErrBufferSizeMismatch(*ev.OffsetsSize, *dv.OffsetsSize)
		}
		n := *dv.OffsetsSize / 8
		copy(ev.Offsets[:n], dv.Offsets[:n])
		return nil
	}

	ef, df := existing.Fixed, donor.Fixed
	if *ef.DataSize != *df.DataSize {
		return newErrBufferSizeMismatch(*ef.DataSize, *df.DataSize)
	}
	copy(ef.Data[:*df.DataSize], df.Data[:*df.DataSize])
	return nil
}
