// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

import (
	"encoding/binary"
	"fmt"

	"github.com/featurebasedb/tiledb/errors"
)

// Dimension is a named axis of a Domain: a typed interval [lo, hi] plus a
// tile extent used by the (out of scope) engine for chunking. Domain and
// tile extent are stored as raw little-endian bytes, the wire-level
// representation used by Serialize/DeserializeDimension, and decoded on
// demand through the single type-dispatch boundary in this file; nothing
// downstream of that boundary re-inspects the type tag.
type Dimension struct {
	name        string
	typ         Datatype
	domainSet   bool
	domainBytes []byte // 2 * typ.ByteWidth()
	extentSet   bool
	extentBytes []byte // typ.ByteWidth()
}

// NewDimension creates an unset Dimension of the given name and type. An
// empty name means the dimension is anonymous.
func NewDimension(name string, typ Datatype) *Dimension {
	return &Dimension{name: name, typ: typ}
}

// Name returns the dimension's name.
func (d *Dimension) Name() string { return d.name }

// IsAnonymous reports whether the dimension has no name.
func (d *Dimension) IsAnonymous() bool { return d.name == "" }

// Type returns the dimension's element type.
func (d *Dimension) Type() Datatype { return d.typ }

// HasDomain reports whether SetDomain has been called successfully.
func (d *Dimension) HasDomain() bool { return d.domainSet }

// HasTileExtent reports whether a tile extent has been set.
func (d *Dimension) HasTileExtent() bool { return d.extentSet }

// DomainBytes returns the raw little-endian bytes of [lo, hi], or nil if
// unset.
func (d *Dimension) DomainBytes() []byte { return d.domainBytes }

// TileExtentBytes returns the raw little-endian bytes of the tile extent,
// or nil if unset.
func (d *Dimension) TileExtentBytes() []byte { return d.extentBytes }

// SetDomain interprets raw as two consecutive little-endian scalars of the
// dimension's type ([lo, hi]) and installs them, failing with
// SchemaError.InvalidDomain if lo > hi or (for floats) either endpoint is
// NaN or infinite.
func (d *Dimension) SetDomain(raw []byte) error {
	width := d.typ.ByteWidth()
	if !d.typ.IsNumeric() {
		return newErrUnsupportedDomainType(d.typ)
	}
	if len(raw) < 2*width {
		return errors.New(ErrCodeInvalidDomain, "domain buffer too short")
	}
	if err := dispatchValidateDomain(d.typ, raw[:width], raw[width:2*width]); err != nil {
		return err
	}
	d.domainBytes = append([]byte(nil), raw[:2*width]...)
	d.domainSet = true
	return nil
}

// SetTileExtent interprets raw as one little-endian scalar of the
// dimension's type and installs it as the tile extent, failing with
// SchemaError.InvalidTileExtent if it is <= 0, exceeds the integer domain
// range, or the domain has not been set yet.
func (d *Dimension) SetTileExtent(raw []byte) error {
	if !d.domainSet {
		return errors.New(ErrCodeInvalidTileExtent, "cannot set tile extent; domain not set")
	}
	width := d.typ.ByteWidth()
	if len(raw) < width {
		return errors.New(ErrCodeInvalidTileExtent, "tile extent buffer too short")
	}
	if err := dispatchValidateTileExtent(d.typ, raw[:width], d.domainBytes[:width], d.domainBytes[width:2*width]); err != nil {
		return err
	}
	d.extentBytes = append([]byte(nil), raw[:width]...)
	d.extentSet = true
	return nil
}

// SetNullTileExtentToRange sets the tile extent to the full domain range
// (hi-lo+1 for integers, hi-lo for floats) if it has not already been set.
func (d *Dimension) SetNullTileExtentToRange() error {
	if d.extentSet {
		return nil
	}
	if !d.domainSet {
		return errors.New(ErrCodeInvalidTileExtent, "cannot default tile extent; domain not set")
	}
	width := d.typ.ByteWidth()
	d.extentBytes = dispatchNullExtentToRange(d.typ, d.domainBytes[:width], d.domainBytes[width:2*width])
	d.extentSet = true
	return nil
}

// Serialize writes the dimension's binary form: a length-prefixed name,
// the raw domain bytes, and the raw tile extent (preceded by a has-extent
// flag).
func (d *Dimension) Serialize() []byte {
	buf := make([]byte, 0, 4+len(d.name)+len(d.domainBytes)+1+len(d.extentBytes))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(d.name)))
	buf = append(buf, d.name...)
	buf = append(buf, d.domainBytes...)
	if d.extentSet {
		buf = append(buf, 1)
		buf = append(buf, d.extentBytes...)
	} else {
		buf = append(buf, 0)
	}
	return buf
}

// DeserializeDimension reads a Dimension of the given type from buf,
// mirroring Serialize. The type is supplied externally because it is
// implied by the containing schema rather than carried in the wire
// form.
func DeserializeDimension(buf []byte, typ Datatype) (*Dimension, error) {
	if len(buf) < 4 {
		return nil, errors.New(ErrCodeInvalidDomain, "dimension buffer too short for name length")
	}
	nameLen := int(binary.LittleEndian.Uint32(buf))
	buf = buf[4:]
	if len(buf) < nameLen {
		return nil, errors.New(ErrCodeInvalidDomain, "dimension buffer too short for name")
	}
	name := string(buf[:nameLen])
	buf = buf[nameLen:]

	width := typ.ByteWidth()
	if !typ.IsNumeric() {
		return nil, newErrUnsupportedDomainType(typ)
	}
	if len(buf) < 2*width {
		return nil, errors.New(ErrCodeInvalidDomain, "dimension buffer too short for domain")
	}
	d := NewDimension(name, typ)
	if err := d.SetDomain(buf[:2*width]); err != nil {
		return nil, err
	}
	buf = buf[2*width:]

	if len(buf) < 1 {
		return nil, errors.New(ErrCodeInvalidDomain, "dimension buffer too short for has_extent flag")
	}
	hasExtent := buf[0] != 0
	buf = buf[1:]
	if hasExtent {
		if len(buf) < width {
			return nil, errors.New(ErrCodeInvalidTileExtent, "dimension buffer too short for tile extent")
		}
		if err := d.SetTileExtent(buf[:width]); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// String implements fmt.Stringer for debugging.
func (d *Dimension) String() string {
	name := d.name
	if name == "" {
		name = "<anonymous>"
	}
	if !d.domainSet {
		return fmt.Sprintf("Dimension{name=%s, type=%s, domain=<unset>}", name, d.typ)
	}
	return fmt.Sprintf("Dimension{name=%s, type=%s, domain=%v, tile_extent=%v}",
		name, d.typ, d.domainBytes, d.extentBytes)
}

// dispatchValidateDomain is the single type-dispatch boundary for
// validating a [lo, hi] pair; everything downstream is monomorphic
// generic code over the Numeric constraint.
func dispatchValidateDomain(typ Datatype, loBytes, hiBytes []byte) error {
	switch typ {
	case INT8:
		return validateDomain(decodeLE[int8](loBytes), decodeLE[int8](hiBytes))
	case UINT8:
		return validateDomain(decodeLE[uint8](loBytes), decodeLE[uint8](hiBytes))
	case INT16:
		return validateDomain(decodeLE[int16](loBytes), decodeLE[int16](hiBytes))
	case UINT16:
		return validateDomain(decodeLE[uint16](loBytes), decodeLE[uint16](hiBytes))
	case INT32:
		return validateDomain(decodeLE[int32](loBytes), decodeLE[int32](hiBytes))
	case UINT32:
		return validateDomain(decodeLE[uint32](loBytes), decodeLE[uint32](hiBytes))
	case INT64:
		return validateDomain(decodeLE[int64](loBytes), decodeLE[int64](hiBytes))
	case UINT64:
		return validateDomain(decodeLE[uint64](loBytes), decodeLE[uint64](hiBytes))
	case FLOAT32:
		return validateDomain(decodeLE[float32](loBytes), decodeLE[float32](hiBytes))
	case FLOAT64:
		return validateDomain(decodeLE[float64](loBytes), decodeLE[float64](hiBytes))
	default:
		return newErrUnsupportedDomainType(typ)
	}
}

func dispatchValidateTileExtent(typ Datatype, extentBytes, loBytes, hiBytes []byte) error {
	switch typ {
	case INT8:
		return validateTileExtent(decodeLE[int8](extentBytes), decodeLE[int8](loBytes), decodeLE[int8](hiBytes))
	case UINT8:
		return validateTileExtent(decodeLE[uint8](extentBytes), decodeLE[uint8](loBytes), decodeLE[uint8](hiBytes))
	case INT16:
		return validateTileExtent(decodeLE[int16](extentBytes), decodeLE[int16](loBytes), decodeLE[int16](hiBytes))
	case UINT16:
		return validateTileExtent(decodeLE[uint16](extentBytes), decodeLE[uint16](loBytes), decodeLE[uint16](hiBytes))
	case INT32:
		return validateTileExtent(decodeLE[int32](extentBytes), decodeLE[int32](loBytes), decodeLE[int32](hiBytes))
	case UINT32:
		return validateTileExtent(decodeLE[uint32](extentBytes), decodeLE[uint32](loBytes), decodeLE[uint32](hiBytes))
	case INT64:
		return validateTileExtent(decodeLE[int64](extentBytes), decodeLE[int64](loBytes), decodeLE[int64](hiBytes))
	case UINT64:
		return validateTileExtent(decodeLE[uint64](extentBytes), decodeLE[uint64](loBytes), decodeLE[uint64](hiBytes))
	case FLOAT32:
		return validateTileExtent(decodeLE[float32](extentBytes), decodeLE[float32](loBytes), decodeLE[float32](hiBytes))
	case FLOAT64:
		return validateTileExtent(decodeLE[float64](extentBytes), decodeLE[float64](loBytes), decodeLE[float64](hiBytes))
	default:
		return newErrUnsupportedDomainType(typ)
	}
}

func dispatchNullExtentToRange(typ Datatype, loBytes, hiBytes []byte) []byte {
	switch typ {
	case INT8:
		return encodeLE(nil, nullExtentToRange(decodeLE[int8](loBytes), decodeLE[int8](hiBytes)))
	case UINT8:
		return encodeLE(nil, nullExtentToRange(decodeLE[uint8](loBytes), decodeLE[uint8](hiBytes)))
	case INT16:
		return encodeLE(nil, nullExtentToRange(decodeLE[int16](loBytes), decodeLE[int16](hiBytes)))
	case UINT16:
		return encodeLE(nil, nullExtentToRange(decodeLE[uint16](loBytes), decodeLE[uint16](hiBytes)))
	case INT32:
		return encodeLE(nil, nullExtentToRange(decodeLE[int32](loBytes), decodeLE[int32](hiBytes)))
	case UINT32:
		return encodeLE(nil, nullExtentToRange(decodeLE[uint32](loBytes), decodeLE[uint32](hiBytes)))
	case INT64:
		return encodeLE(nil, nullExtentToRange(decodeLE[int64](loBytes), decodeLE[int64](hiBytes)))
	case UINT64:
		return encodeLE(nil, nullExtentToRange(decodeLE[uint64](loBytes), decodeLE[uint64](hiBytes)))
	case FLOAT32:
		return encodeLE(nil, nullExtentToRange(decodeLE[float32](loBytes), decodeLE[float32](hiBytes)))
	case FLOAT64:
		return encodeLE(nil, nullExtentToRange(decodeLE[float64](loBytes), decodeLE[float64](hiBytes)))
	default:
		return nil
	}
}
