// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

import "fmt"

// Datatype is a tagged enumeration over the element kinds a Dimension or
// Attribute can carry. The ten numeric kinds support ordering and
// arithmetic; the remaining kinds are opaque/string placeholders that the
// core accepts for attributes but rejects for domain bounds checking.
type Datatype uint8

const (
	INT8 Datatype = iota
	UINT8
	INT16
	UINT16
	INT32
	UINT32
	INT64
	UINT64
	FLOAT32
	FLOAT64

	CHAR
	STRING_ASCII
	STRING_UTF8
	STRING_UTF16
	STRING_UTF32
	STRING_UCS2
	STRING_UCS4
	ANY
)

var datatypeNames = map[Datatype]string{
	INT8:         "INT8",
	UINT8:        "UINT8",
	INT16:        "INT16",
	UINT16:       "UINT16",
	INT32:        "INT32",
	UINT32:       "UINT32",
	INT64:        "INT64",
	UINT64:       "UINT64",
	FLOAT32:      "FLOAT32",
	FLOAT64:      "FLOAT64",
	CHAR:         "CHAR",
	STRING_ASCII: "STRING_ASCII",
	STRING_UTF8:  "STRING_UTF8",
	STRING_UTF16: "STRING_UTF16",
	STRING_UTF32: "STRING_UTF32",
	STRING_UCS2:  "STRING_UCS2",
	STRING_UCS4:  "STRING_UCS4",
	ANY:          "ANY",
}

func (d Datatype) String() string {
	if name, ok := datatypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Datatype(%d)", uint8(d))
}

// IsNumeric reports whether d is one of the ten ordered numeric kinds that
// support domain bounds checking and tile-extent arithmetic.
func (d Datatype) IsNumeric() bool {
	return d <= FLOAT64
}

// IsFloat reports whether d is one of the two floating-point kinds.
func (d Datatype) IsFloat() bool {
	return d == FLOAT32 || d == FLOAT64
}

// ByteWidth returns the width in bytes of one element of d. String kinds
// return the width of one code unit (1 for CHAR, STRING_ASCII and
// STRING_UTF8, 2 for STRING_UTF16 and STRING_UCS2, 4 for STRING_UTF32 and
// STRING_UCS4); ANY and unknown values return 0.
func (d Datatype) ByteWidth() int {
	switch d {
	case INT8, UINT8, CHAR, STRING_ASCII:
		return 1
	case INT16, UINT16, STRING_UTF16, STRING_UCS2:
		return 2
	case INT32, UINT32, FLOAT32, STRING_UTF32, STRING_UCS4:
		return 4
	case INT64, UINT64, FLOAT64:
		return 8
	case STRING_UTF8:
		return 1
	default:
		return 0
	}
}

// Numeric is the type constraint satisfied by the ten element kinds a
// Domain or Dimension can be defined over. All interior validation and
// comparison code is written once against this constraint; the only places
// that switch on a Datatype tag to pick a Numeric type are the dispatch
// functions in dimension.go and subarray.go.
type Numeric interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}
