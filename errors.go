// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

import (
	"fmt"

	"github.com/featurebasedb/tiledb/errors"
)

// Schema-level error codes.
const (
	ErrCodeInvalidDomain         errors.Code = "InvalidDomain"
	ErrCodeInvalidTileExtent     errors.Code = "InvalidTileExtent"
	ErrCodeUnsupportedDomainType errors.Code = "UnsupportedDomainType"
)

// Query-level error codes.
const (
	ErrCodeNotInitialized       errors.Code = "NotInitialized"
	ErrCodeNullBuffer           errors.Code = "NullBuffer"
	ErrCodeInvalidOffsets       errors.Code = "InvalidOffsets"
	ErrCodeSubarrayOutOfBounds  errors.Code = "SubarrayOutOfBounds"
	ErrCodeInvalidSubarrayRange errors.Code = "InvalidSubarrayRange"
	ErrCodeBufferSizeMismatch   errors.Code = "BufferSizeMismatch"
	ErrCodeSchemaNotSet         errors.Code = "SchemaNotSet"
)

func newErrNotInitialized() error {
	return errors.New(ErrCodeNotInitialized, "cannot process query; query is not initialized")
}

func newErrNullBuffer() error {
	return errors.New(ErrCodeNullBuffer, "cannot use null offset buffers")
}

func newErrInvalidOffsets(format string, args ...interface{}) error {
	return errors.New(ErrCodeInvalidOffsets, fmt.Sprintf(format, args...))
}

func newErrSubarrayOutOfBounds() error {
	return errors.New(ErrCodeSubarrayOutOfBounds, "subarray out of bounds")
}

func newErrInvalidSubarrayRange() error {
	return errors.New(ErrCodeInvalidSubarrayRange, "subarray lower bound is larger than upper bound")
}

func newErrBufferSizeMismatch(existing, incoming uint64) error {
	return errors.New(
		ErrCodeBufferSizeMismatch,
		fmt.Sprintf(
			"existing buffer in query object is different size (%d) vs incoming buffer size (%d)",
			existing, incoming,
		),
	)
}

func newErrSchemaNotSet() error {
	return errors.New(ErrCodeSchemaNotSet, "cannot check subarray; array schema not set")
}

func newErrUnsupportedDomainType(typ Datatype) error {
	return errors.New(ErrCodeUnsupportedDomainType, fmt.Sprintf("unsupported domain type: %s", typ))
}
