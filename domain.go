// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

import "github.com/featurebasedb/tiledb/errors"

// Domain is the ordered sequence of Dimensions defining a coordinate
// space. All dimensions in a Domain share one Datatype.
type Domain struct {
	typ  Datatype
	dims []*Dimension
}

// NewDomain creates a Domain of the given element type.
func NewDomain(typ Datatype) *Domain {
	return &Domain{typ: typ}
}

// Type returns the domain's shared element type.
func (dom *Domain) Type() Datatype { return dom.typ }

// DimNum returns the number of dimensions in the domain.
func (dom *Domain) DimNum() int { return len(dom.dims) }

// Dimension returns the i-th dimension, or nil if i is out of range.
func (dom *Domain) Dimension(i int) *Dimension {
	if i < 0 || i >= len(dom.dims) {
		return nil
	}
	return dom.dims[i]
}

// AddDimension appends dim to the domain after checking that its type
// matches the domain's shared type.
func (dom *Domain) AddDimension(dim *Dimension) error {
	if dim.Type() != dom.typ {
		return errors.New(ErrCodeInvalidDomain,
			"dimension type does not match domain type")
	}
	dom.dims = append(dom.dims, dim)
	return nil
}
