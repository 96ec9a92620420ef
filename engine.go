// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

import "context"

// ArraySchema is the external collaborator that provides a Domain and
// attribute metadata. Construction, attribute/domain definition, and
// disk format are out of scope for the core; the core only ever calls
// Domain() for subarray validation.
type ArraySchema interface {
	Domain() *Domain
}

// StorageManager is an opaque external collaborator (VFS, locking,
// consolidation). The core never calls into it directly; it is only
// threaded through to whichever engine is active.
type StorageManager interface{}

// FragmentMetadata is an opaque external collaborator describing one
// on-disk fragment, threaded through to the Reader only.
type FragmentMetadata interface{}

// Engine is the capability every Reader and Writer shares: the
// symmetric operations a Query façade routes identically regardless of
// QueryType. Reimplemented per the DESIGN NOTES as a single capability
// interface with two concrete variants, rather than an `if type ==
// WRITE` ladder sprinkled through the façade.
type Engine interface {
	Init(ctx context.Context) error
	SetBuffer(name string, buf AttributeBuffer) error
	AttributeBuffers() map[string]AttributeBuffer
	Attributes() []string
	SetLayout(layout Layout)
	SetArraySchema(schema ArraySchema)
	SetStorageManager(sm StorageManager)
	SetSubarray(raw []byte)
}

// Reader is the capability an engine offers for QueryType READ.
type Reader interface {
	Engine

	// Read performs one incremental step of a read, writing into the
	// registered buffers and updating their size pointers to the
	// number of bytes actually produced.
	Read(ctx context.Context) error

	// Incomplete reports whether the most recent Read exhausted a
	// caller buffer before the read was fully satisfied.
	Incomplete() bool

	// NoResults reports whether the query, as configured, matches no
	// cells. Backs Query.HasResults().
	NoResults() bool

	SetFragmentMetadata(meta []FragmentMetadata)
	FragmentMetadata() []FragmentMetadata
	FragmentNum() uint
	FragmentURIs() []string
	LastFragmentURI() string
}

// Writer is the capability an engine offers for QueryType WRITE.
type Writer interface {
	Engine

	// Write performs one incremental step of a write.
	Write(ctx context.Context) error

	// Finalize commits the fragment. Called by QueryStateMachine.Finalize.
	Finalize(ctx context.Context) error

	SetFragmentURI(uri string)
}
