// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

import (
	"context"

	"github.com/featurebasedb/tiledb/errors"
	"github.com/featurebasedb/tiledb/logger"
	"github.com/featurebasedb/tiledb/tracing"
)

// ErrCodeWrongQueryType guards the supplemental ReplaceWriterState seam,
// which is only meaningful for a WRITE query.
const ErrCodeWrongQueryType errors.Code = "WrongQueryType"

func newErrWrongQueryType(msg string) error {
	return errors.New(ErrCodeWrongQueryType, msg)
}

// Query is the single entry point coordinating a read or a write against
// an array: it validates the caller's subarray and buffer layout,
// dispatches to the active Engine (Reader or Writer), and owns the
// query's status lifecycle via an embedded QueryStateMachine.
//
// A Query is not safe for concurrent use by multiple goroutines; a
// caller that shares one across goroutines must serialize externally.
type Query struct {
	typ    QueryType
	engine Engine

	sm               *QueryStateMachine
	layout           Layout
	schema           ArraySchema
	storageManager   StorageManager
	fragmentMetadata []FragmentMetadata
	subarray         []byte

	log logger.Logger
}

// Option configures optional Query behavior at construction.
type Option func(*Query)

// WithLogger installs a logger.Logger that every error returned to the
// caller is passed through (via Errorf) before being returned; the log
// call never alters the error value.
func WithLogger(l logger.Logger) Option {
	return func(q *Query) { q.log = l }
}

// NewQuery constructs a Query of the given type against schema, backed
// by engine. engine must implement Reader if typ is READ, or Writer if
// typ is WRITE; a mismatch is a programmer error reported immediately.
// fragmentMetadata is stored on the engine only when typ is READ.
func NewQuery(sm StorageManager, typ QueryType, schema ArraySchema, fragmentMetadata []FragmentMetadata, engine Engine, opts ...Option) (*Query, error) {
	q := &Query{
		typ:            typ,
		engine:         engine,
		sm:             NewQueryStateMachine(),
		layout:         ROW_MAJOR,
		schema:         schema,
		storageManager: sm,
		log:            logger.NopLogger,
	}
	for _, opt := range opts {
		opt(q)
	}

	switch typ {
	case READ:
		r, ok := engine.(Reader)
		if !ok {
			return nil, q.logged(newErrWrongQueryType("cannot construct a READ query with an engine that is not a Reader"))
		}
		q.fragmentMetadata = fragmentMetadata
		r.SetFragmentMetadata(fragmentMetadata)
	case WRITE:
		if _, ok := engine.(Writer); !ok {
			return nil, q.logged(newErrWrongQueryType("cannot construct a WRITE query with an engine that is not a Writer"))
		}
	}

	engine.SetArraySchema(schema)
	engine.SetStorageManager(sm)
	engine.SetLayout(q.layout)

	return q, nil
}

func (q *Query) logged(err error) error {
	if err != nil {
		q.log.Errorf("%v", err)
	}
	return err
}

// Type returns the query's immutable type.
func (q *Query) Type() QueryType { return q.typ }

// Status returns the query's current lifecycle status.
func (q *Query) Status() QueryStatus { return q.sm.Status() }

// Layout returns the query's cell layout.
func (q *Query) Layout() Layout { return q.layout }

// SetLayout installs the cell layout and notifies the active engine.
func (q *Query) SetLayout(l Layout) {
	q.layout = l
	q.engine.SetLayout(l)
}

// ArraySchema returns the schema the query reads or writes against.
func (q *Query) ArraySchema() ArraySchema { return q.schema }

// StorageManager returns the query's storage manager reference.
func (q *Query) StorageManager() StorageManager { return q.storageManager }

// SetCallback registers a completion callback, invoked synchronously
// exactly once per terminal transition to COMPLETED.
func (q *Query) SetCallback(fn CompletionFunc, userData interface{}) {
	q.sm.SetCallback(fn, userData)
}

// SetSubarray validates raw against the schema's Domain and, on success,
// installs it and resets status to UNINITIALIZED.
func (q *Query) SetSubarray(raw []byte) error {
	if q.schema == nil {
		return q.logged(newErrSchemaNotSet())
	}
	if err := CheckSubarrayBounds(q.schema.Domain(), raw); err != nil {
		return q.logged(err)
	}
	q.subarray = raw
	q.engine.SetSubarray(raw)
	q.sm.Reset()
	return nil
}

// Subarray returns the currently installed subarray, or nil if the
// entire domain is selected.
func (q *Query) Subarray() []byte { return q.subarray }

// SetBuffer registers a fixed-length attribute buffer and routes it to
// the active engine.
func (q *Query) SetBuffer(name string, data []byte, dataSize *uint64) error {
	return q.logged(q.engine.SetBuffer(name, NewFixedAttributeBuffer(data, dataSize)))
}

// SetVarBuffer validates and registers a variable-length attribute
// buffer, routing it to the active engine.
func (q *Query) SetVarBuffer(name string, offsets []uint64, offsetsSize *uint64, values []byte, valuesSize *uint64) error {
	if err := CheckVarAttrOffsets(offsets, offsetsSize, valuesSize); err != nil {
		return q.logged(err)
	}
	return q.logged(q.engine.SetBuffer(name, NewVariableAttributeBuffer(offsets, offsetsSize, values, valuesSize)))
}

// Attributes returns the names of every attribute with a registered
// buffer.
func (q *Query) Attributes() []string { return q.engine.Attributes() }

// AttributeBuffers returns the full attribute-name to AttributeBuffer
// registry held by the active engine.
func (q *Query) AttributeBuffers() map[string]AttributeBuffer { return q.engine.AttributeBuffers() }

// HasResults reports whether the query, as currently configured,
// matches at least one cell. It is always false for WRITE queries and
// for a query that has not yet been initialized.
func (q *Query) HasResults() bool {
	if q.typ != READ || q.Status() == UNINITIALIZED {
		return false
	}
	r := q.engine.(Reader)
	return !r.NoResults()
}

// FragmentMetadata returns the fragments underlying a READ query, or
// nil for WRITE.
func (q *Query) FragmentMetadata() []FragmentMetadata {
	if q.typ != READ {
		return nil
	}
	return q.engine.(Reader).FragmentMetadata()
}

// FragmentNum returns the number of fragments underlying a READ query,
// or 0 for WRITE.
func (q *Query) FragmentNum() uint {
	if q.typ != READ {
		return 0
	}
	return q.engine.(Reader).FragmentNum()
}

// FragmentURIs returns the URIs of the fragments underlying a READ
// query, or nil for WRITE.
func (q *Query) FragmentURIs() []string {
	if q.typ != READ {
		return nil
	}
	return q.engine.(Reader).FragmentURIs()
}

// LastFragmentURI returns the URI of the most recent fragment underlying
// a READ query, or "" for WRITE.
func (q *Query) LastFragmentURI() string {
	if q.typ != READ {
		return ""
	}
	return q.engine.(Reader).LastFragmentURI()
}

// SetFragmentURI installs the URI a WRITE query commits to on Finalize.
// It is ignored for READ.
func (q *Query) SetFragmentURI(uri string) {
	if q.typ != WRITE {
		return
	}
	q.engine.(Writer).SetFragmentURI(uri)
}

// Init transitions the query from UNINITIALIZED to INPROGRESS,
// delegating to the engine's Init on first entry.
func (q *Query) Init(ctx context.Context) error {
	span, ctx := tracing.StartSpanFromContext(ctx, "Query.Init")
	defer span.Finish()

	return q.logged(q.sm.Init(func() error {
		return q.engine.Init(ctx)
	}))
}

// Process drives one incremental step of the query: a WRITE completes
// in a single call; a READ may report INCOMPLETE and must be called
// again until COMPLETED.
func (q *Query) Process(ctx context.Context) error {
	span, ctx := tracing.StartSpanFromContext(ctx, "Query.Process")
	defer span.Finish()

	return q.logged(q.sm.Process(func() (completed bool, incomplete bool, err error) {
		switch q.typ {
		case WRITE:
			w := q.engine.(Writer)
			if err := w.Write(ctx); err != nil {
				return false, false, err
			}
			return true, false, nil
		case READ:
			r := q.engine.(Reader)
			if err := r.Read(ctx); err != nil {
				return false, false, err
			}
			if r.Incomplete() {
				return false, true, nil
			}
			return true, false, nil
		default:
			return true, false, nil
		}
	}))
}

// Finalize commits a WRITE's fragment; it is a symmetric no-op for READ.
func (q *Query) Finalize(ctx context.Context) error {
	span, ctx := tracing.StartSpanFromContext(ctx, "Query.Finalize")
	defer span.Finish()

	return q.logged(q.sm.Finalize(func() error {
		if q.typ == WRITE {
			return q.engine.(Writer).Finalize(ctx)
		}
		return nil
	}))
}

// Cancel is best-effort: it sets status to FAILED and returns nil. It
// does not interrupt an in-flight engine call.
func (q *Query) Cancel() error {
	return q.sm.Cancel()
}

// Copy produces an independent Query sharing this query's schema,
// storage manager, and fragment metadata references, with status and
// layout copied onto it. The attribute-buffer registry and subarray are
// deliberately not carried over: the caller supplies a freshly
// constructed engine (empty of buffers) to back the copy, and the
// BufferCopy protocol (MergeBuffers) is used to re-install buffer
// contents.
func (q *Query) Copy(engine Engine) *Query {
	nq := &Query{
		typ:              q.typ,
		engine:           engine,
		sm:               NewQueryStateMachine(),
		layout:           q.layout,
		schema:           q.schema,
		storageManager:   q.storageManager,
		fragmentMetadata: q.fragmentMetadata,
		log:              q.log,
	}
	nq.sm.setStatus(q.Status())

	engine.SetArraySchema(nq.schema)
	engine.SetStorageManager(nq.storageManager)
	engine.SetLayout(nq.layout)
	if nq.typ == READ {
		engine.(Reader).SetFragmentMetadata(nq.fragmentMetadata)
	}

	return nq
}

// ReplaceWriterState swaps this WRITE query's engine-side state wholesale
// for w, preserving the schema, storage manager, and layout already
// installed: engine state can be replaced wholesale while the
// already-installed schema reference stays in place, without requiring
// a serialization format to carry that handoff.
func (q *Query) ReplaceWriterState(w Writer) error {
	if q.typ != WRITE {
		return q.logged(newErrWrongQueryType("cannot replace writer state on a " + q.typ.String() + " query"))
	}
	w.SetArraySchema(q.schema)
	w.SetStorageManager(q.storageManager)
	w.SetLayout(q.layout)
	q.engine = w
	return nil
}
