// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package mock provides function-field fake implementations of the
// tiledb.Reader and tiledb.Writer capability interfaces: every method the
// interface requires is backed by an
// exported func field, defaulted to a harmless no-op, so a test installs
// only the behavior it cares about.
package mock

import (
	"context"

	"github.com/featurebasedb/tiledb"
)

// Reader is a fake tiledb.Reader.
type Reader struct {
	InitFunc              func(ctx context.Context) error
	ReadFunc              func(ctx context.Context) error
	IncompleteFunc        func() bool
	NoResultsFunc         func() bool
	SetBufferFunc         func(name string, buf tiledb.AttributeBuffer) error
	AttributeBuffersFunc  func() map[string]tiledb.AttributeBuffer
	AttributesFunc        func() []string
	SetLayoutFunc         func(layout tiledb.Layout)
	SetArraySchemaFunc    func(schema tiledb.ArraySchema)
	SetStorageManagerFunc func(sm tiledb.StorageManager)
	SetSubarrayFunc       func(raw []byte)
	SetFragmentMetaFunc   func(meta []tiledb.FragmentMetadata)
	FragmentMetadataFunc  func() []tiledb.FragmentMetadata
	FragmentNumFunc       func() uint
	FragmentURIsFunc      func() []string
	LastFragmentURIFunc   func() string

	buffers  map[string]tiledb.AttributeBuffer
	fragMeta []tiledb.FragmentMetadata
}

// NewReader returns a Reader with every method defaulted to a harmless
// no-op/zero-value implementation and its buffer registry initialized.
func NewReader() *Reader {
	return &Reader{buffers: make(map[string]tiledb.AttributeBuffer)}
}

func (r *Reader) Init(ctx context.Context) error {
	if r.InitFunc != nil {
		return r.InitFunc(ctx)
	}
	return nil
}

func (r *Reader) Read(ctx context.Context) error {
	if r.ReadFunc != nil {
		return r.ReadFunc(ctx)
	}
	return nil
}

func (r *Reader) Incomplete() bool {
	if r.IncompleteFunc != nil {
		return r.IncompleteFunc()
	}
	return false
}

func (r *Reader) NoResults() bool {
	if r.NoResultsFunc != nil {
		return r.NoResultsFunc()
	}
	return false
}

func (r *Reader) SetBuffer(name string, buf tiledb.AttributeBuffer) error {
	if r.SetBufferFunc != nil {
		return r.SetBufferFunc(name, buf)
	}
	if r.buffers == nil {
		r.buffers = make(map[string]tiledb.AttributeBuffer)
	}
	r.buffers[name] = buf
	return nil
}

func (r *Reader) AttributeBuffers() map[string]tiledb.AttributeBuffer {
	if r.AttributeBuffersFunc != nil {
		return r.AttributeBuffersFunc()
	}
	return r.buffers
}

func (r *Reader) Attributes() []string {
	if r.AttributesFunc != nil {
		return r.AttributesFunc()
	}
	names := make([]string, 0, len(r.buffers))
	for name := range r.buffers {
		names = append(names, name)
	}
	return names
}

func (r *Reader) SetLayout(layout tiledb.Layout) {
	if r.SetLayoutFunc != nil {
		r.SetLayoutFunc(layout)
	}
}

func (r *Reader) SetArraySchema(schema tiledb.ArraySchema) {
	if r.SetArraySchemaFunc != nil {
		r.SetArraySchemaFunc(schema)
	}
}

func (r *Reader) SetStorageManager(sm tiledb.StorageManager) {
	if r.SetStorageManagerFunc != nil {
		r.SetStorageManagerFunc(sm)
	}
}

func (r *Reader) SetSubarray(raw []byte) {
	if r.SetSubarrayFunc != nil {
		r.SetSubarrayFunc(raw)
	}
}

func (r *Reader) SetFragmentMetadata(meta []tiledb.FragmentMetadata) {
	if r.SetFragmentMetaFunc != nil {
		r.SetFragmentMetaFunc(meta)
		return
	}
	r.fragMeta = meta
}

func (r *Reader) FragmentMetadata() []tiledb.FragmentMetadata {
	if r.FragmentMetadataFunc != nil {
		return r.FragmentMetadataFunc()
	}
	return r.fragMeta
}

func (r *Reader) FragmentNum() uint {
	if r.FragmentNumFunc != nil {
		return r.FragmentNumFunc()
	}
	return uint(len(r.fragMeta))
}

func (r *Reader) FragmentURIs() []string {
	if r.FragmentURIsFunc != nil {
		return r.FragmentURIsFunc()
	}
	return nil
}

func (r *Reader) LastFragmentURI() string {
	if r.LastFragmentURIFunc != nil {
		return r.LastFragmentURIFunc()
	}
	return ""
}

// Writer is a fake tiledb.Writer.
type Writer struct {
	InitFunc              func(ctx context.Context) error
	WriteFunc             func(ctx context.Context) error
	FinalizeFunc          func(ctx context.Context) error
	SetBufferFunc         func(name string, buf tiledb.AttributeBuffer) error
	AttributeBuffersFunc  func() map[string]tiledb.AttributeBuffer
	AttributesFunc        func() []string
	SetLayoutFunc         func(layout tiledb.Layout)
	SetArraySchemaFunc    func(schema tiledb.ArraySchema)
	SetStorageManagerFunc func(sm tiledb.StorageManager)
	SetSubarrayFunc       func(raw []byte)
	SetFragmentURIFunc    func(uri string)

	buffers     map[string]tiledb.AttributeBuffer
	fragmentURI string
}

// NewWriter returns a Writer with every method defaulted to a harmless
// no-op/zero-value implementation and its buffer registry initialized.
func NewWriter() *Writer {
	return &Writer{buffers: make(map[string]tiledb.AttributeBuffer)}
}

func (w *Writer) Init(ctx context.Context) error {
	if w.InitFunc != nil {
		return w.InitFunc(ctx)
	}
	return nil
}

func (w *Writer) Write(ctx context.Context) error {
	if w.WriteFunc != nil {
		return w.WriteFunc(ctx)
	}
	return nil
}

func (w *Writer) Finalize(ctx context.Context) error {
	if w.FinalizeFunc != nil {
		return w.FinalizeFunc(ctx)
	}
	return nil
}

func (w *Writer) SetBuffer(name string, buf tiledb.AttributeBuffer) error {
	if w.SetBufferFunc != nil {
		return w.SetBufferFunc(name, buf)
	}
	if w.buffers == nil {
		w.buffers = make(map[string]tiledb.AttributeBuffer)
	}
	w.buffers[name] = buf
	return nil
}

func (w *Writer) AttributeBuffers() map[string]tiledb.AttributeBuffer {
	if w.AttributeBuffersFunc != nil {
		return w.AttributeBuffersFunc()
	}
	return w.buffers
}

func (w *Writer) Attributes() []string {
	if w.AttributesFunc != nil {
		return w.AttributesFunc()
	}
	names := make([]string, 0, len(w.buffers))
	for name := range w.buffers {
		names = append(names, name)
	}
	return names
}

func (w *Writer) SetLayout(layout tiledb.Layout) {
	if w.SetLayoutFunc != nil {
		w.SetLayoutFunc(layout)
	}
}

func (w *Writer) SetArraySchema(schema tiledb.ArraySchema) {
	if w.SetArraySchemaFunc != nil {
		w.SetArraySchemaFunc(schema)
	}
}

func (w *Writer) SetStorageManager(sm tiledb.StorageManager) {
	if w.SetStorageManagerFunc != nil {
		w.SetStorageManagerFunc(sm)
	}
}

func (w *Writer) SetSubarray(raw []byte) {
	if w.SetSubarrayFunc != nil {
		w.SetSubarrayFunc(raw)
	}
}

func (w *Writer) SetFragmentURI(uri string) {
	if w.SetFragmentURIFunc != nil {
		w.SetFragmentURIFunc(uri)
		return
	}
	w.fragmentURI = uri
}
