// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package tiledb implements the Query core of a client library for a
// multidimensional-array storage engine: the façade that coordinates a
// read or a write against an array defined by a schema with typed
// dimensions, validates the caller's I/O buffer layout and subarray
// against that schema, dispatches to the appropriate Reader or Writer
// engine, and manages the query's status lifecycle.
//
// The Reader and Writer engines themselves, the StorageManager, and
// ArraySchema construction are external collaborators specified only by
// the interfaces this package consumes (see engine.go); their internal
// tile-reading, fragment-writing, filtering, compression, and I/O
// pipelines are out of scope.
package tiledb
