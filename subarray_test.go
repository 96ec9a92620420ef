package tiledb_test

import (
	"testing"

	"github.com/featurebasedb/tiledb"
	"github.com/featurebasedb/tiledb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Pair(lo, hi float64) []byte {
	b := make([]byte, 16)
	le64(b[0:8], lo)
	le64(b[8:16], hi)
	return b
}

func int32Pair(lo, hi int32) []byte {
	b := make([]byte, 8)
	le32(b[0:4], uint32(lo))
	le32(b[4:8], uint32(hi))
	return b
}

func newFloat64Domain(lo, hi float64) *tiledb.Domain {
	dom := tiledb.NewDomain(tiledb.FLOAT64)
	d := tiledb.NewDimension("x", tiledb.FLOAT64)
	if err := d.SetDomain(float64Pair(lo, hi)); err != nil {
		panic(err)
	}
	if err := dom.AddDimension(d); err != nil {
		panic(err)
	}
	return dom
}

func newInt32Domain2D(lo0, hi0, lo1, hi1 int32) *tiledb.Domain {
	dom := tiledb.NewDomain(tiledb.INT32)
	d0 := tiledb.NewDimension("x", tiledb.INT32)
	if err := d0.SetDomain(int32Pair(lo0, hi0)); err != nil {
		panic(err)
	}
	d1 := tiledb.NewDimension("y", tiledb.INT32)
	if err := d1.SetDomain(int32Pair(lo1, hi1)); err != nil {
		panic(err)
	}
	if err := dom.AddDimension(d0); err != nil {
		panic(err)
	}
	if err := dom.AddDimension(d1); err != nil {
		panic(err)
	}
	return dom
}

func TestCheckSubarrayBounds_NilAccepted(t *testing.T) {
	dom := newFloat64Domain(0, 1)
	assert.NoError(t, tiledb.CheckSubarrayBounds(dom, nil))
}

func TestCheckSubarrayBounds_FullRangeAccepted(t *testing.T) {
	dom := newFloat64Domain(0, 1)
	assert.NoError(t, tiledb.CheckSubarrayBounds(dom, float64Pair(0, 1)))
}

func TestCheckSubarrayBounds_SinglePointAccepted(t *testing.T) {
	dom := newFloat64Domain(0, 1)
	assert.NoError(t, tiledb.CheckSubarrayBounds(dom, float64Pair(0.5, 0.5)))
}

func TestCheckSubarrayBounds_OutOfBounds(t *testing.T) {
	dom := newFloat64Domain(0, 1)
	err := tiledb.CheckSubarrayBounds(dom, float64Pair(0.5, 1.5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tiledb.ErrCodeSubarrayOutOfBounds))
}

func TestCheckSubarrayBounds_InvalidRange(t *testing.T) {
	dom := newFloat64Domain(0, 1)
	err := tiledb.CheckSubarrayBounds(dom, float64Pair(0.8, 0.2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tiledb.ErrCodeInvalidSubarrayRange))
}

func TestCheckSubarrayBounds_MultiDimension(t *testing.T) {
	dom := newInt32Domain2D(0, 9, 0, 19)
	raw := append(int32Pair(0, 9), int32Pair(0, 19)...)
	assert.NoError(t, tiledb.CheckSubarrayBounds(dom, raw))
}

func TestCheckSubarrayBounds_UnsupportedDomainType(t *testing.T) {
	dom := tiledb.NewDomain(tiledb.STRING_UTF8)
	err := tiledb.CheckSubarrayBounds(dom, []byte{0, 1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, tiledb.ErrCodeUnsupportedDomainType))
}
