package tiledb_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/featurebasedb/tiledb"
	"github.com/featurebasedb/tiledb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dimensionSnapshot captures a Dimension's observable state for
// comparison; Dimension itself has no exported fields to diff directly.
type dimensionSnapshot struct {
	Name        string
	Type        tiledb.Datatype
	DomainBytes []byte
	ExtentBytes []byte
	HasExtent   bool
}

func snapshotDimension(d *tiledb.Dimension) dimensionSnapshot {
	return dimensionSnapshot{
		Name:        d.Name(),
		Type:        d.Type(),
		DomainBytes: d.DomainBytes(),
		ExtentBytes: d.TileExtentBytes(),
		HasExtent:   d.HasTileExtent(),
	}
}

func int32Domain(lo, hi int32) []byte {
	var b []byte
	b = appendInt32(b, lo)
	b = appendInt32(b, hi)
	return b
}

func appendInt32(b []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(v))
}

func TestDimension_SetDomain_Valid(t *testing.T) {
	d := tiledb.NewDimension("x", tiledb.INT32)
	err := d.SetDomain(int32Domain(0, 9))
	require.NoError(t, err)
	assert.True(t, d.HasDomain())
}

func TestDimension_SetDomain_InvalidRange(t *testing.T) {
	d := tiledb.NewDimension("x", tiledb.INT32)
	err := d.SetDomain(int32Domain(10, 5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tiledb.ErrCodeInvalidDomain))
	assert.False(t, d.HasDomain())
}

func TestDimension_SetDomain_NonFiniteFloat(t *testing.T) {
	d := tiledb.NewDimension("y", tiledb.FLOAT64)
	var b []byte
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(math.NaN()))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(1.0))
	err := d.SetDomain(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tiledb.ErrCodeInvalidDomain))
}

func TestDimension_SetTileExtent_Valid(t *testing.T) {
	d := tiledb.NewDimension("x", tiledb.INT32)
	require.NoError(t, d.SetDomain(int32Domain(0, 9)))
	require.NoError(t, d.SetTileExtent(appendInt32(nil, 5)))
	assert.True(t, d.HasTileExtent())
}

func TestDimension_SetTileExtent_NonPositive(t *testing.T) {
	d := tiledb.NewDimension("x", tiledb.INT32)
	require.NoError(t, d.SetDomain(int32Domain(0, 9)))
	err := d.SetTileExtent(appendInt32(nil, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tiledb.ErrCodeInvalidTileExtent))
}

func TestDimension_SetTileExtent_ExceedsRange(t *testing.T) {
	d := tiledb.NewDimension("x", tiledb.INT32)
	require.NoError(t, d.SetDomain(int32Domain(0, 9)))
	err := d.SetTileExtent(appendInt32(nil, 11))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tiledb.ErrCodeInvalidTileExtent))
}

func TestDimension_SetTileExtent_DomainNotSet(t *testing.T) {
	d := tiledb.NewDimension("x", tiledb.INT32)
	err := d.SetTileExtent(appendInt32(nil, 5))
	require.Error(t, err)
}

func TestDimension_SetNullTileExtentToRange_Integer(t *testing.T) {
	d := tiledb.NewDimension("x", tiledb.INT32)
	require.NoError(t, d.SetDomain(int32Domain(0, 9)))
	require.NoError(t, d.SetNullTileExtentToRange())
	require.True(t, d.HasTileExtent())
	assert.Equal(t, int32(10), int32(binary.LittleEndian.Uint32(d.TileExtentBytes())))
}

func TestDimension_SetNullTileExtentToRange_NoOpIfSet(t *testing.T) {
	d := tiledb.NewDimension("x", tiledb.INT32)
	require.NoError(t, d.SetDomain(int32Domain(0, 9)))
	require.NoError(t, d.SetTileExtent(appendInt32(nil, 3)))
	require.NoError(t, d.SetNullTileExtentToRange())
	assert.Equal(t, appendInt32(nil, 3), d.TileExtentBytes())
}

func TestDimension_IsAnonymous(t *testing.T) {
	named := tiledb.NewDimension("x", tiledb.INT32)
	anon := tiledb.NewDimension("", tiledb.INT32)
	assert.False(t, named.IsAnonymous())
	assert.True(t, anon.IsAnonymous())
}

func TestDimension_SerializeDeserialize_RoundTrip(t *testing.T) {
	d := tiledb.NewDimension("rows", tiledb.INT64)
	require.NoError(t, d.SetDomain(int64Domain(0, 999)))
	require.NoError(t, d.SetTileExtent(int64Scalar(100)))

	buf := d.Serialize()
	d2, err := tiledb.DeserializeDimension(buf, tiledb.INT64)
	require.NoError(t, err)

	if diff := cmp.Diff(snapshotDimension(d), snapshotDimension(d2)); diff != "" {
		t.Errorf("round trip changed dimension state (-want +got):\n%s", diff)
	}
}

func TestDimension_SerializeDeserialize_NoExtent(t *testing.T) {
	d := tiledb.NewDimension("", tiledb.UINT8)
	require.NoError(t, d.SetDomain([]byte{0, 255}))

	buf := d.Serialize()
	d2, err := tiledb.DeserializeDimension(buf, tiledb.UINT8)
	require.NoError(t, err)
	assert.False(t, d2.HasTileExtent())
	assert.True(t, d2.IsAnonymous())
}

func TestDimension_UnsupportedDomainType(t *testing.T) {
	d := tiledb.NewDimension("s", tiledb.STRING_UTF8)
	err := d.SetDomain([]byte{0, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, tiledb.ErrCodeUnsupportedDomainType))
}

func int64Domain(lo, hi int64) []byte {
	return append(int64Scalar(lo), int64Scalar(hi)...)
}

func int64Scalar(v int64) []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(v))
}
