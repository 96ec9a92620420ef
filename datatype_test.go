package tiledb_test

import (
	"testing"

	"github.com/featurebasedb/tiledb"
	"github.com/stretchr/testify/assert"
)

func TestDatatype_IsNumeric(t *testing.T) {
	numeric := []tiledb.Datatype{
		tiledb.INT8, tiledb.UINT8, tiledb.INT16, tiledb.UINT16,
		tiledb.INT32, tiledb.UINT32, tiledb.INT64, tiledb.UINT64,
		tiledb.FLOAT32, tiledb.FLOAT64,
	}
	for _, dt := range numeric {
		assert.True(t, dt.IsNumeric(), dt.String())
	}

	nonNumeric := []tiledb.Datatype{
		tiledb.CHAR, tiledb.STRING_ASCII, tiledb.STRING_UTF8,
		tiledb.STRING_UTF16, tiledb.STRING_UTF32, tiledb.STRING_UCS2,
		tiledb.STRING_UCS4, tiledb.ANY,
	}
	for _, dt := range nonNumeric {
		assert.False(t, dt.IsNumeric(), dt.String())
	}
}

func TestDatatype_ByteWidth(t *testing.T) {
	assert.Equal(t, 1, tiledb.INT8.ByteWidth())
	assert.Equal(t, 2, tiledb.UINT16.ByteWidth())
	assert.Equal(t, 4, tiledb.INT32.ByteWidth())
	assert.Equal(t, 8, tiledb.FLOAT64.ByteWidth())
}

func TestDatatype_String(t *testing.T) {
	assert.Equal(t, "INT32", tiledb.INT32.String())
	assert.Equal(t, "ANY", tiledb.ANY.String())
}
