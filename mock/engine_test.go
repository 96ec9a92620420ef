package mock_test

import (
	"context"
	"testing"

	"github.com/featurebasedb/tiledb"
	"github.com/featurebasedb/tiledb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Defaults(t *testing.T) {
	r := mock.NewReader()
	require.NoError(t, r.Init(context.Background()))
	require.NoError(t, r.Read(context.Background()))
	assert.False(t, r.Incomplete())
	assert.False(t, r.NoResults())
	assert.Empty(t, r.FragmentURIs())
	assert.Equal(t, "", r.LastFragmentURI())
}

func TestReader_SetBufferTracksRegistry(t *testing.T) {
	r := mock.NewReader()
	size := uint64(4)
	require.NoError(t, r.SetBuffer("a", tiledb.NewFixedAttributeBuffer(make([]byte, 4), &size)))
	assert.Contains(t, r.Attributes(), "a")
	assert.Contains(t, r.AttributeBuffers(), "a")
}

func TestReader_OverridesFunc(t *testing.T) {
	r := mock.NewReader()
	r.IncompleteFunc = func() bool { return true }
	assert.True(t, r.Incomplete())
}

func TestWriter_Defaults(t *testing.T) {
	w := mock.NewWriter()
	require.NoError(t, w.Init(context.Background()))
	require.NoError(t, w.Write(context.Background()))
	require.NoError(t, w.Finalize(context.Background()))
}

func TestWriter_SetFragmentURI(t *testing.T) {
	w := mock.NewWriter()
	called := ""
	w.SetFragmentURIFunc = func(uri string) { called = uri }
	w.SetFragmentURI("frag://1")
	assert.Equal(t, "frag://1", called)
}
