package errors_test

import (
	"fmt"
	"testing"

	"github.com/featurebasedb/tiledb/errors"
	"github.com/stretchr/testify/assert"
)

const (
	errFieldNotFound errors.Code = "FieldNotFound"
	errTableNotFound errors.Code = "TableNotFound"
)

func newErrFieldNotFound(name string) error {
	return errors.New(errFieldNotFound, fmt.Sprintf("field %q not found", name))
}

func newErrTableNotFound(name string) error {
	return errors.New(errTableNotFound, fmt.Sprintf("table %q not found", name))
}

func newUncoded(msg string) error {
	return errors.New(errors.ErrUncoded, msg)
}

func TestErrors_Is(t *testing.T) {
	uncoded := newUncoded("uncoded error")
	fnf := newErrFieldNotFound("fld")
	tnf := newErrTableNotFound("tbl")
	fnfCustom := errors.New(errFieldNotFound, "custom field message")

	tests := []struct {
		err    error
		target errors.Code
		exp    bool
	}{
		{uncoded, errors.ErrUncoded, true},
		{uncoded, errFieldNotFound, false},
		{fnf, errFieldNotFound, true},
		{fnf, errTableNotFound, false},
		{errors.Wrap(tnf, "with message"), errTableNotFound, true},
		{fnfCustom, errFieldNotFound, true},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			assert.Equal(t, tt.exp, errors.Is(tt.err, tt.target))
		})
	}
}

func TestErrors_CodeOf(t *testing.T) {
	fnf := newErrFieldNotFound("fld")
	code, ok := errors.CodeOf(fnf)
	assert.True(t, ok)
	assert.Equal(t, errFieldNotFound, code)

	_, ok = errors.CodeOf(fmt.Errorf("plain error"))
	assert.False(t, ok)
}

func TestErrors_Wrap(t *testing.T) {
	base := newErrTableNotFound("tbl")
	wrapped := errors.Wrap(base, "listing tables")
	assert.True(t, errors.Is(wrapped, errTableNotFound))
	assert.Contains(t, wrapped.Error(), "listing tables")
}

func TestMarshalJSON(t *testing.T) {
	err := newErrFieldNotFound("fld")
	s := errors.MarshalJSON(err)
	assert.Contains(t, s, string(errFieldNotFound))
}
