package tiledb_test

import (
	"encoding/binary"
	"math"
)

func le64(b []byte, v float64) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

func le32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}
