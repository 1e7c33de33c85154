package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRawBytesPaperSample(t *testing.T) {
	// Row-major 8x8 bytes, row 0 first — the same layout the worked
	// quadtree example starts from before the loader's
	// transpose+flip.
	rows := [8][8]byte{
		{1, 1, 1, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1},
		{0, 0, 0, 0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	raw := make([]byte, 0, 64)
	for _, row := range rows {
		raw = append(raw, row[:]...)
	}

	r, err := LoadRawBytes(raw, 8, 8)
	require.NoError(t, err)
	require.Equal(t, 8, r.W)
	require.Equal(t, 8, r.H)

	want := func(x, y int) bool {
		return rows[7-y][x] == 1
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			got := r.At(x, y) == 1
			assert.Equalf(t, want(x, y), got, "x=%d y=%d", x, y)
		}
	}
}

func TestLoadRawBytesRejectsWrongLength(t *testing.T) {
	_, err := LoadRawBytes(make([]byte, 10), 3, 4)
	assert.Error(t, err)
}

func TestCategoriesAndMask(t *testing.T) {
	r := NewRaster(2, 2)
	r.Set(0, 0, 1)
	r.Set(1, 0, 3)
	r.Set(0, 1, 1)
	r.Set(1, 1, 3)

	assert.Equal(t, []uint8{1, 3}, r.Categories())

	mask := r.Mask(1)
	assert.True(t, mask(0, 0))
	assert.False(t, mask(1, 0))
	assert.False(t, mask(5, 5))
}
