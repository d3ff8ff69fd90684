package ppm

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrey(t *testing.T) {
	tests := []struct {
		it, max int
		want    uint8
	}{
		{0, 256, 0},
		{-3, 256, 0},
		{256, 256, 255},
		{64, 256, 127},
		{1000, 256, 255},
		{1000, 2048, 255},
		{16, 256, 63},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Grey(tt.it, tt.max), "Grey(%d, %d)", tt.it, tt.max)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	iters := []int{0, 256, 64, 16, 256, 0}

	require.NoError(t, Encode(&buf, iters, 3, 2, 256))

	header := "P6\n3 2\n255\n"
	out := buf.Bytes()
	require.Equal(t, header, string(out[:len(header)]))

	pixels := out[len(header):]
	require.Len(t, pixels, 3*len(iters))
	for i, it := range iters {
		g := Grey(it, 256)
		assert.Equal(t, []byte{g, g, g}, pixels[3*i:3*i+3], "pixel %d", i)
	}
}

func TestEncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, make([]int, 5), 3, 2, 256), ErrSize)
	assert.ErrorIs(t, Encode(&buf, nil, 0, 2, 256), ErrInvalidShape)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	require.NoError(t, WriteFile(path, []int{1, 2, 3, 4}, 2, 2, 256))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, len("P6\n2 2\n255\n")+12)

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "x.ppm"), []int{1}, 1, 1, 256)
	assert.Error(t, err)
}
