package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	b := &Bus{}
	b.Write(0x2020, 0x42)
	assert.Equal(t, b.Read(0x2020), byte(0x42))
	assert.Equal(t, b.Read(0x0000), byte(0))
}

func TestLoadImage(t *testing.T) {
	b := &Bus{}
	err := b.LoadImage([]byte{0x01, 0x02, 0x03}, 0x0000)
	assert.NoError(t, err)
	assert.Equal(t, b.Read(0), byte(0x01))
	assert.Equal(t, b.Read(1), byte(0x02))
	assert.Equal(t, b.Read(2), byte(0x03))
	assert.Equal(t, b.Read(3), byte(0))
}

func TestLoadImageAtOffset(t *testing.T) {
	b := &Bus{}
	err := b.LoadImage([]byte{0xaa, 0xbb}, 0x0100)
	assert.NoError(t, err)
	assert.Equal(t, b.Read(0x0100), byte(0xaa))
	assert.Equal(t, b.Read(0x0101), byte(0xbb))
}

func TestLoadImageTooLarge(t *testing.T) {
	b := &Bus{}
	err := b.LoadImage(make([]byte, 10), 0xfffe)
	assert.Error(t, err)
	var tooLarge *ImageTooLarge
	assert.ErrorAs(t, err, &tooLarge)
}
