package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C(t *testing.T) {
	// Standard check value for CRC-32C.
	assert.Equal(t, uint32(0xE3069283), CRC32C([]byte("123456789")))
	assert.Equal(t, uint32(0), CRC32C(nil))
}

func TestUpdateCRC32C(t *testing.T) {
	data := []byte("vertex_interval_length=99999\nnumShards=44\n")

	crc := CRC32C(data[:10])
	crc = UpdateCRC32C(crc, data[10:])

	assert.Equal(t, CRC32C(data), crc)
}
