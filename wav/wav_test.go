package wav

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeWritesValidHeader(t *testing.T) {
	assert := assert.New(t)

	samples := []float64{0, 0.5, -0.5, 1}
	data := Encode(samples, 44100)

	assert.Equal("RIFF", string(data[0:4]))
	assert.Equal("WAVE", string(data[8:12]))
	assert.Equal("fmt ", string(data[12:16]))
	assert.Equal("data", string(data[36:40]))

	// 44 byte header + 2 bytes per sample
	assert.Equal(44+len(samples)*2, len(data))
	assert.Equal(uint32(len(samples)*2), binary.LittleEndian.Uint32(data[40:44]))
	assert.Equal(uint32(44100), binary.LittleEndian.Uint32(data[24:28]))
}

func TestEncodeClampsOutOfRangeSamples(t *testing.T) {
	assert := assert.New(t)

	data := Encode([]float64{2, -2}, 44100)
	first := int16(binary.LittleEndian.Uint16(data[44:46]))
	second := int16(binary.LittleEndian.Uint16(data[46:48]))
	assert.Equal(int16(32767), first)
	assert.Equal(int16(-32767), second)
}
