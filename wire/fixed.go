package wire

import (
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// DECODER FUNCTIONS

// ReadFixed32 decodes a 32-bit little-endian fixed-width value
func ReadFixed32(s Stream) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(s, buf[:]); err != nil {
		return 0, unexpected(err)
	}
	v, _ := protowire.ConsumeFixed32(buf[:])
	return v, nil
}

// ReadFixed64 decodes a 64-bit little-endian fixed-width value
func ReadFixed64(s Stream) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(s, buf[:]); err != nil {
		return 0, unexpected(err)
	}
	v, _ := protowire.ConsumeFixed64(buf[:])
	return v, nil
}

// ReadSfixed32 decodes a signed 32-bit fixed-width value
func ReadSfixed32(s Stream) (int32, error) {
	v, err := ReadFixed32(s)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadSfixed64 decodes a signed 64-bit fixed-width value
func ReadSfixed64(s Stream) (int64, error) {
	v, err := ReadFixed64(s)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// ReadFloat decodes a 32-bit float from fixed32 data
func ReadFloat(s Stream) (float32, error) {
	v, err := ReadFixed32(s)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadDouble decodes a 64-bit float from fixed64 data
func ReadDouble(s Stream) (float64, error) {
	v, err := ReadFixed64(s)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// UTILITY FUNCTIONS

// Fixed32Size returns the size of a fixed32 value (always 4 bytes)
func Fixed32Size() int {
	return 4
}

// Fixed64Size returns the size of a fixed64 value (always 8 bytes)
func Fixed64Size() int {
	return 8
}
