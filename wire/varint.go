package wire

import (
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// maxVarintLen is the longest encoding of a 64-bit varint.
const maxVarintLen = 10

// DECODER FUNCTIONS

// ReadUvarint decodes a base-128 varint from s. Running out of input after
// the first byte, or before it, is io.ErrUnexpectedEOF: callers only use it
// where a value is required.
func ReadUvarint(s Stream) (uint64, error) {
	var result uint64
	var shift uint

	for i := 0; i < maxVarintLen; i++ { // Max 10 bytes for 64-bit varint
		b, err := s.ReadByte()
		if err != nil {
			return 0, unexpected(err)
		}

		// The tenth byte may only contribute the top bit.
		if i == maxVarintLen-1 && b > 1 {
			return 0, ErrVarintOverflow
		}

		// Add the lower 7 bits to result
		result |= uint64(b&0x7F) << shift

		// If MSB is not set, we're done
		if b&0x80 == 0 {
			return result, nil
		}

		shift += 7
	}

	return 0, ErrVarintOverflow
}

// ReadInt32 decodes a varint as int32
func ReadInt32(s Stream) (int32, error) {
	v, err := ReadUvarint(s)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadInt64 decodes a varint as int64
func ReadInt64(s Stream) (int64, error) {
	v, err := ReadUvarint(s)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// ReadUint32 decodes a varint as uint32
func ReadUint32(s Stream) (uint32, error) {
	v, err := ReadUvarint(s)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ReadUint64 decodes a varint as uint64
func ReadUint64(s Stream) (uint64, error) {
	return ReadUvarint(s)
}

// ReadSint32 decodes a zigzag-encoded signed varint as int32
func ReadSint32(s Stream) (int32, error) {
	v, err := ReadUvarint(s)
	if err != nil {
		return 0, err
	}
	return int32(protowire.DecodeZigZag(v & 0xFFFFFFFF)), nil
}

// ReadSint64 decodes a zigzag-encoded signed varint as int64
func ReadSint64(s Stream) (int64, error) {
	v, err := ReadUvarint(s)
	if err != nil {
		return 0, err
	}
	return protowire.DecodeZigZag(v), nil
}

// ReadBool decodes a varint as bool
func ReadBool(s Stream) (bool, error) {
	v, err := ReadUvarint(s)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadEnum decodes a varint as enum value
func ReadEnum(s Stream) (int32, error) {
	return ReadInt32(s)
}

// skipVarint consumes a varint without decoding it.
func skipVarint(s Stream) error {
	_, err := readVarintBytes(s, nil)
	return err
}

// readVarintBytes appends the raw bytes of one varint to dst.
func readVarintBytes(s Stream, dst []byte) ([]byte, error) {
	for i := 0; i < maxVarintLen; i++ {
		b, err := s.ReadByte()
		if err != nil {
			return dst, unexpected(err)
		}
		dst = append(dst, b)
		if b&0x80 == 0 {
			return dst, nil
		}
	}
	return dst, ErrVarintOverflow
}

// unexpected turns a clean end of input in the middle of a value into
// io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// VarintSize returns the number of bytes needed to encode the given varint
func VarintSize(v uint64) int {
	return protowire.SizeVarint(v)
}
