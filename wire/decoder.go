package wire

import (
	"fmt"
	"io"
)

// Stream is the input consumed by generated deserializers. Byte-at-a-time
// access drives key and varint decoding; bulk reads serve fixed-width and
// length-delimited values. *bytes.Reader and *bufio.Reader both satisfy it.
type Stream interface {
	io.Reader
	io.ByteReader
}

// ReadKey completes the key whose first byte has already been consumed by
// the caller. Field number 0 is returned as is; generated code treats it as
// a corrupt stream.
func ReadKey(first byte, s Stream) (Key, error) {
	tag := uint64(first)
	if first&0x80 != 0 {
		tag = uint64(first & 0x7F)
		shift := uint(7)
		for i := 1; ; i++ {
			if i == maxVarintLen {
				return Key{}, ErrVarintOverflow
			}
			b, err := s.ReadByte()
			if err != nil {
				return Key{}, fmt.Errorf("failed to decode key: %w", unexpected(err))
			}
			if i == maxVarintLen-1 && b > 1 {
				return Key{}, ErrVarintOverflow
			}
			tag |= uint64(b&0x7F) << shift
			if b&0x80 == 0 {
				break
			}
			shift += 7
		}
	}

	fieldNumber, wireType := ParseTag(Tag(tag))
	if !wireType.Valid() {
		return Key{}, fmt.Errorf("%w: %d", ErrInvalidWireType, wireType)
	}
	if tag>>TagTypeBits > uint64(MaxFieldNumber) {
		return Key{}, fmt.Errorf("field number %d out of range", tag>>TagTypeBits)
	}
	return Key{Field: fieldNumber, WireType: wireType}, nil
}

// SkipKey consumes the value that follows key without keeping it.
func SkipKey(s Stream, key Key) error {
	switch key.WireType {
	case WireVarint:
		return skipVarint(s)
	case WireFixed64:
		return discard(s, 8)
	case WireBytes:
		return skipBytes(s)
	case WireFixed32:
		return discard(s, 4)
	case WireStartGroup:
		_, err := readGroup(s, key.Field, nil, false)
		return err
	case WireEndGroup:
		return fmt.Errorf("%w: field %d", ErrGroupMismatch, key.Field)
	default:
		return fmt.Errorf("unknown wire type: %d", key.WireType)
	}
}

// ReadValueBytes returns the raw encoding of the value that follows key, so
// that writing the key and then these bytes reproduces the field exactly.
// Length-delimited values keep their length prefix. Groups run through and
// include their matching end-group key.
func ReadValueBytes(s Stream, key Key) ([]byte, error) {
	return appendValue(s, key, nil)
}

func appendValue(s Stream, key Key, dst []byte) ([]byte, error) {
	switch key.WireType {
	case WireVarint:
		return readVarintBytes(s, dst)
	case WireFixed64:
		return appendN(s, dst, 8)
	case WireFixed32:
		return appendN(s, dst, 4)
	case WireBytes:
		length, err := readLength(s)
		if err != nil {
			return dst, err
		}
		dst = appendUvarint(dst, length)
		return appendN(s, dst, length)
	case WireStartGroup:
		return readGroup(s, key.Field, dst, true)
	case WireEndGroup:
		return dst, fmt.Errorf("%w: field %d", ErrGroupMismatch, key.Field)
	default:
		return dst, fmt.Errorf("unknown wire type: %d", key.WireType)
	}
}

// readGroup consumes fields up to the end-group key matching field. When
// keep is set every consumed byte, the terminating key included, is appended
// to dst.
func readGroup(s Stream, field FieldNumber, dst []byte, keep bool) ([]byte, error) {
	for {
		first, err := s.ReadByte()
		if err != nil {
			return dst, fmt.Errorf("group %d not terminated: %w", field, unexpected(err))
		}
		key, err := ReadKey(first, s)
		if err != nil {
			return dst, err
		}
		if key.Field == 0 {
			return dst, ErrInvalidFieldID
		}
		if keep {
			dst = appendUvarint(dst, uint64(key.Tag()))
		}
		if key.WireType == WireEndGroup {
			if key.Field != field {
				return dst, fmt.Errorf("%w: expected %d, got %d", ErrGroupMismatch, field, key.Field)
			}
			return dst, nil
		}
		if keep {
			if dst, err = appendValue(s, key, dst); err != nil {
				return dst, err
			}
		} else if err := SkipKey(s, key); err != nil {
			return dst, err
		}
	}
}

func appendN(s Stream, dst []byte, n uint64) ([]byte, error) {
	start := len(dst)
	dst = append(dst, make([]byte, n)...)
	if _, err := io.ReadFull(s, dst[start:]); err != nil {
		return dst[:start], unexpected(err)
	}
	return dst, nil
}

func discard(s Stream, n int64) error {
	if _, err := io.CopyN(io.Discard, s, n); err != nil {
		return fmt.Errorf("not enough data to skip %d bytes: %w", n, unexpected(err))
	}
	return nil
}
