package wire

import (
	"fmt"
	"io"
)

// DECODER FUNCTIONS

// readLength decodes a length prefix and checks it against the configured
// limit.
func readLength(s Stream) (uint64, error) {
	length, err := ReadUvarint(s)
	if err != nil {
		return 0, fmt.Errorf("failed to decode length: %w", err)
	}
	if length > config.MaxLength {
		return 0, fmt.Errorf("%w: %d > %d", ErrLengthTooLarge, length, config.MaxLength)
	}
	return length, nil
}

// ReadBytes decodes a length-delimited byte array. The result is always a
// fresh slice owned by the caller.
func ReadBytes(s Stream) ([]byte, error) {
	length, err := readLength(s)
	if err != nil {
		return nil, err
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(s, data); err != nil {
		return nil, fmt.Errorf("bytes truncated: need %d bytes: %w", length, unexpected(err))
	}

	return data, nil
}

// ReadString decodes a length-delimited string. The bytes are not checked
// for UTF-8 validity.
func ReadString(s Stream) (string, error) {
	data, err := ReadBytes(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// skipBytes skips over a length-delimited value
func skipBytes(s Stream) error {
	length, err := readLength(s)
	if err != nil {
		return err
	}

	n, err := io.CopyN(io.Discard, s, int64(length))
	if err != nil {
		return fmt.Errorf("cannot skip %d bytes: only %d available: %w", length, n, unexpected(err))
	}
	return nil
}

// UTILITY FUNCTIONS

// BytesSize returns the size needed to encode the given bytes
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}

// StringSize returns the size needed to encode the given string
func StringSize(s string) int {
	return VarintSize(uint64(len(s))) + len(s)
}
