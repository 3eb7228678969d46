package wire

import (
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// flushThreshold is the buffered size past which a Writer backed by an
// io.Writer hands its bytes over.
const flushThreshold = 32 << 10

// Writer handles low-level protobuf wire format encoding for generated
// serializers. Writes are buffered. The first error from the underlying
// io.Writer sticks: later writes are dropped and Flush reports it.
type Writer struct {
	w   io.Writer
	buf []byte
	err error
}

// NewWriter creates a writer on top of w. A nil w keeps everything in
// memory; the result is then available from Bytes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   w,
		buf: make([]byte, 0, 64),
	}
}

// Bytes returns the bytes buffered and not yet flushed.
func (e *Writer) Bytes() []byte {
	return e.buf
}

// Reset clears the writer buffer and any sticky error.
func (e *Writer) Reset() {
	e.buf = e.buf[:0]
	e.err = nil
}

// Flush writes buffered bytes to the underlying io.Writer.
func (e *Writer) Flush() error {
	if e.err != nil {
		return e.err
	}
	if e.w == nil || len(e.buf) == 0 {
		return nil
	}
	if _, err := e.w.Write(e.buf); err != nil {
		e.err = err
		return err
	}
	e.buf = e.buf[:0]
	return nil
}

func (e *Writer) maybeFlush() {
	if e.w != nil && len(e.buf) >= flushThreshold {
		_ = e.Flush()
	}
}

// WriteKey encodes the key for field with wire type wt.
func (e *Writer) WriteKey(field FieldNumber, wt WireType) {
	e.buf = protowire.AppendTag(e.buf, protowire.Number(field), protowire.Type(wt))
}

// WriteRawKey encodes a previously decoded key.
func (e *Writer) WriteRawKey(key Key) {
	e.buf = appendUvarint(e.buf, uint64(key.Tag()))
}

// WriteUvarint encodes a base-128 varint.
func (e *Writer) WriteUvarint(v uint64) {
	e.buf = appendUvarint(e.buf, v)
	e.maybeFlush()
}

// WriteInt32 encodes an int32 varint. Negative values take ten bytes.
func (e *Writer) WriteInt32(v int32) { e.WriteUvarint(uint64(int64(v))) }

// WriteInt64 encodes an int64 varint.
func (e *Writer) WriteInt64(v int64) { e.WriteUvarint(uint64(v)) }

// WriteUint32 encodes a uint32 varint.
func (e *Writer) WriteUint32(v uint32) { e.WriteUvarint(uint64(v)) }

// WriteUint64 encodes a uint64 varint.
func (e *Writer) WriteUint64(v uint64) { e.WriteUvarint(v) }

// WriteSint32 encodes a zigzag int32.
func (e *Writer) WriteSint32(v int32) {
	e.WriteUvarint(protowire.EncodeZigZag(int64(v)) & 0xFFFFFFFF)
}

// WriteSint64 encodes a zigzag int64.
func (e *Writer) WriteSint64(v int64) { e.WriteUvarint(protowire.EncodeZigZag(v)) }

// WriteBool encodes a bool as a one-byte varint.
func (e *Writer) WriteBool(v bool) { e.WriteUvarint(protowire.EncodeBool(v)) }

// WriteEnum encodes an enum value like an int32.
func (e *Writer) WriteEnum(v int32) { e.WriteInt32(v) }

// WriteFixed32 encodes a little-endian 32-bit value.
func (e *Writer) WriteFixed32(v uint32) {
	e.buf = protowire.AppendFixed32(e.buf, v)
	e.maybeFlush()
}

// WriteFixed64 encodes a little-endian 64-bit value.
func (e *Writer) WriteFixed64(v uint64) {
	e.buf = protowire.AppendFixed64(e.buf, v)
	e.maybeFlush()
}

// WriteSfixed32 encodes a signed 32-bit fixed-width value.
func (e *Writer) WriteSfixed32(v int32) { e.WriteFixed32(uint32(v)) }

// WriteSfixed64 encodes a signed 64-bit fixed-width value.
func (e *Writer) WriteSfixed64(v int64) { e.WriteFixed64(uint64(v)) }

// WriteFloat encodes a float as fixed32.
func (e *Writer) WriteFloat(v float32) { e.WriteFixed32(math.Float32bits(v)) }

// WriteDouble encodes a double as fixed64.
func (e *Writer) WriteDouble(v float64) { e.WriteFixed64(math.Float64bits(v)) }

// WriteBytes encodes data with its length prefix.
func (e *Writer) WriteBytes(data []byte) {
	e.buf = protowire.AppendBytes(e.buf, data)
	e.maybeFlush()
}

// WriteString encodes s with its length prefix.
func (e *Writer) WriteString(s string) {
	e.buf = protowire.AppendString(e.buf, s)
	e.maybeFlush()
}

// WriteRaw appends already encoded bytes.
func (e *Writer) WriteRaw(data []byte) {
	e.buf = append(e.buf, data...)
	e.maybeFlush()
}

func appendUvarint(dst []byte, v uint64) []byte {
	return protowire.AppendVarint(dst, v)
}
