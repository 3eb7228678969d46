package wire

import (
	"bytes"
	"errors"
	"io"
	"math"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestScalarRoundTrip(t *testing.T) {
	w := NewWriter(nil)
	w.WriteInt32(-123)
	w.WriteInt64(-456789)
	w.WriteUint32(123)
	w.WriteUint64(math.MaxUint64)
	w.WriteSint32(math.MinInt32)
	w.WriteSint64(-2)
	w.WriteBool(true)
	w.WriteEnum(3)
	w.WriteFixed32(0xDEADBEEF)
	w.WriteFixed64(1 << 40)
	w.WriteSfixed32(-7)
	w.WriteSfixed64(-8)
	w.WriteFloat(3.14)
	w.WriteDouble(2.718281828)
	w.WriteString("Hello, protoserial!")
	w.WriteBytes([]byte("binary data"))

	r := bytes.NewReader(w.Bytes())

	mustEqual := func(name string, got, want interface{}, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: expected %v, got %v", name, want, got)
		}
	}

	i32, err := ReadInt32(r)
	mustEqual("int32", i32, int32(-123), err)
	i64, err := ReadInt64(r)
	mustEqual("int64", i64, int64(-456789), err)
	u32, err := ReadUint32(r)
	mustEqual("uint32", u32, uint32(123), err)
	u64, err := ReadUint64(r)
	mustEqual("uint64", u64, uint64(math.MaxUint64), err)
	s32, err := ReadSint32(r)
	mustEqual("sint32", s32, int32(math.MinInt32), err)
	s64, err := ReadSint64(r)
	mustEqual("sint64", s64, int64(-2), err)
	b, err := ReadBool(r)
	mustEqual("bool", b, true, err)
	e, err := ReadEnum(r)
	mustEqual("enum", e, int32(3), err)
	f32, err := ReadFixed32(r)
	mustEqual("fixed32", f32, uint32(0xDEADBEEF), err)
	f64, err := ReadFixed64(r)
	mustEqual("fixed64", f64, uint64(1<<40), err)
	sf32, err := ReadSfixed32(r)
	mustEqual("sfixed32", sf32, int32(-7), err)
	sf64, err := ReadSfixed64(r)
	mustEqual("sfixed64", sf64, int64(-8), err)
	fl, err := ReadFloat(r)
	mustEqual("float", fl, float32(3.14), err)
	db, err := ReadDouble(r)
	mustEqual("double", db, 2.718281828, err)
	str, err := ReadString(r)
	mustEqual("string", str, "Hello, protoserial!", err)
	bs, err := ReadBytes(r)
	mustEqual("bytes", bs, []byte("binary data"), err)

	if r.Len() != 0 {
		t.Errorf("expected input to be consumed, %d bytes left", r.Len())
	}
}

func TestWriterMatchesProtowire(t *testing.T) {
	w := NewWriter(nil)
	w.WriteKey(1, WireVarint)
	w.WriteInt32(-1)
	w.WriteKey(16, WireBytes)
	w.WriteString("x")
	w.WriteKey(300, WireFixed32)
	w.WriteFloat(1.5)
	w.WriteKey(2, WireVarint)
	w.WriteSint32(-1)

	var want []byte
	want = protowire.AppendTag(want, 1, protowire.VarintType)
	want = protowire.AppendVarint(want, uint64(math.MaxUint64))
	want = protowire.AppendTag(want, 16, protowire.BytesType)
	want = protowire.AppendString(want, "x")
	want = protowire.AppendTag(want, 300, protowire.Fixed32Type)
	want = protowire.AppendFixed32(want, math.Float32bits(1.5))
	want = protowire.AppendTag(want, 2, protowire.VarintType)
	want = protowire.AppendVarint(want, 1)

	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("expected %x, got %x", want, w.Bytes())
	}
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    Key
		wantErr error
	}{
		{name: "compact varint", input: []byte{0x08}, want: Key{Field: 1, WireType: WireVarint}},
		{name: "compact bytes", input: []byte{0x7a}, want: Key{Field: 15, WireType: WireBytes}},
		{name: "two byte key", input: []byte{0x80, 0x01}, want: Key{Field: 16, WireType: WireVarint}},
		{name: "field 300 fixed32", input: []byte{0xe5, 0x12}, want: Key{Field: 300, WireType: WireFixed32}},
		{name: "field zero", input: []byte{0x00}, want: Key{Field: 0, WireType: WireVarint}},
		{name: "wire type 6", input: []byte{0x0e}, wantErr: ErrInvalidWireType},
		{name: "wire type 7", input: []byte{0x0f}, wantErr: ErrInvalidWireType},
		{name: "truncated", input: []byte{0x80}, wantErr: io.ErrUnexpectedEOF},
		{name: "padded key", input: []byte{0x88, 0x80, 0x00}, want: Key{Field: 1, WireType: WireVarint}},
		{name: "tenth byte too large", input: append(append([]byte{0x88}, bytes.Repeat([]byte{0x80}, 8)...), 0x02), wantErr: ErrVarintOverflow},
		{name: "eleven byte key", input: bytes.Repeat([]byte{0xff}, 11), wantErr: ErrVarintOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.input)
			first, _ := r.ReadByte()
			got, err := ReadKey(first, r)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCompactKeyBoundary(t *testing.T) {
	// Keys for fields below 16 always fit in a single byte.
	limit := FieldNumber(1) << (7 - TagTypeBits)
	if limit != 16 {
		t.Fatalf("expected compact limit 16, got %d", limit)
	}
	for f := FieldNumber(1); f < limit; f++ {
		for _, wt := range []WireType{WireVarint, WireFixed64, WireBytes, WireFixed32} {
			if tag := MakeTag(f, wt); tag > 0x7f {
				t.Errorf("field %d %v: tag %#x does not fit in one byte", f, wt, tag)
			}
		}
	}
	if tag := MakeTag(limit, WireVarint); tag <= 0x7f {
		t.Errorf("field %d should need a two byte key", limit)
	}
}

func TestSkipKey(t *testing.T) {
	var data []byte
	data = protowire.AppendVarint(data, 300)
	data = protowire.AppendFixed64(data, 1)
	data = protowire.AppendBytes(data, []byte("skip me"))
	data = protowire.AppendFixed32(data, 1)
	// group 5 { field 1: varint 1, group 6 { field 2: "x" } }
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)
	data = protowire.AppendTag(data, 6, protowire.StartGroupType)
	data = protowire.AppendTag(data, 2, protowire.BytesType)
	data = protowire.AppendString(data, "x")
	data = protowire.AppendTag(data, 6, protowire.EndGroupType)
	data = protowire.AppendTag(data, 5, protowire.EndGroupType)
	data = append(data, 0x42)

	r := bytes.NewReader(data)
	keys := []Key{
		{Field: 1, WireType: WireVarint},
		{Field: 2, WireType: WireFixed64},
		{Field: 3, WireType: WireBytes},
		{Field: 4, WireType: WireFixed32},
		{Field: 5, WireType: WireStartGroup},
	}
	for _, k := range keys {
		if err := SkipKey(r, k); err != nil {
			t.Fatalf("skip %v: %v", k, err)
		}
	}

	last, err := r.ReadByte()
	if err != nil || last != 0x42 {
		t.Fatalf("expected trailing sentinel, got %x, %v", last, err)
	}
}

func TestSkipKeyErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		key     Key
		wantErr error
	}{
		{name: "truncated fixed64", input: []byte{1, 2, 3}, key: Key{Field: 1, WireType: WireFixed64}, wantErr: io.ErrUnexpectedEOF},
		{name: "truncated bytes", input: []byte{5, 'a'}, key: Key{Field: 1, WireType: WireBytes}, wantErr: io.ErrUnexpectedEOF},
		{name: "stray end group", input: nil, key: Key{Field: 1, WireType: WireEndGroup}, wantErr: ErrGroupMismatch},
		{name: "mismatched end group", input: []byte{0x24}, key: Key{Field: 3, WireType: WireStartGroup}, wantErr: ErrGroupMismatch},
		{name: "unterminated group", input: []byte{0x08, 0x01}, key: Key{Field: 3, WireType: WireStartGroup}, wantErr: io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SkipKey(bytes.NewReader(tt.input), tt.key)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReadValueBytesRoundTrip(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 100, protowire.VarintType)
	data = protowire.AppendVarint(data, 1<<50)
	data = protowire.AppendTag(data, 101, protowire.BytesType)
	data = protowire.AppendString(data, "preserved")
	data = protowire.AppendTag(data, 102, protowire.Fixed32Type)
	data = protowire.AppendFixed32(data, 7)
	data = protowire.AppendTag(data, 103, protowire.Fixed64Type)
	data = protowire.AppendFixed64(data, 8)
	data = protowire.AppendTag(data, 104, protowire.StartGroupType)
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 9)
	data = protowire.AppendTag(data, 104, protowire.EndGroupType)

	r := bytes.NewReader(data)
	var kept []KeyValue
	for {
		first, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		key, err := ReadKey(first, r)
		if err != nil {
			t.Fatal(err)
		}
		v, err := ReadValueBytes(r, key)
		if err != nil {
			t.Fatalf("read %v: %v", key, err)
		}
		kept = append(kept, KeyValue{Key: key, Value: v})
	}

	if len(kept) != 5 {
		t.Fatalf("expected 5 preserved fields, got %d", len(kept))
	}

	w := NewWriter(nil)
	for _, kv := range kept {
		w.WriteRawKey(kv.Key)
		w.WriteRaw(kv.Value)
	}
	if !bytes.Equal(w.Bytes(), data) {
		t.Fatalf("expected %x, got %x", data, w.Bytes())
	}
}

func TestLengthLimit(t *testing.T) {
	prev := CurrentConfig()
	defer SetConfig(prev)

	SetConfig(Config{MaxLength: 4})

	data := protowire.AppendString(nil, "too long")
	if _, err := ReadString(bytes.NewReader(data)); !errors.Is(err, ErrLengthTooLarge) {
		t.Fatalf("expected ErrLengthTooLarge, got %v", err)
	}
	if err := SkipKey(bytes.NewReader(data), Key{Field: 1, WireType: WireBytes}); !errors.Is(err, ErrLengthTooLarge) {
		t.Fatalf("expected ErrLengthTooLarge on skip, got %v", err)
	}

	ok := protowire.AppendString(nil, "fits")
	if s, err := ReadString(bytes.NewReader(ok)); err != nil || s != "fits" {
		t.Fatalf("expected %q, got %q, %v", "fits", s, err)
	}
}

func TestVarintOverflow(t *testing.T) {
	data := bytes.Repeat([]byte{0xff}, 11)
	if _, err := ReadUvarint(bytes.NewReader(data)); !errors.Is(err, ErrVarintOverflow) {
		t.Fatalf("expected ErrVarintOverflow, got %v", err)
	}
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestWriterFlush(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	w.WriteKey(1, WireBytes)
	w.WriteString("abc")
	if out.Len() != 0 {
		t.Fatalf("expected buffered output, got %d bytes", out.Len())
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), []byte{0x0a, 0x03, 'a', 'b', 'c'}) {
		t.Fatalf("unexpected output %x", out.Bytes())
	}

	fw := &failingWriter{}
	w = NewWriter(fw)
	w.WriteBytes(make([]byte, flushThreshold))
	w.WriteBool(true)
	if err := w.Flush(); err == nil || err.Error() != "disk full" {
		t.Fatalf("expected sticky error, got %v", err)
	}
	if fw.calls != 1 {
		t.Errorf("expected a single write attempt, got %d", fw.calls)
	}
}
