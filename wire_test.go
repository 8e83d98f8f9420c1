package zv

import (
	"bytes"
	"errors"
	"testing"
)

func TestHeaderMarshal_Layout(t *testing.T) {
	h := Header{Method: Method, IsCompressed: true, CompressedLen: 0x0102, OriginalLen: 0x0304}
	b, err := h.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{'Z', 'V', 0x01, 0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(b, want) {
		t.Fatalf("got % x want % x", b, want)
	}

	stored := Header{Method: Method, CompressedLen: 0x0102, OriginalLen: 0xFFFF}
	b, err = stored.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	want = []byte{'Z', 'V', 0x00, 0x01, 0x02}
	if !bytes.Equal(b, want) {
		t.Fatalf("got % x want % x", b, want)
	}
}

func TestHeaderRoundtrip(t *testing.T) {
	cases := []Header{
		{Method: Method, IsCompressed: true, CompressedLen: 351, OriginalLen: 390},
		{Method: Method, IsCompressed: true, CompressedLen: MaxLen, OriginalLen: MaxLen},
		{Method: Method, IsCompressed: false, CompressedLen: 12},
		{Method: [2]byte{0, 0}, IsCompressed: false},
	}
	for _, in := range cases {
		b, _ := in.MarshalBinary()
		if len(b) != in.Size() {
			t.Fatalf("%+v: encoded %d bytes, Size %d", in, len(b), in.Size())
		}
		out, off, err := ParseHeader(b)
		if err != nil {
			t.Fatal(err)
		}
		if out != in || off != in.Size() {
			t.Fatalf("header mismatch: %+v vs %+v (offset %d)", in, out, off)
		}
	}
}

func TestParseHeader_StoredZeroesOriginalLen(t *testing.T) {
	b := []byte{'Z', 'V', 0x00, 0x00, 0x02, 0xAA, 0xBB}
	h, off, err := ParseHeader(b)
	if err != nil {
		t.Fatal(err)
	}
	if h.OriginalLen != 0 || off != StoredHeaderSize || h.CompressedLen != 2 {
		t.Fatalf("unexpected header %+v at offset %d", h, off)
	}
}

func TestParseHeader_TooShort(t *testing.T) {
	full, _ := Header{Method: Method, IsCompressed: true, CompressedLen: 1, OriginalLen: 1}.MarshalBinary()
	for n := 0; n < HeaderSize; n++ {
		_, _, err := ParseHeader(full[:n])
		if !errors.Is(err, ErrBufferTooShort) {
			t.Fatalf("len %d: expected ErrBufferTooShort, got %v", n, err)
		}
		if _, err := Decompress(full[:n]); !errors.Is(err, ErrBufferTooShort) {
			t.Fatalf("len %d: expected ErrBufferTooShort from Decompress, got %v", n, err)
		}
	}
}

func TestParseHeader_UnknownIndicator(t *testing.T) {
	for _, ind := range []byte{'0', '1', 0x02, 0xFF} {
		b := []byte{'Z', 'V', ind, 0, 0, 0, 0}
		_, _, err := ParseHeader(b)
		if !errors.Is(err, ErrHeaderParse) {
			t.Fatalf("indicator %#x: expected ErrHeaderParse, got %v", ind, err)
		}
		var perr *HeaderParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected *HeaderParseError, got %T", err)
		}
		if perr.Offset != 2 || !bytes.Equal(perr.Bytes, []byte{ind}) {
			t.Fatalf("unexpected error detail: %+v", perr)
		}
	}
}
