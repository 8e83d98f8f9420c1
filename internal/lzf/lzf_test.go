package lzf

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func sampleInputs() map[string][]byte {
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 4096)
	rng.Read(random)

	text := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 200)

	long := bytes.Repeat([]byte{'z'}, 70000)

	mixed := make([]byte, 0, 20000)
	for i := 0; i < 500; i++ {
		mixed = append(mixed, random[i%len(random):i%len(random)+8]...)
		mixed = append(mixed, text[:i%64]...)
	}

	return map[string][]byte{
		"one":    {0x42},
		"two":    {0x42, 0x43},
		"three":  {0x42, 0x42, 0x42},
		"ten-a":  []byte("aaaaaaaaaa"),
		"random": random,
		"text":   text,
		"long":   long,
		"mixed":  mixed,
	}
}

func TestRoundTrip(t *testing.T) {
	for name, in := range sampleInputs() {
		t.Run(name, func(t *testing.T) {
			c, err := Compress(in)
			if err != nil {
				t.Fatal(err)
			}
			if len(c) > MaxCompressedLen(len(in)) {
				t.Fatalf("compressed %d bytes exceeds bound %d", len(c), MaxCompressedLen(len(in)))
			}
			out, err := Decompress(c, len(in))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(out, in) {
				t.Fatal("round trip mismatch")
			}
		})
	}
}

func TestCompress_Empty(t *testing.T) {
	c, err := Compress(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 0 {
		t.Fatalf("expected empty block, got %d bytes", len(c))
	}
	out, err := Decompress(c, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
}

func TestCompress_KnownBlock(t *testing.T) {
	c, err := Compress([]byte("aaaaaaaaaa"))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 'a', 'a', 0x80, 0x00, 0x01, 'a', 'a'}
	if !bytes.Equal(c, want) {
		t.Fatalf("got % x want % x", c, want)
	}
}

func TestCompress_Repetitive(t *testing.T) {
	in := bytes.Repeat([]byte("abcdefgh"), 1000)
	c, err := Compress(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) >= len(in)/10 {
		t.Fatalf("expected strong compression, got %d of %d", len(c), len(in))
	}
}

func TestCompressTo_ShortBuffer(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := make([]byte, 256)
	rng.Read(in)
	for _, size := range []int{0, 1, 16, 200} {
		if _, err := CompressTo(make([]byte, size), in); !errors.Is(err, ErrShortBuffer) {
			t.Fatalf("size %d: expected ErrShortBuffer, got %v", size, err)
		}
	}
	// Compressible input that still does not fit.
	if _, err := CompressTo(make([]byte, 4), bytes.Repeat([]byte("ab"), 100)); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestDecompress_Errors(t *testing.T) {
	valid, err := Compress([]byte("aaaaaaaaaa"))
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		in       []byte
		expected int
		want     error
	}{
		{"literal past input", []byte{0x05, 'a'}, 6, ErrCorrupt},
		{"reference before start", []byte{0x20, 0x00}, 3, ErrCorrupt},
		{"truncated reference", []byte{0x20}, 3, ErrCorrupt},
		{"truncated long reference", []byte{0x00, 'a', 0xe0, 0x01}, 20, ErrCorrupt},
		{"output too small", valid, 9, ErrShortBuffer},
		{"literal too large", []byte{0x01, 'a', 'b'}, 1, ErrShortBuffer},
		{"output too large", valid, 11, ErrLengthMismatch},
		{"negative length", valid, -1, ErrLengthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decompress(tc.in, tc.expected); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDecompressTo_ReusesBuffer(t *testing.T) {
	in := []byte("hello hello hello hello")
	c, err := Compress(in)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]byte, 64)
	n, err := DecompressTo(dst, c)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst[:n], in) {
		t.Fatalf("got %q", dst[:n])
	}
}

func BenchmarkCompress(b *testing.B) {
	in := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 1000)
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		if _, err := Compress(in); err != nil {
			b.Fatal(err)
		}
	}
}
