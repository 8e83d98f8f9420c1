// Package codecs runs a payload through ZV and the general-purpose
// compressors available to this module so their output sizes can be compared.
package codecs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/logicossoftware/go-zv"
)

var ErrInvalidPayload = errors.New("codecs: invalid payload")

// Codec is a named compress/decompress pair. Decompress is given the
// expected output size and must not produce more than that.
type Codec struct {
	Name       string
	Compress   func(in []byte) ([]byte, error)
	Decompress func(in []byte, expected uint64) ([]byte, error)
}

// All returns every codec, ZV first.
func All() []Codec {
	return []Codec{
		{Name: "zv", Compress: zvCompress, Decompress: zvDecompress},
		streamCodec("flate", newFlateWriter, newFlateReader),
		streamCodec("zstd", newZstdWriter, newZstdReader),
		streamCodec("lz4", newLZ4Writer, newLZ4Reader),
		streamCodec("brotli", newBrotliWriter, newBrotliReader),
	}
}

// Lookup returns the codec called name.
func Lookup(name string) (Codec, bool) {
	for _, c := range All() {
		if c.Name == name {
			return c, true
		}
	}
	return Codec{}, false
}

type Result struct {
	Codec         string  `json:"codec"`
	OriginalLen   int     `json:"original_len"`
	CompressedLen int     `json:"compressed_len"`
	Ratio         float64 `json:"ratio"`
}

// Measure compresses payload with each codec, checks that it decompresses
// back to payload, and reports the sizes. The first failure aborts.
func Measure(payload []byte, cs []Codec) ([]Result, error) {
	results := make([]Result, 0, len(cs))
	for _, c := range cs {
		compressed, err := c.Compress(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		out, err := c.Decompress(compressed, uint64(len(payload)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		if !bytes.Equal(out, payload) {
			return nil, fmt.Errorf("%w: %s round trip mismatch", ErrInvalidPayload, c.Name)
		}
		r := Result{Codec: c.Name, OriginalLen: len(payload), CompressedLen: len(compressed)}
		if len(payload) > 0 {
			r.Ratio = float64(len(compressed)) / float64(len(payload))
		}
		results = append(results, r)
	}
	return results, nil
}

// The ZV size reported is the whole envelope, header included.
func zvCompress(in []byte) ([]byte, error) {
	return zv.Compress(in, zv.WithStoreIncompressible(true))
}

func zvDecompress(in []byte, expected uint64) ([]byte, error) {
	out, err := zv.Decompress(in)
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != expected {
		return nil, fmt.Errorf("%w: zv payload %d bytes, expected %d", ErrInvalidPayload, len(out), expected)
	}
	return out, nil
}

type (
	writerFunc func(io.Writer) (io.WriteCloser, error)
	readerFunc func(io.Reader) (io.ReadCloser, error)
)

// streamCodec adapts a streaming compressor to a Codec.
func streamCodec(name string, newWriter writerFunc, newReader readerFunc) Codec {
	return Codec{
		Name: name,
		Compress: func(in []byte) ([]byte, error) {
			var buf bytes.Buffer
			w, err := newWriter(&buf)
			if err != nil {
				return nil, err
			}
			if _, err := w.Write(in); err != nil {
				_ = w.Close()
				return nil, err
			}
			if err := w.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		Decompress: func(in []byte, expected uint64) ([]byte, error) {
			r, err := newReader(bytes.NewReader(in))
			if err != nil {
				return nil, err
			}
			defer r.Close()
			out, err := io.ReadAll(io.LimitReader(r, int64(expected)+1))
			if err != nil {
				return nil, err
			}
			if uint64(len(out)) > expected {
				return nil, fmt.Errorf("%w: %s expanded beyond %d bytes", ErrInvalidPayload, name, expected)
			}
			return out, nil
		},
	}
}

func newFlateWriter(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, flate.DefaultCompression)
}

func newFlateReader(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}

func newLZ4Writer(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

func newLZ4Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func newBrotliWriter(w io.Writer) (io.WriteCloser, error) {
	return brotli.NewWriter(w), nil
}

func newBrotliReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}
