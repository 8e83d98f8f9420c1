package zv

import (
	"errors"
	"fmt"
)

var (
	ErrBufferTooShort = errors.New("zv: buffer too short")
	ErrHeaderParse    = errors.New("zv: header parse error")
	ErrCompression    = errors.New("zv: compression failed")
	ErrDecompression  = errors.New("zv: decompression failed")
	ErrLimitExceeded  = errors.New("zv: limit exceeded")
)

// HeaderParseError reports a header field that could not be interpreted.
// Bytes holds the offending input starting at Offset.
type HeaderParseError struct {
	Offset int
	Bytes  []byte
	Reason string
}

func (e *HeaderParseError) Error() string {
	return fmt.Sprintf("zv: header parse error at offset %d (% x): %s", e.Offset, e.Bytes, e.Reason)
}

func (e *HeaderParseError) Unwrap() error { return ErrHeaderParse }

func newHeaderParseError(b []byte, offset, n int, reason string) *HeaderParseError {
	end := offset + n
	if end > len(b) {
		end = len(b)
	}
	return &HeaderParseError{
		Offset: offset,
		Bytes:  append([]byte(nil), b[offset:end]...),
		Reason: reason,
	}
}

// CompressionError wraps a failure of the LZF encoder.
type CompressionError struct {
	Err error
}

func (e *CompressionError) Error() string {
	return "zv: compression failed: " + e.Err.Error()
}

func (e *CompressionError) Unwrap() []error { return []error{ErrCompression, e.Err} }

// DecompressionError wraps a failure of the LZF decoder, including a body that
// does not inflate to the declared original length.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return "zv: decompression failed: " + e.Err.Error()
}

func (e *DecompressionError) Unwrap() []error { return []error{ErrDecompression, e.Err} }
