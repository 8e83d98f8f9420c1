package zv

import (
	"fmt"
	"io"
)

// ParseEnvelope splits b into its header and body without inflating the body.
// The returned Body aliases b.
//
// ParseEnvelope returns ErrBufferTooShort if b ends before the header or the
// declared body does, a *HeaderParseError for an unknown indicator or trailing
// bytes after the body, and ErrLimitExceeded if a configured limit is exceeded.
func ParseEnvelope(b []byte, opts ...ReadOption) (Envelope, error) {
	cfg := newReadConfig(opts)
	if uint64(len(b)) > uint64(cfg.limits.MaxEnvelopeLen) {
		return Envelope{}, fmt.Errorf("%w: envelope length %d exceeds %d", ErrLimitExceeded, len(b), cfg.limits.MaxEnvelopeLen)
	}
	h, off, err := ParseHeader(b)
	if err != nil {
		return Envelope{}, err
	}
	if err := validateEnvelope(h, b, off, cfg.limits); err != nil {
		return Envelope{}, err
	}
	return Envelope{Header: h, Body: b[off:]}, nil
}

// Payload returns the original payload carried by e in a new buffer.
// Stored bodies are returned verbatim; compressed bodies are inflated to
// Header.OriginalLen bytes, and failures are returned as a *DecompressionError.
func (e Envelope) Payload() ([]byte, error) {
	return decompressBody(e.Header, e.Body)
}

// Decompress parses envelope and returns its payload.
func Decompress(envelope []byte, opts ...ReadOption) ([]byte, error) {
	env, err := ParseEnvelope(envelope, opts...)
	if err != nil {
		return nil, err
	}
	return env.Payload()
}

// Decode reads a single envelope from r until EOF and returns its payload.
// At most the configured maximum envelope length plus one byte is read.
func Decode(r io.Reader, opts ...ReadOption) ([]byte, error) {
	cfg := newReadConfig(opts)
	b, err := readAll(io.LimitReader(r, int64(cfg.limits.MaxEnvelopeLen)+1))
	if err != nil {
		return nil, err
	}
	return Decompress(b, opts...)
}
