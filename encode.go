package zv

import (
	"fmt"
	"io"
)

// NewEnvelope compresses payload and returns the resulting envelope.
//
// The payload must fit the 16-bit length field (and any configured limit);
// longer payloads fail with ErrLimitExceeded rather than being truncated.
// LZF failures are returned as a *CompressionError.
//
// By default the envelope is always compressed, even when LZF does not shrink
// the payload. Use WithStoreIncompressible(true) to fall back to a stored
// envelope in that case.
func NewEnvelope(payload []byte, opts ...WriteOption) (Envelope, error) {
	cfg := newWriteConfig(opts)
	if uint64(len(payload)) > uint64(cfg.limits.MaxPayloadLen) {
		return Envelope{}, fmt.Errorf("%w: payload length %d exceeds %d", ErrLimitExceeded, len(payload), cfg.limits.MaxPayloadLen)
	}

	body, err := compressBody(payload)
	if err != nil {
		return Envelope{}, err
	}

	var env Envelope
	if cfg.storeIncompressible && len(body) >= len(payload) {
		env = Envelope{
			Header: Header{Method: Method, CompressedLen: uint16(len(payload))},
			Body:   append([]byte{}, payload...),
		}
	} else {
		if len(body) > MaxLen {
			return Envelope{}, fmt.Errorf("%w: compressed body length %d exceeds %d", ErrLimitExceeded, len(body), MaxLen)
		}
		env = Envelope{
			Header: Header{
				Method:        Method,
				IsCompressed:  true,
				CompressedLen: uint16(len(body)),
				OriginalLen:   uint16(len(payload)),
			},
			Body: body,
		}
	}

	if size := env.Header.Size() + len(env.Body); uint64(size) > uint64(cfg.limits.MaxEnvelopeLen) {
		return Envelope{}, fmt.Errorf("%w: envelope length %d exceeds %d", ErrLimitExceeded, size, cfg.limits.MaxEnvelopeLen)
	}
	return env, nil
}

// Compress wraps payload in a ZV envelope and returns the envelope bytes.
func Compress(payload []byte, opts ...WriteOption) ([]byte, error) {
	env, err := NewEnvelope(payload, opts...)
	if err != nil {
		return nil, err
	}
	return env.MarshalBinary()
}

// Encode writes the ZV envelope for payload to w. Nothing is written when
// compression fails.
func Encode(w io.Writer, payload []byte, opts ...WriteOption) error {
	env, err := NewEnvelope(payload, opts...)
	if err != nil {
		return err
	}
	if err := writeHeader(w, env.Header); err != nil {
		return err
	}
	_, err = w.Write(env.Body)
	return err
}
