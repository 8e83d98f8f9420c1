package zv

import (
	"encoding/binary"
	"fmt"
	"io"
)

func encodeHeader(h Header) []byte {
	var buf [HeaderSize]byte
	copy(buf[0:2], h.Method[:])
	buf[2] = indicatorStored
	if h.IsCompressed {
		buf[2] = indicatorCompressed
	}
	binary.BigEndian.PutUint16(buf[3:5], h.CompressedLen)
	binary.BigEndian.PutUint16(buf[5:7], h.OriginalLen)
	return buf[:h.Size()]
}

func writeHeader(w io.Writer, h Header) error {
	_, err := w.Write(encodeHeader(h))
	return err
}

// MarshalBinary returns the wire form of h: 7 bytes for a compressed header,
// 5 bytes for a stored one. It never fails.
func (h Header) MarshalBinary() ([]byte, error) {
	return encodeHeader(h), nil
}

// ParseHeader decodes the header at the start of b and returns it together
// with the offset at which the body begins.
//
// The method tag is copied verbatim and not checked. The indicator byte must
// be 0x00 or 0x01; anything else yields a *HeaderParseError.
func ParseHeader(b []byte) (Header, int, error) {
	if len(b) < StoredHeaderSize {
		return Header{}, 0, fmt.Errorf("%w: need %d header bytes, have %d", ErrBufferTooShort, StoredHeaderSize, len(b))
	}
	var h Header
	copy(h.Method[:], b[0:2])
	switch b[2] {
	case indicatorStored:
	case indicatorCompressed:
		h.IsCompressed = true
	default:
		return Header{}, 0, newHeaderParseError(b, 2, 1, "unknown compression indicator")
	}
	h.CompressedLen = binary.BigEndian.Uint16(b[3:5])
	if !h.IsCompressed {
		return h, StoredHeaderSize, nil
	}
	if len(b) < HeaderSize {
		return Header{}, 0, fmt.Errorf("%w: need %d header bytes, have %d", ErrBufferTooShort, HeaderSize, len(b))
	}
	h.OriginalLen = binary.BigEndian.Uint16(b[5:7])
	return h, HeaderSize, nil
}

// MarshalBinary returns the header followed by the body. The caller is
// responsible for keeping Header.CompressedLen equal to len(Body).
func (e Envelope) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, e.Header.Size()+len(e.Body))
	out = append(out, encodeHeader(e.Header)...)
	out = append(out, e.Body...)
	return out, nil
}
