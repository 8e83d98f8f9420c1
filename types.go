package zv

const (
	// HeaderSize is the size of a compressed envelope's header.
	HeaderSize = 7
	// StoredHeaderSize is the size of a stored envelope's header, which omits
	// the original length.
	StoredHeaderSize = 5

	// MaxLen is the largest value either length field can carry.
	MaxLen = 1<<16 - 1
)

// Method is the 2-byte tag written at the start of every envelope.
var Method = [2]byte{'Z', 'V'}

const (
	indicatorStored     byte = 0x00
	indicatorCompressed byte = 0x01
)

// Header describes an envelope body.
//
// OriginalLen is only meaningful when IsCompressed is set; it is neither
// written nor read for stored envelopes.
type Header struct {
	Method        [2]byte
	IsCompressed  bool
	CompressedLen uint16
	OriginalLen   uint16
}

// Size returns the encoded size of h.
func (h Header) Size() int {
	if h.IsCompressed {
		return HeaderSize
	}
	return StoredHeaderSize
}

// Envelope is a parsed or freshly built header and body pair.
// Header.CompressedLen always equals len(Body).
type Envelope struct {
	Header Header
	Body   []byte
}
