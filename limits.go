package zv

type Limits struct {
	MaxPayloadLen  uint32 // raw payload bytes; never above MaxLen
	MaxEnvelopeLen uint32 // header plus body as stored
}

func defaultLimits() Limits {
	return Limits{
		MaxPayloadLen:  MaxLen,
		MaxEnvelopeLen: HeaderSize + MaxLen,
	}
}

// withDefaults fills zero fields and clamps the rest to what the wire format
// can express.
func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxPayloadLen == 0 || l.MaxPayloadLen > d.MaxPayloadLen {
		l.MaxPayloadLen = d.MaxPayloadLen
	}
	if l.MaxEnvelopeLen == 0 || l.MaxEnvelopeLen > d.MaxEnvelopeLen {
		l.MaxEnvelopeLen = d.MaxEnvelopeLen
	}
	return l
}
