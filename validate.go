package zv

import "fmt"

func validateEnvelope(h Header, b []byte, bodyOff int, limits Limits) error {
	payloadLen := uint32(h.CompressedLen)
	if h.IsCompressed {
		payloadLen = uint32(h.OriginalLen)
	}
	if payloadLen > limits.MaxPayloadLen {
		return fmt.Errorf("%w: payload length %d exceeds %d", ErrLimitExceeded, payloadLen, limits.MaxPayloadLen)
	}

	bodyLen := len(b) - bodyOff
	declared := int(h.CompressedLen)
	if bodyLen < declared {
		return fmt.Errorf("%w: header declares %d body bytes, have %d", ErrBufferTooShort, declared, bodyLen)
	}
	if bodyLen > declared {
		return newHeaderParseError(b, 3, 2, fmt.Sprintf("declared body length %d but %d bytes follow the header", declared, bodyLen))
	}
	return nil
}
