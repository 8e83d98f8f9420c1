// Package zv implements the ZV envelope, a small self-describing wrapper
// around an LZF-compressed (or stored) payload.
//
// # Wire Format
//
// An envelope is a fixed header followed immediately by the body. There is no
// checksum and no terminator.
//
//	offset  size  field
//	0       2     method tag, ASCII "ZV"
//	2       1     indicator: 0x01 compressed, 0x00 stored
//	3       2     stored body length, big-endian uint16
//	5       2     original length, big-endian uint16 (compressed only)
//
// Compressed envelopes therefore carry a 7-byte header and stored envelopes a
// 5-byte header. Both length fields are 16 bits wide, so a payload is limited
// to 65535 bytes.
//
// # Basic Usage
//
// To wrap a payload:
//
//	env, err := zv.Compress([]byte("hello, hello, hello"))
//
// To unwrap it again:
//
//	payload, err := zv.Decompress(env)
//
// [Encode] and [Decode] do the same against an [io.Writer] and [io.Reader].
// [ParseEnvelope] and [ParseHeader] expose the header without inflating the
// body.
//
// # Errors
//
// Truncated input fails with [ErrBufferTooShort], malformed header fields with
// a [*HeaderParseError], and failures of the LZF codec with a
// [*CompressionError] or [*DecompressionError]. Every error matches one of the
// package sentinels via [errors.Is].
package zv
