// Package main provides C-compatible exports for the zv library.
// Build with: go build -buildmode=c-shared -o zv.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} ZvResult;

// Header fields of a parsed envelope
typedef struct {
    uint8_t  method[2];
    uint8_t  is_compressed;
    uint16_t compressed_len;
    uint16_t original_len;
} ZvHeader;
*/
import "C"

import (
	"encoding/json"
	"unsafe"

	"github.com/logicossoftware/go-zv"
)

func main() {}

// ZvMaxPayloadLen returns the largest payload an envelope can carry.
//
//export ZvMaxPayloadLen
func ZvMaxPayloadLen() C.int {
	return C.int(zv.MaxLen)
}

// ZvFreeResult frees memory allocated by other Zv functions.
// Must be called to avoid memory leaks.
//
//export ZvFreeResult
func ZvFreeResult(result C.ZvResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// ZvFreeString frees a C string allocated by Go.
//
//export ZvFreeString
func ZvFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.ZvResult {
	var result C.ZvResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.ZvResult {
	var result C.ZvResult
	result.error = C.CString(err.Error())
	return result
}

// ZvCompress wraps a payload in a ZV envelope.
// Parameters:
//   - data: pointer to the payload bytes
//   - dataLen: length of the payload
//   - storeIncompressible: non-zero to store payloads LZF cannot shrink
//
// Returns ZvResult with the envelope or error. Call ZvFreeResult when done.
//
//export ZvCompress
func ZvCompress(data *C.char, dataLen C.int, storeIncompressible C.int) C.ZvResult {
	payload := C.GoBytes(unsafe.Pointer(data), dataLen)
	env, err := zv.Compress(payload, zv.WithStoreIncompressible(storeIncompressible != 0))
	if err != nil {
		return makeError(err)
	}
	return makeResult(env)
}

// ZvDecompress returns the payload carried by a ZV envelope.
// Returns ZvResult with the payload or error. Call ZvFreeResult when done.
//
//export ZvDecompress
func ZvDecompress(data *C.char, dataLen C.int) C.ZvResult {
	env := C.GoBytes(unsafe.Pointer(data), dataLen)
	payload, err := zv.Decompress(env)
	if err != nil {
		return makeError(err)
	}
	return makeResult(payload)
}

// ZvParseHeader fills out with the header of a ZV envelope.
// Returns NULL on success, or an error message string on failure.
// Call ZvFreeString on the result if non-NULL.
//
//export ZvParseHeader
func ZvParseHeader(data *C.char, dataLen C.int, out *C.ZvHeader) *C.char {
	env, err := zv.ParseEnvelope(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return C.CString(err.Error())
	}
	h := env.Header
	out.method[0] = C.uint8_t(h.Method[0])
	out.method[1] = C.uint8_t(h.Method[1])
	out.is_compressed = 0
	if h.IsCompressed {
		out.is_compressed = 1
	}
	out.compressed_len = C.uint16_t(h.CompressedLen)
	out.original_len = C.uint16_t(h.OriginalLen)
	return nil
}

// ZvInspect returns a JSON description of a ZV envelope's header.
// Returns ZvResult with the JSON string or error. Call ZvFreeResult when done.
//
//export ZvInspect
func ZvInspect(data *C.char, dataLen C.int) C.ZvResult {
	env, err := zv.ParseEnvelope(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return makeError(err)
	}
	result := map[string]any{
		"method":        string(env.Header.Method[:]),
		"isCompressed":  env.Header.IsCompressed,
		"compressedLen": env.Header.CompressedLen,
		"originalLen":   env.Header.OriginalLen,
		"headerLen":     env.Header.Size(),
	}
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return makeError(err)
	}
	return makeResult(jsonBytes)
}
