package zv

import (
	"io"

	"github.com/logicossoftware/go-zv/internal/lzf"
)

// Function variables for testing injection.
var (
	lzfCompress   = lzf.Compress
	lzfDecompress = lzf.Decompress
	readAll       = io.ReadAll
)

func compressBody(payload []byte) ([]byte, error) {
	body, err := lzfCompress(payload)
	if err != nil {
		return nil, &CompressionError{Err: err}
	}
	return body, nil
}

// decompressBody returns a freshly allocated payload for the body described
// by h. Stored bodies are copied; compressed bodies must inflate to exactly
// h.OriginalLen bytes.
func decompressBody(h Header, body []byte) ([]byte, error) {
	if !h.IsCompressed {
		return append([]byte{}, body...), nil
	}
	out, err := lzfDecompress(body, int(h.OriginalLen))
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}
	return out, nil
}
