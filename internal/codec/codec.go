// Package codec compresses and decompresses vocabulary payloads. A codec is
// selected by the payload's file extension so the embedded assets can mix
// formats (zstd for large lists, lz4 where decode speed matters, brotli and
// gzip for interoperability, plain text during development).
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// MaxDecompressedSize bounds the output of a single payload. A corrupt header
// claiming a huge frame turns into an error instead of an allocation.
const MaxDecompressedSize = 64 << 20

var (
	// ErrUnknownCodec is returned when no codec matches a name or extension.
	ErrUnknownCodec = errors.New("unknown codec")
	// ErrTooLarge is returned when decompressed output exceeds MaxDecompressedSize.
	ErrTooLarge = errors.New("decompressed payload too large")
)

// Codec converts between a plain payload and its compressed form.
type Codec interface {
	Name() string
	Extension() string
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

var codecs = []Codec{Zstd{}, LZ4{}, Brotli{}, Gzip{}, Identity{}}

// ForExtension returns the codec registered for ext (with or without the
// leading dot).
func ForExtension(ext string) (Codec, error) {
	ext = strings.TrimPrefix(ext, ".")
	for _, c := range codecs {
		if c.Extension() == ext {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: extension %q", ErrUnknownCodec, ext)
}

// ForName returns the codec with the given name, e.g. "zstd".
func ForName(name string) (Codec, error) {
	for _, c := range codecs {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// Names lists the registered codec names.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for _, c := range codecs {
		names = append(names, c.Name())
	}
	return names
}

// ZSTD encoder/decoder pools
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxDecompressedSize),
	)
}

// Zstd is the Zstandard frame format (.zst), as written by the zstd CLI.
type Zstd struct{}

func (Zstd) Name() string      { return "zstd" }
func (Zstd) Extension() string { return "zst" }

func (Zstd) Compress(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func (Zstd) Decompress(data []byte) ([]byte, error) {
	dec, err := getZstdDecoder()
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return nil, fmt.Errorf("zstd decode: %w", ErrTooLarge)
	}
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}

// LZ4 is the LZ4 frame format (.lz4), as written by the lz4 CLI.
type LZ4 struct{}

func (LZ4) Name() string      { return "lz4" }
func (LZ4) Extension() string { return "lz4" }

func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if err := zw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
		return nil, fmt.Errorf("lz4 options: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("lz4 encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (LZ4) Decompress(data []byte) ([]byte, error) {
	out, err := readBounded(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("lz4 decode: %w", err)
	}
	return out, nil
}

// Brotli is a raw brotli stream (.br), as written by the brotli CLI.
type Brotli struct{}

func (Brotli) Name() string      { return "brotli" }
func (Brotli) Extension() string { return "br" }

func (Brotli) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("brotli encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("brotli encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (Brotli) Decompress(data []byte) ([]byte, error) {
	out, err := readBounded(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("brotli decode: %w", err)
	}
	return out, nil
}

// Gzip is RFC 1952 gzip (.gz).
type Gzip struct{}

func (Gzip) Name() string      { return "gzip" }
func (Gzip) Extension() string { return "gz" }

func (Gzip) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("gzip encoder: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("gzip encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (Gzip) Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decode: %w", err)
	}
	defer zr.Close()

	out, err := readBounded(zr)
	if err != nil {
		return nil, fmt.Errorf("gzip decode: %w", err)
	}
	return out, nil
}

// Identity stores payloads uncompressed (.txt).
type Identity struct{}

func (Identity) Name() string      { return "none" }
func (Identity) Extension() string { return "txt" }

func (Identity) Compress(data []byte) ([]byte, error) {
	return bytes.Clone(data), nil
}

func (Identity) Decompress(data []byte) ([]byte, error) {
	if len(data) > MaxDecompressedSize {
		return nil, ErrTooLarge
	}
	return bytes.Clone(data), nil
}

func readBounded(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, MaxDecompressedSize+1))
	if err != nil {
		return nil, err
	}
	if len(out) > MaxDecompressedSize {
		return nil, ErrTooLarge
	}
	return out, nil
}
