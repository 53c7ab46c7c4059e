package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm used for a block payload.
type Compression uint8

const (
	// CompressionNone stores the delta stream as is.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio, good for cold data).
	CompressionZSTD Compression = 2
)

// String returns the name of the algorithm.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

const (
	// lz4MaxRatio bounds how far an LZ4 block can expand: a match token
	// grows its length by at most 255 per input byte.
	lz4MaxRatio = 255
	lz4Slack    = 16

	// zstdMaxRatio bounds ZSTD expansion: an RLE block turns four bytes into
	// at most one 128 KiB block.
	zstdMaxRatio = 1 << 15
	zstdSlack    = 1 << 17
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxRawSize),
	)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the compressed payload, or nil if the algorithm could not
// shrink it.
func compress(raw []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, dst, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil // Incompressible
		}
		return dst[:n], nil
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		return enc.EncodeAll(raw, nil), nil
	default:
		return nil, nil
	}
}

// maxExpansion returns the largest raw size a payload of n bytes can decode
// to under c.
func maxExpansion(c Compression, n int) uint64 {
	switch c {
	case CompressionLZ4:
		return uint64(n)*lz4MaxRatio + lz4Slack
	case CompressionZSTD:
		return uint64(n)*zstdMaxRatio + zstdSlack
	default:
		return uint64(n)
	}
}

func decompress(payload []byte, c Compression, rawSize int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(payload) != rawSize {
			return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrCorruptBlock, len(payload), rawSize)
		}
		return payload, nil
	case CompressionLZ4:
		if uint64(rawSize) > maxExpansion(c, len(payload)) {
			return nil, fmt.Errorf("%w: %d lz4 bytes cannot expand to %d", ErrCorruptBlock, len(payload), rawSize)
		}
		raw := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %w", ErrCorruptBlock, err)
		}
		if n != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return raw, nil
	case CompressionZSTD:
		if uint64(rawSize) > maxExpansion(c, len(payload)) {
			return nil, fmt.Errorf("%w: %d zstd bytes cannot expand to %d", ErrCorruptBlock, len(payload), rawSize)
		}
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		// No preallocation: the decoder grows the output up to MaxRawSize.
		raw, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrCorruptBlock, err)
		}
		if len(raw) != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorruptBlock, uint8(c))
	}
}
