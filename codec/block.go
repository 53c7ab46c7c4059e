package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/vertexid"
	"github.com/hupe1980/vertexid/internal/conv"
	"github.com/hupe1980/vertexid/internal/hash"
)

const (
	blockMagic   uint16 = 0x5056 // "VP"
	blockVersion uint8  = 1

	// HeaderSize is the fixed size of a block header.
	HeaderSize = 16

	// minSavings is the fraction of the raw size compression must save.
	minSavings = 0.1

	// MaxRawSize is the largest uncompressed delta stream a block may hold.
	MaxRawSize = 1 << 28
)

var (
	// ErrCorruptBlock is returned when a block is truncated or malformed.
	ErrCorruptBlock = errors.New("corrupt packet block")

	// ErrChecksumMismatch is returned when the payload checksum does not match.
	ErrChecksumMismatch = errors.New("packet block checksum mismatch")

	// ErrUnsupportedVersion is returned for blocks written by a newer layout.
	ErrUnsupportedVersion = errors.New("unsupported packet block version")
)

// Options configures EncodeBlock.
type Options struct {
	// Compression is the preferred algorithm. It is only applied when it
	// saves at least 10% of the raw size.
	Compression Compression
}

// DefaultOptions returns LZ4 compression.
func DefaultOptions() Options {
	return Options{Compression: CompressionLZ4}
}

// Header describes an encoded block.
type Header struct {
	Version     uint8
	Compression Compression
	Count       uint32
	RawSize     uint32
	Checksum    uint32
}

// EncodeBlock encodes packets into a block.
func EncodeBlock(packets []vertexid.Packet, opts Options) ([]byte, error) {
	count, err := conv.IntToUint32(len(packets))
	if err != nil {
		return nil, fmt.Errorf("too many packets: %w", err)
	}

	raw := make([]byte, 0, 2*len(packets)+binary.MaxVarintLen64)
	var prev uint64
	for _, p := range packets {
		// Wrapping subtraction; DecodeBlock wraps back.
		raw = binary.AppendVarint(raw, int64(uint64(p)-prev))
		prev = uint64(p)
	}

	if len(raw) > MaxRawSize {
		return nil, fmt.Errorf("block too large: %d bytes exceeds %d", len(raw), MaxRawSize)
	}
	rawSize, err := conv.IntToUint32(len(raw))
	if err != nil {
		return nil, fmt.Errorf("block too large: %w", err)
	}

	payload, used := raw, CompressionNone
	if opts.Compression != CompressionNone && len(raw) > 0 {
		compressed, err := compress(raw, opts.Compression)
		if err != nil {
			return nil, fmt.Errorf("compress %s: %w", opts.Compression, err)
		}
		if len(compressed) > 0 && float64(len(compressed)) <= float64(len(raw))*(1-minSavings) &&
			uint64(len(raw)) <= maxExpansion(opts.Compression, len(compressed)) {
			payload, used = compressed, opts.Compression
		}
	}

	out := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint16(out[0:], blockMagic)
	out[2] = blockVersion
	out[3] = byte(used)
	binary.LittleEndian.PutUint32(out[4:], count)
	binary.LittleEndian.PutUint32(out[8:], rawSize)
	binary.LittleEndian.PutUint32(out[12:], hash.CRC32C(payload))
	copy(out[HeaderSize:], payload)
	return out, nil
}

// ReadHeader decodes and validates the header of a block without touching
// its payload.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorruptBlock, len(data))
	}
	if binary.LittleEndian.Uint16(data[0:]) != blockMagic {
		return Header{}, fmt.Errorf("%w: bad magic", ErrCorruptBlock)
	}
	h := Header{
		Version:     data[2],
		Compression: Compression(data[3]),
		Count:       binary.LittleEndian.Uint32(data[4:]),
		RawSize:     binary.LittleEndian.Uint32(data[8:]),
		Checksum:    binary.LittleEndian.Uint32(data[12:]),
	}
	if h.Version != blockVersion {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	// Every packet takes at least one and at most MaxVarintLen64 bytes.
	if h.RawSize < h.Count || uint64(h.RawSize) > uint64(h.Count)*binary.MaxVarintLen64 {
		return Header{}, fmt.Errorf("%w: %d packets cannot take %d bytes", ErrCorruptBlock, h.Count, h.RawSize)
	}
	if h.RawSize > MaxRawSize {
		return Header{}, fmt.Errorf("%w: raw size %d exceeds %d", ErrCorruptBlock, h.RawSize, MaxRawSize)
	}
	return h, nil
}

// DecodeBlock decodes a block produced by EncodeBlock.
func DecodeBlock(data []byte) ([]vertexid.Packet, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if sum := hash.CRC32C(payload); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %08x, want %08x", ErrChecksumMismatch, sum, h.Checksum)
	}

	rawSize, err := conv.Uint32ToInt(h.RawSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
	}
	raw, err := decompress(payload, h.Compression, rawSize)
	if err != nil {
		return nil, err
	}

	packets := make([]vertexid.Packet, h.Count)
	var prev uint64
	for i := range packets {
		delta, n := binary.Varint(raw)
		if n <= 0 {
			return nil, fmt.Errorf("%w: bad varint at packet %d", ErrCorruptBlock, i)
		}
		raw = raw[n:]
		prev += uint64(delta)
		packets[i] = vertexid.Packet(prev)
	}
	if len(raw) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptBlock, len(raw))
	}
	return packets, nil
}
