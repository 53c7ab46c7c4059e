package manifest

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hupe1980/vertexid"
	"github.com/hupe1980/vertexid/internal/hash"
)

const (
	binaryMagic   = 0x56494453 // "VIDS"
	binaryVersion = 1
	headerSize    = 16
)

// MarshalBinary encodes the manifest. See the package documentation for the
// layout.
func (m *Manifest) MarshalBinary() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	desc := m.Translator.String()
	pb := newPayloadBuffer(make([]byte, 0, 2+len(m.Name)+2+len(desc)+16))
	pb.writeString(m.Name)
	pb.writeString(desc)
	pb.writeUint64(m.VertexCount)
	pb.writeUint64(encodeTime(m.CreatedAt))

	// Check for any errors during payload construction (e.g., string too long)
	if pb.err != nil {
		return nil, pb.err
	}

	payload := pb.buf
	out := make([]byte, headerSize, headerSize+len(payload))
	binary.LittleEndian.PutUint32(out[0:4], binaryMagic)
	binary.LittleEndian.PutUint32(out[4:8], binaryVersion)
	binary.LittleEndian.PutUint32(out[8:12], hash.CRC32C(payload))
	binary.LittleEndian.PutUint32(out[12:16], uint32(len(payload))) //nolint:gosec // bounded by two uint16 strings
	return append(out, payload...), nil
}

// UnmarshalBinary decodes a manifest produced by MarshalBinary.
func (m *Manifest) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: %v", ErrCorrupt, io.ErrUnexpectedEOF)
	}

	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != binaryMagic {
		return fmt.Errorf("%w: invalid magic: %x", ErrCorrupt, magic)
	}
	if version := binary.LittleEndian.Uint32(data[4:8]); version != binaryVersion {
		return fmt.Errorf("%w: %d (expected %d)", ErrIncompatibleVersion, version, binaryVersion)
	}
	checksum := binary.LittleEndian.Uint32(data[8:12])
	length := binary.LittleEndian.Uint32(data[12:16])

	payload := data[headerSize:]
	if uint64(len(payload)) != uint64(length) {
		return fmt.Errorf("%w: payload is %d bytes, header says %d", ErrCorrupt, len(payload), length)
	}
	if hash.CRC32C(payload) != checksum {
		return fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	pb := newPayloadBuffer(payload)
	name := pb.readString()
	desc := pb.readString()
	vertexCount := pb.readUint64()
	createdAt := pb.readUint64()
	if pb.err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, pb.err)
	}
	if pb.pos != len(payload) {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(payload)-pb.pos)
	}

	tr, err := vertexid.Parse(desc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	decoded := Manifest{
		Name:        name,
		Translator:  tr,
		VertexCount: vertexCount,
		CreatedAt:   decodeTime(createdAt),
	}
	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	*m = decoded
	return nil
}

// zeroTime is the encoding of the zero time.Time. Validate keeps real
// creation times strictly above it.
const zeroTime = math.MinInt64

func encodeTime(t time.Time) uint64 {
	if t.IsZero() {
		return uint64(1) << 63 // bit pattern of zeroTime
	}
	return uint64(t.UnixNano()) //nolint:gosec // two's complement round trip
}

func decodeTime(v uint64) time.Time {
	ns := int64(v) //nolint:gosec // inverse of encodeTime
	if ns == zeroTime {
		return time.Time{}
	}
	return time.Unix(0, ns).UTC()
}

type payloadBuffer struct {
	buf []byte
	pos int
	err error
}

func newPayloadBuffer(b []byte) *payloadBuffer {
	return &payloadBuffer{buf: b}
}

func (p *payloadBuffer) writeUint64(v uint64) {
	if p.err != nil {
		return
	}
	p.buf = binary.LittleEndian.AppendUint64(p.buf, v)
}

func (p *payloadBuffer) writeString(s string) {
	if p.err != nil {
		return
	}
	if len(s) > 65535 {
		p.err = fmt.Errorf("string too long: %d", len(s))
		return
	}
	p.buf = binary.LittleEndian.AppendUint16(p.buf, uint16(len(s)))
	p.buf = append(p.buf, s...)
}

func (p *payloadBuffer) readUint64() uint64 {
	if p.err != nil {
		return 0
	}
	if p.pos+8 > len(p.buf) {
		p.err = io.ErrUnexpectedEOF
		return 0
	}
	v := binary.LittleEndian.Uint64(p.buf[p.pos:])
	p.pos += 8
	return v
}

func (p *payloadBuffer) readString() string {
	if p.err != nil {
		return ""
	}
	if p.pos+2 > len(p.buf) {
		p.err = io.ErrUnexpectedEOF
		return ""
	}
	l := int(binary.LittleEndian.Uint16(p.buf[p.pos:]))
	p.pos += 2

	if p.pos+l > len(p.buf) {
		p.err = io.ErrUnexpectedEOF
		return ""
	}
	s := string(p.buf[p.pos : p.pos+l])
	p.pos += l
	return s
}
