package vertexid

import "fmt"

const (
	// AuxBits is the width of the auxiliary field in the low bits of a Packet.
	AuxBits = 28

	// AuxMask selects the auxiliary field.
	AuxMask = 1<<AuxBits - 1

	// MaxAux is the largest auxiliary value a Packet can hold.
	MaxAux uint64 = AuxMask

	// VertexBits is the width of the vertex id field in the high bits.
	VertexBits = 64 - AuxBits

	// MaxVertexID is the largest vertex id a Packet can hold.
	MaxVertexID uint64 = 1<<VertexBits - 1
)

// Packet is a vertex id and an auxiliary value (typically an offset into an
// edge-value region) packed into one word:
//
//	VVVV ... VVVV (36 bits) | AAAA ... AAAA (28 bits)
type Packet uint64

// EncodePacket packs vertexID and aux into a Packet.
//
// Values that do not fit their field are rejected with an *EncodingError;
// they are never truncated.
func EncodePacket(vertexID, aux uint64) (Packet, error) {
	if aux > MaxAux {
		return 0, &EncodingError{Field: "aux", Value: aux, Max: MaxAux}
	}
	if vertexID > MaxVertexID {
		return 0, &EncodingError{Field: "vertex", Value: vertexID, Max: MaxVertexID}
	}
	return Packet(vertexID<<AuxBits | aux), nil
}

// MustEncodePacket is like EncodePacket but panics if a field is out of range.
func MustEncodePacket(vertexID, aux uint64) Packet {
	p, err := EncodePacket(vertexID, aux)
	if err != nil {
		panic(err)
	}
	return p
}

// VertexID returns the vertex id stored in p.
func (p Packet) VertexID() uint64 { return uint64(p) >> AuxBits }

// Aux returns the auxiliary value stored in p.
func (p Packet) Aux() uint64 { return uint64(p) & AuxMask }

// Decode returns both fields of p.
func (p Packet) Decode() (vertexID, aux uint64) {
	return p.VertexID(), p.Aux()
}

// String returns a string representation of the Packet.
func (p Packet) String() string {
	return fmt.Sprintf("Packet(%d:%d)", p.VertexID(), p.Aux())
}
