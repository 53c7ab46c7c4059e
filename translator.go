package vertexid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/vertexid/internal/conv"
)

const (
	keyIntervalLength = "vertex_interval_length"
	keyNumShards      = "numShards"

	// identityDescriptor is the descriptor of the pass-through translator.
	identityDescriptor = "none"
)

// Translator maps vertex ids between the external, sequential id space and
// the internal, shard-interleaved id space.
//
// External ids are dealt round-robin across shards: id belongs to shard
// id % NumShards at position id / NumShards. Internally each shard owns the
// contiguous block [shard*IntervalLength, (shard+1)*IntervalLength), so a
// shard's vertices can be read as one span.
//
// A Translator is an immutable value and is safe for concurrent use. The zero
// Translator is not usable; obtain one from New, Parse or Identity.
type Translator struct {
	intervalLength uint64
	numShards      uint64
}

// New returns a translator for numShards shards of intervalLength vertices
// each. Both values must be positive and their product must fit in a uint64.
//
// Ids whose position exceeds intervalLength (interval too small for the shard
// count) are a caller misconfiguration: Forward and Backward never panic for
// them but the mapping is no longer injective.
func New(intervalLength, numShards int) (Translator, error) {
	l, err := conv.PositiveToUint64(intervalLength)
	if err != nil {
		return Translator{}, &ConfigurationError{IntervalLength: intervalLength, NumShards: numShards, Reason: "interval length: " + err.Error()}
	}
	n, err := conv.PositiveToUint64(numShards)
	if err != nil {
		return Translator{}, &ConfigurationError{IntervalLength: intervalLength, NumShards: numShards, Reason: "shard count: " + err.Error()}
	}
	if _, err := conv.MulUint64(l, n); err != nil {
		return Translator{}, &ConfigurationError{IntervalLength: intervalLength, NumShards: numShards, Reason: "capacity: " + err.Error()}
	}
	return Translator{intervalLength: l, numShards: n}, nil
}

// Identity returns the translator that maps every id to itself.
func Identity() Translator {
	return Translator{intervalLength: math.MaxUint64, numShards: 1}
}

// Parse reconstructs a translator from a descriptor produced by String.
func Parse(descriptor string) (Translator, error) {
	if strings.TrimSpace(descriptor) == identityDescriptor {
		return Identity(), nil
	}

	fields := strings.Split(strings.TrimRight(descriptor, "\n"), "\n")
	if len(fields) != 2 {
		return Translator{}, &ParseError{Descriptor: descriptor, Reason: fmt.Sprintf("expected 2 fields, got %d", len(fields))}
	}

	var l, n uint64
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return Translator{}, &ParseError{Descriptor: descriptor, Reason: fmt.Sprintf("field %q is not key=value", field)}
		}
		v, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return Translator{}, &ParseError{Descriptor: descriptor, Reason: fmt.Sprintf("field %q is not a positive integer", field), cause: err}
		}
		if v == 0 {
			return Translator{}, &ParseError{Descriptor: descriptor, Reason: fmt.Sprintf("field %q must be positive", field)}
		}

		switch key = strings.TrimSpace(key); key {
		case keyIntervalLength:
			if l != 0 {
				return Translator{}, &ParseError{Descriptor: descriptor, Reason: "duplicate " + key}
			}
			l = v
		case keyNumShards:
			if n != 0 {
				return Translator{}, &ParseError{Descriptor: descriptor, Reason: "duplicate " + key}
			}
			n = v
		default:
			return Translator{}, &ParseError{Descriptor: descriptor, Reason: fmt.Sprintf("unknown key %q", key)}
		}
	}

	if _, err := conv.MulUint64(l, n); err != nil {
		return Translator{}, &ParseError{Descriptor: descriptor, Reason: "capacity overflows uint64", cause: err}
	}
	return Translator{intervalLength: l, numShards: n}, nil
}

// MustParse is like Parse but panics on a malformed descriptor.
func MustParse(descriptor string) Translator {
	t, err := Parse(descriptor)
	if err != nil {
		panic(err)
	}
	return t
}

// IntervalLength returns the number of vertex slots per shard.
func (t Translator) IntervalLength() uint64 { return t.intervalLength }

// NumShards returns the number of shards.
func (t Translator) NumShards() uint64 { return t.numShards }

// Capacity returns the exclusive upper bound of external ids the
// configuration maps bijectively.
func (t Translator) Capacity() uint64 { return t.intervalLength * t.numShards }

// IsIdentity reports whether t maps every id to itself.
func (t Translator) IsIdentity() bool {
	return t.numShards == 1 && t.intervalLength == math.MaxUint64
}

// Contains reports whether originalID is below the capacity.
func (t Translator) Contains(originalID uint64) bool {
	return originalID < t.Capacity()
}

// Forward maps an external id to its translated id.
func (t Translator) Forward(originalID uint64) uint64 {
	if t.numShards == 1 {
		return originalID
	}
	shard := originalID % t.numShards
	pos := originalID / t.numShards
	return shard*t.intervalLength + pos
}

// Backward maps a translated id back to its external id.
func (t Translator) Backward(translatedID uint64) uint64 {
	if t.numShards == 1 {
		return translatedID
	}
	shard := translatedID / t.intervalLength
	pos := translatedID % t.intervalLength
	return pos*t.numShards + shard
}

// ShardOf returns the shard that owns the external id.
func (t Translator) ShardOf(originalID uint64) uint64 {
	return originalID % t.numShards
}

// Interval returns the half-open range [first, end) of translated ids owned
// by shard. It returns an empty range for shard >= NumShards.
func (t Translator) Interval(shard uint64) (first, end uint64) {
	if shard >= t.numShards {
		return 0, 0
	}
	first = shard * t.intervalLength
	return first, first + t.intervalLength
}

// Equal reports whether both translators have the same configuration.
func (t Translator) Equal(other Translator) bool {
	return t.intervalLength == other.intervalLength && t.numShards == other.numShards
}

// String returns the descriptor of t. Parse(t.String()) reconstructs t.
func (t Translator) String() string {
	if t.IsIdentity() {
		return identityDescriptor
	}
	return keyIntervalLength + "=" + strconv.FormatUint(t.intervalLength, 10) + "\n" +
		keyNumShards + "=" + strconv.FormatUint(t.numShards, 10) + "\n"
}

// MarshalText implements encoding.TextMarshaler.
func (t Translator) MarshalText() ([]byte, error) {
	if t.numShards == 0 || t.intervalLength == 0 {
		return nil, &ConfigurationError{Reason: "zero translator"}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Translator) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
