package vertexid

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid translator configuration")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed translator descriptor")

	// ErrEncoding is matched by every *EncodingError.
	ErrEncoding = errors.New("vertex packet field out of range")
)

// ConfigurationError indicates a translator was constructed with a
// non-positive interval length or shard count, or with a combination whose
// capacity does not fit into 64 bits.
type ConfigurationError struct {
	IntervalLength int
	NumShards      int
	Reason         string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid translator configuration (interval length %d, shards %d): %s",
		e.IntervalLength, e.NumShards, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ParseError indicates a descriptor that was not produced by Translator.String.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Descriptor string
	Reason     string
	cause      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed translator descriptor %q: %s", e.Descriptor, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.cause }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// EncodingError indicates a packet field that does not fit its bit width.
type EncodingError struct {
	Field string // "vertex" or "aux"
	Value uint64
	Max   uint64
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("packet %s value %d exceeds maximum %d", e.Field, e.Value, e.Max)
}

// Is reports whether target is ErrEncoding.
func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }
