package manifest

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hupe1980/vertexid"
)

// FileName is the blob name a manifest is stored under, below its shard-set
// name.
const FileName = "SHARDS"

const maxNameLen = 255

// CreatedAt must be zero or strictly inside the int64 nanosecond range.
var (
	minCreatedAt = time.Unix(0, math.MinInt64)
	maxCreatedAt = time.Unix(0, math.MaxInt64)
)

// Manifest describes one shard set.
type Manifest struct {
	Name        string
	Translator  vertexid.Translator
	VertexCount uint64
	CreatedAt   time.Time
}

// New returns a validated manifest stamped with the current time.
func New(name string, tr vertexid.Translator, vertexCount uint64) (*Manifest, error) {
	m := &Manifest{
		Name:        name,
		Translator:  tr,
		VertexCount: vertexCount,
		CreatedAt:   time.Now().UTC(),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the name and that every vertex fits the translator.
func (m *Manifest) Validate() error {
	if err := ValidateName(m.Name); err != nil {
		return err
	}
	if m.Translator.NumShards() == 0 {
		return fmt.Errorf("manifest %q: %w", m.Name, vertexid.ErrConfiguration)
	}
	if !m.CreatedAt.IsZero() && (!m.CreatedAt.After(minCreatedAt) || m.CreatedAt.After(maxCreatedAt)) {
		return fmt.Errorf("%w: manifest %q created %s", ErrInvalidTime, m.Name, m.CreatedAt)
	}
	if m.VertexCount > m.Translator.Capacity() {
		return fmt.Errorf("manifest %q: %d vertices exceed capacity %d: %w",
			m.Name, m.VertexCount, m.Translator.Capacity(), vertexid.ErrConfiguration)
	}
	return nil
}

// ValidateName reports whether name can address a shard set. Names are
// slash-separated paths without empty, "." or ".." segments.
func ValidateName(name string) error {
	if name == "" || len(name) > maxNameLen {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." || seg == FileName {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}

func key(prefix, name string) string {
	return prefix + name + "/" + FileName
}

func nameFromKey(prefix, k string) (string, bool) {
	if !strings.HasPrefix(k, prefix) {
		return "", false
	}
	name, ok := strings.CutSuffix(k[len(prefix):], "/"+FileName)
	if !ok || ValidateName(name) != nil {
		return "", false
	}
	return name, true
}
