package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_ListPrefix(t *testing.T) {
	tests := []struct {
		root, prefix, want string
	}{
		{"", "", ""},
		{"root", "", "root/"},
		{"root/", "web/", "root/web/"},
	}
	for _, tt := range tests {
		s := &Store{prefix: tt.root}
		assert.Equal(t, tt.want, s.listPrefix(tt.prefix), "root %q prefix %q", tt.root, tt.prefix)
	}
}

func TestStore_NameFromKey(t *testing.T) {
	s := &Store{prefix: "root"}

	_, ok := s.nameFromKey("rootother/web/SHARDS")
	assert.False(t, ok)

	_, ok = s.nameFromKey("root/")
	assert.False(t, ok)

	name, ok := s.nameFromKey("root/web/SHARDS")
	assert.True(t, ok)
	assert.Equal(t, "web/SHARDS", name)
}
