package manifest

import "errors"

var (
	// ErrIncompatibleVersion is returned when the manifest version is not supported.
	ErrIncompatibleVersion = errors.New("incompatible manifest version")

	// ErrNotFound is returned when no manifest exists for a name.
	ErrNotFound = errors.New("manifest not found")

	// ErrExists is returned by Create when a manifest already exists.
	ErrExists = errors.New("manifest already exists")

	// ErrInvalidName is returned for names that cannot be used as a blob key.
	ErrInvalidName = errors.New("invalid shard-set name")

	// ErrInvalidTime is returned for creation times that cannot be stored.
	ErrInvalidTime = errors.New("manifest creation time out of range")

	// ErrCorrupt is returned when a stored manifest fails validation.
	ErrCorrupt = errors.New("corrupt manifest")
)
