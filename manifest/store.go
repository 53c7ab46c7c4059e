package manifest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/hupe1980/vertexid"
	"github.com/hupe1980/vertexid/blobstore"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Store reads and writes manifests in a blob store.
type Store struct {
	blobs blobstore.BlobStore
	opts  options
	loads singleflight.Group
}

// NewStore creates a manifest store on top of blobs.
func NewStore(blobs blobstore.BlobStore, optFns ...Option) *Store {
	opts := options{
		logger:          vertexid.NoopLogger(),
		metrics:         NoopMetricsCollector{},
		loadConcurrency: DefaultLoadConcurrency,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{blobs: blobs, opts: opts}
}

// Create stores m unless a manifest with the same name exists, in which case
// it returns ErrExists.
func (s *Store) Create(ctx context.Context, m *Manifest) error {
	start := time.Now()
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}

	err = blobstore.PutIfAbsent(ctx, s.blobs, key(s.opts.prefix, m.Name), data)
	if errors.Is(err, blobstore.ErrExists) {
		err = fmt.Errorf("%w: %s", ErrExists, m.Name)
	}
	s.opts.metrics.RecordSave(time.Since(start), err)
	s.opts.logger.LogSave(ctx, m.Name, m.Translator, err)
	return err
}

// Save stores m, replacing any previous manifest of the same name.
func (s *Store) Save(ctx context.Context, m *Manifest) error {
	start := time.Now()
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}

	err = s.blobs.Put(ctx, key(s.opts.prefix, m.Name), data)
	s.opts.metrics.RecordSave(time.Since(start), err)
	s.opts.logger.LogSave(ctx, m.Name, m.Translator, err)
	return err
}

// Load reads the manifest of a shard set. Concurrent loads of the same name
// share one read; each caller gets its own copy.
func (s *Store) Load(ctx context.Context, name string) (*Manifest, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	ch := s.loads.DoChan(name, func() (any, error) {
		// Detached so one caller's cancellation does not fail the others.
		return s.load(context.WithoutCancel(ctx), name)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		m := *res.Val.(*Manifest)
		return &m, nil
	}
}

func (s *Store) load(ctx context.Context, name string) (*Manifest, error) {
	start := time.Now()
	m, err := s.read(ctx, name)
	s.opts.metrics.RecordLoad(time.Since(start), err)
	if err != nil {
		s.opts.logger.LogLoad(ctx, name, vertexid.Translator{}, err)
		return nil, err
	}
	s.opts.logger.LogLoad(ctx, name, m.Translator, nil)
	return m, nil
}

func (s *Store) read(ctx context.Context, name string) (*Manifest, error) {
	data, err := s.blobs.Get(ctx, key(s.opts.prefix, name))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			err = fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}

	var m Manifest
	if err := m.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", name, err)
	}
	if m.Name != name {
		return nil, fmt.Errorf("%w: %s holds manifest of %s", ErrCorrupt, name, m.Name)
	}
	return &m, nil
}

// LoadAll loads several manifests concurrently. The result is in the order of
// names. The first failure cancels the remaining reads and is returned.
func (s *Store) LoadAll(ctx context.Context, names []string) ([]*Manifest, error) {
	start := time.Now()
	out := make([]*Manifest, len(names))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.loadConcurrency)

	for i, name := range names {
		g.Go(func() error {
			m, err := s.Load(gctx, name)
			if err != nil {
				failed.Add(1)
				return err
			}
			out[i] = m
			return nil
		})
	}

	err := g.Wait()
	s.opts.metrics.RecordBatchLoad(len(names), int(failed.Load()), time.Since(start))
	s.opts.logger.LogBatchLoad(ctx, len(names), int(failed.Load()))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns the names of all stored shard sets, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	keys, err := s.blobs.List(ctx, s.opts.prefix)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, k := range keys {
		if name, ok := nameFromKey(s.opts.prefix, k); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the manifest of a shard set. Deleting a missing manifest is
// not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	start := time.Now()
	s.loads.Forget(name)
	err := s.blobs.Delete(ctx, key(s.opts.prefix, name))
	s.opts.metrics.RecordDelete(time.Since(start), err)
	return err
}
