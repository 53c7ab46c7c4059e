// Package testutil provides testing utilities for vertexid.
//
// This package is intended for use in tests and benchmarks only.
// It provides the id sequences and shard configurations the translator and
// packet tests sweep over, plus a seeded, thread-safe random source.
//
// # Id Sequences
//
//	for _, id := range testutil.GeometricIDs(10_000_000) { ... } // 0, 1, 3, 7, 15, ...
//
// # Shard Configurations
//
//	for _, cfg := range testutil.ConfigGrid() {
//	    tr, _ := vertexid.New(cfg.IntervalLength, cfg.NumShards)
//	}
package testutil
