// Package cache provides a sharded, size-bounded LRU cache for outline
// results.
//
// Outline computation is deterministic, so a result keyed by the source
// path data can be reused for as long as the stroke settings are fixed.
// The cache splits its entries over 16 independently locked shards to keep
// concurrent batch workers from contending on a single mutex.
package cache
