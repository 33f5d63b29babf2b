// Package parallel runs row bands of a raster operation on a shared set of
// worker goroutines.
//
// A WorkerPool is created once and reused across calls; Rows splits an
// image height into contiguous bands and waits for all of them. Bands never
// overlap, so callers writing disjoint output rows need no locking.
package parallel
