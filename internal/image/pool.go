package image

import "sync"

// Pool is a thread-safe pool for reusing Raster buffers.
//
// Pool groups rasters by their dimensions and format. Multi-pass filters
// hand intermediate buffers back as soon as the next pass is produced, which
// keeps their peak footprint at two rasters regardless of the pass count.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Raster
	maxSize int // max rasters per bucket
}

// poolKey identifies a bucket of identical raster specifications.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new raster pool with the given maximum rasters per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Raster),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a raster from the pool or creates a new one.
// Reused rasters are cleared. Returns nil for invalid dimensions or format.
func (p *Pool) Get(width, height int, format Format) *Raster {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		r := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		r.Clear()
		return r
	}
	p.mu.Unlock()

	r, err := NewRaster(width, height, format)
	if err != nil {
		return nil
	}
	return r
}

// Put returns a raster to the pool for reuse.
// Views created by SubRaster and rasters with padded rows are not pooled,
// since their memory belongs to another raster.
func (p *Pool) Put(r *Raster) {
	if r == nil || r.view || r.stride != r.format.RowBytes(r.width) {
		return
	}

	key := poolKey{width: r.width, height: r.height, format: r.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, r)
}

// Len returns the number of rasters currently held by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
