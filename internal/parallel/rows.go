package parallel

// MinBandRows is the smallest band Rows hands to a worker.
const MinBandRows = 16

// Rows calls fn for contiguous, non-overlapping bands [y0, y1) covering
// [0, height) and returns when all bands are done.
//
// With a nil or closed pool, or when height is too small to split, fn runs
// once on the calling goroutine with the full range.
func Rows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}

	bands := 1
	if p != nil && p.IsRunning() {
		bands = min(p.Workers()*2, height/MinBandRows)
	}
	if bands <= 1 {
		fn(0, height)
		return
	}

	work := make([]func(), bands)
	for i := range bands {
		y0 := i * height / bands
		y1 := (i + 1) * height / bands
		work[i] = func() { fn(y0, y1) }
	}
	p.ExecuteAll(work)
}
