package pdfgen

import (
	"image"
	"sync"
)

// Surface is the shared off-screen raster target used by the print pipeline.
// One render job holds it at a time; a second print request queues on the
// lease instead of sharing the canvas mid-render. The holder must release on
// every exit path, success or failure, so the surface is always left empty
// for the next job.
type Surface struct {
	mu      sync.Mutex
	pxPerMM float64
	content image.Image
}

// NewSurface creates a surface rendering at the given pixel density.
// A non-positive density falls back to DefaultPxPerMM.
func NewSurface(pxPerMM float64) *Surface {
	if pxPerMM <= 0 {
		pxPerMM = DefaultPxPerMM
	}
	return &Surface{pxPerMM: pxPerMM}
}

// Acquire blocks until the surface is free and returns a lease on it.
func (s *Surface) Acquire() *Lease {
	s.mu.Lock()
	return &Lease{s: s}
}

// Idle reports whether the surface is currently free and empty. Diagnostic
// hook only; it is not a synchronization primitive.
func (s *Surface) Idle() bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	return s.content == nil
}

// Lease is exclusive access to the surface for one render job.
type Lease struct {
	s    *Surface
	done sync.Once
}

// Render rasterizes the document onto the held surface.
func (l *Lease) Render(doc *Document) (image.Image, error) {
	img, err := Render(doc, l.s.pxPerMM)
	if err != nil {
		return nil, err
	}
	l.s.content = img
	return img, nil
}

// Release clears the surface and hands it to the next waiter. Safe to call
// more than once.
func (l *Lease) Release() {
	l.done.Do(func() {
		l.s.content = nil
		l.s.mu.Unlock()
	})
}
