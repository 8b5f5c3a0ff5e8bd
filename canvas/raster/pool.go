package raster

import (
	"image/color"
	"sync"
)

// Pool is a simple pool of same sized surfaces so a stream of frames can be
// rendered without allocating a new image per frame
type Pool struct {
	// pool of surfaces
	surfaces chan *Surface
	// size of pool
	size          int
	width, height int
	close         sync.Once
}

// NewPool creates a pool of size surfaces of width x height pixels
func NewPool(size, width, height int) *Pool {
	p := &Pool{
		surfaces: make(chan *Surface, size),
		size:     size,
		width:    width,
		height:   height,
	}

	for i := 0; i < size; i++ {
		p.Return(New(width, height))
	}

	return p
}

// Get a cleared surface from the pool, blocks until one is available.  The
// second return value is false once the pool has been closed.
func (p *Pool) Get() (*Surface, bool) {
	s, ok := <-p.surfaces
	return s, ok
}

// Return a surface to the pool.  Surfaces of a different size are dropped.
func (p *Pool) Return(s *Surface) {

	if s == nil || s.Width() != p.width || s.Height() != p.height {
		return
	}

	s.Clear(color.Transparent)

	defer func() {
		// sending on a closed pool
		recover()
	}()

	select {
	case p.surfaces <- s:
	default:
		// pool is full
	}
}

// Size of the pool
func (p *Pool) Size() int {
	return p.size
}

// Close the pool, surfaces still checked out are discarded on return
func (p *Pool) Close() {
	p.close.Do(func() {
		close(p.surfaces)

		for range p.surfaces {
		}
	})
}
