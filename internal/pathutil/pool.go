package pathutil

import "sync"

const (
	defaultPathCap = 8  // schema documents are rarely nested deeper
	maxPathCap     = 64 // larger builders are left to the GC
)

var pathBuilderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]string, 0, defaultPathCap)}
	},
}

// Get retrieves an empty PathBuilder from the pool.
func Get() *PathBuilder {
	p := pathBuilderPool.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns a PathBuilder to the pool.
func Put(p *PathBuilder) {
	if p == nil || cap(p.segments) > maxPathCap {
		return
	}
	pathBuilderPool.Put(p)
}
