package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder accumulates path segments for a recursive walk.
// Keys are joined with dots and indices are appended in brackets,
// e.g. "properties.tags.items" or "anyOf[0].properties.id".
type PathBuilder struct {
	segments []string
	length   int // running length of String() output
}

// Push adds a key segment to the path.
func (p *PathBuilder) Push(segment string) {
	if len(p.segments) > 0 {
		p.length++
	}
	p.segments = append(p.segments, segment)
	p.length += len(segment)
}

// PushIndex adds a sequence index segment: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	seg := "[" + strconv.Itoa(i) + "]"
	p.segments = append(p.segments, seg)
	p.length += len(seg)
}

// Pop removes the last segment. Popping an empty path is a no-op.
func (p *PathBuilder) Pop() {
	n := len(p.segments)
	if n == 0 {
		return
	}
	last := p.segments[n-1]
	p.segments = p.segments[:n-1]
	p.length -= len(last)
	if n > 1 && !isIndex(last) {
		p.length--
	}
}

// Depth returns the number of segments currently on the path.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		if !isIndex(seg) {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func isIndex(seg string) bool {
	return len(seg) > 0 && seg[0] == '['
}
