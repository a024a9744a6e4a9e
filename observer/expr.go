package observer

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// PathFunc walks a parsed watch expression from a root value.
type PathFunc func(root any) any

// ParsePath parses a dot-delimited watch expression ("a.b.c") into a
// walker. Returns nil for anything fancier than word characters, '$' and
// dots; full expressions belong to a compiler, not this core. Parsed
// segment lists are cached on the system, keyed by xxhash of the
// expression.
func (sys *System) ParsePath(path string) PathFunc {
	for _, r := range path {
		if !isPathRune(r) {
			return nil
		}
	}
	key := xxhash.Sum64String(path)
	segments, ok := sys.pathCache[key]
	if !ok {
		segments = strings.Split(path, ".")
		sys.pathCache[key] = segments
	}
	return func(root any) any {
		cur := root
		for _, segment := range segments {
			r, ok := cur.(*Record)
			if !ok {
				return nil
			}
			cur = r.Get(segment)
		}
		return cur
	}
}

func isPathRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '$', r == '.':
		return true
	}
	return false
}
