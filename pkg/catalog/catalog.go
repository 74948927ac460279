package catalog

import "strings"

// Catalog is a nested mapping from key segments to either string values
// or sub-catalogs. The default locale's catalog is the completeness
// reference; catalogs for other locales may be partial or absent.
type Catalog map[string]any

// IsEmpty reports whether the catalog holds no entries.
func (c Catalog) IsEmpty() bool {
	return len(c) == 0
}

// Lookup resolves a dotted key against the tree. Traversal walks the
// split segments iteratively and stops at the first absent segment or
// non-mapping node. Only a non-empty, non-whitespace string leaf counts
// as a hit; any other leaf type is a miss, not an error.
func (c Catalog) Lookup(key string) (string, bool) {
	if len(c) == 0 || key == "" {
		return "", false
	}

	node := any(map[string]any(c))
	for seg := range strings.SplitSeq(key, ".") {
		var (
			next any
			ok   bool
		)
		switch m := node.(type) {
		case map[string]any:
			next, ok = m[seg]
		case Catalog:
			next, ok = m[seg]
		case map[string]string:
			next, ok = m[seg]
		default:
			return "", false
		}
		if !ok {
			return "", false
		}
		node = next
	}

	s, ok := node.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
