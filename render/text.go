package render

import (
	"github.com/rivo/uniseg"
)

// TextWidth returns the columns SetText uses for s
func TextWidth(s string) int {
	n := 0
	state := -1
	for len(s) > 0 {
		var w int
		_, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		n += max(w, 1)
	}
	return n
}

// Truncate cuts s to at most width columns by whole grapheme clusters,
// appending tail when something was cut
func Truncate(s string, width int, tail string) string {
	if TextWidth(s) <= width {
		return s
	}
	budget := width - TextWidth(tail)
	if budget < 0 {
		return ""
	}

	used, end := 0, 0
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w = max(w, 1)
		if used+w > budget {
			break
		}
		used += w
		end += len(cluster)
	}
	return s[:end] + tail
}
