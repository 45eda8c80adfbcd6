// Package videoid resolves user-supplied video references into canonical IDs.
package videoid

import "strings"

// idLength is the length of a YouTube video identifier.
const idLength = 11

// Parse extracts the canonical video ID from a watch URL, a youtu.be short
// link, or a bare 11-character ID. The second return value is false when the
// input matches none of those forms.
func Parse(s string) (string, bool) {
	switch {
	case strings.Contains(s, "youtube.com/watch?v="):
		id := strings.SplitN(s, "v=", 2)[1]
		if i := strings.Index(id, "&"); i >= 0 {
			id = id[:i]
		}
		return id, id != ""
	case strings.Contains(s, "youtu.be/"):
		id := strings.SplitN(s, "youtu.be/", 2)[1]
		if i := strings.Index(id, "?"); i >= 0 {
			id = id[:i]
		}
		return id, id != ""
	case len(s) == idLength:
		return s, true
	default:
		return "", false
	}
}
