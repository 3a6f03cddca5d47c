package stringsfile

import "strings"

// Line formats a single key/value pair as a .strings line. The key is
// written verbatim, the value is normalized.
func Line(key, value string) string {
	return `"` + key + `" = "` + Normalize(value) + `";`
}

// Contents returns the full file contents for t: one line per entry in
// insertion order, separated by "\n", without a trailing newline.
func Contents(t *Translation) string {
	lines := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		lines = append(lines, Line(e.Key, e.Value))
	}
	return strings.Join(lines, "\n")
}

// Marshal returns the UTF-8 encoded file contents for t.
func Marshal(t *Translation) []byte {
	return []byte(Contents(t))
}
