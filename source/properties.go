package source

import (
	"strings"

	"github.com/minios-linux/jargon/stringsfile"
)

// parseProperties reads Java-style key=value lines. Lines starting with '#'
// or '!' are comments; blank lines are skipped. The separator may be '=' or
// ':'. A repeated key overwrites the earlier value but keeps its position.
// Backslash continuation lines are not supported.
func parseProperties(data []byte, lang string) (*stringsfile.Translation, error) {
	t := stringsfile.NewTranslation(lang)

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimPrefix(text, "\ufeff")
	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}
		key, value := splitKeyValue(trimmed)
		if key == "" {
			continue
		}
		t.Set(key, value)
	}
	return t, nil
}

// splitKeyValue splits "key = value" or "key: value" at the first separator.
func splitKeyValue(s string) (key, value string) {
	if i := strings.IndexAny(s, "=:"); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
