package source

import (
	"fmt"
	"sort"

	"github.com/minios-linux/jargon/stringsfile"
	"github.com/pelletier/go-toml/v2"
)

// parseTOML reads string values from a TOML document. Tables are flattened
// with dots and keys are emitted in sorted order, since the decoded map
// does not keep document order. Non-string values are skipped.
func parseTOML(data []byte, lang string) (*stringsfile.Translation, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	flat := make(map[string]string)
	flattenTOML(doc, "", flat)
	return stringsfile.FromMap(lang, flat), nil
}

func flattenTOML(m map[string]any, prefix string, out map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := m[k].(type) {
		case string:
			out[key] = v
		case map[string]any:
			flattenTOML(v, key, out)
		}
	}
}
