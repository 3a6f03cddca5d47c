package source

import (
	"fmt"
	"strings"

	"github.com/minios-linux/jargon/stringsfile"
	"gopkg.in/yaml.v3"
)

// parseYAML reads a nested YAML map with string leaves. Nested keys are
// joined with dots ("nav.home") and document order is kept. A file whose
// only top-level key is lang itself (Rails style "en:") is unwrapped.
// Non-string scalars and sequences are skipped.
func parseYAML(data []byte, lang string) (*stringsfile.Translation, error) {
	t := stringsfile.NewTranslation(lang)

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return t, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("YAML root must be a mapping, got kind %d", root.Kind)
	}
	if len(root.Content) == 2 && root.Content[1].Kind == yaml.MappingNode &&
		sameLang(root.Content[0].Value, lang) {
		root = root.Content[1]
	}

	collectYAML(root, "", t)
	return t, nil
}

func collectYAML(node *yaml.Node, prefix string, t *stringsfile.Translation) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if prefix != "" {
			key = prefix + "." + key
		}

		val := node.Content[i+1]
		switch val.Kind {
		case yaml.MappingNode:
			collectYAML(val, key, t)
		case yaml.ScalarNode:
			switch val.Tag {
			case "!!bool", "!!int", "!!float", "!!null":
				continue
			}
			t.Set(key, val.Value)
		}
	}
}

// sameLang compares language codes ignoring case and the _/- separator.
func sameLang(a, b string) bool {
	norm := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	}
	return norm(a) == norm(b)
}
