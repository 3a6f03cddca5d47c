package source

import (
	"github.com/leonelquinteros/gotext"
	"github.com/minios-linux/jargon/stringsfile"
)

// parsePO reads a gettext catalog. Each msgid becomes a key and its
// (singular) msgstr the value; untranslated entries fall back to the msgid,
// like gettext does at runtime. The header entry is skipped and keys are
// sorted.
func parsePO(data []byte, lang string) (*stringsfile.Translation, error) {
	po := gotext.NewPo()
	po.Parse(data)

	flat := make(map[string]string)
	for id, tr := range po.GetDomain().GetTranslations() {
		if id == "" {
			continue
		}
		flat[id] = tr.Get()
	}
	return stringsfile.FromMap(lang, flat), nil
}
