package stringsfile

import "regexp"

// rule is one find-and-replace step of the value normalization.
type rule struct {
	re   *regexp.Regexp
	repl string
	// expand enables $1-style group references in repl. Otherwise repl is
	// inserted literally.
	expand bool
}

func (r rule) apply(s string) string {
	if r.expand {
		return r.re.ReplaceAllString(s, r.repl)
	}
	return r.re.ReplaceAllLiteralString(s, r.repl)
}

// rules are applied strictly in this order, each on the output of the
// previous one.
var rules = []rule{
	// %s → %@
	{re: regexp.MustCompile(`(?i)%s`), repl: `%@`},
	// %1$s → %1$@
	{re: regexp.MustCompile(`(?i)%([0-9]+\$)s`), repl: `%${1}@`, expand: true},
	// %newline% placeholder → escaped line feed
	{re: regexp.MustCompile(`(?i)%newline%`), repl: `\n`},
	{re: regexp.MustCompile(`"`), repl: `\"`},
	// Raw line feeds → escaped line feed. An already escaped \n (including
	// the output of the %newline% rule) is matched and written back
	// unchanged. Case-sensitive: \N in paths like C:\New is not a newline.
	{re: regexp.MustCompile(`\n|\\n`), repl: `\n`},
}

// Normalize converts a translation value into a form that can be embedded
// between double quotes in a .strings file.
func Normalize(s string) string {
	for _, r := range rules {
		s = r.apply(s)
	}
	return s
}
