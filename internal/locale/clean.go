package locale

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	// Models like to space out hyphenated compounds ("gluten - free").
	spacedDashRE = regexp.MustCompile(`\s+-\s+`)
	nonSlugRE    = regexp.MustCompile(`[^a-z0-9]+`)

	foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// FixTypos cleans each locale value: repeated whitespace collapses to one
// space, em/en dashes and spaced-out hyphens become a plain hyphen, and the
// result is trimmed.
func FixTypos(l Label) Label {
	out := Complete(l)
	for code, v := range out {
		v = strings.ReplaceAll(v, "—", "-")
		v = strings.ReplaceAll(v, "–", "-")
		v = spacedDashRE.ReplaceAllString(v, "-")
		v = whitespaceRE.ReplaceAllString(v, " ")
		out[code] = strings.TrimSpace(v)
	}
	return out
}

// terminators are the sentence endings recognized as already-punctuated.
var terminators = []string{".", "!", "?", "…", "。", "！", "？", "।", "؟"}

// terminalGlyph is the terminator appended per locale. Locales not listed use
// a plain full stop.
var terminalGlyph = map[Code]string{
	Chinese: "。", // 。
	Hindi:   "।", // ।
}

// Punctuate appends the locale-appropriate sentence terminator to every
// non-empty value that does not already end in one.
func Punctuate(l Label) Label {
	out := Complete(l)
	for code, v := range out {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		terminated := false
		for _, t := range terminators {
			if strings.HasSuffix(v, t) {
				terminated = true
				break
			}
		}
		if !terminated {
			glyph, ok := terminalGlyph[code]
			if !ok {
				glyph = "."
			}
			v += glyph
		}
		out[code] = v
	}
	return out
}

// Fold lowercases s, strips diacritics and collapses whitespace. It is the
// normalized form used for duplicate detection and canonical keys, so that
// "Crème Fraîche" and "creme  fraiche" compare equal.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// Turkish dotless/dotted i pairs do not decompose under NFD.
	s = strings.NewReplacer("ı", "i", "İ", "i").Replace(s)
	if folded, _, err := transform.String(foldTransformer, s); err == nil {
		s = folded
	}
	return whitespaceRE.ReplaceAllString(s, " ")
}

// Slugify turns s into an ascii lowercase hyphenated slug. Characters with no
// ascii fold are dropped, so a fully non-latin title can produce "".
func Slugify(s string) string {
	s = Fold(s)
	s = nonSlugRE.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
