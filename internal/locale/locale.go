package locale

import (
	"encoding/json"
	"strings"
)

// Code identifies one of the supported locales.
type Code string

const (
	English    Code = "en"
	Turkish    Code = "tr"
	French     Code = "fr"
	German     Code = "de"
	Italian    Code = "it"
	Portuguese Code = "pt"
	Arabic     Code = "ar"
	Russian    Code = "ru"
	Chinese    Code = "zh"
	Hindi      Code = "hi"
)

// Supported lists every locale a Label must cover after normalization.
var Supported = []Code{English, Turkish, French, German, Italian, Portuguese, Arabic, Russian, Chinese, Hindi}

// PreferenceOrder is the fixed order used when a single value has to be
// picked out of a Label (canonical slugs, translation sources). It is
// independent of the request locale so derived identity is reproducible.
var PreferenceOrder = []Code{English, Turkish, French, German, Italian, Portuguese, Arabic, Russian, Chinese, Hindi}

// Default is the locale a plain string is assigned to when no locale is given.
const Default = English

// IsSupported reports whether code is one of the supported locales.
func IsSupported(code Code) bool {
	for _, c := range Supported {
		if c == code {
			return true
		}
	}
	return false
}

// Label maps every supported locale to a text value. Empty strings are
// allowed; missing keys are not, once a Label has been through Normalize.
type Label map[Code]string

// Text is a caller-supplied value that is either a plain string or a partial
// per-locale map. It exists only at the input boundary; it is resolved into a
// complete Label exactly once, via Normalize, and internal code never sees it
// again.
type Text struct {
	plain     string
	localized Label
	isMap     bool
}

// Plain wraps a plain string value.
func Plain(s string) Text {
	return Text{plain: s}
}

// Localized wraps a (possibly partial) per-locale map.
func Localized(l Label) Text {
	return Text{localized: l, isMap: true}
}

// IsZero reports whether the value carries no text at all.
func (t Text) IsZero() bool {
	if t.isMap {
		for _, v := range t.localized {
			if strings.TrimSpace(v) != "" {
				return false
			}
		}
		return true
	}
	return strings.TrimSpace(t.plain) == ""
}

// UnmarshalJSON accepts either a JSON string or a JSON object keyed by locale
// codes. Generative models routinely produce both shapes for the same field.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Plain(s)
		return nil
	}
	var m map[Code]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = Localized(m)
	return nil
}

// MarshalJSON emits the resolved form: a string for plain values, an object
// for localized ones.
func (t Text) MarshalJSON() ([]byte, error) {
	if t.isMap {
		return json.Marshal(t.localized)
	}
	return json.Marshal(t.plain)
}

// Options controls Normalize.
type Options struct {
	Trim      bool
	Lowercase bool
	// Base is the locale a plain string is assigned to. Zero value means Default.
	Base Code
}

// Normalize resolves a Text into a complete Label: every supported locale is
// present, missing ones as "". A plain string lands only on the base locale.
func Normalize(t Text, opts Options) Label {
	base := opts.Base
	if base == "" || !IsSupported(base) {
		base = Default
	}

	out := make(Label, len(Supported))
	for _, code := range Supported {
		out[code] = ""
	}

	apply := func(s string) string {
		if opts.Trim {
			s = strings.TrimSpace(s)
		}
		if opts.Lowercase {
			s = strings.ToLower(s)
		}
		return s
	}

	if t.isMap {
		for code, v := range t.localized {
			if IsSupported(code) {
				out[code] = apply(v)
			}
		}
	} else {
		out[base] = apply(t.plain)
	}
	return out
}

// Complete returns a copy of l with every supported locale present. Unknown
// locale keys are dropped.
func Complete(l Label) Label {
	return Normalize(Localized(l), Options{})
}

// Merge overlays patch on base per locale. Locales missing from patch, or
// empty in it, keep the base value.
func Merge(base, patch Label) Label {
	out := Complete(base)
	for code, v := range patch {
		if IsSupported(code) && v != "" {
			out[code] = v
		}
	}
	return out
}

// FirstNonEmpty walks the preference order and returns the first non-blank
// value with its locale. ok is false when the whole label is blank.
func FirstNonEmpty(l Label) (string, Code, bool) {
	for _, code := range PreferenceOrder {
		if v := strings.TrimSpace(l[code]); v != "" {
			return v, code, true
		}
	}
	return "", "", false
}

// IsBlank reports whether every locale value is empty or whitespace.
func IsBlank(l Label) bool {
	_, _, ok := FirstNonEmpty(l)
	return !ok
}

// Clone returns an independent copy of l.
func Clone(l Label) Label {
	out := make(Label, len(l))
	for code, v := range l {
		out[code] = v
	}
	return out
}

// Equal reports whether two labels hold identical values for every supported
// locale.
func Equal(a, b Label) bool {
	ca, cb := Complete(a), Complete(b)
	for _, code := range Supported {
		if ca[code] != cb[code] {
			return false
		}
	}
	return true
}
