package ethiomorph

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// homophoneSeries pairs each historically merged series with the series it
// collapses into. Every order of the left series maps to the same order of
// the right one: ሐ,ኀ → ሀ; ሠ → ሰ; ፀ → ጸ; ዐ → አ.
var homophoneSeries = [][2]rune{
	{'ሐ', 'ሀ'},
	{'ኀ', 'ሀ'},
	{'ሠ', 'ሰ'},
	{'ፀ', 'ጸ'},
	{'ዐ', 'አ'},
}

// homophoneReplacer rewrites every homophone character to its canonical form.
var homophoneReplacer = newHomophoneReplacer()

func newHomophoneReplacer() *strings.Replacer {
	var pairs []string
	for _, hs := range homophoneSeries {
		for o := OrderGeez; o <= OrderSabe; o++ {
			pairs = append(pairs, Render(hs[0], o), Render(hs[1], o))
		}
	}
	return strings.NewReplacer(pairs...)
}

// Normalize maps homophonic characters to their canonical series.
// Characters outside the map pass through unchanged; the result is a
// fixed point, so Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	return homophoneReplacer.Replace(text)
}

// CleanInput prepares a user-supplied word for analysis: surrounding
// whitespace and invisible format characters are removed and the text is
// put in NFC.
func CleanInput(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, s)
}

// lexiconKey is the lookup key used for lexicon roots: normalized skeleton.
func lexiconKey(s string) string {
	return Skeleton(Normalize(s))
}
