package naming

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures how tokens are joined.
type Option func(*config)

type config struct {
	separator string
}

func defaultConfig() *config {
	return &config{separator: "_"}
}

// Separator sets the string placed between tokens. Default is "_".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Collection converts a type or schema name into a collection name:
// tokenized, lowercased, joined and pluralized.
func Collection(name string, opts ...Option) (string, error) {
	snake := Snake(name, opts...)
	if snake == "" {
		return "", ErrEmptyName
	}
	return Pluralize(snake), nil
}

// Snake returns the lowercased tokens of s joined by the separator.
func Snake(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	tokens := Tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}
	return strings.Join(tokens, cfg.separator)
}

// Pluralize returns the English plural form of the last word in s.
func Pluralize(s string) string {
	if s == "" {
		return ""
	}
	return inflection.Plural(s)
}

// Tokenize splits s into word tokens, preserving their original case.
//
// Latin diacritics are folded before splitting, so "Café" yields "Cafe".
// Names that keep non-ASCII letters as separators split differently
// ("Caf"), and so map to different collection names.
func Tokenize(s string) []string {
	s = fold(s)

	var tokens []string
	for i := 0; i < len(s); {
		if n := acronymLen(s, i); n > 0 {
			tokens = append(tokens, s[i:i+n])
			i += n
			continue
		}
		if n := wordLen(s, i); n > 0 {
			tokens = append(tokens, s[i:i+n])
			i += n
			continue
		}
		if isUpper(s[i]) {
			tokens = append(tokens, s[i:i+1])
			i++
			continue
		}
		if isDigit(s[i]) {
			n := 0
			for i+n < len(s) && isDigit(s[i+n]) {
				n++
			}
			tokens = append(tokens, s[i:i+n])
			i += n
			continue
		}
		i++
	}
	return tokens
}

// acronymLen returns the length of an uppercase run of at least two letters
// starting at i that is followed by a capitalized word or a word boundary.
// The run is shortened from the right until one of those holds.
func acronymLen(s string, i int) int {
	n := 0
	for i+n < len(s) && isUpper(s[i+n]) {
		n++
	}
	for k := n; k >= 2; k-- {
		if startsCapitalizedWord(s, i+k) || atWordBoundary(s, i+k) {
			return k
		}
	}
	return 0
}

// wordLen matches an optional uppercase letter, one or more lowercase letters
// and any trailing digits.
func wordLen(s string, i int) int {
	j := i
	if isUpper(s[j]) {
		j++
	}
	k := j
	for k < len(s) && isLower(s[k]) {
		k++
	}
	if k == j {
		return 0
	}
	for k < len(s) && isDigit(s[k]) {
		k++
	}
	return k - i
}

func startsCapitalizedWord(s string, j int) bool {
	return j+1 < len(s) && isUpper(s[j]) && isLower(s[j+1])
}

// atWordBoundary reports whether position j ends a word. The byte before j
// is always a word character here.
func atWordBoundary(s string, j int) bool {
	return j >= len(s) || !isWordChar(s[j])
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isWordChar(b byte) bool {
	return isUpper(b) || isLower(b) || isDigit(b) || b == '_'
}

// fold strips combining marks so that "Café" tokenizes as "Cafe".
// A fresh transformer is built per call since transformers carry state.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
