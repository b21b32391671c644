// Package textutil holds the pure text transforms shared by the segmenters
// and the record finalizer: OCR repair, whitespace cleanup, title-casing,
// slugs, and the typography predicates the structural heuristics rely on.
package textutil

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Substitution is one literal OCR repair, applied in list order
type Substitution struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// defaultOCRFixes repairs the known misreads in the scanned anthologies.
// The list is short and the entries do not overlap, but order is preserved
// in case a future entry depends on an earlier repair.
var defaultOCRFixes = []Substitution{
	{From: "G0D", To: "GOD"},
	{From: "GQD", To: "GOD"},
	{From: "GL0RY", To: "GLORY"},
	{From: "GIory", To: "Glory"},
	{From: "Tlie", To: "The"},
	{From: "tlie", To: "the"},
	{From: "ofthe", To: "of the"},
	{From: "inthe", To: "in the"},
	{From: "andthe", To: "and the"},
}

// FixOCRErrors applies the built-in repair list to a single line
func FixOCRErrors(line string) string {
	return FixOCRErrorsWith(line, defaultOCRFixes)
}

// FixOCRErrorsWith applies an explicit repair list, in order
func FixOCRErrorsWith(line string, subs []Substitution) string {
	for _, s := range subs {
		line = strings.ReplaceAll(line, s.From, s.To)
	}
	return line
}

// LoadOCRFixes reads a YAML repair list that replaces the built-in one
func LoadOCRFixes(path string) ([]Substitution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ocr fixes: %w", err)
	}
	var subs []Substitution
	if err := yaml.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("parse ocr fixes: %w", err)
	}
	return subs, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText normalizes line endings, collapses whitespace runs to single
// spaces, removes the "- " hyphenation-join artifact left by line-wrapped
// OCR, and trims. Total: never fails, empty in gives empty out.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "- ", "")
	return strings.TrimSpace(text)
}

// TitleCase capitalizes the first letter of every whitespace-separated word
// and lowercases the rest. Deliberately naive: no small-word list, no
// acronym handling, hyphenated compounds keep their second half lowercase.
// The corpus expects exactly this behavior ("MYTHS OF GOD" -> "Myths Of God").
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases, collapses non-alphanumeric runs to single hyphens,
// strips leading/trailing hyphens and truncates to 80 characters.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 80 {
		s = strings.TrimRight(s[:80], "-")
	}
	return s
}

var romanNumeral = regexp.MustCompile(`^(?i)M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// IsRomanNumeral reports whether s is a canonical Roman numeral in either
// case. Used to drop bare numeral lines (page folios, list markers).
func IsRomanNumeral(s string) bool {
	if s == "" {
		return false
	}
	return romanNumeral.MatchString(s)
}

// IsNumericOnly reports whether s consists solely of ASCII digits
func IsNumericOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsAllUpper reports whether s contains at least one letter and no
// lowercase letters. Digits and punctuation are ignored, which matches how
// the anthologies set their headings ("1. THE FIRST LIGHT").
func IsAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
