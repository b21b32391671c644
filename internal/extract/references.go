package extract

import (
	"regexp"
	"sort"
	"strings"
)

// bookNames is the recognized citation vocabulary: canonical biblical book
// names, common abbreviations, Hebrew-transliterated forms, and the rabbinic
// works the anthologies cite. Matching is case-insensitive; the canonical
// spelling below is what appears in output.
var bookNames = []string{
	// Torah
	"Genesis", "Gen", "Bereshit",
	"Exodus", "Exod", "Shemot",
	"Leviticus", "Lev", "Vayikra",
	"Numbers", "Num", "Bamidbar",
	"Deuteronomy", "Deut", "Devarim",
	// Prophets
	"Joshua", "Josh", "Judges", "Judg", "Samuel", "Sam", "Kings",
	"Isaiah", "Isa", "Jeremiah", "Jer", "Ezekiel", "Ezek",
	"Hosea", "Hos", "Joel", "Amos", "Obadiah", "Jonah", "Micah",
	"Nahum", "Habakkuk", "Hab", "Zephaniah", "Zeph", "Haggai", "Hag",
	"Zechariah", "Zech", "Malachi", "Mal",
	// Writings
	"Psalms", "Psalm", "Ps", "Tehillim",
	"Proverbs", "Prov", "Mishlei", "Job",
	"Song of Songs", "Shir ha-Shirim", "Ruth",
	"Lamentations", "Lam", "Ecclesiastes", "Eccles", "Kohelet",
	"Esther", "Daniel", "Dan", "Ezra", "Nehemiah", "Neh",
	"Chronicles", "Chron",
	// Rabbinic works
	"Pirke de-Rabbi Eliezer", "Midrash Tehillim", "Midrash Rabbah",
	"Genesis Rabbah", "Exodus Rabbah", "Leviticus Rabbah",
	"Numbers Rabbah", "Deuteronomy Rabbah", "Sefer Yetzirah",
	"Zohar", "Talmud", "Mishnah", "Midrash", "Tosefta",
}

// ReferenceExtractor pattern-matches biblical and rabbinic citations
type ReferenceExtractor struct {
	re        *regexp.Regexp
	canonical map[string]string
}

// NewReferenceExtractor compiles the citation pattern. Book names are
// alternated longest-first so "Genesis Rabbah" wins over "Genesis" and
// "Genesis" over "Gen".
func NewReferenceExtractor() *ReferenceExtractor {
	names := make([]string, len(bookNames))
	copy(names, bookNames)
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	canonical := make(map[string]string, len(names))
	quoted := make([]string, len(names))
	for i, n := range names {
		canonical[strings.ToLower(n)] = n
		quoted[i] = regexp.QuoteMeta(n)
	}

	// Book, optional abbreviation period, then optional chapter(:verse(-end)?)?
	pattern := `(?i)\b(` + strings.Join(quoted, "|") + `)\b\.?(?:\s+(\d+)(?::(\d+)(?:-(\d+))?)?)?`

	return &ReferenceExtractor{
		re:        regexp.MustCompile(pattern),
		canonical: canonical,
	}
}

// Extract scans text and returns canonical citation strings, deduplicated
// in first-seen order. A bare book name with no chapter still counts.
func (e *ReferenceExtractor) Extract(text string) []string {
	matches := e.re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var refs []string
	for _, m := range matches {
		book := e.canonical[strings.ToLower(m[1])]
		if book == "" {
			book = m[1]
		}

		citation := book
		if m[2] != "" {
			citation += " " + m[2]
			if m[3] != "" {
				citation += ":" + m[3]
				if m[4] != "" {
					citation += "-" + m[4]
				}
			}
		}

		if !seen[citation] {
			seen[citation] = true
			refs = append(refs, citation)
		}
	}
	return refs
}
