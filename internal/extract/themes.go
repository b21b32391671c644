package extract

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is one fixed-vocabulary tag with the keywords that trigger it
type Theme struct {
	ID       string   `yaml:"id"`
	Keywords []string `yaml:"keywords"`
}

// defaultTaxonomy is the built-in 18-theme vocabulary. A theme is assigned
// as soon as any of its keywords appears in the record text; declaration
// order fixes the output order so runs are reproducible.
var defaultTaxonomy = []Theme{
	{ID: "creation", Keywords: []string{"creation", "created", "in the beginning", "formed the world", "six days"}},
	{ID: "god", Keywords: []string{"god", "holy one", "shekhinah", "divine presence", "almighty"}},
	{ID: "angels", Keywords: []string{"angel", "seraph", "cherub", "gabriel", "michael", "metatron", "raphael"}},
	{ID: "demons", Keywords: []string{"demon", "lilith", "satan", "evil spirit", "asmodeus"}},
	{ID: "paradise", Keywords: []string{"paradise", "eden", "garden of eden", "world to come", "tree of life"}},
	{ID: "hell", Keywords: []string{"gehenna", "gehinnom", "netherworld", "sheol", "pit of"}},
	{ID: "souls", Keywords: []string{"soul", "neshamah", "treasury of souls"}},
	{ID: "messiah", Keywords: []string{"messiah", "messianic", "redemption", "end of days"}},
	{ID: "torah", Keywords: []string{"torah", "commandment", "tablets", "mount sinai", "ten commandments"}},
	{ID: "temple", Keywords: []string{"temple", "sanctuary", "holy of holies", "tabernacle"}},
	{ID: "exile", Keywords: []string{"exile", "diaspora", "babylon", "captivity"}},
	{ID: "prophecy", Keywords: []string{"prophet", "prophecy", "prophesied", "vision of"}},
	{ID: "miracles", Keywords: []string{"miracle", "miraculous", "wonder", "wondrous"}},
	{ID: "death", Keywords: []string{"death", "angel of death", "grave", "burial", "died"}},
	{ID: "dreams", Keywords: []string{"dream", "dreamed", "dreamt"}},
	{ID: "mysticism", Keywords: []string{"kabbalah", "mystical", "sefirot", "merkavah", "chariot"}},
	{ID: "patriarchs", Keywords: []string{"abraham", "isaac", "jacob", "moses", "patriarch"}},
	{ID: "jerusalem", Keywords: []string{"jerusalem", "zion", "holy city", "holy land"}},
}

// ThemeTagger assigns taxonomy themes by case-insensitive substring match
type ThemeTagger struct {
	themes []Theme
}

// NewThemeTagger creates a tagger over the built-in taxonomy
func NewThemeTagger() *ThemeTagger {
	return NewThemeTaggerWith(defaultTaxonomy)
}

// NewThemeTaggerWith creates a tagger over an explicit taxonomy.
// Keywords are normalized to lowercase once, up front.
func NewThemeTaggerWith(themes []Theme) *ThemeTagger {
	normalized := make([]Theme, len(themes))
	for i, th := range themes {
		kws := make([]string, len(th.Keywords))
		for j, kw := range th.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		normalized[i] = Theme{ID: th.ID, Keywords: kws}
	}
	return &ThemeTagger{themes: normalized}
}

// Tag returns the themes whose keywords appear in text. Each theme appears
// at most once; the first matching keyword short-circuits the rest.
func (t *ThemeTagger) Tag(text string) []string {
	lower := strings.ToLower(text)

	var tags []string
	for _, th := range t.themes {
		for _, kw := range th.Keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, th.ID)
				break
			}
		}
	}
	return tags
}

// Vocabulary returns the theme identifiers in declaration order
func (t *ThemeTagger) Vocabulary() []string {
	ids := make([]string, len(t.themes))
	for i, th := range t.themes {
		ids[i] = th.ID
	}
	return ids
}

// LoadTaxonomy reads a YAML taxonomy file that replaces the built-in
// vocabulary wholesale. Format: a list of {id, keywords} entries.
func LoadTaxonomy(path string) ([]Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}
	var themes []Theme
	if err := yaml.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	return themes, nil
}
