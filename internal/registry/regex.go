package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// neverMatch is an empty character class: a valid pattern that cannot match
// any input. Used when an indicator has no synonyms at all.
const neverMatch = `[^\s\S]`

// placeholders maps the fixed regex-template placeholders to named-capture
// numeric patterns. Window-like values capture small integers; stdev and
// threshold allow decimals, threshold additionally a leading sign.
var placeholders = [...][2]string{
	{"{WINDOW}", `(?P<window>\d{1,3})`},
	{"{FAST}", `(?P<fast>\d{1,3})`},
	{"{SLOW}", `(?P<slow>\d{1,3})`},
	{"{SIGNAL}", `(?P<signal>\d{1,3})`},
	{"{STDEV}", `(?P<stdev>\d{1,2}(?:\.\d+)?)`},
	{"{THRESHOLD}", `(?P<thresh>-?\d{1,3}(?:\.\d+)?)`},
}

// RegexPackage bundles the compiled detectors and keyword metadata an
// external text-extraction consumer needs to spot one indicator in free
// text. The engine never executes these patterns itself.
type RegexPackage struct {
	Synonyms          *regexp.Regexp
	Templates         []*regexp.Regexp
	Keywords          []string
	NegativeKeywords  []string
	DefaultThresholds map[string]float64
}

// RegexPackage compiles the detection package for an indicator in the given
// language. The synonym detector alternates every known alias, longest
// first, case-insensitively; an indicator with no synonyms gets a detector
// that never matches rather than an error.
func (r *Registry) RegexPackage(nameOrAlias string, lang string) (RegexPackage, error) {
	def, err := r.Resolve(nameOrAlias)
	if err != nil {
		return RegexPackage{}, err
	}

	seen := make(map[string]struct{})
	synonyms := make([]string, 0, 1+len(def.Synonyms))
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		synonyms = append(synonyms, s)
	}

	add(def.Name)
	for _, s := range def.Synonyms {
		add(s)
	}
	for _, s := range def.NLP.SynonymsByLang[lang] {
		add(s)
	}
	for _, label := range def.SourceLabels {
		add(label)
	}

	// longer, more specific aliases take priority in the alternation
	sort.Slice(synonyms, func(i, j int) bool {
		if len(synonyms[i]) != len(synonyms[j]) {
			return len(synonyms[i]) > len(synonyms[j])
		}

		return synonyms[i] < synonyms[j]
	})

	synonymPattern := neverMatch
	if len(synonyms) > 0 {
		escaped := make([]string, len(synonyms))
		for i, s := range synonyms {
			escaped[i] = regexp.QuoteMeta(s)
		}
		synonymPattern = `(?i)\b(` + strings.Join(escaped, "|") + `)\b`
	}

	synonymDetector, err := regexp.Compile(synonymPattern)
	if err != nil {
		return RegexPackage{}, fmt.Errorf("compiling synonym detector for %s: %w", def.Name, err)
	}

	templates := make([]*regexp.Regexp, 0, len(def.NLP.RegexTemplates))
	for _, tmpl := range def.NLP.RegexTemplates {
		pattern := tmpl
		for _, repl := range placeholders {
			pattern = strings.ReplaceAll(pattern, repl[0], repl[1])
		}

		compiled, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return RegexPackage{}, fmt.Errorf("compiling template %q for %s: %w", tmpl, def.Name, err)
		}
		templates = append(templates, compiled)
	}

	thresholds := make(map[string]float64, len(def.DefaultThresholds))
	for label, v := range def.DefaultThresholds {
		thresholds[label] = v
	}

	return RegexPackage{
		Synonyms:          synonymDetector,
		Templates:         templates,
		Keywords:          append([]string(nil), def.NLP.Keywords...),
		NegativeKeywords:  append([]string(nil), def.NLP.NegativeKeywords...),
		DefaultThresholds: thresholds,
	}, nil
}
