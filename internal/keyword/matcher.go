package keyword

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"videxcl-srv/internal/model"
)

// Matcher matches a fixed rule set against free text. All rules compile into
// one alternation with word boundaries and a trailing-s tolerance, so "pranks"
// matches the rule "prank" but "prankster" does not. Safe for concurrent use.
type Matcher struct {
	re        *regexp.Regexp
	canonical map[string]string // lowercase keyword -> rule keyword
}

// NewMatcher compiles the rule set. Rules are escaped literally and the
// alternation is alphabetized so equal rule sets always yield the same
// pattern.
func NewMatcher(rules []model.KeywordRule) (*Matcher, error) {
	canonical := make(map[string]string, len(rules))
	escaped := make([]string, 0, len(rules))
	for _, rule := range rules {
		kw := strings.TrimSpace(rule.Keyword)
		if kw == "" {
			continue
		}
		lower := strings.ToLower(kw)
		if _, ok := canonical[lower]; ok {
			continue
		}
		canonical[lower] = kw
		escaped = append(escaped, regexp.QuoteMeta(lower))
	}
	if len(escaped) == 0 {
		return nil, ErrNoKeywords
	}
	sort.Strings(escaped)

	re, err := regexp.Compile(fmt.Sprintf(`(?i)\b(?:%s)s?\b`, strings.Join(escaped, "|")))
	if err != nil {
		return nil, fmt.Errorf("keyword: compile pattern: %w", err)
	}

	return &Matcher{re: re, canonical: canonical}, nil
}

// Match returns the deduplicated rule keywords found in text, sorted.
func (m *Matcher) Match(text string) []string {
	if text == "" {
		return nil
	}

	found := make(map[string]bool)
	for _, hit := range m.re.FindAllString(text, -1) {
		lower := strings.ToLower(hit)
		kw, ok := m.canonical[lower]
		if !ok {
			// The tolerated plural form; map back to the rule keyword.
			kw, ok = m.canonical[strings.TrimSuffix(lower, "s")]
		}
		if ok {
			found[kw] = true
		}
	}
	if len(found) == 0 {
		return nil
	}

	keywords := make([]string, 0, len(found))
	for kw := range found {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}
