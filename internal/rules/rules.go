package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule maps a description pattern to a category. Patterns are
// case-insensitive regular expressions matched anywhere in the text.
type Rule struct {
	Pattern  string `yaml:"pattern"`
	Category string `yaml:"category"`
}

type compiledRule struct {
	re       *regexp.Regexp
	category string
}

// RuleSet is an ordered pattern table. Evaluation walks the rules in
// declaration order and the first match wins, so specific rules must be
// declared before broad catch-alls. Never re-sort or deduplicate.
type RuleSet struct {
	rules    []compiledRule
	fallback string
}

// NewRuleSet compiles rules into an ordered set with a fallback category
// returned when nothing matches.
func NewRuleSet(rules []Rule, fallback string) (*RuleSet, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", r.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, category: r.Category})
	}
	return &RuleSet{rules: compiled, fallback: fallback}, nil
}

// Categorize returns the category of the first matching rule, or the
// fallback.
func (s *RuleSet) Categorize(description string) string {
	for _, r := range s.rules {
		if r.re.MatchString(description) {
			return r.category
		}
	}
	return s.fallback
}

// Categorizer routes descriptions through the generic rule table, or a
// source-specific table when the source has one.
type Categorizer struct {
	generic  *RuleSet
	bySource map[string]*RuleSet
}

// NewCategorizer creates a categorizer with only the generic table.
func NewCategorizer(generic *RuleSet) *Categorizer {
	return &Categorizer{generic: generic, bySource: make(map[string]*RuleSet)}
}

// AddSource registers a dedicated rule table for one source key.
func (c *Categorizer) AddSource(sourceKey string, set *RuleSet) {
	c.bySource[strings.ToLower(sourceKey)] = set
}

// Categorize assigns a category to a description. Sources with a dedicated
// table use it exclusively, including its own fallback sentinel.
func (c *Categorizer) Categorize(description, sourceKey string) string {
	if set, ok := c.bySource[strings.ToLower(sourceKey)]; ok {
		return set.Categorize(description)
	}
	return c.generic.Categorize(description)
}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile("(?i)" + p)
	}
	return res
}

func matchAny(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
