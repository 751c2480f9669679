// Package category assigns a spending category to free-text transaction
// descriptions using an ordered rule table with first-match-wins semantics.
package category

import (
	"regexp"
	"strings"

	"github.com/finviz-dev/finviz/internal/model"
)

// Rule is one ordered classification rule. A rule matches when either its
// keyword pattern or any of its substrings is found in the lowercased
// description.
type Rule struct {
	Name       string
	Category   model.Category
	pattern    *regexp.Regexp
	substrings []string
}

// Matches reports whether the rule applies to a lowercased description.
func (r Rule) Matches(desc string) bool {
	if r.pattern != nil && r.pattern.MatchString(desc) {
		return true
	}
	for _, s := range r.substrings {
		if strings.Contains(desc, s) {
			return true
		}
	}
	return false
}

// Classifier evaluates rules in priority order.
type Classifier struct {
	rules []Rule
}

// New returns a classifier with the default rule table.
func New() *Classifier {
	return &Classifier{rules: defaultRules()}
}

// NewWithRules returns a classifier with a custom ordered rule table.
func NewWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify maps a description to exactly one category. It is total, pure and
// case-insensitive: every input gets a category, with Other as the fallback.
func (c *Classifier) Classify(description string) model.Category {
	desc := strings.ToLower(description)
	for _, r := range c.rules {
		if r.Matches(desc) {
			return r.Category
		}
	}
	return model.CategoryOther
}

// Rules returns the ordered rule table.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

var defaultClassifier = New()

// Classify maps a description to a category using the default rule table.
func Classify(description string) model.Category {
	return defaultClassifier.Classify(description)
}
