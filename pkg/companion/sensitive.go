package companion

import "strings"

// 默认敏感词表
var defaultSensitiveTerms = []string{
	"自杀",
	"我要死",
	"轻生",
	"炸",
	"恐怖分子",
	"暴力",
}

// Filter screens messages against a term list and redacts hits.
type Filter struct {
	terms []string
}

// NewFilter builds a filter over the default term list.
func NewFilter() *Filter {
	return &Filter{terms: defaultSensitiveTerms}
}

// NewFilterWithTerms builds a filter over a custom term list.
func NewFilterWithTerms(terms []string) *Filter {
	return &Filter{terms: terms}
}

// Match reports whether the text contains any sensitive term.
func (f *Filter) Match(text string) bool {
	if text == "" {
		return false
	}
	for _, term := range f.terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// Redact replaces every sensitive term with "***".
func (f *Filter) Redact(text string) string {
	if text == "" {
		return text
	}
	for _, term := range f.terms {
		text = strings.ReplaceAll(text, term, "***")
	}
	return text
}
