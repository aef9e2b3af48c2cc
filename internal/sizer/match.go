package sizer

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchError reports a title pattern that is not a valid regular expression.
type MatchError struct {
	Pattern string
	Err     error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("invalid title pattern %q: %v", e.Pattern, e.Err)
}

func (e *MatchError) Unwrap() error { return e.Err }

// Matcher selects windows by title. Plain patterns match a case-insensitive
// substring; regular expressions are matched as written.
type Matcher struct {
	needle string
	re     *regexp.Regexp
}

// NewMatcher compiles a title pattern.
func NewMatcher(pattern string, regex bool) (*Matcher, error) {
	if !regex {
		return &Matcher{needle: strings.ToLower(pattern)}, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &MatchError{Pattern: pattern, Err: err}
	}
	return &Matcher{re: re}, nil
}

// Match reports whether title is selected.
func (m *Matcher) Match(title string) bool {
	if m.re != nil {
		return m.re.MatchString(title)
	}
	return strings.Contains(strings.ToLower(title), m.needle)
}
