package records

import (
	"fmt"
	"regexp"
)

var (
	// defaultMatcher matches a record file with the format: orders.yaml or daily_totals.yml.
	defaultMatcher = NewRegexMatcher(regexp.MustCompile(`^([a-z0-9_-]+)\.ya?ml$`))
)

// FileMatcher decides which files in a directory are record files
// and which dataset each of them holds.
type FileMatcher interface {
	IsMatch(name string) bool
	Dataset(name string) (string, error)
}

// NewRegexMatcher creates a new RegexMatcher with the given regex.
func NewRegexMatcher(re *regexp.Regexp) *RegexMatcher {
	return &RegexMatcher{re: re}
}

// RegexMatcher matches all files in the directory that match the regex.
// The first capture group is used as the dataset name.
type RegexMatcher struct {
	re *regexp.Regexp
}

func (m *RegexMatcher) IsMatch(name string) bool {
	return m.re.MatchString(name)
}

func (m *RegexMatcher) Dataset(name string) (string, error) {
	match := m.re.FindStringSubmatch(name)
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("regex is missing a capture group")
	}

	return match[1], nil
}
