package activator

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/dlclark/regexp2"
)

// Dialect selects the regular expression engine used to compile patterns.
type Dialect string

const (
	// DialectRE2 uses Go's regexp package: linear time, groups numbered left to right.
	DialectRE2 Dialect = "re2"
	// DialectBacktracking uses regexp2: lookaround and backreferences, optional match timeout.
	// Named groups are numbered after unnamed groups.
	DialectBacktracking Dialect = "backtracking"
)

// ParseDialect validates a configuration string. The empty string selects DialectRE2.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case "", DialectRE2:
		return DialectRE2, nil
	case DialectBacktracking:
		return DialectBacktracking, nil
	}
	return "", fmt.Errorf("unknown pattern dialect %q", s)
}

// captures is the raw result of a successful full-string match.
type captures struct {
	groups []string
	named  map[string]string
}

// matcher is a compiled, anchored, case-insensitive pattern.
type matcher interface {
	match(input string) (captures, bool, error)
}

// compilePattern validates the pattern exactly as written before anchoring it,
// so an unbalanced group cannot close the anchoring wrapper.
func compilePattern(pattern string, dialect Dialect, timeout time.Duration) (matcher, error) {
	switch dialect {
	case DialectBacktracking:
		if _, err := regexp2.Compile(pattern, regexp2.IgnoreCase); err != nil {
			return nil, err
		}
		re, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, regexp2.IgnoreCase)
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			re.MatchTimeout = timeout
		}
		return &backtrackingMatcher{re: re}, nil
	case DialectRE2, "":
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, err
		}
		re, err := regexp.Compile(`(?i)^(?:` + pattern + `)$`)
		if err != nil {
			return nil, err
		}
		return &re2Matcher{re: re}, nil
	}
	return nil, fmt.Errorf("unknown pattern dialect %q", dialect)
}

type re2Matcher struct {
	re *regexp.Regexp
}

func (m *re2Matcher) match(input string) (captures, bool, error) {
	groups := m.re.FindStringSubmatch(input)
	if groups == nil || groups[0] != input {
		return captures{}, false, nil
	}

	named := make(map[string]string)
	for i, name := range m.re.SubexpNames() {
		if name == "" || i >= len(groups) {
			continue
		}
		named[name] = groups[i]
	}
	return captures{groups: groups, named: named}, true, nil
}

type backtrackingMatcher struct {
	re *regexp2.Regexp
}

func (m *backtrackingMatcher) match(input string) (captures, bool, error) {
	res, err := m.re.FindStringMatch(input)
	if err != nil {
		return captures{}, false, err
	}
	if res == nil || res.Index != 0 || res.String() != input {
		return captures{}, false, nil
	}

	all := res.Groups()
	groups := make([]string, len(all))
	for i := range all {
		groups[i] = all[i].String()
	}

	named := make(map[string]string)
	for _, name := range m.re.GetGroupNames() {
		idx := m.re.GroupNumberFromName(name)
		// Unnamed groups are reported under their number.
		if name == strconv.Itoa(idx) {
			continue
		}
		if idx < 0 || idx >= len(groups) {
			continue
		}
		named[name] = groups[idx]
	}
	return captures{groups: groups, named: named}, true, nil
}
