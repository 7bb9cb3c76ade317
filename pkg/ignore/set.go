package ignore

import (
	"bufio"
	"os"
	"strings"

	"github.com/f0rgenet/flowpack/pkg/logging"
)

// Set is an ordered collection of compiled ignore rules. Later rules override
// earlier ones for the same path: a matching plain rule excludes, a matching
// negation re-includes, last match wins. A Set belongs to a single build
// invocation and is never cached across runs.
type Set struct {
	rules []*Rule
}

// NewSet creates a Set seeded with the built-in default exclusions.
func NewSet() *Set {
	s := &Set{}
	for _, raw := range defaultRules {
		s.Add(raw)
	}
	return s
}

// NewEmptySet creates a Set with no rules at all. Used by tests and callers
// that want full control over the rule list.
func NewEmptySet() *Set {
	return &Set{}
}

// Add compiles one raw rule and appends it. A rule that fails to compile is
// skipped with a warning; pattern errors never abort a build.
func (s *Set) Add(raw string) {
	rule, err := CompileRule(raw)
	if err != nil {
		logger := logging.GetLogger("ignore")
		logger.Warn().Err(err).Str("rule", raw).Msg("Skipping unparseable ignore rule")
		return
	}
	s.rules = append(s.rules, rule)
}

// LoadFile appends user rules from a line-oriented ignore file. Blank lines
// and lines whose first non-space character is '#' are skipped. A missing
// file is not an error; a read failure degrades to the rules loaded so far
// with a warning. Either way the build continues.
func (s *Set) LoadFile(path string) {
	logger := logging.GetLogger("ignore")

	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("Cannot read ignore file, using default exclusions only")
		}
		logger.Info().Int("patterns", len(s.rules)).Msg("Loaded ignore patterns")
		return
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.Add(line)
	}
	if err := scanner.Err(); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Error while reading ignore file, continuing with rules loaded so far")
	}

	logger.Info().Int("patterns", len(s.rules)).Msg("Loaded ignore patterns")
}

// Len returns the number of compiled rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// Excluded reports whether the normalized relative path is excluded. The
// decision is a fold over the ordered rule list: each matching plain rule
// sets the state to excluded, each matching negation clears it, and the last
// matching rule wins.
func (s *Set) Excluded(relPath string) bool {
	excluded := false
	for _, rule := range s.rules {
		if !rule.Matches(relPath) {
			continue
		}
		excluded = !rule.Negation
	}
	return excluded
}
