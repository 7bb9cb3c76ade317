// Package ignore implements gitignore-style exclusion rules for plugin
// packaging. Rules are compiled once per build into an ordered Set; matching
// operates on forward-slash relative paths only, so OS path separators never
// leak into the pattern logic.
package ignore

import (
	"regexp"
	"strings"

	"github.com/f0rgenet/flowpack/pkg/errors"
)

// Rule is one compiled ignore rule. Immutable once constructed.
type Rule struct {
	// Raw is the rule's source text as written.
	Raw string

	// Negation is true when the rule re-includes matching paths ("!pattern").
	Negation bool

	// DirOnly is true when the rule was written with a trailing slash.
	// Informational only: a rule naming a path matches the path and all of
	// its descendants either way.
	DirOnly bool

	matcher *regexp.Regexp
}

// CompileRule turns one raw rule string into a matchable Rule.
//
// The pattern language follows gitignore conventions: "?" matches one
// character other than "/", "**" matches anything including "/", "*" matches
// anything except "/", a leading "/" anchors the pattern to the tree root,
// and an unanchored pattern matches at any depth. The compiled matcher also
// accepts all descendants of a matched path, so a rule naming a directory
// excludes everything beneath it.
func CompileRule(raw string) (*Rule, error) {
	rule := &Rule{
		Raw:      raw,
		Negation: strings.HasPrefix(raw, "!"),
		DirOnly:  strings.HasSuffix(raw, "/"),
	}

	pattern := raw
	if rule.Negation {
		pattern = pattern[1:]
	}
	pattern = strings.TrimRight(pattern, "/")

	if pattern == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "ignore rule %q has no pattern", raw)
	}

	expr := regexp.QuoteMeta(pattern)
	expr = strings.ReplaceAll(expr, `\?`, `[^/]`)
	// A slash-delimited "**" absorbs one of its surrounding separators so
	// that "a/**/b" also matches "a/b".
	expr = strings.ReplaceAll(expr, `/\*\*/`, `/(.*/)?`)
	if rest, ok := strings.CutPrefix(expr, `\*\*/`); ok {
		expr = `(.*/)?` + rest
	}
	expr = strings.ReplaceAll(expr, `\*\*`, `.*`)
	expr = strings.ReplaceAll(expr, `\*`, `[^/]*`)

	// QuoteMeta leaves "/" untouched, so root anchoring can still be decided
	// on the escaped form.
	if strings.HasPrefix(expr, "/") {
		expr = expr[1:]
	} else {
		expr = `(.*/)?` + expr
	}

	matcher, err := regexp.Compile(`^` + expr + `(/.*)?$`)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "ignore rule %q does not compile", raw)
	}

	rule.matcher = matcher
	return rule, nil
}

// Matches reports whether the rule matches the given relative path. The path
// must already be normalized (see NormalizePath).
func (r *Rule) Matches(relPath string) bool {
	return r.matcher.MatchString(relPath)
}

// NormalizePath converts an OS-specific path into the matching form: forward
// slashes, no leading slash.
func NormalizePath(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return strings.TrimPrefix(path, "/")
}
