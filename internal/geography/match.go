package geography

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher compares metro queries against reference area names. A Matcher is
// not safe for concurrent use.
type Matcher struct {
	caser cases.Caser
}

// NewMatcher returns a Matcher that lowercases with language-neutral rules.
func NewMatcher() *Matcher {
	return &Matcher{caser: cases.Lower(language.Und)}
}

func (m *Matcher) lower(s string) string {
	return m.caser.String(s)
}

// Core returns the lowercased, trimmed part of name before its first comma.
// "New York-Newark-Jersey City, NY-NJ" → "new york-newark-jersey city".
func (m *Matcher) Core(name string) string {
	core, _, _ := strings.Cut(name, ",")
	return m.lower(strings.TrimSpace(core))
}

// Matches reports whether query selects the area named name. Either
// lowercased string must contain the other, and the core names must be equal.
// The containment check is what separates same-core areas in different
// states: "Columbus, OH" never matches "Columbus, GA-AL".
func (m *Matcher) Matches(query, name string) bool {
	q, n := m.lower(query), m.lower(name)
	if !strings.Contains(n, q) && !strings.Contains(q, n) {
		return false
	}
	return m.Core(query) == m.Core(name)
}

// Resolve returns the code of the first candidate matching query.
func (m *Matcher) Resolve(query string, candidates []Area) (string, bool) {
	for _, c := range candidates {
		if m.Matches(query, c.Name) {
			return c.Code, true
		}
	}
	return "", false
}

// CoreName is Matcher.Core with a throwaway Matcher.
func CoreName(name string) string {
	return NewMatcher().Core(name)
}

// Resolution is the outcome of resolving a metro list.
type Resolution struct {
	// Codes maps each resolved metro query to its area code.
	Codes map[string]string
	// Resolved lists resolved metros in input order.
	Resolved []string
	// Unresolved lists metros with no matching area, in input order.
	Unresolved []string
}

// Code returns the area code resolved for metro.
func (r *Resolution) Code(metro string) (string, bool) {
	code, ok := r.Codes[metro]
	return code, ok
}

// CodeSet returns the distinct resolved area codes.
func (r *Resolution) CodeSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Codes))
	for _, code := range r.Codes {
		set[code] = struct{}{}
	}
	return set
}

// CodeToMetro inverts Codes. When several metros resolve to one code the
// last of them in input order wins.
func (r *Resolution) CodeToMetro() map[string]string {
	out := make(map[string]string, len(r.Codes))
	for _, metro := range r.Resolved {
		out[r.Codes[metro]] = metro
	}
	return out
}

// ResolveMetros resolves every metro against the mapping's candidates in
// code order. Unresolved metros are logged and skipped, never an error.
func ResolveMetros(m *Mapping, metros []string) *Resolution {
	matcher := NewMatcher()
	candidates := m.Candidates()

	res := &Resolution{Codes: make(map[string]string, len(metros))}
	seen := make(map[string]struct{}, len(metros))
	for _, metro := range metros {
		if _, done := seen[metro]; done {
			continue
		}
		seen[metro] = struct{}{}
		code, ok := matcher.Resolve(metro, candidates)
		if !ok {
			zap.L().Warn("could not find area code for metro", zap.String("metro", metro))
			res.Unresolved = append(res.Unresolved, metro)
			continue
		}
		res.Codes[metro] = code
		res.Resolved = append(res.Resolved, metro)
	}

	zap.L().Info("resolved metro areas",
		zap.Int("found", len(res.Codes)),
		zap.Int("requested", len(metros)),
	)
	return res
}
