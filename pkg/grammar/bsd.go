package grammar

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/globber/pkg/errors"
	"github.com/arthur-debert/globber/pkg/registry"
)

const bsdName = "bsd"

// HomeFunc resolves the current user's home directory for ~ expansion
type HomeFunc func() (string, error)

// BSD implements BSD shell-style wildcards. It extends the simple grammar
// with [abc] and [!abc] character classes, {a,b,c} alternations split on
// top-level commas, and ~ home-directory expansion. A backslash escapes
// any of the grammar's own special characters.
//
// Expansion for a named user (~user) is not supported and fails with an
// unsupported-feature error rather than passing through silently.
type BSD struct {
	home HomeFunc
}

// NewBSD creates the bsd grammar with the default home-directory lookup
func NewBSD() *BSD {
	return &BSD{home: defaultHome}
}

// NewBSDWithHome creates the bsd grammar with a custom home-directory
// lookup, used by tests and embedders that control the environment
func NewBSDWithHome(home HomeFunc) *BSD {
	return &BSD{home: home}
}

// Name returns "bsd"
func (g *BSD) Name() string {
	return bsdName
}

// MatchAll returns the pattern that matches everything
func (g *BSD) MatchAll() string {
	return "*"
}

// Parse converts a pattern into a term sequence
func (g *BSD) Parse(pattern string) ([]Term, error) {
	return g.parse(pattern, true)
}

// ExpandHome rewrites a leading ~ into the user's home directory. The
// engine calls this before splitting a pattern into segments, since the
// expanded path usually spans several of them.
func (g *BSD) ExpandHome(pattern string) (string, error) {
	if !strings.HasPrefix(pattern, "~") {
		return pattern, nil
	}
	if len(pattern) > 1 && pattern[1] != '/' {
		user := pattern[1:]
		if i := strings.IndexByte(user, '/'); i >= 0 {
			user = user[:i]
		}
		return "", errors.Newf(errors.ErrUnsupportedFeature,
			"home expansion for named user ~%s is not supported", user).
			WithDetail("pattern", pattern)
	}
	home, err := g.home()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrUnsupportedFeature, "cannot resolve home directory")
	}
	return home + pattern[1:], nil
}

// parse does the actual scan. Home expansion happens only on the outer
// pattern, never inside alternation choices.
func (g *BSD) parse(pattern string, expandTilde bool) ([]Term, error) {
	if expandTilde && strings.HasPrefix(pattern, "~") {
		expanded, err := g.ExpandHome(pattern)
		if err != nil {
			return nil, err
		}
		pattern = expanded
	}

	var terms []Term
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			terms = append(terms, Literal{Text: lit.String()})
			lit.Reset()
		}
	}

	// All special characters are ASCII, so scanning bytes keeps positions
	// as byte offsets and passes multi-byte runes through untouched.
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '\\':
			if i+1 < len(pattern) && isBSDSpecial(pattern[i+1]) {
				lit.WriteByte(pattern[i+1])
				i++
			} else {
				lit.WriteByte(c)
			}
		case '*':
			flush()
			terms = append(terms, Wildcard{Kind: AnyRun})
		case '?':
			flush()
			terms = append(terms, Wildcard{Kind: AnyChar})
		case '[':
			cc, end, err := parseCharClass(pattern, i)
			if err != nil {
				return nil, err
			}
			flush()
			terms = append(terms, cc)
			i = end
		case ']':
			return nil, syntaxErr(pattern, i, "unmatched ']'")
		case '{':
			raw, end, err := scanAlternation(pattern, i)
			if err != nil {
				return nil, err
			}
			choices := make([][]Term, 0, len(raw))
			for _, sub := range raw {
				subTerms, err := g.parse(sub, false)
				if err != nil {
					return nil, err
				}
				choices = append(choices, subTerms)
			}
			flush()
			terms = append(terms, Alternation{Choices: choices})
			i = end
		case '}':
			return nil, syntaxErr(pattern, i, "unmatched '}'")
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	return terms, nil
}

// parseCharClass scans a [...] class starting at the opening bracket and
// returns the class term and the index of the closing bracket
func parseCharClass(pattern string, start int) (CharClass, int, error) {
	j := start + 1
	negated := false
	if j < len(pattern) && pattern[j] == '!' {
		negated = true
		j++
	}

	var members strings.Builder
	for j < len(pattern) {
		switch c := pattern[j]; c {
		case ']':
			if members.Len() == 0 {
				return CharClass{}, 0, syntaxErr(pattern, start, "empty character class")
			}
			return CharClass{Members: members.String(), Negated: negated}, j, nil
		case '\\':
			if j+1 < len(pattern) {
				members.WriteByte(pattern[j+1])
				j += 2
				continue
			}
			members.WriteByte(c)
			j++
		default:
			members.WriteByte(c)
			j++
		}
	}
	return CharClass{}, 0, syntaxErr(pattern, start, "unclosed character class")
}

// scanAlternation scans a {...} group starting at the opening brace and
// returns the raw choice strings, split on top-level commas only, plus the
// index of the closing brace
func scanAlternation(pattern string, start int) ([]string, int, error) {
	depth := 1
	from := start + 1
	var raw []string

	for j := start + 1; j < len(pattern); j++ {
		switch pattern[j] {
		case '\\':
			if j+1 < len(pattern) {
				j++
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				raw = append(raw, pattern[from:j])
				return raw, j, nil
			}
		case ',':
			if depth == 1 {
				raw = append(raw, pattern[from:j])
				from = j + 1
			}
		}
	}
	return nil, 0, syntaxErr(pattern, start, "unclosed alternation")
}

func isBSDSpecial(c byte) bool {
	switch c {
	case '*', '?', '[', ']', '{', '}', '~', '\\':
		return true
	}
	return false
}

func defaultHome() (string, error) {
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	return os.UserHomeDir()
}

func init() {
	registry.MustRegister(grammars, bsdName, Grammar(NewBSD()))
}
