package compiler

import (
	"testing"

	"github.com/arthur-debert/globber/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, pattern string) []grammar.Term {
	t.Helper()
	terms, err := grammar.NewBSDWithHome(func() (string, error) {
		return "/home/tester", nil
	}).Parse(pattern)
	require.NoError(t, err)
	return terms
}

func TestSimplifyMergesLiteralRuns(t *testing.T) {
	terms := []grammar.Term{
		grammar.Literal{Text: "foo"},
		grammar.Literal{Text: "."},
		grammar.Literal{Text: "md"},
	}
	assert.Equal(t, []grammar.Term{grammar.Literal{Text: "foo.md"}}, Simplify(terms))
}

func TestSimplifyWildcardBreaksRun(t *testing.T) {
	terms := []grammar.Term{
		grammar.Literal{Text: "a"},
		grammar.Wildcard{Kind: grammar.AnyRun},
		grammar.Literal{Text: "b"},
		grammar.Literal{Text: "c"},
	}
	assert.Equal(t, []grammar.Term{
		grammar.Literal{Text: "a"},
		grammar.Wildcard{Kind: grammar.AnyRun},
		grammar.Literal{Text: "bc"},
	}, Simplify(terms))
}

func TestSimplifyRecursesIntoChoices(t *testing.T) {
	terms := []grammar.Term{
		grammar.Alternation{Choices: [][]grammar.Term{
			{grammar.Literal{Text: "a"}, grammar.Literal{Text: "b"}},
		}},
	}
	assert.Equal(t, []grammar.Term{
		grammar.Alternation{Choices: [][]grammar.Term{
			{grammar.Literal{Text: "ab"}},
		}},
	}, Simplify(terms))
}

func TestSimplifyIsBehaviorPreserving(t *testing.T) {
	// matching results must be identical with and without the simplify pass
	raw := []grammar.Term{
		grammar.Literal{Text: "re"},
		grammar.Literal{Text: "port"},
		grammar.Wildcard{Kind: grammar.AnyRun},
		grammar.Literal{Text: "."},
		grammar.Literal{Text: "csv"},
	}

	rawSources, err := Expand(raw)
	require.NoError(t, err)
	simplifiedSources, err := Expand(Simplify(raw))
	require.NoError(t, err)

	rawExprs, err := Compile(raw)
	require.NoError(t, err)
	simplifiedExprs, err := Compile(Simplify(raw))
	require.NoError(t, err)

	require.Len(t, rawSources, 1)
	require.Len(t, simplifiedSources, 1)
	for _, candidate := range []string{
		"report.csv", "report-2024.csv", "report", "xreport.csv", "report.csv.bak",
	} {
		assert.Equal(t,
			rawExprs[0].Match(candidate),
			simplifiedExprs[0].Match(candidate),
			"candidate %q", candidate)
	}
}

func TestExpandWithoutAlternation(t *testing.T) {
	sources, err := Expand(mustParse(t, "*.md"))
	require.NoError(t, err)
	assert.Equal(t, []string{`.*\.md`}, sources)
}

func TestExpandAlternationOrder(t *testing.T) {
	sources, err := Expand(mustParse(t, "{bc,ab}*"))
	require.NoError(t, err)
	assert.Equal(t, []string{"bc.*", "ab.*"}, sources)
}

func TestExpandDepthFirstOrder(t *testing.T) {
	sources, err := Expand(mustParse(t, "{a,b}{1,2}"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "b1", "b2"}, sources)
}

func TestExpandNestedAlternation(t *testing.T) {
	sources, err := Expand(mustParse(t, "{x{1,2},y}"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2", "y"}, sources)
}

func TestCompileAnchorsExpressions(t *testing.T) {
	exprs, err := Compile(mustParse(t, "*.md"))
	require.NoError(t, err)
	require.Len(t, exprs, 1)

	assert.True(t, exprs[0].Match("notes.md"))
	assert.True(t, exprs[0].Match(".md"))
	assert.False(t, exprs[0].Match("notes.md.bak"), "must match the whole candidate")
	assert.False(t, exprs[0].Match("xnotes.mdx"))
}

func TestCompileRanks(t *testing.T) {
	exprs, err := Compile(mustParse(t, "{foo,bar}.md"))
	require.NoError(t, err)
	require.Len(t, exprs, 2)

	assert.Equal(t, 0, exprs[0].Rank)
	assert.True(t, exprs[0].Match("foo.md"))
	assert.Equal(t, 1, exprs[1].Rank)
	assert.True(t, exprs[1].Match("bar.md"))
}

func TestCompileCharClass(t *testing.T) {
	exprs, err := Compile(mustParse(t, "[!abc]x"))
	require.NoError(t, err)
	require.Len(t, exprs, 1)

	assert.True(t, exprs[0].Match("dx"))
	assert.False(t, exprs[0].Match("ax"))
	assert.False(t, exprs[0].Match("bx"))
	assert.False(t, exprs[0].Match("cx"))
}

func TestCompileClassEscapesRegexSpecials(t *testing.T) {
	exprs, err := Compile([]grammar.Term{
		grammar.CharClass{Members: `a-^]\`},
	})
	require.NoError(t, err)
	require.Len(t, exprs, 1)

	for _, c := range []string{"a", "-", "^", "]", `\`} {
		assert.True(t, exprs[0].Match(c), "member %q", c)
	}
	assert.False(t, exprs[0].Match("b"))
}

func TestCompileLiteralQuoting(t *testing.T) {
	// regexp metacharacters in literals must not leak through
	exprs, err := Compile([]grammar.Term{grammar.Literal{Text: "a.b+c"}})
	require.NoError(t, err)

	assert.True(t, exprs[0].Match("a.b+c"))
	assert.False(t, exprs[0].Match("axb+c"))
}

func TestCompileEmptySequence(t *testing.T) {
	// the expression list is never empty; an empty sequence matches only ""
	exprs, err := Compile(nil)
	require.NoError(t, err)
	require.Len(t, exprs, 1)

	assert.True(t, exprs[0].Match(""))
	assert.False(t, exprs[0].Match("a"))
}

func TestCompileAnyCharIsExactlyOne(t *testing.T) {
	exprs, err := Compile(mustParse(t, "a?c"))
	require.NoError(t, err)

	assert.True(t, exprs[0].Match("abc"))
	assert.False(t, exprs[0].Match("ac"))
	assert.False(t, exprs[0].Match("abbc"))
}

func TestCompileWildcardsSpanNewlines(t *testing.T) {
	// candidates are arbitrary strings; newlines are legal in file names
	exprs, err := Compile(mustParse(t, "*"))
	require.NoError(t, err)
	assert.True(t, exprs[0].Match("a\nb"))

	exprs, err = Compile(mustParse(t, "a?b"))
	require.NoError(t, err)
	assert.True(t, exprs[0].Match("a\nb"))

	exprs, err = Compile(mustParse(t, "*.md"))
	require.NoError(t, err)
	assert.True(t, exprs[0].Match("weird\nname.md"))
}
