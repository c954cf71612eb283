package glob

import (
	"testing"

	"github.com/arthur-debert/globber/pkg/errors"
	"github.com/arthur-debert/globber/pkg/grammar"
	"github.com/arthur-debert/globber/pkg/pathspec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesString(t *testing.T) {
	tests := []struct {
		pattern   string
		candidate string
		want      bool
	}{
		{"*.md", "notes.md", true},
		{"*.md", "notes.txt", false},
		{"*.md", "docs/notes.md", true}, // separators mean nothing to string matching
		{"*", "a/b/c", true},
		{"a/b", "a/b", true},
		{"a/b", "a/c", false},
		{"{a,b}c", "ac", true},
		{"{a,b}c", "bc", true},
		{"{a,b}c", "cc", false},
		{"[!abc]x", "dx", true},
		{"[!abc]x", "ax", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.candidate, func(t *testing.T) {
			e := New(tt.pattern, WithPathSpec(pathspec.Posix()))
			got, err := e.MatchesString(tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesStringNewlineCandidates(t *testing.T) {
	tests := []struct {
		pattern   string
		candidate string
		want      bool
	}{
		{"*", "a\nb", true},
		{"a?b", "a\nb", true},
		{"*.md", "weird\nname.md", true},
		{"a", "a\n", false},
	}

	for _, tt := range tests {
		got, err := New(tt.pattern).MatchesString(tt.candidate)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "pattern %q, candidate %q", tt.pattern, tt.candidate)
	}
}

func TestMatchesStringSQLGrammar(t *testing.T) {
	sql, err := grammar.Get("sql")
	require.NoError(t, err)

	e := New("report_.csv", WithGrammar(sql))
	got, err := e.MatchesString("report1.csv")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = e.MatchesString("report12.csv")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestMatchesStringSyntaxError(t *testing.T) {
	e := New("[x")
	_, err := e.MatchesString("anything")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternSyntax))
}

func TestMatchesPath(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{"single segment", "*.go", "main.go", true},
		{"two segments", "src/*.go", "src/main.go", true},
		{"segment content mismatch", "src/*.go", "lib/main.go", false},
		{"candidate has more segments", "src/*.go", "src/sub/main.go", false},
		{"candidate has fewer segments", "src/sub/*.go", "src/main.go", false},
		{"wildcard directory", "*/*.go", "src/main.go", true},
		{"absolute both", "/etc/*.conf", "/etc/hosts.conf", true},
		{"alternation segment", "{src,lib}/main.go", "lib/main.go", true},
		{"trailing separator ignored", "src/pkg", "src/pkg/", true},
		{"separators ignored by count only", "a/b/c", "a/b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.pattern, WithPathSpec(pathspec.Posix()))
			got, err := e.MatchesPath(tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesPathVolumeMismatchIsPermissive(t *testing.T) {
	// an absolute pattern against a relative candidate (or the reverse)
	// falls through to the segment comparison instead of failing fast
	e := New("/etc/*.conf", WithPathSpec(pathspec.Posix()))

	got, err := e.MatchesPath("etc/hosts.conf")
	require.NoError(t, err)
	assert.True(t, got)

	e = New("etc/*.conf", WithPathSpec(pathspec.Posix()))
	got, err = e.MatchesPath("/etc/hosts.conf")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestMatchesPathWindowsVolumes(t *testing.T) {
	e := New(`C:\src\*.go`, WithPathSpec(pathspec.Windows()))

	got, err := e.MatchesPath(`c:/src/main.go`)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = e.MatchesPath(`c:/src/sub/main.go`)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestMatchesPathIdempotent(t *testing.T) {
	e := New("src/*.go", WithPathSpec(pathspec.Posix()))

	for i := 0; i < 3; i++ {
		got, err := e.MatchesPath("src/main.go")
		require.NoError(t, err)
		assert.True(t, got, "call %d", i)
	}
}

func TestStringAndPathCompilationsAreIndependent(t *testing.T) {
	// the same engine serves both decompositions of the same pattern
	e := New("src/*.go", WithPathSpec(pathspec.Posix()))

	gotPath, err := e.MatchesPath("src/main.go")
	require.NoError(t, err)
	assert.True(t, gotPath)

	gotString, err := e.MatchesString("src/main.go")
	require.NoError(t, err)
	assert.True(t, gotString)

	// string matching treats the separator as a literal character
	gotString, err = e.MatchesString("srcXmain.go")
	require.NoError(t, err)
	assert.False(t, gotString)
}

func TestAnyUsesGrammarMatchAll(t *testing.T) {
	e := Any()
	assert.Equal(t, "*", e.Pattern())
	assert.Equal(t, "bsd", e.GrammarName())

	sql, err := grammar.Get("sql")
	require.NoError(t, err)
	e = Any(WithGrammar(sql))
	assert.Equal(t, "%", e.Pattern())

	got, err := e.MatchesString("anything at all")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestHomeExpansionBeforeSegmentSplit(t *testing.T) {
	bsd := grammar.NewBSDWithHome(func() (string, error) {
		return "/home/tester", nil
	})
	e := New("~/src/*.go", WithGrammar(bsd), WithPathSpec(pathspec.Posix()))

	got, err := e.MatchesPath("/home/tester/src/main.go")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = e.MatchesPath("/home/other/src/main.go")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestNamedUserExpansionFails(t *testing.T) {
	e := New("~alice/src", WithPathSpec(pathspec.Posix()))
	_, err := e.MatchesPath("/home/alice/src")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedFeature))
}
