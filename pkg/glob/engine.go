// Package glob compiles a whole wildcard pattern and matches it against
// strings, paths, and directory trees.
//
// An Engine is constructed once per pattern and compiles lazily: the first
// string match compiles the entire pattern as a single segment matcher,
// the first path match or enumeration splits it into one matcher per path
// segment. Both compilations are memoized. An Engine is not safe for
// concurrent use; build one engine per goroutine instead, compilation is
// cheap and idempotent.
package glob

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/globber/pkg/errors"
	"github.com/arthur-debert/globber/pkg/filesystem"
	"github.com/arthur-debert/globber/pkg/globber"
	"github.com/arthur-debert/globber/pkg/grammar"
	"github.com/arthur-debert/globber/pkg/logging"
	"github.com/arthur-debert/globber/pkg/pathspec"
)

// Engine owns a pattern, its grammar, and the matchers derived from it
type Engine struct {
	pattern string
	grammar grammar.Grammar
	spec    pathspec.PathSpec
	fsys    filesystem.FS
	log     zerolog.Logger

	// memoized whole-string compilation
	whole *globber.Globber

	// memoized per-segment compilation
	segmentsReady bool
	volume        string
	absolute      bool
	segments      []*globber.Globber
}

// Option configures an Engine at construction time
type Option func(*Engine)

// WithGrammar selects the pattern grammar (default: bsd)
func WithGrammar(g grammar.Grammar) Option {
	return func(e *Engine) { e.grammar = g }
}

// WithPathSpec overrides the path-splitting strategy (default: native)
func WithPathSpec(spec pathspec.PathSpec) Option {
	return func(e *Engine) { e.spec = spec }
}

// WithFS overrides the filesystem traversed by Enumerate (default: OS)
func WithFS(fsys filesystem.FS) Option {
	return func(e *Engine) { e.fsys = fsys }
}

// New creates an engine for the pattern. Nothing is parsed or compiled
// until the first match or enumeration call.
func New(pattern string, opts ...Option) *Engine {
	e := newEngine(opts)
	e.pattern = pattern
	e.log = e.log.With().Str("pattern", pattern).Logger()
	return e
}

// Any creates an engine for the grammar's match-everything pattern
func Any(opts ...Option) *Engine {
	e := newEngine(opts)
	e.pattern = e.grammar.MatchAll()
	e.log = e.log.With().Str("pattern", e.pattern).Logger()
	return e
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		grammar: grammar.Default(),
		spec:    pathspec.Native(),
		fsys:    filesystem.NewOS(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = logging.GetLogger("glob.engine").With().Str("grammar", e.grammar.Name()).Logger()
	return e
}

// Pattern returns the raw pattern the engine was built from
func (e *Engine) Pattern() string {
	return e.pattern
}

// GrammarName returns the name of the grammar in use
func (e *Engine) GrammarName() string {
	return e.grammar.Name()
}

// MatchesString compiles the entire pattern as one segment matcher,
// ignoring any directory separators it contains, and tests the whole
// candidate string against it
func (e *Engine) MatchesString(candidate string) (bool, error) {
	g, err := e.compileWhole()
	if err != nil {
		return false, err
	}
	return g.Matches(candidate)
}

// MatchesPath splits both the pattern and the candidate with the engine's
// path spec and matches them segment by segment. The match succeeds iff
// the segment counts are equal and every pattern segment accepts the
// corresponding candidate segment.
func (e *Engine) MatchesPath(candidate string) (bool, error) {
	if err := e.compileSegments(); err != nil {
		return false, err
	}

	volume, segments := e.spec.Split(candidate)

	// Known inconsistency, kept on purpose: when the volumes disagree the
	// match does not fail outright but falls through to the segment
	// comparison below. Tightening this would change results for existing
	// absolute patterns.
	if e.absolute && volume != e.volume {
		e.log.Debug().
			Str("patternVolume", e.volume).
			Str("candidateVolume", volume).
			Msg("volume mismatch ignored, comparing segments")
	}

	if len(segments) != len(e.segments) {
		return false, nil
	}
	for i, g := range e.segments {
		matched, err := g.Matches(segments[i])
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// compileWhole memoizes the single matcher used for string matching
func (e *Engine) compileWhole() (*globber.Globber, error) {
	if e.whole != nil {
		return e.whole, nil
	}
	g, err := globber.FromPattern(e.pattern, e.grammar)
	if err != nil {
		return nil, err
	}
	if err := g.Compile(); err != nil {
		return nil, err
	}
	e.whole = g
	return g, nil
}

// compileSegments memoizes the per-segment matchers, the volume prefix,
// and the absolute flag. Matchers are force-compiled here so that syntax
// errors surface before any traversal starts.
func (e *Engine) compileSegments() error {
	if e.segmentsReady {
		return nil
	}

	pattern := e.pattern
	if he, ok := e.grammar.(grammar.HomeExpander); ok {
		expanded, err := he.ExpandHome(pattern)
		if err != nil {
			return err
		}
		pattern = expanded
	}

	volume, raw := e.spec.Split(pattern)
	segments := make([]*globber.Globber, 0, len(raw))
	for _, seg := range raw {
		g, err := globber.FromPattern(seg, e.grammar)
		if err != nil {
			return err
		}
		if err := g.Compile(); err != nil {
			return err
		}
		segments = append(segments, g)
	}

	e.volume = volume
	// IsAbs, not volume != "": a drive-relative pattern like C:foo carries
	// a volume but is still relative
	e.absolute = e.spec.IsAbs(pattern)
	e.segments = segments
	e.segmentsReady = true

	e.log.Debug().
		Str("volume", volume).
		Bool("absolute", e.absolute).
		Int("segments", len(segments)).
		Msg("pattern split into segment matchers")
	return nil
}

// incompatibleRoot builds the precondition error for Enumerate
func (e *Engine) incompatibleRoot(root string) error {
	return errors.Newf(errors.ErrIncompatibleRoot,
		"absolute pattern %q cannot be enumerated under relative root %q", e.pattern, root).
		WithDetail("pattern", e.pattern).
		WithDetail("root", root)
}
