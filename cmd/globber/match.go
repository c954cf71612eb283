package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/globber/pkg/errors"
	"github.com/arthur-debert/globber/pkg/glob"
	"github.com/arthur-debert/globber/pkg/grammar"
	"github.com/arthur-debert/globber/pkg/style"
)

var matchAsPath bool

var matchCmd = &cobra.Command{
	Use:   "match PATTERN CANDIDATE",
	Short: "Test whether a string or path matches a pattern",
	Long: `match tests CANDIDATE against PATTERN. By default the candidate is
treated as a plain string and directory separators carry no meaning;
with --path both pattern and candidate are split into segments and
matched segment by segment.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, candidate := args[0], args[1]

		engine, err := newEngine(pattern)
		if err != nil {
			return err
		}

		var matched bool
		if matchAsPath {
			matched, err = engine.MatchesPath(candidate)
		} else {
			matched, err = engine.MatchesString(candidate)
		}
		if err != nil {
			return err
		}

		if matched {
			fmt.Println(style.MatchStyle.Render("match"))
			return nil
		}
		fmt.Println(style.MutedStyle.Render("no match"))
		return errors.New(errors.ErrNotFound, "candidate does not match pattern")
	},
}

// newEngine resolves the selected grammar and builds an engine for it
func newEngine(pattern string) (*glob.Engine, error) {
	g, err := grammar.Get(grammarName)
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return glob.Any(glob.WithGrammar(g)), nil
	}
	return glob.New(pattern, glob.WithGrammar(g)), nil
}

func init() {
	matchCmd.Flags().BoolVarP(&matchAsPath, "path", "p", false, "Match segment-aware against a path instead of a plain string")
}
