package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/globber/pkg/filesystem"
	"github.com/arthur-debert/globber/pkg/style"
)

var findCmd = &cobra.Command{
	Use:   "find PATTERN [ROOT]",
	Short: "Enumerate files matching a pattern under a directory",
	Long: `find walks the tree under ROOT (default: the current directory) and
prints every path matching PATTERN, one per line. The pattern's own
alternation order determines the output order: {bar,foo}.md lists bar.md
before foo.md whatever the directory listing says.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]
		root := "."
		if len(args) == 2 {
			root = args[1]
		}

		engine, err := newEngine(pattern)
		if err != nil {
			return err
		}

		seq, err := engine.Enumerate(root)
		if err != nil {
			return err
		}

		fsys := filesystem.NewOS()
		for path := range seq {
			if filesystem.IsDir(fsys, path) {
				fmt.Println(style.DirStyle.Render(path))
			} else {
				fmt.Println(style.MatchStyle.Render(path))
			}
		}
		return nil
	},
}
