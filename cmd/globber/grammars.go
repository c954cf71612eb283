package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/globber/pkg/grammar"
	"github.com/arthur-debert/globber/pkg/style"
)

var grammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "List the registered pattern grammars",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range grammar.Names() {
			g, err := grammar.Get(name)
			if err != nil {
				continue
			}
			marker := " "
			if name == grammar.DefaultName {
				marker = "*"
			}
			fmt.Printf("%s %s%s\n", marker, name,
				style.MutedStyle.Render(fmt.Sprintf("  (match-all: %s)", g.MatchAll())))
		}
	},
}
