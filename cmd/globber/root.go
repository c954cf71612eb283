package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/globber/pkg/config"
	"github.com/arthur-debert/globber/pkg/logging"
	"github.com/arthur-debert/globber/pkg/style"
	"github.com/arthur-debert/globber/pkg/version"
)

var (
	verbosity   int
	grammarName string
	colorMode   string

	cfg = config.Default()

	rootCmd = &cobra.Command{
		Use:   "globber",
		Short: "Shell-style glob matching and file enumeration",
		Long: `globber compiles shell-style wildcard patterns (bsd, simple, or sql
dialect) and matches them against strings, paths, or directory trees.
Alternations like {foo,bar} control the order results are produced in.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if loaded, err := config.Load(); err == nil {
				cfg = loaded
			} else {
				log.Warn().Err(err).Msg("Falling back to built-in configuration")
			}
			if verbosity == 0 {
				verbosity = cfg.Verbosity
			}
			logging.Setup(verbosity)
			if !cmd.Flags().Changed("grammar") {
				grammarName = cfg.Grammar
			}
			if !cmd.Flags().Changed("color") {
				colorMode = cfg.Color
			}
			style.Configure(colorMode)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(style.ErrorStyle.Render("error: ") + err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&grammarName, "grammar", "g", "bsd", "Pattern grammar (bsd, simple, sql, or a registered custom grammar)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output (auto, always, never)")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(grammarsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("globber %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}
