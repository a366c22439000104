// Command lexigram loads a dictionary TSV, evaluates one query
// against it, and prints a page of rendered solutions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fenwicklabs/lexigram/driver"
	"github.com/fenwicklabs/lexigram/internal/logging"
	"github.com/fenwicklabs/lexigram/puzzle"
)

var (
	verbose  bool
	dictPath string
	maxResults int
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lexigram",
	Short: "lexigram evaluates word-puzzle queries over a fixed English dictionary",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "evaluate a DSL query and print a page of solutions",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "path to the dictionary TSV (required)")
	queryCmd.Flags().IntVar(&maxResults, "max", driver.DefaultChunkSize, "maximum number of solutions to print")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if dictPath == "" {
		return fmt.Errorf("--dict is required")
	}
	ctx, err := puzzle.LoadWordContext(dictPath)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	if ctx.SkippedWords > 0 {
		logger.Debug("skipped overlong dictionary words", zap.Int("count", ctx.SkippedWords))
	}

	d := driver.New(ctx, logger)
	if err := d.ChangeText(args[0]); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", d.Warning())
		return nil
	}

	solutions, exhausted := d.LoadMore(maxResults)
	for _, s := range solutions {
		fmt.Fprintln(cmd.OutOrStdout(), s.Render())
	}
	if w := d.Warning(); w != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
	}
	if !exhausted {
		fmt.Fprintf(cmd.OutOrStdout(), "(more results available)\n")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
