// Package main provides the CLI entry point for mdrsort.
package main

import (
	"fmt"
	"os"

	"github.com/javajack/mdrsort"
	"github.com/javajack/mdrsort/internal/config"
	"github.com/javajack/mdrsort/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdrsort",
		Short: "Split, classify and export MDR spreadsheet files",
		Long: `mdrsort sorts a folder of .xlsx, .xls and .csv files into the MDR1..MDR4
category folders by their marker cells and writes each sorted file as
tab-delimited text.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newDescribeCommand())
	rootCmd.AddCommand(newRulesCommand())
	return rootCmd
}

func newRunCommand() *cobra.Command {
	var (
		noExport bool
		encoding string
		attempts int
	)
	cmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Sort every file in a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Run.Dir = args[0]
			}
			if cfg.Run.Dir == "" {
				return fmt.Errorf("no folder given: pass a directory or set MDRSORT_DIR")
			}
			if cmd.Flags().Changed("no-export") {
				cfg.Export.Enabled = !noExport
			}
			if cmd.Flags().Changed("encoding") {
				cfg.Export.Encoding = encoding
			}
			if cmd.Flags().Changed("retry-attempts") {
				cfg.Retry.Attempts = attempts
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts, err := pipelineOptions(cfg)
			if err != nil {
				return err
			}
			report, err := mdrsort.Run(cfg.Run.Dir, opts...)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), "\n"+report.Summary())
			return nil
		},
	}
	cmd.Flags().BoolVar(&noExport, "no-export", false, "Classify and move only; skip the text export")
	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "Text encoding: utf-8, utf-8-bom, utf-16le, windows-1252")
	cmd.Flags().IntVar(&attempts, "retry-attempts", 3, "Attempts while a workbook is locked")
	return cmd
}

func newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <file>",
		Short: "Show the marker cells and category of a file without moving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := mdrsort.Describe(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the classification rules in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, r := range mdrsort.DefaultRules {
				fmt.Fprintf(w, "%d. %s  %s\n", i+1, r.Category, r.Condition)
			}
			for _, issue := range mdrsort.ValidateRules(mdrsort.DefaultRules) {
				fmt.Fprintln(w, issue)
			}
			return nil
		},
	}
}

// pipelineOptions translates configuration into pipeline options.
func pipelineOptions(cfg *config.Config) ([]mdrsort.Option, error) {
	enc, err := mdrsort.ParseTextEncoding(cfg.Export.Encoding)
	if err != nil {
		return nil, err
	}
	ignore, err := mdrsort.ParseIgnorePatterns(cfg.Run.Ignore)
	if err != nil {
		return nil, err
	}
	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger.Debug().Str("config", cfg.String()).Msg("configuration loaded")

	return []mdrsort.Option{
		mdrsort.WithLogger(logger),
		mdrsort.WithRetryPolicy(cfg.RetryPolicy()),
		mdrsort.WithEncoding(enc),
		mdrsort.WithExport(cfg.Export.Enabled),
		mdrsort.WithIgnoreRules(ignore),
	}, nil
}
