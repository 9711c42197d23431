// Package main implements a small CLI around the frontend package: read a
// source file, run it through preprocessing, lexing and parsing, and dump
// whichever stage was asked for.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/foxlang/frontend/pkg/frontend"
	"github.com/spf13/cobra"
)

func main() {
	var (
		path  string
		stage string
	)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	cmdRoot := &cobra.Command{
		Use:           "frontend",
		Short:         "foxlang front end",
		Long:          `Run the preprocessor, lexer and parser over a source file and dump the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Root().PersistentFlags()
			logLevel, err := flags.GetString("log-level")
			if err != nil {
				return err
			}
			var lvl slog.Level
			switch strings.ToLower(logLevel) {
			case "debug":
				lvl = slog.LevelDebug
			case "info":
				lvl = slog.LevelInfo
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			default:
				return fmt.Errorf("log-level: unknown value %q", logLevel)
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(path, stage, logger)
		},
	}
	cmdRoot.PersistentFlags().String("log-level", "error", "logging level (debug|info|warn|error)")
	cmdRoot.Flags().StringVar(&path, "input", "", "source file to process")
	cmdRoot.Flags().StringVar(&stage, "stage", "ast", "pipeline stage to dump (tokens|ast)")
	if err := cmdRoot.MarkFlagRequired("input"); err != nil {
		logger.Error("frontend: flag setup failed", "error", err)
		os.Exit(1)
	}

	if err := cmdRoot.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(path, stage string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("frontend: could not read source", "path", path, "error", err)
		return err
	}

	source := frontend.SourceFileFromString(path, string(data))
	clean := frontend.Preprocess(source)

	tokens, err := frontend.Lex(clean)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if stage == "tokens" {
		fmt.Print(tokens.Dump())
		return nil
	}

	tree, err := frontend.Parse(tokens)
	if err != nil {
		fmt.Println(err)
		return err
	}
	fmt.Print(tree.DumpString())
	return nil
}
