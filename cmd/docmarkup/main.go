// Package main provides the CLI entry point for docmarkup, a tool that
// renders Ansible documentation markup as reStructuredText, Markdown, HTML,
// or ansible-doc text.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/docmarkup/format"
	"go.jacobcolvin.com/docmarkup/format/doctext"
	"go.jacobcolvin.com/docmarkup/format/html"
	"go.jacobcolvin.com/docmarkup/format/md"
	"go.jacobcolvin.com/docmarkup/format/rst"
	"go.jacobcolvin.com/docmarkup/log"
	"go.jacobcolvin.com/docmarkup/parser"
	"go.jacobcolvin.com/docmarkup/version"
)

var (
	// ErrNoInput indicates that no input file was given and stdin is a
	// terminal.
	ErrNoInput = errors.New("no input")
	// ErrInvalidInput indicates input that cannot be decoded.
	ErrInvalidInput = errors.New("invalid input")
	// ErrWriteOutput indicates a failure writing the result.
	ErrWriteOutput = errors.New("write output")
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// registry lists the output formats selectable with --format.
func registry() format.Registry {
	return format.Registry{
		"rst":              rst.Render,
		"rst-plain":        rst.RenderPlain,
		"md":               md.Render,
		"html":             html.Render,
		"html-plain":       html.RenderPlain,
		"ansible-doc-text": doctext.Render,
	}
}

// app holds the configuration shared by all commands.
type app struct {
	log    *log.Config
	parse  *parser.Config
	format *format.Config
	input  string
	output string
	dump   bool
	schema bool
}

func newRootCommand() *cobra.Command {
	a := &app{
		log:    log.NewConfig(),
		parse:  parser.NewConfig(),
		format: format.NewConfig(),
	}
	a.format.Registry = registry()

	rootCmd := &cobra.Command{
		Use:   "docmarkup [flags] [file ...]",
		Short: "Render Ansible documentation markup",
		Long: `docmarkup parses the inline markup used in Ansible module and plugin
documentation, such as B(bold), O(option=value) and M(fqcn), and renders
it in the selected output format.

Each file is read as plain text (one paragraph), YAML (a string or a list
of strings, one paragraph each), or JSON as written by --dump-dom. With no
files, or with "-", input is read from stdin.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogging(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	a.log.RegisterFlags(rootCmd.PersistentFlags())
	a.parse.RegisterFlags(rootCmd.Flags())
	a.format.RegisterFlags(rootCmd.Flags())
	a.registerFlags(rootCmd)

	rootCmd.AddCommand(newVectorsCommand())

	for _, register := range []func(*cobra.Command) error{
		a.log.RegisterCompletions,
		a.parse.RegisterCompletions,
		a.format.RegisterCompletions,
		a.registerCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	return rootCmd
}

func (a *app) setupLogging(w io.Writer) error {
	handler, err := a.log.NewHandler(w)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))

	return nil
}
