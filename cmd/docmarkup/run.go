package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
	"go.jacobcolvin.com/docmarkup/format/domjson"
	"go.jacobcolvin.com/docmarkup/parser"
)

const (
	inputAuto = "auto"
	inputText = "text"
	inputYAML = "yaml"
	inputJSON = "json"
)

var inputFormats = []string{inputAuto, inputText, inputYAML, inputJSON}

func (a *app) registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&a.input, "input", "i", inputAuto,
		fmt.Sprintf("input format, one of: %s; auto picks by file extension", inputFormats))
	flags.StringVarP(&a.output, "output", "o", "-",
		"output file path (- for stdout)")
	flags.BoolVar(&a.dump, "dump-dom", false,
		"write the parsed document as JSON instead of rendering it")
	flags.BoolVar(&a.schema, "schema", false,
		"write the JSON Schema of the --dump-dom output and exit")
}

func (a *app) registerCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc("input",
		cobra.FixedCompletions(inputFormats, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering input completion: %w", err)
	}

	return nil
}

func (a *app) run(stdin io.Reader, stdout io.Writer, args []string) error {
	var out bytes.Buffer

	err := a.render(&out, stdin, args)
	if err != nil {
		return err
	}

	if a.output == "" || a.output == "-" {
		_, err = stdout.Write(out.Bytes())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil
	}

	err = os.WriteFile(a.output, out.Bytes(), 0o644) //nolint:gosec // Rendered docs are not secret.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func (a *app) render(out *bytes.Buffer, stdin io.Reader, args []string) error {
	if a.schema {
		b, err := json.MarshalIndent(domjson.Schema(), "", "  ")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		out.Write(b)
		out.WriteByte('\n')

		return nil
	}

	if !slices.Contains(inputFormats, a.input) {
		return fmt.Errorf("%w: unknown input format %q", ErrInvalidInput, a.input)
	}

	var render format.Renderer

	if !a.dump {
		var err error

		render, err = a.format.Renderer()
		if err != nil {
			return err
		}
	}

	ctx, err := a.parse.Context()
	if err != nil {
		return err
	}

	parseOpts, err := a.parse.Options()
	if err != nil {
		return err
	}

	renderOpts := a.format.Options()
	if ctx.CurrentPlugin != nil {
		renderOpts = append(renderOpts, format.WithCurrentPlugin(ctx.CurrentPlugin))
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, name := range args {
		data, err := readInput(stdin, name)
		if err != nil {
			return err
		}

		paragraphs, err := decode(name, a.inputFormat(name), data, ctx, parseOpts)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(name), err)
		}

		slog.Debug("parsed input",
			slog.String("input", displayName(name)),
			slog.Int("paragraphs", len(paragraphs)),
		)

		if a.dump {
			b, err := domjson.Marshal(paragraphs)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			out.Write(b)
		} else {
			out.WriteString(render(paragraphs, renderOpts...))
		}

		out.WriteByte('\n')
	}

	return nil
}

func (a *app) inputFormat(name string) string {
	if a.input != inputAuto {
		return a.input
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return inputYAML
	case ".json":
		return inputJSON
	}

	return inputText
}

func displayName(name string) string {
	if name == "-" {
		return "stdin"
	}

	return name
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name != "-" {
		data, err := os.ReadFile(name) //nolint:gosec // Input files are chosen by the user.
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		return data, nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // File descriptors fit in an int.
		return nil, fmt.Errorf("%w: stdin is a terminal, pass a file or pipe input", ErrNoInput)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("%w: stdin: %w", ErrInvalidInput, err)
	}

	return data, nil
}

func decode(
	name, inputFormat string, data []byte, ctx parser.Context, opts []parser.Option,
) ([]dom.Paragraph, error) {
	switch inputFormat {
	case inputJSON:
		return domjson.Unmarshal(data)

	case inputYAML:
		texts, list, err := decodeYAML(data)
		if err != nil {
			return nil, err
		}

		if list {
			return parser.ParseParagraphs(texts, ctx, opts...)
		}

		return parser.Parse(texts[0], ctx, opts...)
	}

	slog.Debug("reading input as text", slog.String("input", displayName(name)))

	return parser.Parse(strings.TrimRight(string(data), "\r\n"), ctx, opts...)
}

// decodeYAML decodes a string or a list of strings. list reports whether
// the document was a list.
func decodeYAML(data []byte) ([]string, bool, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	switch v := raw.(type) {
	case nil:
		return nil, true, nil
	case string:
		return []string{v}, false, nil
	case []any:
		texts := make([]string, 0, len(v))

		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false, fmt.Errorf("%w: item %d is %T, not a string", ErrInvalidInput, i, item)
			}

			texts = append(texts, s)
		}

		return texts, true, nil
	}

	return nil, false, fmt.Errorf("%w: want a string or a list of strings, got %T", ErrInvalidInput, raw)
}
