package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/docmarkup/vectors"
)

// ErrVectorsFailed indicates that at least one test vector did not match.
var ErrVectorsFailed = errors.New("test vectors failed")

func newVectorsCommand() *cobra.Command {
	var update bool

	cmd := &cobra.Command{
		Use:   "vectors [flags] <file.yaml>",
		Short: "Check renderers against golden test vectors",
		Long: `Render every vector in a test vector file and compare the results with
the expected outputs stored in it.

Vector File Format (YAML):
  test_vectors:
    bold:
      source: B(foo)
      html: <p><b>foo</b></p>
      md: <b>foo</b>

With --update, every output of every vector is rewritten with the current
rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if update {
				return updateVectors(args[0])
			}

			return runVectors(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().BoolVar(&update, "update", false, "rewrite the expected outputs in place")

	return cmd
}

func runVectors(w io.Writer, path string) error {
	f, err := vectors.Load(path)
	if err != nil {
		return err
	}

	results, err := f.Run()
	if err != nil {
		return err
	}

	failed := 0

	for _, r := range results {
		if r.Passed() {
			slog.Debug("vector passed", slog.String("vector", r.Vector), slog.String("output", r.Output))

			continue
		}

		failed++

		fmt.Fprintf(w, "FAIL %s/%s (-want +got):\n%s\n", r.Vector, r.Output, cmp.Diff(r.Want, r.Got))
	}

	fmt.Fprintf(w, "%d passed, %d failed\n", len(results)-failed, failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrVectorsFailed, failed, len(results))
	}

	return nil
}

func updateVectors(path string) error {
	f, err := vectors.Load(path)
	if err != nil {
		return err
	}

	err = f.Update()
	if err != nil {
		return err
	}

	b, err := f.Encode()
	if err != nil {
		return err
	}

	err = os.WriteFile(path, b, 0o644) //nolint:gosec // Vector files are checked in.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	slog.Info("updated test vectors", slog.String("file", path), slog.Int("vectors", len(f.Vectors)))

	return nil
}
