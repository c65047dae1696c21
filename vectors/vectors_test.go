package vectors_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/docmarkup/parser"
	"go.jacobcolvin.com/docmarkup/stringtest"
	"go.jacobcolvin.com/docmarkup/vectors"
)

func TestVectors(t *testing.T) {
	t.Parallel()

	f, err := vectors.Load(filepath.Join("testdata", "test-vectors.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, f.Vectors)

	for _, name := range f.Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			results, err := f.Vectors[name].Run(name)
			require.NoError(t, err)
			require.NotEmpty(t, results)

			for _, r := range results {
				assert.Equal(t, r.Want, r.Got, "output %s", r.Output)
			}
		})
	}
}

func TestDecodeSource(t *testing.T) {
	t.Parallel()

	f, err := vectors.Decode([]byte(stringtest.Input(`
		test_vectors:
		  single:
		    source: B(x)
		  list:
		    source:
		      - a
		      - B(x)
		  empty_list:
		    source: []
	`)))
	require.NoError(t, err)

	assert.Equal(t, []string{"empty_list", "list", "single"}, f.Names())
	assert.Equal(t, vectors.Source{Paragraphs: []string{"B(x)"}}, f.Vectors["single"].Source)
	assert.Equal(t, vectors.Source{Paragraphs: []string{"a", "B(x)"}, List: true}, f.Vectors["list"].Source)

	paragraphs, err := f.Vectors["list"].Parse()
	require.NoError(t, err)
	assert.Len(t, paragraphs, 2)

	paragraphs, err = f.Vectors["empty_list"].Parse()
	require.NoError(t, err)
	assert.Empty(t, paragraphs)
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"not yaml":          "test_vectors: [",
		"no vectors":        "other: {}",
		"unknown key":       "test_vectors:\n  a:\n    source: x\n    latex: x\n",
		"source not string": "test_vectors:\n  a:\n    source: {a: b}\n",
		"source item":       "test_vectors:\n  a:\n    source:\n      - 1\n",
	}

	for name, input := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := vectors.Decode([]byte(input))
			require.ErrorIs(t, err, vectors.ErrInvalidVector)
		})
	}
}

func TestRunInvalidOptions(t *testing.T) {
	t.Parallel()

	tcs := map[string]*vectors.Vector{
		"missing source": {},
		"unknown error mode": {
			Source:    vectors.Source{Paragraphs: []string{"x"}},
			ParseOpts: &vectors.ParseOptions{Errors: "loud"},
		},
		"unknown whitespace": {
			Source:    vectors.Source{Paragraphs: []string{"x"}},
			ParseOpts: &vectors.ParseOptions{Whitespace: "squash"},
		},
	}

	for name, v := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := v.Run(name)
			require.ErrorIs(t, err, vectors.ErrInvalidVector)
		})
	}
}

func TestRunException(t *testing.T) {
	t.Parallel()

	v := &vectors.Vector{
		Source:    vectors.Source{Paragraphs: []string{"M(x)"}},
		ParseOpts: &vectors.ParseOptions{Errors: "exception"},
	}

	_, err := v.Run("exception")
	require.ErrorIs(t, err, parser.ErrInvalidMarkup)
}

func TestResult(t *testing.T) {
	t.Parallel()

	assert.True(t, vectors.Result{Want: "a", Got: "a"}.Passed())
	assert.False(t, vectors.Result{Want: "a", Got: "b"}.Passed())
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	f, err := vectors.Decode([]byte(stringtest.Input(`
		test_vectors:
		  bold:
		    source: B(x) and HORIZONTALLINE y
		    md: stale
	`)))
	require.NoError(t, err)

	results, err := f.Run()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed())

	require.NoError(t, f.Update())

	results, err = f.Run()
	require.NoError(t, err)
	require.Len(t, results, 6)

	for _, r := range results {
		assert.True(t, r.Passed(), "output %s", r.Output)
	}

	b, err := f.Encode()
	require.NoError(t, err)

	reloaded, err := vectors.Decode(b)
	require.NoError(t, err)

	v := reloaded.Vectors["bold"]
	require.NotNil(t, v.MD)
	require.NotNil(t, v.AnsibleDocText)
	assert.Equal(t, "<b>x</b> and<hr>y", *v.MD)
	assert.Equal(t, "*x* and\n-------------\ny", *v.AnsibleDocText)
	assert.Equal(t, vectors.Source{Paragraphs: []string{"B(x) and HORIZONTALLINE y"}}, v.Source)
}
