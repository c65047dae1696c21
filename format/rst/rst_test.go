package rst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
	"go.jacobcolvin.com/docmarkup/format/rst"
	"go.jacobcolvin.com/docmarkup/stringtest"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rst.Escape(""))
	assert.Equal(t, "  foo  ", rst.Escape("  foo  "))
	assert.Equal(t, `\\\<\_\>\`+"`"+`\*\<\_\>\*\`+"`"+`\\\|`, rst.Escape(`\<_>`+"`"+`*<_>*`+"`"+`\|`))
}

func TestEscapeInline(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input          string
		want           string
		mustNotBeEmpty bool
	}{
		"empty": {
			input: "",
			want:  "",
		},
		"empty must not be empty": {
			input:          "",
			mustNotBeEmpty: true,
			want:           `\ `,
		},
		"surrounding whitespace": {
			input: "  foo  ",
			want:  `\   foo  \ `,
		},
		"trailing tab": {
			input: "a\t",
			want:  "a\t\\ ",
		},
		"escaped": {
			input: "*a*",
			want:  `\*a\*`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, rst.EscapeInline(tc.input, tc.mustNotBeEmpty))
		})
	}
}

func TestPostprocessParagraph(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty": {
			input: "",
			want:  "",
		},
		"blank lines and whitespace": {
			input: " \n foo \n\r\n \n\tbar \n ",
			want:  "foo\nbar",
		},
		"separators next to spaces": {
			input: "\\ foo\\  \\  bar \\  \\ \n\nf\\ oo",
			want:  "foo  bar\nf\\ oo",
		},
		"repeated separators": {
			input: `a\ \ \ \ \ b`,
			want:  `a\ b`,
		},
		"trailing separators": {
			input: `a\ \  \ \    \ \  `,
			want:  "a",
		},
		"leading separators": {
			input: `\ \  \ \    \ \  a`,
			want:  "a",
		},
		"only separators": {
			input: `\ \  \ \    \ \  `,
			want:  "",
		},
		"separator before period": {
			input: "\\ :strong:`a`\\ .",
			want:  ":strong:`a`.",
		},
		"separator after role opening kept": {
			input: "a :literal:`\\  b`",
			want:  "a :literal:`\\  b`",
		},
		"separator before role kept": {
			input: "a \\ `b <c>`__",
			want:  "a \\ `b <c>`__",
		},
		"separator after space removed": {
			input: "a \\ :strong:`b`",
			want:  "a :strong:`b`",
		},
		"raw html block": {
			input: stringtest.JoinLF("foo", "", ".. raw:: html", "", "  <hr>", "", "bar"),
			want:  stringtest.JoinLF("foo", "", ".. raw:: html", "", "  <hr>", "", "bar"),
		},
		"dashes block": {
			input: stringtest.JoinLF("foo", "", "", "------------", "", "", "bar"),
			want:  stringtest.JoinLF("foo", "", "------------", "", "bar"),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, rst.PostprocessParagraph(tc.input))
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	role := &dom.PluginIdentifier{FQCN: "a.b.r", Type: "role"}
	lookup := &dom.PluginIdentifier{FQCN: "a.b.l", Type: "lookup"}

	tcs := map[string]struct {
		paragraphs []dom.Paragraph
		want       string
		wantPlain  string
	}{
		"no paragraphs": {
			want:      "",
			wantPlain: "",
		},
		"text": {
			paragraphs: []dom.Paragraph{{dom.TextPart{Text: "test"}}},
			want:       "test",
			wantPlain:  "test",
		},
		"empty paragraph": {
			paragraphs: []dom.Paragraph{{dom.TextPart{Text: "a"}}, {}},
			want:       "a\n\n\\",
			wantPlain:  "a\n\n\\",
		},
		"classic markup": {
			paragraphs: []dom.Paragraph{{
				dom.TextPart{Text: "a "},
				dom.BoldPart{Text: "b"},
				dom.TextPart{Text: " "},
				dom.ItalicPart{Text: " i"},
				dom.TextPart{Text: " "},
				dom.CodePart{Text: "c_d"},
				dom.TextPart{Text: "."},
			}},
			want:      "a :strong:`b` :emphasis:`\\  i` :literal:`c\\_d`.",
			wantPlain: "a :strong:`b` :emphasis:`\\  i` :literal:`c\\_d`.",
		},
		"links": {
			paragraphs: []dom.Paragraph{{
				dom.LinkPart{Text: "x", URL: "https://x/a b"},
				dom.TextPart{Text: " "},
				dom.URLPart{URL: "https://y"},
				dom.TextPart{Text: " "},
				dom.LinkPart{Text: "no_url"},
				dom.LinkPart{URL: "https://z"},
				dom.TextPart{Text: " "},
				dom.RSTRefPart{Text: "t", Ref: "label"},
			}},
			want:      "`x <https://x/a%20b>`__ \\ `https://y <https://y>`__ no\\_url :ref:`t <label>`",
			wantPlain: "`x <https://x/a%20b>`__ \\ `https://y <https://y>`__ no\\_url :ref:`t <label>`",
		},
		"module and plugin": {
			paragraphs: []dom.Paragraph{{
				dom.ModulePart{FQCN: "a.b.c"},
				dom.TextPart{Text: " and "},
				dom.PluginPart{Plugin: *lookup},
			}},
			want:      ":ref:`a.b.c <ansible_collections.a.b.c_module>` and :ref:`a.b.l <ansible_collections.a.b.l_lookup>`",
			wantPlain: ":ref:`a.b.c <ansible_collections.a.b.c_module>` and :ref:`a.b.l <ansible_collections.a.b.l_lookup>`",
		},
		"semantic markup": {
			paragraphs: []dom.Paragraph{{
				dom.EnvVariablePart{Name: "HOME"},
				dom.TextPart{Text: " "},
				dom.OptionValuePart{Value: "a b"},
				dom.TextPart{Text: " "},
				dom.OptionNamePart{Name: "foo", Link: []string{"foo"}},
			}},
			want:      ":envvar:`HOME` :ansval:`a b` :ansopt:`foo`",
			wantPlain: ":envvar:`HOME` :literal:`a b` :literal:`foo`",
		},
		"qualified option": {
			paragraphs: []dom.Paragraph{{
				dom.OptionNamePart{Plugin: lookup, Name: "x[0]", Link: []string{"x"}, Value: ptr("1")},
			}},
			want:      ":ansopt:`a.b.l#lookup:x[0]=1`",
			wantPlain: ":literal:`x[0]=1` (of lookup plugin :ref:`a.b.l <ansible_collections.a.b.l_lookup>`)",
		},
		"role return value": {
			paragraphs: []dom.Paragraph{{
				dom.ReturnValuePart{Plugin: role, Entrypoint: "main", Name: "y", Link: []string{"y"}},
			}},
			want:      ":ansretval:`a.b.r#role:main:y`",
			wantPlain: ":literal:`y` (of role :ref:`a.b.r <ansible_collections.a.b.r_role>`, entrypoint main)",
		},
		"horizontal line": {
			paragraphs: []dom.Paragraph{{
				dom.TextPart{Text: "foo "},
				dom.HorizontalLinePart{},
				dom.TextPart{Text: "bar"},
			}},
			want:      stringtest.JoinLF("foo", "", ".. raw:: html", "", "  <hr>", "", "bar"),
			wantPlain: stringtest.JoinLF("foo", "", "------------", "", "bar"),
		},
		"error": {
			paragraphs: []dom.Paragraph{{dom.ErrorPart{Message: "bad *x*"}}},
			want:       ":strong:`ERROR while parsing`\\ : bad \\*x\\*",
			wantPlain:  ":strong:`ERROR while parsing`\\ : bad \\*x\\*",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, rst.Render(tc.paragraphs))
			assert.Equal(t, tc.wantPlain, rst.RenderPlain(tc.paragraphs))
		})
	}
}

func TestRenderOptions(t *testing.T) {
	t.Parallel()

	paragraphs := []dom.Paragraph{{dom.TextPart{Text: "a"}}, {}}

	got := rst.Render(paragraphs, format.WithParSep("\n"), format.WithParEmpty(""))
	assert.Equal(t, "a\n", got)
}

func ptr(s string) *string {
	return &s
}
