package doctext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
	"go.jacobcolvin.com/docmarkup/format/doctext"
)

func TestRender(t *testing.T) {
	t.Parallel()

	role := &dom.PluginIdentifier{FQCN: "a.b.r", Type: "role"}
	lookup := &dom.PluginIdentifier{FQCN: "a.b.l", Type: "lookup"}
	module := &dom.PluginIdentifier{FQCN: "a.b.m", Type: "module"}

	tcs := map[string]struct {
		paragraphs []dom.Paragraph
		opts       []format.Option
		want       string
	}{
		"empty": {
			want: "",
		},
		"text": {
			paragraphs: []dom.Paragraph{{dom.TextPart{Text: "test"}}},
			want:       "test",
		},
		"paragraphs": {
			paragraphs: []dom.Paragraph{{dom.TextPart{Text: "a"}}, {}, {dom.TextPart{Text: "b"}}},
			want:       "a\n\n\n\nb",
		},
		"classic markup": {
			paragraphs: []dom.Paragraph{{
				dom.BoldPart{Text: "b"},
				dom.TextPart{Text: " "},
				dom.ItalicPart{Text: "i"},
				dom.TextPart{Text: " "},
				dom.CodePart{Text: "c"},
				dom.HorizontalLinePart{},
				dom.LinkPart{Text: "t", URL: "https://x"},
				dom.TextPart{Text: " "},
				dom.URLPart{URL: "https://y"},
				dom.TextPart{Text: " "},
				dom.RSTRefPart{Text: "ref", Ref: "label"},
				dom.TextPart{Text: " "},
				dom.ModulePart{FQCN: "a.b.c"},
			}},
			want: "*b* `i' `c'\n-------------\nt <https://x> https://y ref [a.b.c]",
		},
		"semantic markup": {
			paragraphs: []dom.Paragraph{{
				dom.EnvVariablePart{Name: "HOME"},
				dom.TextPart{Text: " "},
				dom.OptionValuePart{Value: "a b"},
				dom.TextPart{Text: " "},
				dom.PluginPart{Plugin: *lookup},
				dom.TextPart{Text: " "},
				dom.OptionNamePart{Name: "foo", Link: []string{"foo"}},
				dom.TextPart{Text: " "},
				dom.ReturnValuePart{Name: "bar", Link: []string{"bar"}, Value: ptr("1")},
			}},
			want: "`HOME' `a b' [a.b.l] `foo' `bar=1'",
		},
		"option of plugin": {
			paragraphs: []dom.Paragraph{{
				dom.OptionNamePart{Plugin: lookup, Name: "x", Link: []string{"x"}, Value: ptr("y")},
			}},
			want: "`x=y' (of lookup plugin a.b.l)",
		},
		"option of current module": {
			paragraphs: []dom.Paragraph{{
				dom.OptionNamePart{Plugin: module, Name: "x", Link: []string{"x"}},
			}},
			opts: []format.Option{format.WithCurrentPlugin(module)},
			want: "`x' (of module a.b.m)",
		},
		"return value of role entrypoint": {
			paragraphs: []dom.Paragraph{{
				dom.ReturnValuePart{Plugin: role, Entrypoint: "main", Name: "y", Link: []string{"y"}},
			}},
			want: "`y' (of role a.b.r, main entrypoint)",
		},
		"error": {
			paragraphs: []dom.Paragraph{{dom.ErrorPart{Message: "bad"}}},
			want:       "[[ERROR while parsing: bad]]",
		},
		"links are ignored": {
			paragraphs: []dom.Paragraph{{dom.PluginPart{Plugin: *lookup}}},
			opts: []format.Option{format.WithLinkProvider(format.TemplateLinkProvider{
				Plugin: "https://x/{fqcn}",
			})},
			want: "[a.b.l]",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, doctext.Render(tc.paragraphs, tc.opts...))
		})
	}
}

func ptr(s string) *string {
	return &s
}
