package html_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
	"go.jacobcolvin.com/docmarkup/format/html"
)

func TestEscapeURL(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input      string
		want       string
		wantParens string
	}{
		"plain": {
			input:      "https://example.com/a?b=c&d=e#f",
			want:       "https://example.com/a?b=c&d=e#f",
			wantParens: "https://example.com/a?b=c&d=e#f",
		},
		"unsafe characters": {
			input:      `https://x/a b"<>\^` + "`{|}",
			want:       "https://x/a%20b%22%3C%3E%5C%5E%60%7B%7C%7D",
			wantParens: "https://x/a%20b%22%3C%3E%5C%5E%60%7B%7C%7D",
		},
		"existing escapes and parentheses": {
			input:      "https://x/%20(y)",
			want:       "https://x/%20(y)",
			wantParens: "https://x/%20%28y%29",
		},
		"non-ASCII": {
			input:      "https://x/ä",
			want:       "https://x/%C3%A4",
			wantParens: "https://x/%C3%A4",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, html.EscapeURL(tc.input))
			assert.Equal(t, tc.wantParens, html.EscapeURLParens(tc.input))
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	current := &dom.PluginIdentifier{FQCN: "a.b.c", Type: "module"}
	other := &dom.PluginIdentifier{FQCN: "a.b.r", Type: "role"}
	links := format.TemplateLinkProvider{
		Plugin:     "/{fqcn}_{type}.html",
		OptionLike: "/{fqcn}_{type}.html#{anchor}",
	}

	tcs := map[string]struct {
		paragraphs []dom.Paragraph
		opts       []format.Option
		want       string
		wantPlain  string
	}{
		"empty": {
			want:      "",
			wantPlain: "",
		},
		"text": {
			paragraphs: []dom.Paragraph{{dom.TextPart{Text: "a < b & 'c'"}}},
			want:       "<p>a &lt; b &amp; &#39;c&#39;</p>",
			wantPlain:  "<p>a &lt; b &amp; &#39;c&#39;</p>",
		},
		"empty paragraph": {
			paragraphs: []dom.Paragraph{{}, {dom.HorizontalLinePart{}}},
			want:       "<p></p><p><hr/></p>",
			wantPlain:  "<p></p><p><hr></p>",
		},
		"classic markup": {
			paragraphs: []dom.Paragraph{{
				dom.BoldPart{Text: "b"},
				dom.ItalicPart{Text: "i"},
				dom.CodePart{Text: "c"},
				dom.LinkPart{Text: "t", URL: "https://x/a b"},
				dom.URLPart{URL: "https://x"},
				dom.RSTRefPart{Text: "ref", Ref: "label"},
			}},
			want: "<p><b>b</b><em>i</em><code class='docutils literal notranslate'>c</code>" +
				"<a href='https://x/a%20b'>t</a><a href='https://x'>https://x</a>" +
				"<span class='module'>ref</span></p>",
			wantPlain: "<p><b>b</b><em>i</em><code>c</code>" +
				"<a href='https://x/a%20b'>t</a><a href='https://x'>https://x</a>ref</p>",
		},
		"modules without links": {
			paragraphs: []dom.Paragraph{{
				dom.ModulePart{FQCN: "a.b.c"},
				dom.PluginPart{Plugin: *other},
			}},
			want:      "<p><span class='module'>a.b.c</span><span class='module'>a.b.r</span></p>",
			wantPlain: "<p>a.b.ca.b.r</p>",
		},
		"modules with links": {
			paragraphs: []dom.Paragraph{{
				dom.ModulePart{FQCN: "a.b.c"},
				dom.PluginPart{Plugin: *other},
			}},
			opts: []format.Option{format.WithLinkProvider(links)},
			want: "<p><a href='/a.b.c_module.html' class='module'>a.b.c</a>" +
				"<a href='/a.b.r_role.html' class='module'>a.b.r</a></p>",
			wantPlain: "<p><a href='/a.b.c_module.html'>a.b.c</a><a href='/a.b.r_role.html'>a.b.r</a></p>",
		},
		"semantic markup": {
			paragraphs: []dom.Paragraph{{
				dom.EnvVariablePart{Name: "HOME"},
				dom.OptionValuePart{Value: "a<b"},
				dom.OptionNamePart{Name: "foo", Link: []string{"foo"}},
				dom.ReturnValuePart{Name: "bar", Link: []string{"bar"}, Value: ptr("1")},
			}},
			want: "<p><code class='xref std std-envvar literal notranslate'>HOME</code>" +
				"<code class='ansible-value literal notranslate'>a&lt;b</code>" +
				"<code class='ansible-option literal notranslate'><strong>foo</strong></code>" +
				"<code class='ansible-option-value literal notranslate'>bar=1</code></p>",
			wantPlain: "<p><code>HOME</code><code>a&lt;b</code><code><strong>foo</strong></code><code>bar=1</code></p>",
		},
		"option links": {
			paragraphs: []dom.Paragraph{{
				dom.OptionNamePart{Plugin: current, Name: "x", Link: []string{"x"}},
				dom.ReturnValuePart{Plugin: other, Entrypoint: "main", Name: "y", Link: []string{"y"}},
			}},
			opts: []format.Option{format.WithLinkProvider(links), format.WithCurrentPlugin(current)},
			want: "<p><code class='ansible-option literal notranslate'><strong>" +
				"<a class='reference internal' href='/a.b.c_module.html#parameter-x'>" +
				"<span class='std std-ref'><span class='pre'>x</span></span></a></strong></code>" +
				"<code class='ansible-return-value literal notranslate'>" +
				"<a class='reference internal' href='/a.b.r_role.html#main--return-y'>" +
				"<span class='std std-ref'><span class='pre'>a.b.r#role:main:y</span></span></a></code></p>",
			wantPlain: "<p><code><strong><a href='/a.b.c_module.html#parameter-x'>x</a></strong></code>" +
				"<code><a href='/a.b.r_role.html#main--return-y'>a.b.r#role:main:y</a></code></p>",
		},
		"error": {
			paragraphs: []dom.Paragraph{{dom.ErrorPart{Message: "bad <x>"}}},
			want:       `<p><span class="error">ERROR while parsing: bad &lt;x&gt;</span></p>`,
			wantPlain:  "<p><b>ERROR while parsing</b>: bad &lt;x&gt;</p>",
		},
		"custom delimiters": {
			paragraphs: []dom.Paragraph{{dom.TextPart{Text: "a"}}, {dom.TextPart{Text: "b"}}},
			opts:       []format.Option{format.WithParStart(""), format.WithParEnd(""), format.WithParSep("<br>")},
			want:       "a<br>b",
			wantPlain:  "a<br>b",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, html.Render(tc.paragraphs, tc.opts...))
			assert.Equal(t, tc.wantPlain, html.RenderPlain(tc.paragraphs, tc.opts...))
		})
	}
}

func ptr(s string) *string {
	return &s
}
