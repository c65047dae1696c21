// Package vectors runs golden test vectors: markup sources paired with the
// output every renderer is expected to produce for them.
//
// A vector file is YAML with a single "test_vectors" mapping from vector
// name to [Vector]:
//
//	test_vectors:
//	  bold:
//	    source: B(foo)
//	    html: <p><b>foo</b></p>
//	    md: <b>foo</b>
//	    rst: :strong:`foo`
//
// Only the outputs present in a vector are checked. [Vector.Update]
// replaces them with the current renderings, which is how new vectors are
// filled in.
package vectors

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
	"go.jacobcolvin.com/docmarkup/format/doctext"
	"go.jacobcolvin.com/docmarkup/format/html"
	"go.jacobcolvin.com/docmarkup/format/md"
	"go.jacobcolvin.com/docmarkup/format/rst"
	"go.jacobcolvin.com/docmarkup/parser"
)

// ErrInvalidVector indicates a malformed vector file or vector.
var ErrInvalidVector = errors.New("invalid test vector")

// File is a vector file.
type File struct {
	Vectors map[string]*Vector `yaml:"test_vectors"`
}

// Source is the markup of a vector. In YAML it is either a single string,
// parsed as one paragraph, or a list of strings, parsed as one paragraph
// each.
type Source struct {
	Paragraphs []string
	List       bool
}

// UnmarshalYAML implements [yaml.InterfaceUnmarshaler].
func (s *Source) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		*s = Source{Paragraphs: []string{v}}
	case []any:
		pars := make([]string, 0, len(v))

		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("%w: source item %d is %T, not a string", ErrInvalidVector, i, item)
			}

			pars = append(pars, str)
		}

		*s = Source{Paragraphs: pars, List: true}
	default:
		return fmt.Errorf("%w: source must be a string or a list of strings, got %T", ErrInvalidVector, raw)
	}

	return nil
}

// MarshalYAML implements [yaml.InterfaceMarshaler].
func (s Source) MarshalYAML() (any, error) {
	if !s.List && len(s.Paragraphs) == 1 {
		return s.Paragraphs[0], nil
	}

	return s.Paragraphs, nil
}

// ParseOptions configures the parser for a vector.
type ParseOptions struct {
	CurrentPlugin     *dom.PluginIdentifier `yaml:"current_plugin,omitempty"`
	HelpfulErrors     *bool                 `yaml:"helpfulErrors,omitempty"`
	RoleEntrypoint    string                `yaml:"role_entrypoint,omitempty"`
	Errors            string                `yaml:"errors,omitempty"`
	Whitespace        string                `yaml:"whitespace,omitempty"`
	OnlyClassicMarkup bool                  `yaml:"onlyClassicMarkup,omitempty"`
	Strict            bool                  `yaml:"strict,omitempty"`
}

func (p *ParseOptions) context() parser.Context {
	if p == nil {
		return parser.Context{}
	}

	return parser.Context{CurrentPlugin: p.CurrentPlugin, RoleEntrypoint: p.RoleEntrypoint}
}

func (p *ParseOptions) options() ([]parser.Option, error) {
	if p == nil {
		return nil, nil
	}

	opts := []parser.Option{
		parser.WithOnlyClassicMarkup(p.OnlyClassicMarkup),
		parser.WithStrict(p.Strict),
	}

	if p.Errors != "" {
		mode, err := parser.ParseErrorMode(p.Errors)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidVector, err)
		}

		opts = append(opts, parser.WithErrors(mode))
	}

	if p.Whitespace != "" {
		ws, err := parser.ParseWhitespace(p.Whitespace)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidVector, err)
		}

		opts = append(opts, parser.WithWhitespace(ws))
	}

	if p.HelpfulErrors != nil {
		opts = append(opts, parser.WithHelpfulErrors(*p.HelpfulErrors))
	}

	return opts, nil
}

// RenderOptions configures the renderers of one output family. Link
// templates use the placeholders of [format.TemplateLinkProvider].
type RenderOptions struct {
	CurrentPlugin        *dom.PluginIdentifier `yaml:"current_plugin,omitempty"`
	ParStart             *string               `yaml:"parStart,omitempty"`
	ParEnd               *string               `yaml:"parEnd,omitempty"`
	PluginLink           string                `yaml:"pluginLink,omitempty"`
	PluginOptionLikeLink string                `yaml:"pluginOptionLikeLink,omitempty"`
}

func (r *RenderOptions) options() []format.Option {
	if r == nil {
		return nil
	}

	opts := []format.Option{
		format.WithCurrentPlugin(r.CurrentPlugin),
		format.WithLinkProvider(format.TemplateLinkProvider{
			Plugin:     r.PluginLink,
			OptionLike: r.PluginOptionLikeLink,
		}),
	}

	if r.ParStart != nil {
		opts = append(opts, format.WithParStart(*r.ParStart))
	}

	if r.ParEnd != nil {
		opts = append(opts, format.WithParEnd(*r.ParEnd))
	}

	return opts
}

// Vector is one markup source and its expected renderings. A nil output
// is not checked.
type Vector struct {
	Source             Source         `yaml:"source"`
	ParseOpts          *ParseOptions  `yaml:"parse_opts,omitempty"`
	HTMLOpts           *RenderOptions `yaml:"html_opts,omitempty"`
	MDOpts             *RenderOptions `yaml:"md_opts,omitempty"`
	RSTOpts            *RenderOptions `yaml:"rst_opts,omitempty"`
	AnsibleDocTextOpts *RenderOptions `yaml:"ansible_doc_text_opts,omitempty"`
	HTML               *string        `yaml:"html,omitempty"`
	HTMLPlain          *string        `yaml:"html_plain,omitempty"`
	MD                 *string        `yaml:"md,omitempty"`
	RST                *string        `yaml:"rst,omitempty"`
	RSTPlain           *string        `yaml:"rst_plain,omitempty"`
	AnsibleDocText     *string        `yaml:"ansible_doc_text,omitempty"`
}

// output binds a vector output field to the renderer producing it.
type output struct {
	want   func(v *Vector) **string
	opts   func(v *Vector) *RenderOptions
	render format.Renderer
	name   string
}

var outputs = []output{
	{
		name:   "html",
		render: html.Render,
		want:   func(v *Vector) **string { return &v.HTML },
		opts:   func(v *Vector) *RenderOptions { return v.HTMLOpts },
	},
	{
		name:   "html_plain",
		render: html.RenderPlain,
		want:   func(v *Vector) **string { return &v.HTMLPlain },
		opts:   func(v *Vector) *RenderOptions { return v.HTMLOpts },
	},
	{
		name:   "md",
		render: md.Render,
		want:   func(v *Vector) **string { return &v.MD },
		opts:   func(v *Vector) *RenderOptions { return v.MDOpts },
	},
	{
		name:   "rst",
		render: rst.Render,
		want:   func(v *Vector) **string { return &v.RST },
		opts:   func(v *Vector) *RenderOptions { return v.RSTOpts },
	},
	{
		name:   "rst_plain",
		render: rst.RenderPlain,
		want:   func(v *Vector) **string { return &v.RSTPlain },
		opts:   func(v *Vector) *RenderOptions { return v.RSTOpts },
	},
	{
		name:   "ansible_doc_text",
		render: doctext.Render,
		want:   func(v *Vector) **string { return &v.AnsibleDocText },
		opts:   func(v *Vector) *RenderOptions { return v.AnsibleDocTextOpts },
	},
}

// Parse parses the source of v with its parse options.
func (v *Vector) Parse() ([]dom.Paragraph, error) {
	opts, err := v.ParseOpts.options()
	if err != nil {
		return nil, err
	}

	if v.Source.List {
		return parser.ParseParagraphs(v.Source.Paragraphs, v.ParseOpts.context(), opts...)
	}

	if len(v.Source.Paragraphs) != 1 {
		return nil, fmt.Errorf("%w: missing source", ErrInvalidVector)
	}

	return parser.Parse(v.Source.Paragraphs[0], v.ParseOpts.context(), opts...)
}

// Result is the outcome of checking one output of a vector.
type Result struct {
	Vector string
	Output string
	Want   string
	Got    string
}

// Passed reports whether the rendering matched the expectation.
func (r Result) Passed() bool {
	return r.Want == r.Got
}

// Run renders every output v has an expectation for. name is copied into
// the results.
func (v *Vector) Run(name string) ([]Result, error) {
	paragraphs, err := v.Parse()
	if err != nil {
		return nil, fmt.Errorf("vector %q: %w", name, err)
	}

	var results []Result

	for _, out := range outputs {
		want := *out.want(v)
		if want == nil {
			continue
		}

		results = append(results, Result{
			Vector: name,
			Output: out.name,
			Want:   *want,
			Got:    out.render(paragraphs, out.opts(v).options()...),
		})
	}

	return results, nil
}

// Update sets every output of v to its current rendering.
func (v *Vector) Update() error {
	paragraphs, err := v.Parse()
	if err != nil {
		return err
	}

	for _, out := range outputs {
		got := out.render(paragraphs, out.opts(v).options()...)
		*out.want(v) = &got
	}

	return nil
}

// Load reads a vector file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Vector files are chosen by the caller.
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Decode parses a vector file. Unknown keys are rejected.
func Decode(data []byte) (*File, error) {
	var f File

	err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField())
	if err != nil {
		if errors.Is(err, ErrInvalidVector) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidVector, err)
	}

	if f.Vectors == nil {
		return nil, fmt.Errorf("%w: no test_vectors", ErrInvalidVector)
	}

	return &f, nil
}

// Encode serializes f. Multi-line strings use the literal block style.
func (f *File) Encode() ([]byte, error) {
	b, err := yaml.MarshalWithOptions(f,
		yaml.Indent(2),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return nil, fmt.Errorf("encode vectors: %w", err)
	}

	return b, nil
}

// Names returns the vector names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Vectors))
	for name := range f.Vectors {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Run runs every vector in name order.
func (f *File) Run() ([]Result, error) {
	var results []Result

	for _, name := range f.Names() {
		r, err := f.Vectors[name].Run(name)
		if err != nil {
			return nil, err
		}

		results = append(results, r...)
	}

	return results, nil
}

// Update updates every vector in f.
func (f *File) Update() error {
	for _, name := range f.Names() {
		err := f.Vectors[name].Update()
		if err != nil {
			return fmt.Errorf("vector %q: %w", name, err)
		}
	}

	return nil
}
