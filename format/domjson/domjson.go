// Package domjson encodes parsed documentation as JSON.
//
// A document is an array of paragraphs, and a paragraph is an array of
// part objects. Every part object carries a "type" discriminant with the
// [dom.PartType] name, followed by the fields of that part:
//
//	[[{"type": "text", "text": "See "}, {"type": "module", "fqcn": "a.b.c"}]]
//
// Optional fields (source, plugin, entrypoint, and the value of option
// names and return values) are omitted when unset. [Schema] describes the
// encoding as a JSON Schema.
package domjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/docmarkup/dom"
)

// ErrInvalidDocument indicates JSON that does not describe a document.
var ErrInvalidDocument = errors.New("invalid document")

// Marshal encodes paragraphs as indented JSON.
func Marshal(paragraphs []dom.Paragraph) ([]byte, error) {
	doc := make([][]map[string]any, 0, len(paragraphs))

	for _, paragraph := range paragraphs {
		e := &encoder{parts: make([]map[string]any, 0, len(paragraph))}
		dom.Walk(paragraph, e)
		doc = append(doc, e.parts)
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	return b, nil
}

type encoder struct {
	parts []map[string]any
}

func (e *encoder) add(t dom.PartType, source string, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}

	fields["type"] = t.String()
	if source != "" {
		fields["source"] = source
	}

	e.parts = append(e.parts, fields)
}

func (e *encoder) addOptionLike(
	t dom.PartType, plugin *dom.PluginIdentifier, entrypoint string, link []string, name string, value *string,
	source string,
) {
	if link == nil {
		link = []string{}
	}

	fields := map[string]any{"name": name, "link": link}
	if plugin != nil {
		fields["plugin"] = *plugin
	}

	if entrypoint != "" {
		fields["entrypoint"] = entrypoint
	}

	if value != nil {
		fields["value"] = *value
	}

	e.add(t, source, fields)
}

func (e *encoder) ProcessError(p dom.ErrorPart) {
	e.add(p.Type(), p.Source, map[string]any{"message": p.Message})
}

func (e *encoder) ProcessBold(p dom.BoldPart) {
	e.add(p.Type(), p.Source, map[string]any{"text": p.Text})
}

func (e *encoder) ProcessCode(p dom.CodePart) {
	e.add(p.Type(), p.Source, map[string]any{"text": p.Text})
}

func (e *encoder) ProcessHorizontalLine(p dom.HorizontalLinePart) {
	e.add(p.Type(), p.Source, nil)
}

func (e *encoder) ProcessItalic(p dom.ItalicPart) {
	e.add(p.Type(), p.Source, map[string]any{"text": p.Text})
}

func (e *encoder) ProcessLink(p dom.LinkPart) {
	e.add(p.Type(), p.Source, map[string]any{"text": p.Text, "url": p.URL})
}

func (e *encoder) ProcessModule(p dom.ModulePart) {
	e.add(p.Type(), p.Source, map[string]any{"fqcn": p.FQCN})
}

func (e *encoder) ProcessRSTRef(p dom.RSTRefPart) {
	e.add(p.Type(), p.Source, map[string]any{"text": p.Text, "ref": p.Ref})
}

func (e *encoder) ProcessURL(p dom.URLPart) {
	e.add(p.Type(), p.Source, map[string]any{"url": p.URL})
}

func (e *encoder) ProcessText(p dom.TextPart) {
	e.add(p.Type(), p.Source, map[string]any{"text": p.Text})
}

func (e *encoder) ProcessEnvVariable(p dom.EnvVariablePart) {
	e.add(p.Type(), p.Source, map[string]any{"name": p.Name})
}

func (e *encoder) ProcessOptionName(p dom.OptionNamePart) {
	e.addOptionLike(p.Type(), p.Plugin, p.Entrypoint, p.Link, p.Name, p.Value, p.Source)
}

func (e *encoder) ProcessOptionValue(p dom.OptionValuePart) {
	e.add(p.Type(), p.Source, map[string]any{"value": p.Value})
}

func (e *encoder) ProcessPlugin(p dom.PluginPart) {
	e.add(p.Type(), p.Source, map[string]any{"plugin": p.Plugin})
}

func (e *encoder) ProcessReturnValue(p dom.ReturnValuePart) {
	e.addOptionLike(p.Type(), p.Plugin, p.Entrypoint, p.Link, p.Name, p.Value, p.Source)
}

// wirePart is the union of all part fields, used for decoding.
type wirePart struct {
	Plugin     *dom.PluginIdentifier `json:"plugin"`
	Value      *string               `json:"value"`
	Type       string                `json:"type"`
	Text       string                `json:"text"`
	Message    string                `json:"message"`
	URL        string                `json:"url"`
	Ref        string                `json:"ref"`
	FQCN       string                `json:"fqcn"`
	Name       string                `json:"name"`
	Entrypoint string                `json:"entrypoint"`
	Source     string                `json:"source"`
	Link       []string              `json:"link"`
}

// Unmarshal decodes a document encoded by [Marshal].
func Unmarshal(data []byte) ([]dom.Paragraph, error) {
	var doc [][]wirePart

	err := json.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	paragraphs := make([]dom.Paragraph, 0, len(doc))

	for i, wparts := range doc {
		paragraph := make(dom.Paragraph, 0, len(wparts))

		for j, wp := range wparts {
			part, err := wp.part()
			if err != nil {
				return nil, fmt.Errorf("paragraph %d, part %d: %w", i, j, err)
			}

			paragraph = append(paragraph, part)
		}

		paragraphs = append(paragraphs, paragraph)
	}

	return paragraphs, nil
}

func (wp wirePart) part() (dom.Part, error) {
	switch wp.Type {
	case dom.PartTypeError.String():
		return dom.ErrorPart{Message: wp.Message, Source: wp.Source}, nil
	case dom.PartTypeBold.String():
		return dom.BoldPart{Text: wp.Text, Source: wp.Source}, nil
	case dom.PartTypeCode.String():
		return dom.CodePart{Text: wp.Text, Source: wp.Source}, nil
	case dom.PartTypeHorizontalLine.String():
		return dom.HorizontalLinePart{Source: wp.Source}, nil
	case dom.PartTypeItalic.String():
		return dom.ItalicPart{Text: wp.Text, Source: wp.Source}, nil
	case dom.PartTypeLink.String():
		return dom.LinkPart{Text: wp.Text, URL: wp.URL, Source: wp.Source}, nil
	case dom.PartTypeModule.String():
		return dom.ModulePart{FQCN: wp.FQCN, Source: wp.Source}, nil
	case dom.PartTypeRSTRef.String():
		return dom.RSTRefPart{Text: wp.Text, Ref: wp.Ref, Source: wp.Source}, nil
	case dom.PartTypeURL.String():
		return dom.URLPart{URL: wp.URL, Source: wp.Source}, nil
	case dom.PartTypeText.String():
		return dom.TextPart{Text: wp.Text, Source: wp.Source}, nil
	case dom.PartTypeEnvVariable.String():
		return dom.EnvVariablePart{Name: wp.Name, Source: wp.Source}, nil
	case dom.PartTypeOptionName.String():
		return dom.OptionNamePart{
			Plugin: wp.Plugin, Entrypoint: wp.Entrypoint, Link: wp.Link, Name: wp.Name, Value: wp.Value,
			Source: wp.Source,
		}, nil
	case dom.PartTypeOptionValue.String():
		if wp.Value == nil {
			return nil, fmt.Errorf("%w: option value without value", ErrInvalidDocument)
		}

		return dom.OptionValuePart{Value: *wp.Value, Source: wp.Source}, nil
	case dom.PartTypePlugin.String():
		if wp.Plugin == nil {
			return nil, fmt.Errorf("%w: plugin reference without plugin", ErrInvalidDocument)
		}

		return dom.PluginPart{Plugin: *wp.Plugin, Source: wp.Source}, nil
	case dom.PartTypeReturnValue.String():
		return dom.ReturnValuePart{
			Plugin: wp.Plugin, Entrypoint: wp.Entrypoint, Link: wp.Link, Name: wp.Name, Value: wp.Value,
			Source: wp.Source,
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown part type %q", ErrInvalidDocument, wp.Type)
}

const (
	typeArray  = "array"
	typeObject = "object"
	typeString = "string"
)

func stringSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: typeString}
}

func pluginSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: typeObject,
		Properties: map[string]*jsonschema.Schema{
			"fqcn": stringSchema(),
			"type": stringSchema(),
		},
		Required:             []string{"fqcn", "type"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

// partSchema describes one part type. Required fields are listed first,
// optional ones after them.
func partSchema(t dom.PartType, required []string, optional ...string) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type: typeObject,
		Properties: map[string]*jsonschema.Schema{
			"type":   {Const: jsonschema.Ptr[any](t.String())},
			"source": stringSchema(),
		},
		Required:             append([]string{"type"}, required...),
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	for _, field := range slices.Concat(required, optional) {
		switch field {
		case "plugin":
			s.Properties[field] = pluginSchema()
		case "link":
			s.Properties[field] = &jsonschema.Schema{Type: typeArray, Items: stringSchema()}
		default:
			s.Properties[field] = stringSchema()
		}
	}

	return s
}

// Schema returns the JSON Schema of the encoding produced by [Marshal].
func Schema() *jsonschema.Schema {
	optionLike := []string{"name", "link"}

	return &jsonschema.Schema{
		Schema:      "https://json-schema.org/draft/2020-12/schema",
		Title:       "Documentation markup DOM",
		Description: "Paragraphs of parsed documentation markup.",
		Type:        typeArray,
		Items: &jsonschema.Schema{
			Type: typeArray,
			Items: &jsonschema.Schema{
				OneOf: []*jsonschema.Schema{
					partSchema(dom.PartTypeError, []string{"message"}),
					partSchema(dom.PartTypeBold, []string{"text"}),
					partSchema(dom.PartTypeCode, []string{"text"}),
					partSchema(dom.PartTypeHorizontalLine, nil),
					partSchema(dom.PartTypeItalic, []string{"text"}),
					partSchema(dom.PartTypeLink, []string{"text", "url"}),
					partSchema(dom.PartTypeModule, []string{"fqcn"}),
					partSchema(dom.PartTypeRSTRef, []string{"text", "ref"}),
					partSchema(dom.PartTypeURL, []string{"url"}),
					partSchema(dom.PartTypeText, []string{"text"}),
					partSchema(dom.PartTypeEnvVariable, []string{"name"}),
					partSchema(dom.PartTypeOptionName, optionLike, "plugin", "entrypoint", "value"),
					partSchema(dom.PartTypeOptionValue, []string{"value"}),
					partSchema(dom.PartTypePlugin, []string{"plugin"}),
					partSchema(dom.PartTypeReturnValue, optionLike, "plugin", "entrypoint", "value"),
				},
			},
		},
	}
}
