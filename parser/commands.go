package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.jacobcolvin.com/docmarkup/dom"
)

const ignoreMarker = "ignore:"

var (
	// arrayStubRegex matches array index stubs such as "[1]" or "[]" in
	// option and return value names.
	arrayStubRegex = regexp.MustCompile(`\[[^\]]*\]`)

	// fqcnTypePrefixRegex matches a leading "FQCN#type:" plugin reference.
	fqcnTypePrefixRegex = regexp.MustCompile(`^([^.]+\.[^.]+\.[^#]+)#([^:]+):(.*)$`)
)

// ParseFunc builds a part from the parameters of one directive occurrence.
// Returned errors become the detail of the formatted parse error.
type ParseFunc func(params []string, ctx Context, source string, ws Whitespace) (dom.Part, error)

// Command describes one directive.
type Command struct {
	// Parse builds the part for an occurrence of this directive.
	Parse ParseFunc
	// Name is the directive token, for example "B" or "RV".
	Name string
	// Parameters is the number of comma-separated parameters. Zero-parameter
	// directives are written as a bare token without parentheses.
	Parameters int
	// Escaped selects the backslash-escaping parameter lexer.
	Escaped bool
	// StripSurroundingWhitespace removes spaces and tabs directly before and
	// after the directive.
	StripSurroundingWhitespace bool
	// Classic marks directives of the classic markup family.
	Classic bool
}

// Commands returns the built-in directive table. The slice is a copy and
// may be filtered or extended before passing it to [New].
func Commands() []Command {
	return []Command{
		{Name: "I", Parameters: 1, Classic: true, Parse: parseItalic},
		{Name: "B", Parameters: 1, Classic: true, Parse: parseBold},
		{Name: "M", Parameters: 1, Classic: true, Parse: parseModule},
		{Name: "U", Parameters: 1, Classic: true, Parse: parseURL},
		{Name: "L", Parameters: 2, Classic: true, Parse: parseLink},
		{Name: "R", Parameters: 2, Classic: true, Parse: parseRSTRef},
		{Name: "C", Parameters: 1, Classic: true, Parse: parseCode},
		{Name: "HORIZONTALLINE", StripSurroundingWhitespace: true, Classic: true, Parse: parseHorizontalLine},
		{Name: "P", Parameters: 1, Escaped: true, Parse: parsePlugin},
		{Name: "E", Parameters: 1, Escaped: true, Parse: parseEnvVariable},
		{Name: "V", Parameters: 1, Escaped: true, Parse: parseOptionValue},
		{Name: "O", Parameters: 1, Escaped: true, Parse: parseOptionName},
		{Name: "RV", Parameters: 1, Escaped: true, Parse: parseReturnValue},
	}
}

// Classic markup.

func parseItalic(params []string, _ Context, source string, ws Whitespace) (dom.Part, error) {
	return dom.ItalicPart{Text: processWhitespace(params[0], ws, false, true), Source: source}, nil
}

func parseBold(params []string, _ Context, source string, ws Whitespace) (dom.Part, error) {
	return dom.BoldPart{Text: processWhitespace(params[0], ws, false, true), Source: source}, nil
}

func parseModule(params []string, _ Context, source string, _ Whitespace) (dom.Part, error) {
	fqcn := params[0]
	if !dom.IsFQCN(fqcn) {
		return nil, fmt.Errorf(`Module name "%s" is not a FQCN`, fqcn)
	}

	return dom.ModulePart{FQCN: fqcn, Source: source}, nil
}

func parseURL(params []string, _ Context, source string, _ Whitespace) (dom.Part, error) {
	return dom.URLPart{URL: params[0], Source: source}, nil
}

func parseLink(params []string, _ Context, source string, ws Whitespace) (dom.Part, error) {
	return dom.LinkPart{
		Text:   processWhitespace(params[0], ws, false, true),
		URL:    params[1],
		Source: source,
	}, nil
}

func parseRSTRef(params []string, _ Context, source string, ws Whitespace) (dom.Part, error) {
	return dom.RSTRefPart{
		Text:   processWhitespace(params[0], ws, false, true),
		Ref:    params[1],
		Source: source,
	}, nil
}

func parseCode(params []string, _ Context, source string, ws Whitespace) (dom.Part, error) {
	return dom.CodePart{Text: processWhitespace(params[0], ws, true, true), Source: source}, nil
}

func parseHorizontalLine(_ []string, _ Context, source string, _ Whitespace) (dom.Part, error) {
	return dom.HorizontalLinePart{Source: source}, nil
}

// Semantic markup.

func parsePlugin(params []string, _ Context, source string, _ Whitespace) (dom.Part, error) {
	name := params[0]

	fqcn, typ, ok := strings.Cut(name, "#")
	if !ok {
		return nil, fmt.Errorf(`Parameter "%s" is not of the form FQCN#type`, name)
	}

	plugin, err := newPlugin(fqcn, typ)
	if err != nil {
		return nil, err
	}

	return dom.PluginPart{Plugin: plugin, Source: source}, nil
}

func parseEnvVariable(params []string, _ Context, source string, ws Whitespace) (dom.Part, error) {
	return dom.EnvVariablePart{Name: processWhitespace(params[0], ws, true, true), Source: source}, nil
}

func parseOptionValue(params []string, _ Context, source string, ws Whitespace) (dom.Part, error) {
	return dom.OptionValuePart{Value: processWhitespace(params[0], ws, true, true), Source: source}, nil
}

func parseOptionName(params []string, ctx Context, source string, ws Whitespace) (dom.Part, error) {
	ol, err := parseOptionLike(processWhitespace(params[0], ws, true, true), ctx)
	if err != nil {
		return nil, err
	}

	return dom.OptionNamePart{
		Plugin:     ol.plugin,
		Entrypoint: ol.entrypoint,
		Link:       ol.link,
		Name:       ol.name,
		Value:      ol.value,
		Source:     source,
	}, nil
}

func parseReturnValue(params []string, ctx Context, source string, ws Whitespace) (dom.Part, error) {
	ol, err := parseOptionLike(processWhitespace(params[0], ws, true, true), ctx)
	if err != nil {
		return nil, err
	}

	return dom.ReturnValuePart{
		Plugin:     ol.plugin,
		Entrypoint: ol.entrypoint,
		Link:       ol.link,
		Name:       ol.name,
		Value:      ol.value,
		Source:     source,
	}, nil
}

// newPlugin validates a plugin reference, reporting failures with the
// wording used in directive error messages.
func newPlugin(fqcn, typ string) (dom.PluginIdentifier, error) {
	if !dom.IsFQCN(fqcn) {
		return dom.PluginIdentifier{}, fmt.Errorf(`Plugin name "%s" is not a FQCN`, fqcn)
	}

	if !dom.IsPluginType(typ) {
		return dom.PluginIdentifier{}, fmt.Errorf(`Plugin type "%s" is not valid`, typ)
	}

	return dom.PluginIdentifier{FQCN: fqcn, Type: typ}, nil
}

type optionLike struct {
	plugin     *dom.PluginIdentifier
	value      *string
	entrypoint string
	name       string
	link       []string
}

// parseOptionLike parses the shared syntax of O() and RV():
//
//	[FQCN#type:|ignore:][entrypoint:]name[=value]
//
// Without a plugin prefix the plugin and role entrypoint come from ctx.
func parseOptionLike(text string, ctx Context) (optionLike, error) {
	var (
		ol              optionLike
		entrypointGiven bool
	)

	if name, value, ok := strings.Cut(text, "="); ok {
		text = name
		ol.value = &value
	}

	if m := fqcnTypePrefixRegex.FindStringSubmatch(text); m != nil {
		plugin, err := newPlugin(m[1], m[2])
		if err != nil {
			return optionLike{}, err
		}

		ol.plugin = &plugin
		text = m[3]
	} else if rest, ok := strings.CutPrefix(text, ignoreMarker); ok {
		text = rest
	} else {
		if ctx.CurrentPlugin != nil {
			plugin := *ctx.CurrentPlugin
			ol.plugin = &plugin
		}

		ol.entrypoint = ctx.RoleEntrypoint
		entrypointGiven = ctx.RoleEntrypoint != ""
	}

	if ol.plugin != nil && ol.plugin.Type == "role" {
		if entrypoint, rest, ok := strings.Cut(text, ":"); ok {
			ol.entrypoint = entrypoint
			entrypointGiven = true
			text = rest
		}

		// An explicit "FQCN#role::name" names the empty entrypoint.
		if !entrypointGiven {
			return optionLike{}, errors.New("Role reference is missing entrypoint")
		}
	}

	if strings.ContainsAny(text, ":#") {
		return optionLike{}, fmt.Errorf(`Invalid option/return value name "%s"`, text)
	}

	ol.name = text
	ol.link = strings.Split(arrayStubRegex.ReplaceAllString(text, ""), ".")

	return ol, nil
}
