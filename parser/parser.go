package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.jacobcolvin.com/docmarkup/dom"
)

// Sentinel errors returned by the parser.
var (
	ErrInvalidMarkup     = errors.New("invalid markup")
	ErrUnknownErrorMode  = errors.New("unknown error mode")
	ErrUnknownWhitespace = errors.New("unknown whitespace mode")
)

// Error is returned in [ErrorsException] mode. Its message has the form
//
//	While parsing <markup> at index <n>[ of paragraph <k>]: <detail>
//
// and matches the message of the [dom.ErrorPart] that [ErrorsMessage] mode
// would have produced.
type Error struct {
	// Message is the complete error message.
	Message string
	// Detail is the failure reason without position information.
	Detail string
	// Source is the markup that failed to parse.
	Source string
	// Paragraph is the 1-based paragraph number, or 0 for single-string
	// input.
	Paragraph int
	// Index is the 1-based character offset of the directive.
	Index int
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns [ErrInvalidMarkup].
func (e *Error) Unwrap() error {
	return ErrInvalidMarkup
}

var (
	classicParser  = New(filterCommands(Commands(), true))
	semanticParser = New(Commands())
)

func filterCommands(cmds []Command, classicOnly bool) []Command {
	var out []Command

	for _, cmd := range cmds {
		if !classicOnly || cmd.Classic {
			out = append(out, cmd)
		}
	}

	return out
}

// Parser scans paragraphs for a fixed set of directives. It holds no mutable
// state and is safe for concurrent use.
//
// Create instances with [New].
type Parser struct {
	re       *regexp.Regexp
	commands map[string]Command
}

// New creates a [Parser] recognizing cmds. Earlier commands take precedence
// when tokens overlap. A parser without commands treats all input as text.
//
// A token only counts when it does not directly follow a letter, number,
// or underscore. Zero-parameter tokens must not be directly followed by
// one either. Letters and numbers are Unicode-aware, so "äB(x)" is text.
func New(cmds []Command) *Parser {
	p := &Parser{commands: make(map[string]Command, len(cmds))}
	if len(cmds) == 0 {
		return p
	}

	alternatives := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		key := cmd.Name
		pattern := regexp.QuoteMeta(cmd.Name)

		if cmd.Parameters > 0 {
			key += "("
			pattern += `\(`
		}

		p.commands[key] = cmd
		alternatives = append(alternatives, pattern)
	}

	p.re = regexp.MustCompile("(?:" + strings.Join(alternatives, "|") + ")")

	return p
}

// Parse parses text as a single paragraph. An empty text yields no
// paragraphs at all.
func Parse(text string, ctx Context, opts ...Option) ([]dom.Paragraph, error) {
	if text == "" {
		return []dom.Paragraph{}, nil
	}

	return parse([]string{text}, false, ctx, opts)
}

// ParseParagraphs parses each element of texts as one paragraph. The result
// has the same length and order as texts. Error messages name the
// paragraph the error occurred in.
func ParseParagraphs(texts []string, ctx Context, opts ...Option) ([]dom.Paragraph, error) {
	return parse(texts, true, ctx, opts)
}

func parse(texts []string, numbered bool, ctx Context, opts []Option) ([]dom.Paragraph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := semanticParser
	if o.onlyClassicMarkup {
		p = classicParser
	}

	result := make([]dom.Paragraph, 0, len(texts))

	for i, text := range texts {
		paragraph := 0
		if numbered {
			paragraph = i + 1
		}

		par, err := p.parseString(text, ctx, &o, paragraph)
		if err != nil {
			return nil, err
		}

		result = append(result, par)
	}

	return result, nil
}

// ParseString parses text as one paragraph with this parser's commands.
func (p *Parser) ParseString(text string, ctx Context, opts ...Option) (dom.Paragraph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return p.parseString(text, ctx, &o, 0)
}

func (p *Parser) parseString(text string, ctx Context, o *options, paragraph int) (dom.Paragraph, error) {
	result := dom.Paragraph{}
	index := 0

	for index < len(text) {
		start, end, cmd, ok := p.next(text, index)
		if !ok {
			result = appendText(result, text[index:], o)

			break
		}

		gap := text[index:start]
		if cmd.StripSurroundingWhitespace {
			gap = strings.TrimRight(gap, " \t")
		}

		result = appendText(result, gap, o)

		var err error

		result, index, err = p.parseCommand(result, text, cmd, start, end, ctx, o, paragraph)
		if err != nil {
			return nil, err
		}

		if cmd.StripSurroundingWhitespace {
			for index < len(text) && (text[index] == ' ' || text[index] == '\t') {
				index++
			}
		}
	}

	return result, nil
}

// next finds the first directive token at or after from. Tokens glued to
// a word character are skipped.
func (p *Parser) next(text string, from int) (int, int, Command, bool) {
	if p.re == nil {
		return 0, 0, Command{}, false
	}

	for from < len(text) {
		loc := p.re.FindStringIndex(text[from:])
		if loc == nil {
			break
		}

		start, end := from+loc[0], from+loc[1]
		cmd := p.commands[text[start:end]]

		if !isWordRune(lastRune(text[:start])) && (cmd.Parameters > 0 || !isWordRune(firstRune(text[end:]))) {
			return start, end, cmd, true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}

	return 0, 0, Command{}, false
}

// isWordRune reports whether r is a letter, a number, or "_".
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func lastRune(s string) rune {
	if s == "" {
		return utf8.RuneError
	}

	r, _ := utf8.DecodeLastRuneInString(s)

	return r
}

func firstRune(s string) rune {
	if s == "" {
		return utf8.RuneError
	}

	r, _ := utf8.DecodeRuneInString(s)

	return r
}

func appendText(result dom.Paragraph, text string, o *options) dom.Paragraph {
	if text == "" {
		return result
	}

	part := dom.TextPart{Text: processWhitespace(text, o.whitespace, false, false)}
	if o.addSource {
		part.Source = text
	}

	return append(result, part)
}

// parseCommand parses the directive cmd whose token spans text[start:end]
// and returns the index at which scanning resumes.
func (p *Parser) parseCommand(
	result dom.Paragraph, text string, cmd Command, start, end int,
	ctx Context, o *options, paragraph int,
) (dom.Paragraph, int, error) {
	var (
		params []string
		detail string
	)

	switch {
	case cmd.Parameters == 0:
	case cmd.Escaped:
		params, end, detail = parseParametersEscaped(text, end, cmd.Parameters, o.strict)
	default:
		params, end, detail = parseParametersUnescaped(text, end, cmd.Parameters)
	}

	raw := text[start:end]

	source := ""
	if o.addSource {
		source = raw
	}

	if detail == "" {
		part, err := cmd.Parse(params, ctx, source, o.whitespace)
		if err == nil {
			return append(result, part), end, nil
		}

		detail = err.Error()
	}

	markup := cmd.Name
	if cmd.Parameters > 0 {
		markup += "()"
	}

	if o.helpfulErrors {
		markup = `"` + raw + `"`
	}

	e := &Error{
		Detail:    detail,
		Source:    raw,
		Paragraph: paragraph,
		Index:     utf8.RuneCountInString(text[:start]) + 1,
	}

	where := ""
	if paragraph > 0 {
		where = " of paragraph " + strconv.Itoa(paragraph)
	}

	e.Message = fmt.Sprintf("While parsing %s at index %d%s: %s", markup, e.Index, where, detail)

	switch o.errors {
	case ErrorsIgnore:
		slog.Debug("dropping invalid markup",
			slog.String("markup", raw),
			slog.String("error", e.Message),
		)
	case ErrorsException:
		return nil, end, e
	default:
		result = append(result, dom.ErrorPart{Message: e.Message, Source: source})
	}

	return result, end, nil
}
