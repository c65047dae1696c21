package parser

import (
	"fmt"
	"strings"

	"go.jacobcolvin.com/docmarkup/dom"
)

// ErrorMode selects what happens when a directive fails to parse.
type ErrorMode string

const (
	// ErrorsIgnore drops failed directives. Their markup is consumed and
	// contributes nothing to the paragraph.
	ErrorsIgnore ErrorMode = "ignore"
	// ErrorsMessage replaces failed directives with a [dom.ErrorPart].
	ErrorsMessage ErrorMode = "message"
	// ErrorsException aborts parsing and returns an [*Error].
	ErrorsException ErrorMode = "exception"
)

// ParseErrorMode parses an error mode string. Matching is case-insensitive.
func ParseErrorMode(s string) (ErrorMode, error) {
	mode := ErrorMode(strings.ToLower(s))
	switch mode {
	case ErrorsIgnore, ErrorsMessage, ErrorsException:
		return mode, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownErrorMode, s)
}

// GetAllErrorModeStrings returns all valid error mode strings.
func GetAllErrorModeStrings() []string {
	return []string{string(ErrorsIgnore), string(ErrorsMessage), string(ErrorsException)}
}

// Context carries information about the documentation being parsed. It
// determines what unqualified option and return value references point to.
type Context struct {
	// CurrentPlugin is the plugin whose documentation is being parsed.
	CurrentPlugin *dom.PluginIdentifier
	// RoleEntrypoint is the entrypoint being documented when CurrentPlugin
	// is a role.
	RoleEntrypoint string
}

type options struct {
	errors            ErrorMode
	whitespace        Whitespace
	onlyClassicMarkup bool
	strict            bool
	addSource         bool
	helpfulErrors     bool
}

func defaultOptions() options {
	return options{
		errors:        ErrorsMessage,
		helpfulErrors: true,
	}
}

// Option configures a parse call.
type Option func(*options)

// WithErrors sets the error mode. The default is [ErrorsMessage].
func WithErrors(mode ErrorMode) Option {
	return func(o *options) {
		o.errors = mode
	}
}

// WithOnlyClassicMarkup restricts parsing to the classic directives. Semantic
// directives are kept as plain text.
func WithOnlyClassicMarkup(only bool) Option {
	return func(o *options) {
		o.onlyClassicMarkup = only
	}
}

// WithStrict rejects unnecessary escapes in semantic directive parameters.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithAddSource records the markup each part was parsed from in its Source
// field.
func WithAddSource(add bool) Option {
	return func(o *options) {
		o.addSource = add
	}
}

// WithHelpfulErrors quotes the offending markup in error messages instead of
// naming only the directive. The default is true.
func WithHelpfulErrors(helpful bool) Option {
	return func(o *options) {
		o.helpfulErrors = helpful
	}
}

// WithWhitespace sets the whitespace normalization mode. The default is
// [WhitespaceIgnore].
func WithWhitespace(ws Whitespace) Option {
	return func(o *options) {
		o.whitespace = ws
	}
}
