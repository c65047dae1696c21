package parser

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/docmarkup/dom"
)

// Flags holds CLI flag names for parser configuration.
type Flags struct {
	Errors         string
	OnlyClassic    string
	Strict         string
	AddSource      string
	HelpfulErrors  string
	Whitespace     string
	CurrentPlugin  string
	RoleEntrypoint string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:         f,
		Errors:        string(ErrorsMessage),
		Whitespace:    WhitespaceIgnore.String(),
		HelpfulErrors: true,
	}
}

// Config holds CLI flag values for parser configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Options] and [Config.Context] to pass
// the configuration to [Parse] or [ParseParagraphs].
type Config struct {
	Flags          Flags
	Errors         string
	Whitespace     string
	CurrentPlugin  string
	RoleEntrypoint string
	OnlyClassic    bool
	Strict         bool
	AddSource      bool
	HelpfulErrors  bool
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	f := Flags{
		Errors:         "errors",
		OnlyClassic:    "only-classic",
		Strict:         "strict",
		AddSource:      "add-source",
		HelpfulErrors:  "helpful-errors",
		Whitespace:     "whitespace",
		CurrentPlugin:  "current-plugin",
		RoleEntrypoint: "role-entrypoint",
	}

	return f.NewConfig()
}

// RegisterFlags adds parser flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Errors, c.Flags.Errors, c.Errors,
		fmt.Sprintf("handling of invalid markup, one of: %s", GetAllErrorModeStrings()))
	flags.BoolVar(&c.OnlyClassic, c.Flags.OnlyClassic, c.OnlyClassic,
		"only parse classic markup")
	flags.BoolVar(&c.Strict, c.Flags.Strict, c.Strict,
		"reject unnecessary escapes in semantic markup")
	flags.BoolVar(&c.AddSource, c.Flags.AddSource, c.AddSource,
		"record the source markup of every part")
	flags.BoolVar(&c.HelpfulErrors, c.Flags.HelpfulErrors, c.HelpfulErrors,
		"quote the offending markup in error messages")
	flags.StringVar(&c.Whitespace, c.Flags.Whitespace, c.Whitespace,
		fmt.Sprintf("whitespace handling, one of: %s", GetAllWhitespaceStrings()))
	flags.StringVar(&c.CurrentPlugin, c.Flags.CurrentPlugin, c.CurrentPlugin,
		"plugin being documented, as FQCN#type")
	flags.StringVar(&c.RoleEntrypoint, c.Flags.RoleEntrypoint, c.RoleEntrypoint,
		"role entrypoint being documented")
}

// RegisterCompletions registers shell completions for parser flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Errors,
		cobra.FixedCompletions(GetAllErrorModeStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Errors, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Whitespace,
		cobra.FixedCompletions(GetAllWhitespaceStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Whitespace, err)
	}

	return nil
}

// Options converts the flag values into parse options.
func (c *Config) Options() ([]Option, error) {
	mode, err := ParseErrorMode(c.Errors)
	if err != nil {
		return nil, err
	}

	ws, err := ParseWhitespace(c.Whitespace)
	if err != nil {
		return nil, err
	}

	return []Option{
		WithErrors(mode),
		WithWhitespace(ws),
		WithOnlyClassicMarkup(c.OnlyClassic),
		WithStrict(c.Strict),
		WithAddSource(c.AddSource),
		WithHelpfulErrors(c.HelpfulErrors),
	}, nil
}

// Context builds the parse [Context] from the current plugin and role
// entrypoint flags.
func (c *Config) Context() (Context, error) {
	ctx := Context{RoleEntrypoint: c.RoleEntrypoint}
	if c.CurrentPlugin == "" {
		return ctx, nil
	}

	plugin, err := dom.ParsePluginIdentifier(c.CurrentPlugin)
	if err != nil {
		return Context{}, fmt.Errorf("parsing %s: %w", c.Flags.CurrentPlugin, err)
	}

	ctx.CurrentPlugin = &plugin

	return ctx, nil
}
