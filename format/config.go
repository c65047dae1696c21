package format

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for output configuration.
type Flags struct {
	Format         string
	ParStart       string
	ParEnd         string
	ParSep         string
	ParEmpty       string
	PluginLink     string
	OptionLikeLink string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds CLI flag values for output configuration.
//
// Create instances with [NewConfig], set [Config.Registry], and register
// CLI flags with [Config.RegisterFlags]. Paragraph delimiter flags only
// override a renderer's defaults when they are given.
type Config struct {
	Flags          Flags
	Registry       Registry
	Format         string
	PluginLink     string
	OptionLikeLink string
	ParStart       OptionalString
	ParEnd         OptionalString
	ParSep         OptionalString
	ParEmpty       OptionalString
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Format:         "format",
		ParStart:       "par-start",
		ParEnd:         "par-end",
		ParSep:         "par-sep",
		ParEmpty:       "par-empty",
		PluginLink:     "plugin-link",
		OptionLikeLink: "option-link",
	}

	return f.NewConfig()
}

// RegisterFlags adds output flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Format, c.Flags.Format, "f", "rst",
		fmt.Sprintf("output format, one of: %s", c.Registry.Names()))
	flags.Var(&c.ParStart, c.Flags.ParStart, "string written before each paragraph")
	flags.Var(&c.ParEnd, c.Flags.ParEnd, "string written after each paragraph")
	flags.Var(&c.ParSep, c.Flags.ParSep, "string written between paragraphs")
	flags.Var(&c.ParEmpty, c.Flags.ParEmpty, "replacement for empty paragraphs")
	flags.StringVar(&c.PluginLink, c.Flags.PluginLink, "",
		"URL template for plugin links, e.g. https://example.com/{fqcn}_{type}.html")
	flags.StringVar(&c.OptionLikeLink, c.Flags.OptionLikeLink, "",
		"URL template for option and return value links, e.g. https://example.com/{fqcn}_{type}.html#{anchor}")
}

// RegisterCompletions registers shell completions for output flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{
		c.Flags.ParStart, c.Flags.ParEnd, c.Flags.ParSep, c.Flags.ParEmpty,
		c.Flags.PluginLink, c.Flags.OptionLikeLink,
	} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// Renderer returns the renderer selected by the format flag.
func (c *Config) Renderer() (Renderer, error) {
	return c.Registry.Get(c.Format)
}

// Options converts the flag values into render options.
func (c *Config) Options() []Option {
	var opts []Option

	if c.PluginLink != "" || c.OptionLikeLink != "" {
		opts = append(opts, WithLinkProvider(TemplateLinkProvider{
			Plugin:     c.PluginLink,
			OptionLike: c.OptionLikeLink,
		}))
	}

	if c.ParStart.IsSet {
		opts = append(opts, WithParStart(c.ParStart.Value))
	}

	if c.ParEnd.IsSet {
		opts = append(opts, WithParEnd(c.ParEnd.Value))
	}

	if c.ParSep.IsSet {
		opts = append(opts, WithParSep(c.ParSep.Value))
	}

	if c.ParEmpty.IsSet {
		opts = append(opts, WithParEmpty(c.ParEmpty.Value))
	}

	return opts
}

// OptionalString is a [pflag.Value] that remembers whether it was set, so
// that an explicitly empty value can be told apart from an absent flag.
type OptionalString struct {
	Value string
	IsSet bool
}

// String implements [pflag.Value].
func (s *OptionalString) String() string {
	return s.Value
}

// Set implements [pflag.Value].
func (s *OptionalString) Set(v string) error {
	s.Value = v
	s.IsSet = true

	return nil
}

// Type implements [pflag.Value].
func (s *OptionalString) Type() string {
	return "string"
}
