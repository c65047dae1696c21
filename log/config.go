package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags names the CLI flags bound by a [Config].
type Flags struct {
	Level  string
	Format string
}

// NewConfig creates a [Config] bound to these flag names, defaulting to
// [LevelWarn] and [FormatText].
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:  f,
		Level:  string(LevelWarn),
		Format: string(FormatText),
	}
}

// Config holds the log level and format selected on the command line.
// Values stay strings until [Config.NewHandler] parses them, so that bad
// flag values surface as a command error rather than a flag parse error.
type Config struct {
	Flags  Flags
	Level  string
	Format string
}

// NewConfig returns a [Config] bound to --log-level and --log-format.
func NewConfig() *Config {
	return Flags{Level: "log-level", Format: "log-format"}.NewConfig()
}

// RegisterFlags adds the log flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, c.Format,
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
}

// RegisterCompletions completes the level and format flags of cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for flag, values := range map[string][]string{
		c.Flags.Level:  GetAllLevelStrings(),
		c.Flags.Format: GetAllFormatStrings(),
	} {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewHandler parses the configured level and format and returns a
// [slog.Handler] writing to w.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}
