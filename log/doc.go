// Package log builds [log/slog] handlers from CLI flags.
//
// Three formats are supported: [FormatJSON] and [FormatLogfmt] use the
// standard library handlers, while [FormatText] writes leveled,
// human-readable lines through [charm.land/log/v2]. Levels are named by
// [Level].
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	if err != nil {
//		return err
//	}
//
//	slog.SetDefault(slog.New(handler))
package log
