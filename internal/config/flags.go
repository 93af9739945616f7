package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagOrder  = flag.Int("order", 0, "SH band order (2-6)")
	flagFormat = flag.String("format", "", "Output format: text or yaml")
)

// ParseFlags parses the global command-line flags, which come before the
// subcommand. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after the global flags: the subcommand
// and its own arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOrder > 0 {
		cfg.SH.Order = *flagOrder
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
}
