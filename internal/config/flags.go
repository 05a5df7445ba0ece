package config

import "flag"

// Flags holds the CLI overrides shared by every subcommand. Each
// subcommand registers them on its own FlagSet, so there is no package
// state tied to the global flag set.
type Flags struct {
	ConfigPath string
	Debug      bool
	Quiet      bool
	Precision  int
}

// RegisterFlags registers the shared config flags on fs and returns the
// destination struct, to be passed to Load after fs.Parse.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Quiet, "quiet", false, "Log errors only")
	fs.IntVar(&f.Precision, "precision", 0, "Decimal places for written coordinates")
	return f
}

// apply overlays parsed flag values onto the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Quiet {
		cfg.Logging.Level = "error"
	}
	if f.Precision > 0 {
		cfg.Output.Precision = f.Precision
	}
}
