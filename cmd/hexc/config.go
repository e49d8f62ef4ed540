package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/unkn0wn-root/hexcodec/handler"
)

type config struct {
	Decode  bool
	Handler handler.Message
	Logger  string // zap | logrus | slog
	Level   string
}

type fileConfig struct {
	Decode         bool   `toml:"decode"`
	MaxMessageSize int64  `toml:"max_message_size"`
	Logger         string `toml:"logger"`
	Level          string `toml:"level"`
}

func defaultConfig() config {
	return config{
		Handler: handler.Default(),
		Logger:  "zap",
		Level:   "info",
	}
}

func loadFileConfig(path string, cfg *config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load hexc config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load hexc config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("decode") {
		cfg.Decode = raw.Decode
	}
	if meta.IsDefined("max_message_size") {
		cfg.Handler.MaxMessageSize = raw.MaxMessageSize
	}
	if meta.IsDefined("logger") {
		cfg.Logger = strings.ToLower(strings.TrimSpace(raw.Logger))
	}
	if meta.IsDefined("level") {
		cfg.Level = strings.ToLower(strings.TrimSpace(raw.Level))
	}
	return nil
}

type flagValues struct {
	configPath string
	decode     bool
	max        int64
	logger     string
	level      string
}

func newFlagSet(v *flagValues) *flag.FlagSet {
	fs := flag.NewFlagSet("hexc", flag.ContinueOnError)
	fs.StringVar(&v.configPath, "config", "", "optional TOML config file")
	fs.BoolVar(&v.decode, "d", false, "decode hex from stdin instead of encoding")
	fs.Int64Var(&v.max, "max", handler.Unlimited, "maximum input size in bytes, -1 for no limit")
	fs.StringVar(&v.logger, "log", "zap", "logger backend: zap|logrus|slog")
	fs.StringVar(&v.level, "level", "info", "log level: debug|info|warn|error")
	return fs
}

// resolveConfig layers defaults, the config file and explicitly set flags,
// in that order.
func resolveConfig(args []string) (config, error) {
	var v flagValues
	fs := newFlagSet(&v)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := defaultConfig()
	if v.configPath != "" {
		if err := loadFileConfig(v.configPath, &cfg); err != nil {
			return config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.Decode = v.decode
		case "max":
			cfg.Handler.MaxMessageSize = v.max
		case "log":
			cfg.Logger = strings.ToLower(v.logger)
		case "level":
			cfg.Level = strings.ToLower(v.level)
		}
	})

	if err := cfg.Handler.Validate(); err != nil {
		return config{}, err
	}
	switch cfg.Logger {
	case "zap", "logrus", "slog":
	default:
		return config{}, fmt.Errorf("unknown logger %q", cfg.Logger)
	}
	return cfg, nil
}
