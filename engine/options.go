package engine

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

// LogConfig selects the level/format/output a Logger writes to, in the
// shape the pack's logger package establishes: file output is routed
// through lumberjack for rotation, everything else goes straight to an
// os.File.
type LogConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Format     string `yaml:"format"`      // json, text
	Output     string `yaml:"output"`      // stdout, stderr, file
	FilePath   string `yaml:"file_path"`
	MaxSize    int    `yaml:"max_size"`    // MB
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`     // days
	Compress   bool   `yaml:"compress"`
}

// NewLogger builds a *slog.Logger from cfg. Unlike the pack's logger
// package, which installs a process-wide global, Compute's caller owns
// the returned logger and threads it explicitly through Options.
func NewLogger(cfg LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var writer io.Writer
	switch cfg.Output {
	case "stderr":
		writer = os.Stderr
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/engine.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			writer = os.Stdout
		} else {
			writer = &lumberjack.Logger{
				Filename:   path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
		}
	default:
		writer = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(writer, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}
	return slog.New(handler)
}

// discardLogger is the default Logger: silent, so a caller that never
// touches Options still gets a valid, non-nil slog.Logger.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Options bundles the ambient stack Compute threads through every
// algorithm driver.
type Options struct {
	Logger              *slog.Logger
	Metrics             *Recorder
	Tracer              trace.Tracer
	RunID               string
	VerifyRelaxedStable bool
}

// DefaultOptions returns a silent, unmeasured, untraced configuration:
// safe for a caller that only wants the matching itself.
func DefaultOptions() Options {
	return Options{
		Logger:  discardLogger(),
		Metrics: NewNoopRecorder(),
		Tracer:  otel.Tracer("github.com/clasmatch/clasmatch/engine"),
	}
}

func (o Options) normalize() Options {
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	if o.Metrics == nil {
		o.Metrics = NewNoopRecorder()
	}
	if o.Tracer == nil {
		o.Tracer = otel.Tracer("github.com/clasmatch/clasmatch/engine")
	}
	return o
}

// fileConfig is the YAML shape LoadOptions reads. It never names an
// algorithm: selecting CPM/CRMM/RSM stays the caller's job, same as
// parsing the bipartite instance itself.
type fileConfig struct {
	Log                 LogConfig `yaml:"log"`
	MetricsNamespace    string    `yaml:"metrics_namespace"`
	VerifyRelaxedStable bool      `yaml:"verify_relaxed_stable"`
}

// LoadOptions reads log level/format/output, a Prometheus metrics
// namespace, and the relaxed-stability verification toggle from a YAML
// file at path. Metrics is a fresh Recorder under the loaded namespace;
// Tracer is the global otel tracer for this package; RunID is left blank
// for Compute to fill in.
func LoadOptions(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("engine: LoadOptions(%q): %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Options{}, fmt.Errorf("engine: LoadOptions(%q): %w", path, err)
	}
	return Options{
		Logger:              NewLogger(fc.Log),
		Metrics:             NewRecorder(fc.MetricsNamespace),
		Tracer:              otel.Tracer("github.com/clasmatch/clasmatch/engine"),
		VerifyRelaxedStable: fc.VerifyRelaxedStable,
	}.normalize(), nil
}
