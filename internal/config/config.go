// Package config implements aetheld's flag/file configuration surface,
// following the same kong.CLI-plus-initSlog shape
// _examples/banksean-sand/cmd/sand/main.go uses for its own command line,
// generalized from a one-shot CLI's subcommand tree to a long-running
// daemon's flag set.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
	"gopkg.in/natefinch/lumberjack.v2"
)

// CLI is aetheld's top-level flag set. A YAML config file at ConfigFile
// (default unset) is merged in by kong-yaml before flags/env, the same
// precedence order cmd/sand's kong.Configuration(kong.JSON, ...) uses.
type CLI struct {
	ConfigFile string `name:"config" placeholder:"<path>" help:"YAML config file merged in before flags/env"`

	ImagesDir string `default:"./images" help:"directory containing OCI image layouts and prebuilt rootfs/ directories"`
	RootfsDir string `default:"./rootfs" help:"directory containing each image's materialized rootfs"`

	BridgeName string `default:"aethel0" help:"host bridge name (not read by the network provisioner, which always uses aethel0)"`
	SubnetCIDR string `default:"172.29.0.0/24" help:"container subnet (not read by the network provisioner, which always uses 172.29.0.0/24)"`

	ListenAddr string `default:"[::1]:50051" help:"address the gRPC control-plane server listens on"`

	LogFile    string `default:"" placeholder:"<path>" help:"log file path (leave empty to log to stderr)"`
	LogLevel   string `default:"info" placeholder:"<debug|info|warn|error>" help:"logging level"`
	LogMaxSize int    `default:"100" help:"max log file size in megabytes before rotation (lumberjack)"`
	LogMaxAge  int    `default:"28" help:"max days to retain rotated log files"`
	LogBackups int    `default:"5" help:"max number of rotated log files to retain"`

	OTLPEndpoint string `default:"" placeholder:"<host:port>" help:"OTLP/gRPC trace collector endpoint (leave empty to disable tracing)"`
}

// Parse parses os.Args (via kong) into a CLI, merging ConfigFile's YAML
// contents first when one is named on the command line.
func Parse(args []string) (*CLI, error) {
	var cli CLI

	// kong-yaml's loader needs the config path before kong has parsed
	// flags, so do a cheap first pass to find --config the same way
	// cmd/sand's initSlog inspects cctx.Command() before the real Run.
	configPath := extractConfigFlag(args)

	opts := []kong.Option{kong.Name("aetheld"), kong.Description("minimal Linux container runtime and control plane")}
	if configPath != "" {
		opts = append(opts, kong.Configuration(kongyaml.Loader, configPath))
	}

	parser, err := kong.New(&cli, opts...)
	if err != nil {
		return nil, fmt.Errorf("building flag parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	return &cli, nil
}

func extractConfigFlag(args []string) string {
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if len(a) > len("--config=") && a[:len("--config=")] == "--config=" {
			return a[len("--config="):]
		}
	}
	return ""
}

// InitLogging builds the daemon's *slog.Logger per LogFile/LogLevel,
// rotating via lumberjack when LogFile is set (the teacher's go.mod
// carries lumberjack as a direct dependency but cmd/sand itself just
// truncate-opens a plain os.File; aetheld is long-running, so rotation is
// the real requirement lumberjack exists to solve). Mirrors initSlog's
// JSON-handler-plus-slog.SetDefault shape.
func InitLogging(c *CLI) *slog.Logger {
	level := parseLevel(c.LogLevel)

	var w io.Writer
	if c.LogFile == "" {
		w = os.Stderr
	} else {
		if dir := filepath.Dir(c.LogFile); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		w = &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    c.LogMaxSize,
			MaxAge:     c.LogMaxAge,
			MaxBackups: c.LogBackups,
		}
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
