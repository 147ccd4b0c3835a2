// Package gologger adapts goliatone/go-logger to the logging contract the
// chamber services consume. The site runs two shapes: JSON when hosted and a
// console logger for local editing sessions.
package gologger

import (
	"context"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/camarabr/chamber-cms/internal/logging"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
)

// Config selects the root logger shape.
type Config struct {
	// Level is one of trace, debug, info, warn, error or fatal. Empty keeps
	// go-logger's default.
	Level string
	// Format is console, json or pretty. Empty means console.
	Format string
}

var levels = map[string]string{
	"trace": glog.Trace,
	"debug": glog.Debug,
	"info":  glog.Info,
	"warn":  glog.Warn,
	"error": glog.Error,
	"fatal": glog.Fatal,
}

// Provider hands out named child loggers backed by go-logger.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the root logger. An unknown level or format is a
// configuration mistake and fails loudly instead of logging everything.
func NewProvider(cfg Config) (*Provider, error) {
	opts := make([]glog.Option, 0, 2)

	if cfg.Level != "" {
		level, ok := levels[strings.ToLower(cfg.Level)]
		if !ok {
			return nil, fmt.Errorf("logging: unknown level %q", cfg.Level)
		}
		opts = append(opts, glog.WithLevel(level))
	}

	switch cfg.Format {
	case "", "console":
		opts = append(opts, glog.WithLoggerTypeConsole())
	case "json":
		opts = append(opts, glog.WithLoggerTypeJSON())
	case "pretty":
		opts = append(opts, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	return &Provider{root: glog.NewLogger(opts...)}, nil
}

// GetLogger returns the child logger for a module namespace.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return &adapter{inner: p.root}
	}
	return &adapter{inner: p.root.GetLogger(name)}
}

type adapter struct {
	inner glog.Logger
}

func (l *adapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *adapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	with, ok := l.inner.(glog.FieldsLogger)
	if !ok {
		return l
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &adapter{inner: with.WithFields(copied)}
}

func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return &adapter{inner: l.inner.WithContext(ctx)}
}
