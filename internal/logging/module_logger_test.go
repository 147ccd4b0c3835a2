package logging_test

import (
	"context"
	"testing"

	"github.com/camarabr/chamber-cms/internal/logging"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
)

type recordingProvider struct {
	requested []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return &recordingLogger{}
}

type recordingLogger struct {
	fields map[string]any
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	return &recordingLogger{fields: fields}
}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return l
}

func TestModuleLoggerRequestsNamespace(t *testing.T) {
	provider := &recordingProvider{}

	logger := logging.ArticlesLogger(provider)
	if logger == nil {
		t.Fatal("expected a logger")
	}
	if len(provider.requested) != 1 || provider.requested[0] != "chamber.articles" {
		t.Fatalf("requested namespaces %v", provider.requested)
	}

	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields-capable logger, got %T", logger)
	}
	if rec.fields["module"] != "chamber.articles" {
		t.Fatalf("module field missing: %v", rec.fields)
	}
}

func TestModuleLoggerWithoutProvider(t *testing.T) {
	logger := logging.ModuleLogger(nil, "chamber.translate")
	if logger == nil {
		t.Fatal("nil provider should still yield a usable logger")
	}
	// Must not panic.
	logger.Info("message", "key", "value")
}
