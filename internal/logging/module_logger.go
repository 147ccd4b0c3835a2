package logging

import (
	"context"

	"github.com/camarabr/chamber-cms/pkg/interfaces"
)

const (
	rootModule          = "chamber"
	articlesModule      = "chamber.articles"
	blocksModule        = "chamber.blocks"
	translateModule     = "chamber.translate"
	autoTranslateModule = "chamber.autotranslate"
	mediaModule         = "chamber.media"
	eventsModule        = "chamber.events"
	commentsModule      = "chamber.comments"
	contactModule       = "chamber.contact"
	membershipModule    = "chamber.membership"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return logger
}

// ArticlesLogger returns the logger namespace reserved for article services.
func ArticlesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, articlesModule)
}

// BlocksLogger returns the logger namespace reserved for the block editor.
func BlocksLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, blocksModule)
}

// TranslateLogger returns the logger namespace reserved for the translation client.
func TranslateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, translateModule)
}

// AutoTranslateLogger returns the logger namespace reserved for the orchestrator.
func AutoTranslateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, autoTranslateModule)
}

// MediaLogger returns the logger namespace reserved for upload handling.
func MediaLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, mediaModule)
}

// EventsLogger returns the logger namespace reserved for event management.
func EventsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, eventsModule)
}

// CommentsLogger returns the logger namespace reserved for comment moderation.
func CommentsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commentsModule)
}

// ContactLogger returns the logger namespace reserved for contact submissions.
func ContactLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contactModule)
}

// MembershipLogger returns the logger namespace reserved for membership workflows.
func MembershipLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, membershipModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
