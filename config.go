package chambercms

import (
	"errors"
	"time"

	"github.com/camarabr/chamber-cms/autotranslate"
	"github.com/camarabr/chamber-cms/internal/logging/gologger"
)

var (
	// ErrTranslationEndpointRequired is returned when auto-translation is
	// configured without the remote endpoint URL.
	ErrTranslationEndpointRequired = errors.New("chambercms: translation endpoint required")
)

// TranslationConfig tunes the auto-translation pipeline.
type TranslationConfig struct {
	// Endpoint is the URL of the hosted translate-content function.
	Endpoint string
	// TitleDebounce, ExcerptDebounce and BlocksDebounce override the
	// per-field-group debounce windows. Zero keeps the default.
	TitleDebounce   time.Duration
	ExcerptDebounce time.Duration
	BlocksDebounce  time.Duration
}

// LoggingConfig aliases the gologger provider configuration.
type LoggingConfig = gologger.Config

// Config is the module configuration.
type Config struct {
	Logging     LoggingConfig
	Translation TranslationConfig
}

// DefaultConfig returns the configuration used when the host passes nothing.
func DefaultConfig() Config {
	return Config{
		Logging: gologger.Config{
			Level:  "info",
			Format: "console",
		},
		Translation: TranslationConfig{
			TitleDebounce:   autotranslate.DefaultTitleDebounce,
			ExcerptDebounce: autotranslate.DefaultExcerptDebounce,
			BlocksDebounce:  autotranslate.DefaultBlocksDebounce,
		},
	}
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.Translation.Endpoint == "" {
		return ErrTranslationEndpointRequired
	}
	return nil
}
