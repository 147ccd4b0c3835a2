package gologger

import "testing"

func TestNewProviderBuildsEveryFormat(t *testing.T) {
	for _, format := range []string{"", "console", "json", "pretty"} {
		p, err := NewProvider(Config{Level: "debug", Format: format})
		if err != nil {
			t.Fatalf("format %q: %v", format, err)
		}
		if p.GetLogger("chamber.articles") == nil {
			t.Fatalf("format %q: no logger", format)
		}
	}
}

func TestNewProviderRejectsUnknownSettings(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if _, err := NewProvider(Config{Level: "loud"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNilProviderYieldsNoOpLogger(t *testing.T) {
	var p *Provider

	logger := p.GetLogger("chamber.articles")
	if logger == nil {
		t.Fatal("nil provider should still yield a logger")
	}
	// Must not panic.
	logger.Info("message", "key", "value")
}
