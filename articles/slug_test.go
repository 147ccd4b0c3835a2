package articles_test

import (
	"testing"
	"time"

	"github.com/camarabr/chamber-cms/articles"
)

func TestSlugifyStripsAccentsAndPunctuation(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Acordo Brasil-Rússia 2025!", "acordo-brasil-russia-2025"},
		{"Câmara de Comércio", "camara-de-comercio"},
		{"  Feira   de Negócios  ", "feira-de-negocios"},
		{"São Paulo & Moscou: parceria", "sao-paulo-moscou-parceria"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := articles.Slugify(tc.title); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugifyDropsNonLatinScript(t *testing.T) {
	if got := articles.Slugify("Россия 2025"); got != "2025" {
		t.Fatalf("expected cyrillic runes dropped, got %q", got)
	}
}

func TestFallbackSlug(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	got := articles.FallbackSlug(now, "abc123")
	if got != "artigo-1700000000000-abc123" {
		t.Fatalf("unexpected fallback slug %q", got)
	}
}
