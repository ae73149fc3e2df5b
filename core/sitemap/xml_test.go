package sitemap

import (
	"strings"
	"testing"
	"time"

	"sitemap-app-api/core/domain"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a&b", "a&amp;b"},
		{"<tag>", "&lt;tag&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&apos;s"},
		{`&<>"'`, "&amp;&lt;&gt;&quot;&apos;"},
	}

	for _, tt := range tests {
		if got := escapeXML(tt.input); got != tt.want {
			t.Errorf("escapeXML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildSitemap_EmptyEntries(t *testing.T) {
	data := buildSitemap(nil)

	want := xmlHeader + urlsetOpen + urlsetEnd
	if string(data) != want {
		t.Errorf("buildSitemap(nil) = %s, want %s", string(data), want)
	}
	if strings.Contains(string(data), "<url>") {
		t.Error("empty sitemap should contain no url blocks")
	}
}

func TestBuildSitemap_ElementOrder(t *testing.T) {
	lastMod := time.Date(2024, 3, 9, 15, 30, 0, 0, time.UTC)
	entries := []domain.SitemapEntry{
		{
			Loc:        "https://example.com/blog",
			LastMod:    &lastMod,
			ChangeFreq: domain.ChangeFreqDaily,
			Priority:   0.8,
		},
	}

	data := string(buildSitemap(entries))

	want := "<url><loc>https://example.com/blog</loc><lastmod>2024-03-09</lastmod><changefreq>daily</changefreq><priority>0.8</priority></url>"
	if !strings.Contains(data, want) {
		t.Errorf("buildSitemap = %s, want it to contain %s", data, want)
	}
}

func TestBuildSitemap_OmitsOptionalElements(t *testing.T) {
	entries := []domain.SitemapEntry{
		{Loc: "https://example.com/", Priority: 1.0},
	}

	data := string(buildSitemap(entries))

	if strings.Contains(data, "<lastmod>") {
		t.Error("lastmod should be omitted when nil")
	}
	if strings.Contains(data, "<changefreq>") {
		t.Error("changefreq should be omitted when empty")
	}
	if !strings.Contains(data, "<priority>1.0</priority>") {
		t.Errorf("priority missing: %s", data)
	}
}

func TestBuildSitemap_OneDecimalPriority(t *testing.T) {
	entries := []domain.SitemapEntry{
		{Loc: "https://example.com/", Priority: 0.65},
	}

	data := string(buildSitemap(entries))

	if !strings.Contains(data, "<priority>0.7</priority>") {
		t.Errorf("priority should round to one decimal: %s", data)
	}
}
