// ABOUTME: Streaming XML builder for sitemaps.org 0.9 documents
// ABOUTME: Escapes all text nodes and pins the element order within each url block

package sitemap

import (
	"bytes"
	"strings"

	"sitemap-app-api/core/domain"
)

const (
	xmlHeader  = `<?xml version="1.0" encoding="utf-8"?>`
	urlsetOpen = `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	urlsetEnd  = `</urlset>`
)

// xmlEscaper covers the five characters that must not appear raw in a
// text node. Ampersand replacement is safe inside NewReplacer because
// replacements are not rescanned.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes a value for use as XML element text.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// buildSitemap serializes entries into a complete urlset document.
// encoding/xml is deliberately not used: the sitemap protocol pins the
// exact header line, element order, and numeric formats, and entries are
// already flat strings once field extraction has run.
func buildSitemap(entries []domain.SitemapEntry) []byte {
	var buf bytes.Buffer

	buf.WriteString(xmlHeader)
	buf.WriteString(urlsetOpen)

	for _, entry := range entries {
		writeEntry(&buf, entry)
	}

	buf.WriteString(urlsetEnd)
	return buf.Bytes()
}

// writeEntry appends one url block. Sub-element order is fixed:
// loc, optional lastmod, optional changefreq, priority.
func writeEntry(buf *bytes.Buffer, entry domain.SitemapEntry) {
	buf.WriteString("<url>")

	buf.WriteString("<loc>")
	buf.WriteString(escapeXML(entry.Loc))
	buf.WriteString("</loc>")

	if entry.LastMod != nil {
		buf.WriteString("<lastmod>")
		buf.WriteString(escapeXML(domain.FormatLastMod(*entry.LastMod)))
		buf.WriteString("</lastmod>")
	}

	if entry.ChangeFreq != "" {
		buf.WriteString("<changefreq>")
		buf.WriteString(escapeXML(entry.ChangeFreq))
		buf.WriteString("</changefreq>")
	}

	buf.WriteString("<priority>")
	buf.WriteString(domain.FormatPriority(entry.Priority))
	buf.WriteString("</priority>")

	buf.WriteString("</url>")
}
