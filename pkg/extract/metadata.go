package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
)

// Metadata holds page identity salvaged from markup.
type Metadata struct {
	Title        string
	Description  string
	SiteName     string
	CanonicalURL string
}

// PageMetadata reads OpenGraph tags first and falls back to plain HTML
// heuristics for documents without them.
func PageMetadata(input string) Metadata {
	og := opengraph.NewOpenGraph()
	_ = og.ProcessHTML(strings.NewReader(input))

	md := Metadata{
		Title:        strings.TrimSpace(og.Title),
		Description:  strings.TrimSpace(og.Description),
		SiteName:     strings.TrimSpace(og.SiteName),
		CanonicalURL: strings.TrimSpace(og.URL),
	}
	if md.Title != "" && md.Description != "" {
		return md
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return md
	}
	if md.Title == "" {
		md.Title = fallbackTitle(doc)
	}
	if md.Description == "" {
		md.Description = fallbackDescription(doc)
	}
	return md
}

// fallbackTitle tries <title>, then the first heading. Markup often wraps
// these across lines, so inner whitespace is collapsed too.
func fallbackTitle(doc *goquery.Document) string {
	if title := collapseWhitespace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if h1 := collapseWhitespace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return collapseWhitespace(doc.Find("h2").First().Text())
}

// fallbackDescription tries the meta description, then the first paragraph.
func fallbackDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if desc = collapseWhitespace(desc); desc != "" {
			return desc
		}
	}
	return collapseWhitespace(doc.Find("p").First().Text())
}
