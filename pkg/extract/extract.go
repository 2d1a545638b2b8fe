// Package extract reduces raw HTML to representative plain text.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// boilerplateSelector matches elements that are removed from the tree before
// any text is read, so navigation chrome and embedded code never leak into
// the output.
const boilerplateSelector = "script, style, nav, header, footer, aside, iframe"

// contentSelectors is a priority list, not a ranked scoring system: the first
// selector that matches a node wins. Order goes from semantic HTML5 tags to
// ARIA roles to common CMS class/id conventions to generic "post" naming.
var contentSelectors = []string{
	"main", "article", `[role="main"]`,
	".content", "#content", ".main-content", "#main-content",
	".post-content", ".entry-content", ".article-content",
	".page-content", "#page-content", ".post-body", ".article-body",
	".content-area", ".site-content", "#site-content",
	".blog-post", ".single-post", ".post", "#post",
	`[itemprop="articleBody"]`, ".markdown-body",
}

// MainText extracts the most likely main-content text from an HTML document.
// It returns the whitespace-collapsed text and the selector that matched, or
// an empty selector when the whole document body was used as a fallback.
// Malformed HTML degrades to whatever the parser can salvage; MainText never
// fails.
func MainText(input string) (string, string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", ""
	}
	doc.Find(boilerplateSelector).Remove()

	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return nodeText(sel.First()), selector
		}
	}
	return nodeText(doc.Selection), ""
}

// nodeText flattens a selection into space-separated text with all whitespace
// runs collapsed.
func nodeText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		for _, field := range strings.Fields(n.Data) {
			*parts = append(*parts, field)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// collapseWhitespace collapses all whitespace runs, including newlines, to
// single spaces and trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate hard-slices s to at most max bytes. There is no word-boundary
// awareness. A non-positive max disables truncation.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
