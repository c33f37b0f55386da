// Package extract reduces fetched HTML to readable text.
// It removes structural noise (scripts, styles, navigation, headers and
// footers) from the parsed document and then cleans the remaining text:
//  1. split into lines and trim each line
//  2. split each line on double spaces to break up mashed-together blocks
//  3. keep fragments longer than one character, joined by single spaces
package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var (
	// ErrParse is returned when a document cannot be parsed.
	ErrParse = errors.New("parse error")
	// ErrEmptyContent is returned when a page yields no usable text.
	ErrEmptyContent = errors.New("empty content")
)

// noiseMatcher selects elements removed before text extraction.
var noiseMatcher = cascadia.MustCompile("script, style, nav, footer, header")

// Document is a parsed page with noise elements removed.
type Document struct {
	doc *goquery.Document
}

// Parse parses raw HTML and strips noise elements.
func Parse(raw string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	doc := goquery.NewDocumentFromNode(root)
	doc.FindMatcher(noiseMatcher).Remove()
	return &Document{doc: doc}, nil
}

// Text returns the cleaned text of the document, or ErrEmptyContent.
func (d *Document) Text() (string, error) {
	text := CleanText(d.doc.Text())
	if text == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}

// ContentHTML returns the outer HTML of the best content container:
// <main>, then <article>, then <body>.
func (d *Document) ContentHTML() (string, error) {
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := d.doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("%w: no content container found", ErrParse)
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}

// Clean parses raw HTML and returns its cleaned text.
func Clean(raw string) (string, error) {
	doc, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return doc.Text()
}

// CleanText applies the line and fragment cleaning rules to extracted text.
func CleanText(text string) string {
	var kept []string
	for _, line := range splitLines(text) {
		for _, frag := range strings.Split(strings.TrimSpace(line), "  ") {
			frag = strings.TrimSpace(frag)
			if utf8.RuneCountInString(frag) > 1 {
				kept = append(kept, frag)
			}
		}
	}
	return strings.Join(kept, " ")
}

// splitLines splits on every Unicode line boundary.
func splitLines(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
			return true
		}
		return false
	})
}
