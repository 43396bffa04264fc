package sentiment

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/russross/blackfriday/v2"
)

var (
	markdownLink = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	bareURL      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// Normalize turns a comment body into the plain text the lexicon scores.
// Markdown is rendered and stripped to its text, links are dropped and
// whitespace is collapsed. Input that renders to nothing is returned trimmed.
// A literal "<" survives rendering, so emoticons like "<3" reach the lexicon.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	text = markdownLink.ReplaceAllString(text, "$1")
	rendered := blackfriday.Run([]byte(escapeTags(text)), blackfriday.WithNoExtensions())

	plain := text
	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rendered)); err == nil {
		plain = doc.Text()
	}

	plain = bareURL.ReplaceAllString(plain, "")
	plain = strings.Join(strings.Fields(plain), " ")
	if plain == "" {
		return text
	}
	return plain
}

// escapeTags keeps "<" from opening raw HTML. ">" is left alone so a
// leading blockquote marker still renders as markdown.
func escapeTags(s string) string {
	return strings.ReplaceAll(s, "<", "&lt;")
}
