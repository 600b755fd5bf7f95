package notice

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText renders notice markup for terminals: tags are dropped and each
// link keeps its target in parentheses after the link text.
func PlainText(markup string) string {
	var b strings.Builder
	var hrefs []string
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken:
			tok := z.Token()
			if tok.Data != "a" {
				continue
			}
			href := ""
			for _, attr := range tok.Attr {
				if attr.Key == "href" {
					href = attr.Val
				}
			}
			hrefs = append(hrefs, href)
		case html.EndTagToken:
			tok := z.Token()
			if tok.Data != "a" || len(hrefs) == 0 {
				continue
			}
			href := hrefs[len(hrefs)-1]
			hrefs = hrefs[:len(hrefs)-1]
			if href != "" {
				b.WriteString(" (" + href + ")")
			}
		}
	}
}
