package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// DanglingLink is an in-page link whose target id does not exist.
type DanglingLink struct {
	// Target is the fragment without the leading '#'.
	Target string
	// Text is the link text.
	Text string
}

// CheckLinks returns every href="#..." in page that has no element with a
// matching id, in document order.
func CheckLinks(page string) ([]DanglingLink, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse rendered page: %w", err)
	}

	ids := make(map[string]bool)
	var links []DanglingLink

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				switch {
				case a.Key == "id":
					ids[a.Val] = true
				case a.Key == "href" && n.Data == "a" && strings.HasPrefix(a.Val, "#"):
					links = append(links, DanglingLink{
						Target: strings.TrimPrefix(a.Val, "#"),
						Text:   textOf(n),
					})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var dangling []DanglingLink
	for _, l := range links {
		if !ids[l.Target] {
			dangling = append(dangling, l)
		}
	}
	return dangling, nil
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(sb.String())
}
