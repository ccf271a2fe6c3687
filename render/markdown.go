package render

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// ToMarkdown converts a rendered page to GitHub-flavoured Markdown. Tables
// stay tables and in-page anchors are kept as links.
func ToMarkdown(page string) (string, error) {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	converter.Remove("style")

	out, err := converter.ConvertString(page)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}

	out = excessiveLinesRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out) + "\n", nil
}
