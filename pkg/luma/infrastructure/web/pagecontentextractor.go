package web

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"lumachat.dev/luma/pkg/common"
)

type PageContentExtractor struct{}

func NewPageContentExtractor() *PageContentExtractor {
	return &PageContentExtractor{}
}

// ExtractPageContentFromURL downloads the page and extracts its title, headings and paragraph
// text. Scripts, navigation and markup are left behind so that only readable prose reaches
// the model.
func (p *PageContentExtractor) ExtractPageContentFromURL(url string) (string, error) {
	page, err := common.ReadAllFromURL(url)
	if err != nil {
		return "", err
	}
	document, err := goquery.NewDocumentFromReader(strings.NewReader(string(page)))
	if err != nil {
		return "", err
	}
	parts := []string{strings.TrimSpace(document.Find("title").Text())}
	document.Find("h1, h2, p").Each(func(i int, selection *goquery.Selection) {
		text := strings.TrimSpace(selection.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}
