package web

import (
	"strings"

	"github.com/mvdan/xurls"
)

type URLFinder struct{}

func NewURLFinder() *URLFinder {
	return &URLFinder{}
}

// FindURLs returns all URLs found in the message, with trailing sentence punctuation removed
// ("check https://example.com." should not produce a URL ending with a dot).
func (u *URLFinder) FindURLs(str string) []string {
	found := xurls.Relaxed.FindAllString(str, -1)
	for index, url := range found {
		found[index] = strings.TrimRight(url, ".,!?")
	}
	return found
}
