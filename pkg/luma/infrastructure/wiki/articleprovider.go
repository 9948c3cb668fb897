package wiki

import (
	"sync"

	gowiki "github.com/trietmn/go-wiki"
)

// ArticleProvider looks up Wikipedia articles. Results are cached for the lifetime of the
// process because users tend to ask follow-up questions about the same topic.
type ArticleProvider struct {
	mutex        sync.Mutex
	searchCache  map[string][]string
	summaryCache map[string]string
}

func NewArticleProvider() *ArticleProvider {
	return &ArticleProvider{
		searchCache:  make(map[string][]string),
		summaryCache: make(map[string]string),
	}
}

func (a *ArticleProvider) Search(searchString string, maxArticleCount int) ([]string, error) {
	a.mutex.Lock()
	cached, ok := a.searchCache[searchString]
	a.mutex.Unlock()
	if ok {
		return cached, nil
	}
	articleNames, _, err := gowiki.Search(searchString, maxArticleCount, true)
	if err != nil {
		return nil, err
	}
	a.mutex.Lock()
	a.searchCache[searchString] = articleNames
	a.mutex.Unlock()
	return articleNames, nil
}

func (a *ArticleProvider) GetSummary(articleName string, maxArticleSentenceCount int) (string, error) {
	a.mutex.Lock()
	cached, ok := a.summaryCache[articleName]
	a.mutex.Unlock()
	if ok {
		return cached, nil
	}
	summary, err := gowiki.Summary(articleName, maxArticleSentenceCount, -1, false, true)
	if err != nil {
		return "", err
	}
	a.mutex.Lock()
	a.summaryCache[articleName] = summary
	a.mutex.Unlock()
	return summary, nil
}
