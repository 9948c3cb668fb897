package rss

import (
	"strings"

	"github.com/mmcdole/gofeed/rss"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain/promptfilters/news"
)

const (
	// ConfigKeyFeedURL which RSS feed to pull headlines from
	ConfigKeyFeedURL = "rssFeedURL"
)

type NewsProvider struct {
	feedURL string
}

func NewNewsProvider(config *common.Config) *NewsProvider {
	return &NewsProvider{
		feedURL: config.GetStringOrDefault(ConfigKeyFeedURL, "https://feeds.bbci.co.uk/news/rss.xml"),
	}
}

// GetHeadlines see news.Provider.GetHeadlines
func (n *NewsProvider) GetHeadlines(maxCount int) ([]news.Item, error) {
	data, err := common.ReadAllFromURL(n.feedURL)
	if err != nil {
		return nil, err
	}
	parser := rss.Parser{}
	feed, err := parser.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}
	items := make([]news.Item, 0, maxCount)
	for _, item := range feed.Items {
		if len(items) >= maxCount {
			break
		}
		items = append(items, news.Item{
			PublishedDate: item.PubDate,
			Title:         strings.TrimSpace(item.Title),
			Description:   strings.TrimSpace(item.Description),
		})
	}
	return items, nil
}
