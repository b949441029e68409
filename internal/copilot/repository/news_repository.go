package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

const maxSummaryLength = 400

// NewsRepository reads market headlines from RSS or Atom feeds.
type NewsRepository interface {
	FetchFeed(ctx context.Context, url string, limit int) ([]dto.NewsItem, error)
	FetchContent(ctx context.Context, url string) (string, error)
}

type rssNewsRepository struct {
	client *http.Client
	logger *logger.Logger
}

func NewRSSNewsRepository(log *logger.Logger) NewsRepository {
	return &rssNewsRepository{
		client: &http.Client{Timeout: 15 * time.Second},
		logger: log,
	}
}

// FetchFeed returns up to limit items of a feed, newest first. Summaries are plain text.
func (r *rssNewsRepository) FetchFeed(ctx context.Context, url string, limit int) ([]dto.NewsItem, error) {
	fp := gofeed.NewParser()
	fp.Client = r.client
	feed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to parse feed", logger.StringField("url", url), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to parse feed %s: %w", url, err)
	}

	sort.SliceStable(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return feed.Items[j].PublishedParsed == nil && feed.Items[i].PublishedParsed != nil
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	source := strings.TrimSpace(feed.Title)
	items := make([]dto.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if limit > 0 && len(items) >= limit {
			break
		}
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		published := utils.Now()
		if it.PublishedParsed != nil {
			published = it.PublishedParsed.In(utils.Location())
		}
		summary := StripHTML(it.Description)
		if summary == "" {
			summary = title
		}
		items = append(items, dto.NewsItem{
			Title:     title,
			Summary:   truncate(summary, maxSummaryLength),
			Timestamp: published,
			Source:    source,
			Link:      it.Link,
		})
	}
	return items, nil
}

// FetchContent downloads an article and extracts its readable body as plain text.
func (r *rssNewsRepository) FetchContent(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for news item: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("Failed to fetch news content", logger.ErrorField(err), logger.StringField("url", url))
		return "", fmt.Errorf("failed to fetch news content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch news content, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}
	return StripHTML(doc.Content()), nil
}

// StripHTML returns the text of an HTML fragment with whitespace collapsed.
func StripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(fragment)))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "..."
}
