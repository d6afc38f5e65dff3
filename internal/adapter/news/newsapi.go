package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/yaebk/cs390-podcast/internal/domain/model"
	"github.com/yaebk/cs390-podcast/internal/domain/ports"
)

const defaultBaseURL = "https://newsapi.org"

// removedTitle marks headlines NewsAPI has redacted after publication.
const removedTitle = "[Removed]"

// Client implements NewsProvider using the NewsAPI top-headlines endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	country    string
	category   string
	pageSize   int
	logger     ports.Logger
}

var _ ports.NewsProvider = (*Client)(nil)

// New creates a new NewsAPI client with fixed query parameters.
func New(apiKey, country, category string, pageSize int, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		country:    country,
		category:   category,
		pageSize:   pageSize,
		logger:     logger,
	}
}

// TopHeadlines fetches the current top headlines for the configured
// country and category.
func (c *Client) TopHeadlines(ctx context.Context) ([]model.Article, error) {
	query := url.Values{}
	query.Set("country", c.country)
	query.Set("category", c.category)
	query.Set("pageSize", strconv.Itoa(c.pageSize))
	query.Set("apiKey", c.apiKey)
	endpoint := c.baseURL + "/v2/top-headlines?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var payload struct {
		Status       string `json:"status"`
		Code         string `json:"code"`
		Message      string `json:"message"`
		TotalResults int    `json:"totalResults"`
		Articles     []struct {
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
		} `json:"articles"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi error %s: %s", payload.Code, payload.Message)
	}

	articles := make([]model.Article, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		title := strings.TrimSpace(item.Title)
		if title == "" || title == removedTitle {
			continue
		}

		articles = append(articles, model.Article{
			Title:       title,
			Description: strings.TrimSpace(htmlToText(item.Description)),
			Source:      item.Source.Name,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
		})
	}

	if c.logger != nil {
		if len(articles) == 0 && payload.TotalResults > 0 {
			c.logger.Warn(ctx, "all headlines filtered out", "total", payload.TotalResults)
		} else {
			c.logger.Info(ctx, "fetched top headlines",
				"country", c.country,
				"category", c.category,
				"total", payload.TotalResults,
				"usable", len(articles))
		}
	}

	return articles, nil
}

// htmlToText flattens HTML fragments some outlets put in descriptions.
func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune('\n')
	}
}
