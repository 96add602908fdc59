// ABOUTME: Scraper implementation that extracts structured content from web pages
// ABOUTME: Uses go-readability for article extraction and goquery for page metadata

package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"
	"stash-app-api/core/interfaces"
	"stash-app-api/pkg/config"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	readability "github.com/go-shiori/go-readability"
)

// Scraper implements the core Scraper interface against live web pages
// and an external search API.
type Scraper struct {
	deps interfaces.Dependencies
	cfg  config.ScrapeConfig
}

// NewScraper creates a new scraper
func NewScraper(deps interfaces.Dependencies, cfg config.ScrapeConfig) *Scraper {
	return &Scraper{
		deps: deps,
		cfg:  cfg,
	}
}

// Scrape fetches one URL and extracts its content fields. Successful
// extractions are cached so repeated imports of a popular page don't
// refetch it.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*domain.ScrapedContent, error) {
	if cached := s.getCached(ctx, rawURL); cached != nil {
		return cached, nil
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "invalid URL"}
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Second)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(ctx, rawURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to fetch page")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "page returned non-200 status",
			API:        pageURL.Host,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read page body")
	}

	content, err := s.extract(body, pageURL)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, rawURL, content)

	return content, nil
}

// extract runs readability over the page and fills in metadata that
// readability does not cover from the raw HTML.
func (s *Scraper) extract(body []byte, pageURL *url.URL) (*domain.ScrapedContent, error) {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to extract article")
	}

	content := &domain.ScrapedContent{
		Title:       article.Title,
		Author:      article.Byline,
		TextContent: article.TextContent,
		OGImage:     article.Image,
	}

	if article.Content != "" {
		converter := md.NewConverter("", true, nil)
		if markdown, err := converter.ConvertString(article.Content); err == nil {
			content.Markdown = markdown
		} else if s.deps.Logger != nil {
			s.deps.Logger.Debug("Markdown conversion failed", map[string]interface{}{
				"url":   pageURL.String(),
				"error": err.Error(),
			})
		}
	}

	s.fillMetadata(body, content)

	return content, nil
}

// fillMetadata extracts og:image, author, and published time from meta tags
func (s *Scraper) fillMetadata(body []byte, content *domain.ScrapedContent) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return
	}

	if content.OGImage == "" {
		content.OGImage = metaContent(doc, `meta[property="og:image"]`)
	}

	if content.Author == "" {
		content.Author = metaContent(doc, `meta[name="author"]`)
	}
	if content.Author == "" {
		content.Author = metaContent(doc, `meta[property="article:author"]`)
	}

	published := metaContent(doc, `meta[property="article:published_time"]`)
	if published == "" {
		published = metaContent(doc, `meta[name="date"]`)
	}
	if published != "" {
		if t, err := dateparse.ParseAny(published); err == nil {
			content.PublishedAt = &t
		}
	}
}

// metaContent returns the content attribute of the first matching meta tag
func metaContent(doc *goquery.Document, selector string) string {
	value, _ := doc.Find(selector).First().Attr("content")
	return value
}

// getCached retrieves a previously scraped page from cache
func (s *Scraper) getCached(ctx context.Context, rawURL string) *domain.ScrapedContent {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, scrapeCacheKey(rawURL))
	if err != nil || data == nil {
		return nil
	}

	var content domain.ScrapedContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil
	}

	return &content
}

// setCached stores a scraped page in cache (cache errors are ignored)
func (s *Scraper) setCached(ctx context.Context, rawURL string, content *domain.ScrapedContent) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(content)
	if err != nil {
		return
	}

	_ = s.deps.Cache.Set(ctx, scrapeCacheKey(rawURL), data, 1*time.Hour)
}

func scrapeCacheKey(rawURL string) string {
	return fmt.Sprintf("scrape:%s", rawURL)
}
