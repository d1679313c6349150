// Package webcontent downloads web pages and reduces them to plain text for
// the recipe extraction pipeline.
package webcontent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const (
	fetchTimeout = 15 * time.Second
	maxBodyBytes = 2 << 20 // 2 MiB

	// maxTextChars caps the text handed to the model so prompts stay within
	// context limits.
	maxTextChars = 16000
)

type Fetcher struct {
	httpClient *http.Client
	policy     *bluemonday.Policy
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: fetchTimeout},
		// StrictPolicy strips every tag, leaving only text content.
		policy: bluemonday.StrictPolicy(),
	}
}

// FetchText downloads a page and returns its visible text with markup
// stripped and whitespace collapsed.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "sips-recipe-bot/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}

	text := collapseWhitespace(f.policy.Sanitize(string(body)))
	if text == "" {
		return "", fmt.Errorf("page has no readable text")
	}
	if len(text) > maxTextChars {
		text = text[:maxTextChars]
	}

	return text, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
