// Package fetch retrieves node subscription documents over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

const defaultTimeout = 30 * time.Second

// ErrEmptyBody is returned when a source responds with no usable content.
var ErrEmptyBody = errors.New("empty response body")

// Options configures document retrieval.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Log       *slog.Logger
}

// Fetch downloads and decodes the document behind source. The body is
// decoded using the server-declared or auto-detected character encoding.
// HTML-wrapped payloads are reduced to their text content before return.
func Fetch(ctx context.Context, source Source, opts Options) (string, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warn("failed to close response body", "source", source.ID, "error", err)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	content := string(data)
	if looksLikeHTML(content) {
		unwrapped, err := unwrapHTML(content)
		if err != nil {
			log.Warn("failed to extract text from html payload", "source", source.ID, "error", err)
		} else {
			content = unwrapped
		}
	}

	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyBody
	}
	return content, nil
}

func looksLikeHTML(content string) bool {
	head := content
	if len(head) > 512 {
		head = head[:512]
	}
	head = strings.ToLower(head)
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}

// unwrapHTML extracts the line-oriented payload from an HTML page. Some
// raw-list mirrors serve the document inside <pre> or directly in <body>.
func unwrapHTML(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}
	if pre := doc.Find("pre").First(); pre.Length() > 0 {
		return pre.Text(), nil
	}
	return doc.Find("body").Text(), nil
}
