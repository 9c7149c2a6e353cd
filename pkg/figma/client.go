package figma

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const figmaAPIBase = "https://api.figma.com/v1"

// Client represents a Figma API client with configured HTTP settings for reliable
// communication with the Figma API. It includes retry logic and transport settings
// tuned for large document trees.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a new Figma API client with the provided personal access token.
// The client is configured with connection pooling, disabled HTTP/2 (for large file
// stability), and a generous timeout for very large documents.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		DisableKeepAlives:   false,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	return &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
}

// SetBaseURL overrides the Figma API base URL. Intended for tests that point
// the client at a stub server.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimSuffix(base, "/")
}

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
// Returns an error if the URL doesn't match the expected Figma domain pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	// Match patterns like:
	// https://www.figma.com/file/ABC123/Design-Name
	// https://www.figma.com/design/ABC123/Design-Name
	// Anchored to ensure the entire URL matches the expected pattern.
	re := regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$|\?)`)
	matches := re.FindStringSubmatch(figmaURL)

	if len(matches) < 2 {
		return "", errors.New("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// GetFile retrieves complete file data from the Figma API including the document
// tree, published styles, and metadata. Implements automatic retry (up to 3
// attempts) with backoff for rate limits (429) and server errors (5xx).
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	endpoint := c.baseURL + "/files/" + url.PathEscape(fileKey)

	body, err := c.getWithRetry(endpoint)
	if err != nil {
		return nil, err
	}

	var fileResp FileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		return nil, errors.Wrap(err, "parse file response")
	}

	return &fileResp, nil
}

// GetImages requests rendered exports for the given node IDs and returns a map
// from node ID to a short-lived download URL. Format is "svg", "png", "jpg" or
// "pdf"; scale applies to raster formats only. Figma caps a single request at
// 100 node IDs, so callers batch accordingly.
func (c *Client) GetImages(fileKey string, nodeIDs []string, format string, scale float64) (*ImagesResponse, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(nodeIDs, ","))
	q.Set("format", format)
	if format == "png" || format == "jpg" {
		q.Set("scale", strconv.FormatFloat(scale, 'g', -1, 64))
	}
	endpoint := c.baseURL + "/images/" + url.PathEscape(fileKey) + "?" + q.Encode()

	body, err := c.getWithRetry(endpoint)
	if err != nil {
		return nil, err
	}

	var imgResp ImagesResponse
	if err := json.Unmarshal(body, &imgResp); err != nil {
		return nil, errors.Wrap(err, "parse images response")
	}
	if imgResp.Err != "" {
		return nil, errors.Newf("figma render error: %s", imgResp.Err)
	}

	return &imgResp, nil
}

// GetPublishedStyles retrieves all published styles (colors, text, effects, grids)
// from a Figma file, including names, descriptions, and type information.
func (c *Client) GetPublishedStyles(fileKey string) (*StylesResponse, error) {
	endpoint := c.baseURL + "/files/" + url.PathEscape(fileKey) + "/styles"

	body, err := c.getWithRetry(endpoint)
	if err != nil {
		return nil, err
	}

	var stylesResp StylesResponse
	if err := json.Unmarshal(body, &stylesResp); err != nil {
		return nil, errors.Wrap(err, "parse styles response")
	}

	return &stylesResp, nil
}

// getWithRetry performs an authenticated GET with up to 3 attempts, backing off
// between attempts on transport errors, 429, and 5xx responses.
func (c *Client) getWithRetry(endpoint string) ([]byte, error) {
	var lastErr error
	const maxRetries = 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, errors.Wrap(err, "create request")
		}

		req.Header.Set("X-Figma-Token", c.accessToken)
		// Disable HTTP/2 to avoid stream errors with large files
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = errors.Wrapf(err, "attempt %d failed to execute request", attempt)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = errors.Newf("API request failed with status %d: %s", resp.StatusCode, string(body))
			if attempt < maxRetries && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500) {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		if readErr != nil {
			lastErr = errors.Wrapf(readErr, "attempt %d failed to read response body", attempt)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		return body, nil
	}

	return nil, lastErr
}
