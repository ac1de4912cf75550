// Package api is a client for the image host's REST API (v3).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/llehouerou/openimg/internal/comments"
	"github.com/llehouerou/openimg/internal/gallery"
)

const (
	DefaultBaseURL = "https://api.imgur.com/3"
	userAgent      = "openimg/0.1 (https://github.com/llehouerou/openimg)"

	// Retry configuration
	maxRetries   = 3
	initialDelay = 2 * time.Second
	maxDelay     = 30 * time.Second
)

// ErrNotConfigured is returned when no client id was configured.
var ErrNotConfigured = errors.New("api client id not configured")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API status %d", e.Status)
	}
	return fmt.Sprintf("API status %d: %s", e.Status, e.Message)
}

// Client provides access to the gallery API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
}

// New creates a client authenticating with the given application client id.
// An empty baseURL uses DefaultBaseURL.
func New(clientID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		clientID:   clientID,
	}
}

// Gallery fetches one page of a gallery section ("hot", "top", "user" or
// "r/<subreddit>") with the given sort ("viral", "time", "top", "rising").
func (c *Client) Gallery(ctx context.Context, section, sort string, page int) ([]gallery.Post, error) {
	var path string
	if sub, ok := strings.CutPrefix(section, "r/"); ok {
		path = fmt.Sprintf("/gallery/r/%s/%s/%d", url.PathEscape(sub), url.PathEscape(sort), page)
	} else {
		path = fmt.Sprintf("/gallery/%s/%s/%d", url.PathEscape(section), url.PathEscape(sort), page)
	}

	params := url.Values{}
	params.Set("showViral", "true")

	var items []postResult
	if err := c.get(ctx, path, params, &items); err != nil {
		return nil, fmt.Errorf("gallery %s: %w", section, err)
	}
	return convertPosts(items), nil
}

// Comments fetches the comments of a post, replies nested under their parent.
func (c *Client) Comments(ctx context.Context, postID, sort string) ([]comments.Comment, error) {
	path := fmt.Sprintf("/gallery/%s/comments/%s", url.PathEscape(postID), url.PathEscape(sort))

	var items []commentResult
	if err := c.get(ctx, path, nil, &items); err != nil {
		return nil, fmt.Errorf("comments %s: %w", postID, err)
	}
	return convertComments(items), nil
}

// DeleteImage deletes an anonymous upload using its delete hash.
func (c *Client) DeleteImage(ctx context.Context, deleteHash string) error {
	if err := c.delete(ctx, "/image/"+url.PathEscape(deleteHash)); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

// DeleteAlbum deletes an anonymous album using its delete hash.
func (c *Client) DeleteAlbum(ctx context.Context, deleteHash string) error {
	if err := c.delete(ctx, "/album/"+url.PathEscape(deleteHash)); err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	return nil
}

// UploadResult describes an anonymous upload.
type UploadResult struct {
	ID         string
	Link       string
	DeleteHash string
}

// UploadImage uploads an image anonymously. name is the file name sent to
// the server.
func (c *Client) UploadImage(ctx context.Context, name string, r io.Reader) (UploadResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", name)
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload %s: %w", name, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return UploadResult{}, fmt.Errorf("upload %s: read image: %w", name, err)
	}
	if err := w.WriteField("type", "file"); err != nil {
		return UploadResult{}, fmt.Errorf("upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("upload %s: %w", name, err)
	}

	var res uploadResult
	err = c.do(ctx, http.MethodPost, c.baseURL+"/image", bytes.NewReader(buf.Bytes()), w.FormDataContentType(), &res)
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload %s: %w", name, err)
	}
	return UploadResult{ID: res.ID, Link: res.Link, DeleteHash: res.DeleteHash}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, reqURL, nil, "", out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	var ok bool
	return c.do(ctx, http.MethodDelete, c.baseURL+path, nil, "", &ok)
}

// do executes a request and decodes the data field of the response envelope
// into out. A nil body sends no body.
func (c *Client) do(ctx context.Context, method, reqURL string, body *bytes.Reader, contentType string, out any) error {
	if c.clientID == "" {
		return ErrNotConfigured
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		reqBody = body
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Client-ID "+c.clientID)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &StatusError{Status: resp.StatusCode}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		status := resp.StatusCode
		if env.Status != 0 {
			status = env.Status
		}
		return &StatusError{Status: status, Message: env.errorMessage()}
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry.
// Retries GET and DELETE on 5xx errors and network errors. Other methods are
// sent once: a failed upload may still have been stored server side.
func (c *Client) doRequestWithRetry(req *http.Request) (*http.Response, error) {
	if !idempotent(req.Method) {
		return c.httpClient.Do(req)
	}

	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(delay):
			}
			delay = min(delay*2, maxDelay)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if req.Context().Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}

		// Success or client error (4xx) - don't retry
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error (5xx) - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries+1, lastErr)
}

func idempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodDelete
}
