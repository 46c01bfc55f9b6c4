// Package api is the HTTP client for the dhvani transcription backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Task status values reported by the backend.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// TranslationUnavailable is the literal the backend emits when its whole
// translation provider chain failed for a sentence.
const TranslationUnavailable = "Translation unavailable"

// Config holds client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the backend's processing, status and transcript endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a backend client. The base URL is used as-is apart from a
// trailing slash; a zero timeout falls back to 15s.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// StartProcessing submits a video URL and returns the backend task handle.
func (c *Client) StartProcessing(ctx context.Context, videoURL string) (string, error) {
	body, err := json.Marshal(startRequest{URL: videoURL})
	if err != nil {
		return "", fmt.Errorf("api: encode start request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/start_processing", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("api: build start request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp startResponse
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("api: start processing: %w", err)
	}
	if resp.TaskID == "" {
		return "", fmt.Errorf("api: start processing: backend returned empty task_id")
	}
	return resp.TaskID, nil
}

// TaskStatus fetches the processing state for a task handle.
func (c *Client) TaskStatus(ctx context.Context, taskID string) (TaskStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/task_status/"+url.PathEscape(taskID), nil)
	if err != nil {
		return TaskStatus{}, fmt.Errorf("api: build status request: %w", err)
	}

	var status TaskStatus
	if err := c.do(req, &status); err != nil {
		return TaskStatus{}, fmt.Errorf("api: task status: %w", err)
	}
	return status, nil
}

// Transcript fetches transcript sentences newer than lastKey. An empty
// lastKey requests the first page.
func (c *Client) Transcript(ctx context.Context, taskID, lastKey string) (TranscriptPage, error) {
	endpoint := c.baseURL + "/api/transcript/" + url.PathEscape(taskID)
	if lastKey != "" {
		endpoint += "?last_key=" + url.QueryEscape(lastKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return TranscriptPage{}, fmt.Errorf("api: build transcript request: %w", err)
	}

	var page TranscriptPage
	if err := c.do(req, &page); err != nil {
		return TranscriptPage{}, fmt.Errorf("api: transcript: %w", err)
	}
	return page, nil
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("api: %s %s failed after %v: %v", req.Method, req.URL.Path, duration, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("api: %s %s returned %d after %v", req.Method, req.URL.Path, resp.StatusCode, duration)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
