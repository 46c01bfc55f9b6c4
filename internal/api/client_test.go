package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStartProcessing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if r.URL.Path != "/api/start_processing" {
				t.Errorf("path = %s, want /api/start_processing", r.URL.Path)
			}
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode request body: %v", err)
			}
			if body["url"] != "https://youtu.be/ABCDEFGHIJK" {
				t.Errorf("url = %q", body["url"])
			}
			json.NewEncoder(w).Encode(map[string]string{"task_id": "task-123"})
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL})
		taskID, err := c.StartProcessing(context.Background(), "https://youtu.be/ABCDEFGHIJK")
		if err != nil {
			t.Fatalf("StartProcessing: %v", err)
		}
		if taskID != "task-123" {
			t.Errorf("taskID = %q, want task-123", taskID)
		}
	})

	t.Run("empty task id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL})
		if _, err := c.StartProcessing(context.Background(), "https://youtu.be/ABCDEFGHIJK"); err == nil {
			t.Error("expected error for empty task_id")
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL})
		if _, err := c.StartProcessing(context.Background(), "https://youtu.be/ABCDEFGHIJK"); err == nil {
			t.Error("expected error for 500 response")
		}
	})
}

func TestTaskStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/task_status/task-123" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":           "processing",
			"processed_chunks": 1,
			"total_chunks":     4,
			"video_id":         "ABCDEFGHIJK",
		})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	status, err := c.TaskStatus(context.Background(), "task-123")
	if err != nil {
		t.Fatalf("TaskStatus: %v", err)
	}
	if status.Status != StatusProcessing {
		t.Errorf("status = %q", status.Status)
	}
	if status.ProcessedChunks != 1 || status.TotalChunks != 4 {
		t.Errorf("chunks = %d/%d, want 1/4", status.ProcessedChunks, status.TotalChunks)
	}
	if status.VideoID != "ABCDEFGHIJK" {
		t.Errorf("video_id = %q", status.VideoID)
	}
}

func TestTranscript(t *testing.T) {
	t.Run("first page omits cursor", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Has("last_key") {
				t.Error("first request must not carry last_key")
			}
			json.NewEncoder(w).Encode(map[string]any{
				"sentences": []map[string]any{
					{
						"key":                 "k1",
						"start_time":          "00:00:01",
						"end_time":            "00:00:04",
						"start_time_float":    1.2,
						"english":             "Hello world.",
						"pronunciation_hindi": "हेलो वर्ल्ड",
						"translation_hindi":   "नमस्ते दुनिया।",
					},
				},
				"last_key": "k1",
			})
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL})
		page, err := c.Transcript(context.Background(), "task-123", "")
		if err != nil {
			t.Fatalf("Transcript: %v", err)
		}
		if len(page.Sentences) != 1 {
			t.Fatalf("got %d sentences, want 1", len(page.Sentences))
		}
		s := page.Sentences[0]
		if s.Key != "k1" || s.English != "Hello world." || s.StartTime != "00:00:01" {
			t.Errorf("unexpected sentence: %+v", s)
		}
		if page.LastKey != "k1" {
			t.Errorf("last_key = %q, want k1", page.LastKey)
		}
	})

	t.Run("subsequent page passes cursor", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("last_key"); got != "k2" {
				t.Errorf("last_key = %q, want k2", got)
			}
			json.NewEncoder(w).Encode(map[string]any{"sentences": []any{}, "last_key": nil})
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL})
		page, err := c.Transcript(context.Background(), "task-123", "k2")
		if err != nil {
			t.Fatalf("Transcript: %v", err)
		}
		if len(page.Sentences) != 0 {
			t.Errorf("got %d sentences, want 0", len(page.Sentences))
		}
		if page.LastKey != "" {
			t.Errorf("last_key = %q, want empty for null", page.LastKey)
		}
	})
}
