package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("API key missing from query")
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "hello" {
			t.Errorf("request contents = %+v", req.Contents)
		}

		json.NewEncoder(w).Encode(GenerateResponse{
			Candidates: []Candidate{
				{Content: Content{Parts: []Part{{Text: "world"}}}},
			},
		})
	}))
	defer ts.Close()

	client := NewClient("test-key")
	client.SetAPIURL(ts.URL)

	resp, err := client.GenerateContent(context.Background(), GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: "hello"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := resp.Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "world" {
		t.Errorf("text = %q, want world", text)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewClient("test-key")
	client.SetAPIURL(ts.URL)

	_, err := client.GenerateContent(context.Background(), GenerateRequest{})
	if err == nil {
		t.Fatal("expected an error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status code: %v", err)
	}
}

func TestResponseTextEmpty(t *testing.T) {
	var resp GenerateResponse
	if _, err := resp.Text(); err == nil {
		t.Fatal("expected an error for an empty response")
	}
}

func TestSetModel(t *testing.T) {
	client := NewClient("k")
	client.SetModel("")
	if client.Model() != DefaultModel {
		t.Errorf("empty model must keep the default, got %s", client.Model())
	}
	client.SetModel("gemini-2.5-pro")
	if client.Model() != "gemini-2.5-pro" {
		t.Errorf("model = %s", client.Model())
	}
}
