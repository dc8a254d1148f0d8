package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"farmsight/internal/config"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.ChatConfig{
		Enabled:     true,
		BaseURL:     srv.URL,
		APIKey:      "test-key",
		Model:       "llama3.1",
		Timeout:     5 * time.Second,
		Temperature: 0.3,
	}, nil)
}

func completionJSON(content string) string {
	return `{"id":"cmpl-1","object":"chat.completion","model":"llama3.1","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestReply(t *testing.T) {
	var got capturedRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completionJSON("Rice likes standing water."))
	})

	land := decimal.NewFromInt(2)
	profit := decimal.NewFromInt(-1500)
	reply, err := c.Reply(context.Background(), []Message{
		{Role: "user", Content: "How much water does rice need?"},
		{Role: "assistant", Content: "Quite a lot."},
		{Role: "user", Content: "And for my field?"},
	}, &EstimateContext{
		CropName:      "Rice",
		RegionName:    "Rohtas",
		LandSizeAcres: &land,
		NetProfit:     &profit,
	})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply != "Rice likes standing water." {
		t.Fatalf("reply = %q", reply)
	}

	if got.Model != "llama3.1" {
		t.Errorf("model = %q", got.Model)
	}
	if len(got.Messages) != 4 {
		t.Fatalf("sent %d messages, want 4", len(got.Messages))
	}
	if got.Messages[0].Role != "system" {
		t.Errorf("first message role = %q, want system", got.Messages[0].Role)
	}
	sys := got.Messages[0].Content
	for _, want := range []string{"Krishi Sahayak", "Rice", "Rohtas", "2 acres", "LOSS", "1500"} {
		if !strings.Contains(sys, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if got.Messages[1].Role != "user" || got.Messages[2].Role != "assistant" || got.Messages[3].Role != "user" {
		t.Errorf("conversation roles not preserved: %+v", got.Messages[1:])
	}
}

func TestReplyNoContext(t *testing.T) {
	var got capturedRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completionJSON("Namaste!"))
	})

	if _, err := c.Reply(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil); err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if strings.Contains(got.Messages[0].Content, "CURRENT FARMER CONTEXT") {
		t.Error("system prompt should not carry a context block when none was given")
	}
}

func TestReplyEmptyChoice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"cmpl-2","object":"chat.completion","choices":[]}`)
	})
	if _, err := c.Reply(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil); err != ErrEmptyReply {
		t.Fatalf("err = %v, want ErrEmptyReply", err)
	}
}

func TestReplyUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model not found"}}`, http.StatusNotFound)
	})
	if _, err := c.Reply(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil); err == nil {
		t.Fatal("expected error from upstream failure")
	}
}
