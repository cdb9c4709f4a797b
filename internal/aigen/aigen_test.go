package aigen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerate_EmptyInputsFailBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	g := New(Keys{Gemini: "key"}, WithGeminiURL(srv.URL))

	if _, err := g.Generate(context.Background(), ProviderGemini, Request{Title: "Only title"}); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("err = %v, want ErrMissingInput", err)
	}
	if _, err := g.Generate(context.Background(), ProviderGemini, Request{Description: "only description"}); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("err = %v, want ErrMissingInput", err)
	}
	if called {
		t.Fatal("provider endpoint was called for empty inputs")
	}
}

func TestGenerate_MissingKeyFailsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	g := New(Keys{}, WithGeminiURL(srv.URL), WithPerplexityURL(srv.URL))
	req := Request{Title: "A Title", Description: "A description"}

	if _, err := g.Generate(context.Background(), ProviderGemini, req); err == nil {
		t.Fatal("expected error for missing gemini key")
	}
	if _, err := g.Generate(context.Background(), ProviderPerplexity, req); err == nil {
		t.Fatal("expected error for missing perplexity key")
	}
	if called {
		t.Fatal("provider endpoint was called without a key")
	}
}

func TestGenerate_Gemini(t *testing.T) {
	var gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"<h2>Draft</h2>"}]}}]}`))
	}))
	defer srv.Close()

	g := New(Keys{Gemini: "gem-key"}, WithGeminiURL(srv.URL))

	content, err := g.Generate(context.Background(), ProviderGemini, Request{
		Title:       "Mixing Basics",
		Description: "An intro to mixing",
		References:  "https://example.com/mixing",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if content != "<h2>Draft</h2>" {
		t.Fatalf("content = %q, want %q", content, "<h2>Draft</h2>")
	}
	if gotKey != "gem-key" {
		t.Fatalf("key query param = %q, want %q", gotKey, "gem-key")
	}

	raw, _ := json.Marshal(gotBody)
	for _, want := range []string{"Mixing Basics", "An intro to mixing", "Additional References"} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("request body missing %q: %s", want, raw)
		}
	}
}

func TestGenerate_Perplexity(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"<p>Sonar draft</p>"}}]}`))
	}))
	defer srv.Close()

	g := New(Keys{Perplexity: "pplx-key"}, WithPerplexityURL(srv.URL))

	content, err := g.Generate(context.Background(), ProviderPerplexity, Request{
		Title:       "Studio Setup",
		Description: "Gear for a home studio",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if content != "<p>Sonar draft</p>" {
		t.Fatalf("content = %q, want %q", content, "<p>Sonar draft</p>")
	}
	if gotAuth != "Bearer pplx-key" {
		t.Fatalf("Authorization = %q, want %q", gotAuth, "Bearer pplx-key")
	}
	if gotBody["model"] != perplexityModel {
		t.Fatalf("model = %v, want %q", gotBody["model"], perplexityModel)
	}
}

func TestGenerate_ProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := New(Keys{Gemini: "key"}, WithGeminiURL(srv.URL))

	_, err := g.Generate(context.Background(), ProviderGemini, Request{Title: "T", Description: "D"})
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	if !strings.Contains(err.Error(), "gemini") {
		t.Fatalf("error %q does not name the provider", err)
	}
}

func TestGenerate_UnknownProvider(t *testing.T) {
	g := New(Keys{Gemini: "key"})
	if _, err := g.Generate(context.Background(), Provider("claude"), Request{Title: "T", Description: "D"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestEnabled(t *testing.T) {
	g := New(Keys{Gemini: "key"})
	if !g.Enabled(ProviderGemini) {
		t.Fatal("gemini should be enabled with a key")
	}
	if g.Enabled(ProviderPerplexity) {
		t.Fatal("perplexity should be disabled without a key")
	}
}
