// Package aigen generates draft page content through external AI providers.
//
// Two providers are supported: Gemini and Perplexity. Both receive the same
// drafting prompt built from a page's title and description and return HTML
// suitable for the rich text editors. Requests fail before touching the
// network when the provider key is missing or the draft inputs are empty.
package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Provider identifies an AI content provider.
type Provider string

const (
	ProviderGemini     Provider = "gemini"
	ProviderPerplexity Provider = "perplexity"
)

// Valid reports whether p names a known provider.
func (p Provider) Valid() bool {
	return p == ProviderGemini || p == ProviderPerplexity
}

// Providers lists the supported providers in display order.
func Providers() []Provider {
	return []Provider{ProviderGemini, ProviderPerplexity}
}

const (
	defaultGeminiURL     = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
	defaultPerplexityURL = "https://api.perplexity.ai/chat/completions"
	perplexityModel      = "sonar"
	requestTimeout       = 60 * time.Second
)

// ErrMissingInput is returned when the draft title or description is empty.
var ErrMissingInput = errors.New("title and description are required for AI generation")

// Keys holds per-provider API keys. An empty key disables the provider.
type Keys struct {
	Gemini     string
	Perplexity string
}

// Generator calls AI providers to draft page content.
type Generator struct {
	http          *http.Client
	keys          Keys
	geminiURL     string
	perplexityURL string
}

// Option customizes a Generator.
type Option func(*Generator)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Generator) { g.http = client }
}

// WithGeminiURL overrides the Gemini endpoint. Tests use this.
func WithGeminiURL(url string) Option {
	return func(g *Generator) { g.geminiURL = url }
}

// WithPerplexityURL overrides the Perplexity endpoint. Tests use this.
func WithPerplexityURL(url string) Option {
	return func(g *Generator) { g.perplexityURL = url }
}

// New returns a Generator using the given provider keys.
func New(keys Keys, opts ...Option) *Generator {
	g := &Generator{
		http:          &http.Client{Timeout: requestTimeout},
		keys:          keys,
		geminiURL:     defaultGeminiURL,
		perplexityURL: defaultPerplexityURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Enabled reports whether the provider has a configured key.
func (g *Generator) Enabled(provider Provider) bool {
	switch provider {
	case ProviderGemini:
		return g.keys.Gemini != ""
	case ProviderPerplexity:
		return g.keys.Perplexity != ""
	}
	return false
}

// Request describes a content draft to generate.
type Request struct {
	Title       string
	Description string
	References  string
}

// Generate drafts HTML content for the request using the given provider.
func (g *Generator) Generate(ctx context.Context, provider Provider, req Request) (string, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return "", ErrMissingInput
	}

	switch provider {
	case ProviderGemini:
		return g.generateGemini(ctx, req)
	case ProviderPerplexity:
		return g.generatePerplexity(ctx, req)
	}
	return "", fmt.Errorf("unknown provider %q", provider)
}

func (g *Generator) generateGemini(ctx context.Context, req Request) (string, error) {
	if g.keys.Gemini == "" {
		return "", errors.New("gemini API key not configured")
	}

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt(req)}}},
		},
	}

	var resp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	url := g.geminiURL + "?key=" + g.keys.Gemini
	if err := g.post(ctx, url, "", body, &resp); err != nil {
		return "", fmt.Errorf("generate content with gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no content")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (g *Generator) generatePerplexity(ctx context.Context, req Request) (string, error) {
	if g.keys.Perplexity == "" {
		return "", errors.New("perplexity API key not configured")
	}

	body := map[string]any{
		"model": perplexityModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt(req)},
		},
	}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := g.post(ctx, g.perplexityURL, g.keys.Perplexity, body, &resp); err != nil {
		return "", fmt.Errorf("generate content with perplexity: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("perplexity returned no content")
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *Generator) post(ctx context.Context, url, bearer string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func prompt(req Request) string {
	var b strings.Builder
	b.WriteString(`Write a comprehensive blog post with the following title and description. Structure it professionally with:

1. An engaging introduction that hooks the reader
2. 3-4 main body sections with descriptive headings
3. Each section should have 2-3 paragraphs of detailed, informative content
4. Include relevant examples, statistics, or insights where appropriate
5. A compelling conclusion that summarizes key points and includes a call-to-action
6. Use proper HTML formatting with <h2> for section headings, <p> for paragraphs, <strong> for emphasis, and <ul>/<li> for lists where needed

Title: "`)
	b.WriteString(req.Title)
	b.WriteString("\"\nDescription: \"")
	b.WriteString(req.Description)
	b.WriteString("\"\n")
	if req.References != "" {
		b.WriteString("Additional References: ")
		b.WriteString(req.References)
		b.WriteString("\n")
	}
	b.WriteString("\nMake the content SEO-friendly, engaging, and valuable for readers. Ensure it's well-structured and flows naturally.")
	return b.String()
}
