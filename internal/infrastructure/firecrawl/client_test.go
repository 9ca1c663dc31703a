package firecrawl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hilinkr/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com", 3000, 30*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.Equal(t, 3000, client.waitFor)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func TestScrape_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/scrape", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var req scrapeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://shopee.com.br/produto", req.URL)
		assert.Equal(t, []string{"markdown", "html"}, req.Formats)
		assert.False(t, req.OnlyMainContent)
		assert.Equal(t, 3000, req.WaitFor)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(scrapeResponse{
			Success: true,
			Data: scrapePayload{
				Metadata: scrapeMetadata{
					OGTitle:   "Tênis Esportivo Azul",
					OGImage:   "https://cdn.test/produto.jpg",
					SourceURL: "https://shopee.com.br/produto-final",
				},
				Markdown: "# Tênis Esportivo Azul",
				HTML:     "<html>R$ 199,90</html>",
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 3000, 30*time.Second)

	content, err := client.Scrape(context.Background(), "https://shopee.com.br/produto")

	require.NoError(t, err)
	assert.Equal(t, "Tênis Esportivo Azul", content.Title)
	assert.Equal(t, "https://cdn.test/produto.jpg", content.Image)
	assert.Equal(t, "https://shopee.com.br/produto-final", content.SourceURL)
	assert.Equal(t, "# Tênis Esportivo Azul", content.Markdown)
	assert.Equal(t, "<html>R$ 199,90</html>", content.HTML)
}

func TestScrape_MetadataFallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(scrapeResponse{
			Success: true,
			Data: scrapePayload{
				// No og: variants and no resolved URL reported.
				Metadata: scrapeMetadata{
					Title: "Produto | Loja",
					Image: "https://cdn.test/fallback.png",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient("key", server.URL, 0, 30*time.Second)

	content, err := client.Scrape(context.Background(), "https://loja.test/p/1")

	require.NoError(t, err)
	assert.Equal(t, "Produto | Loja", content.Title)
	assert.Equal(t, "https://cdn.test/fallback.png", content.Image)
	assert.Equal(t, "https://loja.test/p/1", content.SourceURL)
}

func TestScrape_APIReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(scrapeResponse{Success: false, Error: "This website is not supported"})
	}))
	defer server.Close()

	client := NewClient("key", server.URL, 0, 30*time.Second)

	content, err := client.Scrape(context.Background(), "https://loja.test/p/1")

	assert.Nil(t, content)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScraperFailure)
}

func TestScrape_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"success":false,"error":"insufficient credits"}`))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, 0, 30*time.Second)

	_, err := client.Scrape(context.Background(), "https://loja.test/p/1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScraperFailure)
	assert.Contains(t, err.Error(), "insufficient credits")
}

func TestScrape_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient("key", server.URL, 0, time.Second)

	_, err := client.Scrape(context.Background(), "https://loja.test/p/1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScraperFailure)
}

func TestScrape_GarbledBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, 0, time.Second)

	_, err := client.Scrape(context.Background(), "https://loja.test/p/1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScraperFailure)
}
