package jaguar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/kdduha/jaguar-studio/internal/config"
	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{"image":"QQ==","parameters":{"prompt":"cat","height":512,"width":512,"guidance_scale":3.5,"num_steps":4,"max_seq_length":256,"seed":42},"generation_time":1.2}`

func testConfig() config.JaguarConfig {
	return config.JaguarConfig{
		GenerateSuffix: "/generate",
		InfoSuffix:     "/info",
		ReloadSuffix:   "/reload",
	}
}

func newTestClient() *Client {
	return NewClient(zerolog.Nop(), testConfig())
}

func TestClient_GenerateURL(t *testing.T) {
	client := newTestClient()

	t.Run("defaults are always present and seed is omitted", func(t *testing.T) {
		raw, err := client.GenerateURL("https://example.com/", models.GenerationParameters{Prompt: "a cat"}.Effective())
		require.NoError(t, err)

		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "/generate", u.Path)

		q := u.Query()
		assert.Equal(t, "a cat", q.Get("prompt"))
		assert.Equal(t, "1024", q.Get("height"))
		assert.Equal(t, "1024", q.Get("width"))
		assert.Equal(t, "3.5", q.Get("guidance_scale"))
		assert.Equal(t, "4", q.Get("steps"))
		assert.Equal(t, "256", q.Get("max_seq_length"))
		assert.False(t, q.Has("seed"))
	})

	t.Run("explicit values and seed are stringified", func(t *testing.T) {
		params := models.GenerationParameters{
			Prompt:        "a cat",
			Height:        lo.ToPtr(512),
			GuidanceScale: lo.ToPtr(7.0),
			Seed:          lo.ToPtr(int64(42)),
		}
		raw, err := client.GenerateURL("https://example.com", params.Effective())
		require.NoError(t, err)

		u, err := url.Parse(raw)
		require.NoError(t, err)
		q := u.Query()
		assert.Equal(t, "512", q.Get("height"))
		assert.Equal(t, "7", q.Get("guidance_scale"))
		assert.Equal(t, "42", q.Get("seed"))
	})

	t.Run("suffix is appended to the base verbatim", func(t *testing.T) {
		c := NewClient(zerolog.Nop(), config.JaguarConfig{GenerateSuffix: "-shuttlejaguarmodel-generate-api.modal.run"})
		raw, err := c.GenerateURL("https://someone--shuttle-jaguar", models.GenerationParameters{Prompt: "x"}.Effective())
		require.NoError(t, err)

		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "someone--shuttle-jaguar-shuttlejaguarmodel-generate-api.modal.run", u.Host)
	})

	t.Run("empty base is not configured", func(t *testing.T) {
		_, err := client.GenerateURL("  ", models.GenerationParameters{Prompt: "x"}.Effective())
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("base without scheme is rejected", func(t *testing.T) {
		_, err := client.GenerateURL("example.com", models.GenerationParameters{Prompt: "x"}.Effective())
		assert.Error(t, err)
	})
}

func TestClient_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("success body is decoded unchanged", func(t *testing.T) {
		var gotQuery url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/generate", r.URL.Path)
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(successBody))
		}))
		defer server.Close()

		params := models.GenerationParameters{Prompt: "cat", Height: lo.ToPtr(512), Width: lo.ToPtr(512)}
		result, err := newTestClient().Generate(ctx, server.URL, params.Effective())
		require.NoError(t, err)

		assert.Equal(t, "QQ==", result.Image)
		assert.Equal(t, "cat", result.Parameters.Prompt)
		assert.Equal(t, 512, result.Parameters.Height)
		assert.Equal(t, 4, result.Parameters.NumSteps)
		require.NotNil(t, result.Parameters.Seed)
		assert.Equal(t, int64(42), *result.Parameters.Seed)
		assert.Equal(t, 1.2, result.GenerationTime)
		assert.Equal(t, "data:image/png;base64,QQ==", result.DataURI())

		assert.Equal(t, "512", gotQuery.Get("height"))
		assert.False(t, gotQuery.Has("seed"))
	})

	t.Run("null seed decodes as nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"image":"QQ==","parameters":{"prompt":"cat","seed":null},"generation_time":0.5}`))
		}))
		defer server.Close()

		result, err := newTestClient().Generate(ctx, server.URL, models.GenerationParameters{Prompt: "cat"}.Effective())
		require.NoError(t, err)
		assert.Nil(t, result.Parameters.Seed)
	})

	tests := []struct {
		name    string
		status  int
		body    string
		kind    string
		message string
	}{
		{"error body message", http.StatusInternalServerError, `{"error":"model busy"}`, KindHTTP, "model busy"},
		{"unparsable error body", http.StatusInternalServerError, `<html>oops</html>`, KindHTTP, "HTTP 500"},
		{"error body without message", http.StatusServiceUnavailable, `{}`, KindHTTP, "HTTP error! status: 503"},
		{"malformed success body", http.StatusOK, `{"image":`, KindParse, "invalid response from generation service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient().Generate(ctx, server.URL, models.GenerationParameters{Prompt: "cat"}.Effective())
			require.Error(t, err)
			assert.Equal(t, tt.kind, Kind(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}

	t.Run("status code is kept on the error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient().Generate(ctx, server.URL, models.GenerationParameters{Prompt: "cat"}.Effective())
		var statusErr *HTTPStatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("unreachable host is a network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		base := server.URL
		server.Close()

		_, err := newTestClient().Generate(ctx, base, models.GenerationParameters{Prompt: "cat"}.Effective())
		require.Error(t, err)
		assert.Equal(t, KindNetwork, Kind(err))
	})
}

func TestClient_InfoAndReload(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/info" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"model":"shuttle-jaguar","version":"1.0","parameters":"8B","format":"safetensors","source":"volume","capabilities":["text-to-image"],"recommended_settings":{"height":1024,"width":1024,"guidance_scale":3.5,"num_steps":4,"max_seq_length":256},"volume_path":"/models"}`))
		case r.URL.Path == "/reload" && r.Method == http.MethodPost:
			_, _ = w.Write([]byte(`{"status":"reloaded"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient()

	info, err := client.Info(ctx, server.URL)
	require.NoError(t, err)
	assert.Equal(t, "shuttle-jaguar", info.Model)
	assert.Equal(t, []string{"text-to-image"}, info.Capabilities)
	assert.Equal(t, 4, info.RecommendedSettings.NumSteps)

	reload, err := client.Reload(ctx, server.URL)
	require.NoError(t, err)
	assert.Equal(t, "reloaded", reload.Status)
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindValidation, Kind(&models.ValidationError{Violations: []string{"x"}}))
	assert.Equal(t, KindNetwork, Kind(&NetworkError{Err: errors.New("refused")}))
	assert.Equal(t, KindConfig, Kind(ErrNotConfigured))
	assert.Equal(t, KindUnknown, Kind(errors.New("other")))
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "https://a--b", NormalizeBaseURL("  https://a--b/ "))
	assert.Equal(t, "", NormalizeBaseURL("   "))
}
