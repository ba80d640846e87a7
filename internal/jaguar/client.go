package jaguar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/google/go-querystring/query"
	"github.com/kdduha/jaguar-studio/internal/config"
	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/rs/zerolog"
)

// Client talks to the remote model-serving endpoint. It enforces no timeout
// and never retries.
type Client struct {
	logger zerolog.Logger
	http   *resty.Client
	cfg    config.JaguarConfig
}

func NewClient(logger zerolog.Logger, cfg config.JaguarConfig) *Client {
	httpClient := resty.New().
		SetLogger(restyLogger{logger}).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "jaguar-studio/1.0")

	return &Client{
		logger: logger,
		http:   httpClient,
		cfg:    cfg,
	}
}

// NormalizeBaseURL trims whitespace and trailing slashes from a user supplied base URL.
func NormalizeBaseURL(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}

// GenerateURL builds the full request URL for params against base.
func (c *Client) GenerateURL(base string, params models.EffectiveParameters) (string, error) {
	endpoint, err := c.endpoint(base, c.cfg.GenerateSuffix)
	if err != nil {
		return "", err
	}

	values, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("failed to encode query: %w", err)
	}
	endpoint.RawQuery = values.Encode()
	return endpoint.String(), nil
}

// Generate issues a single GET with params encoded as query parameters and decodes
// the result. The caller is expected to have validated params already.
func (c *Client) Generate(ctx context.Context, base string, params models.EffectiveParameters) (*models.GenerationResult, error) {
	target, err := c.GenerateURL(base, params)
	if err != nil {
		return nil, err
	}

	var result models.GenerationResult
	if err := c.do(ctx, http.MethodGet, target, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Info fetches the description of the deployed model.
func (c *Client) Info(ctx context.Context, base string) (*models.ModelInfo, error) {
	endpoint, err := c.endpoint(base, c.cfg.InfoSuffix)
	if err != nil {
		return nil, err
	}

	var info models.ModelInfo
	if err := c.do(ctx, http.MethodGet, endpoint.String(), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Reload asks the remote service to reload its model weights.
func (c *Client) Reload(ctx context.Context, base string) (*models.ReloadResult, error) {
	endpoint, err := c.endpoint(base, c.cfg.ReloadSuffix)
	if err != nil {
		return nil, err
	}

	var result models.ReloadResult
	if err := c.do(ctx, http.MethodPost, endpoint.String(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) endpoint(base, suffix string) (*url.URL, error) {
	base = NormalizeBaseURL(base)
	if base == "" {
		return nil, ErrNotConfigured
	}

	endpoint, err := url.Parse(base + suffix)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL: %w", err)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("invalid endpoint URL %q: scheme and host are required", base+suffix)
	}
	return endpoint, nil
}

func (c *Client) do(ctx context.Context, method, target string, out any) error {
	log := c.logger.With().Str("method", method).Str("url", target).Logger()
	log.Debug().Msg("calling generation service")

	resp, err := c.http.R().
		SetContext(ctx).
		Execute(method, target)
	if err != nil {
		log.Debug().Err(err).Msg("transport failure")
		return &NetworkError{Err: err}
	}

	if !resp.IsSuccess() {
		statusErr := newHTTPStatusError(resp.StatusCode(), resp.Body())
		log.Debug().Int("status", resp.StatusCode()).Str("error", statusErr.Message).Msg("generation service returned an error")
		return statusErr
	}

	body := resp.Body()
	if method == http.MethodPost && len(body) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
