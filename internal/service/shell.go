package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/kdduha/jaguar-studio/internal/jaguar"
	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/kdduha/jaguar-studio/internal/session"
	"github.com/rs/zerolog"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

var ErrEmptyBaseURL = errors.New("API base URL is required")

// Shell owns what the page around the generator needs: the configured base
// endpoint, the session history fed by the generator's success callback, and
// access to model information.
type Shell struct {
	logger     zerolog.Logger
	client     generator
	generation *GenerationClient
	history    *session.History
	cache      Cache
}

func NewShell(logger zerolog.Logger, client generator, baseURL string) *Shell {
	s := &Shell{
		logger:  logger,
		client:  client,
		history: session.NewHistory(),
	}
	s.generation = NewGenerationClient(logger, client, baseURL, Callbacks{
		OnImageGenerated: s.history.Prepend,
		OnError: func(message string) {
			s.logger.Error().Str("error", message).Msg("image generation error")
		},
	})
	return s
}

func (s *Shell) SetCacheClient(cache Cache) {
	s.cache = cache
}

// Configure sets the base endpoint. Blank input is rejected.
func (s *Shell) Configure(base string) error {
	base = jaguar.NormalizeBaseURL(base)
	if base == "" {
		return ErrEmptyBaseURL
	}
	s.generation.SetBaseURL(base)
	s.logger.Info().Str("base_url", base).Msg("generation service configured")
	return nil
}

func (s *Shell) Configured() bool {
	return s.generation.BaseURL() != ""
}

func (s *Shell) BaseURL() string {
	return s.generation.BaseURL()
}

// Reset forgets the base endpoint, the history and the last outcome.
func (s *Shell) Reset() {
	s.generation.SetBaseURL("")
	s.generation.Reset()
	s.history.Clear()
	s.logger.Info().Msg("session reset")
}

func (s *Shell) Generate(ctx context.Context, params models.GenerationParameters) (*models.GenerationResult, error) {
	return s.generation.Generate(ctx, params)
}

func (s *Shell) State() State {
	return s.generation.State()
}

func (s *Shell) History() *session.History {
	return s.history
}

// ModelInfo returns the remote model description, served from the cache when one is set.
func (s *Shell) ModelInfo(ctx context.Context) (*models.ModelInfo, error) {
	base := s.BaseURL()
	key := fmt.Sprintf(modelInfoCacheKey, base)

	if s.cache != nil && base != "" {
		cached, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Msg("cache get error")
		}
		if found {
			var info models.ModelInfo
			if err := sonic.UnmarshalString(cached, &info); err == nil {
				s.logger.Debug().Msg("model info served from cache")
				return &info, nil
			}
		}
	}

	info, err := s.client.Info(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch model info: %w", err)
	}

	if s.cache != nil {
		encoded, err := sonic.MarshalString(info)
		if err == nil {
			err = s.cache.Set(ctx, key, encoded)
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to set cache")
		}
	}
	return info, nil
}

// ReloadModel asks the remote service to reload and drops any cached model info.
func (s *Shell) ReloadModel(ctx context.Context) (*models.ReloadResult, error) {
	base := s.BaseURL()
	result, err := s.client.Reload(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to reload model: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, fmt.Sprintf(modelInfoCacheKey, base)); err != nil {
			s.logger.Warn().Err(err).Msg("failed to invalidate cache")
		}
	}
	s.logger.Info().Str("status", result.Status).Msg("model reloaded")
	return result, nil
}
