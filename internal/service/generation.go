package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kdduha/jaguar-studio/internal/jaguar"
	"github.com/kdduha/jaguar-studio/internal/logger"
	"github.com/kdduha/jaguar-studio/internal/metrics"
	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/rs/zerolog"
)

type generator interface {
	Generate(ctx context.Context, base string, params models.EffectiveParameters) (*models.GenerationResult, error)
	Info(ctx context.Context, base string) (*models.ModelInfo, error)
	Reload(ctx context.Context, base string) (*models.ReloadResult, error)
}

// Callbacks are invoked at the end of every generation cycle. Any of them may be nil.
type Callbacks struct {
	OnImageGenerated func(result models.GenerationResult)
	OnError          func(message string)
	// OnLoadingChange receives true when a cycle starts and false when it ends.
	OnLoadingChange func(loading bool)
}

// GenerationClient runs one request/response cycle per Generate call and keeps
// the outcome of the latest cycle as its State. There is no queue and no
// cancellation: a new call simply starts a new cycle.
type GenerationClient struct {
	logger    zerolog.Logger
	client    generator
	callbacks Callbacks

	mu      sync.RWMutex
	baseURL string
	state   State
}

func NewGenerationClient(logger zerolog.Logger, client generator, baseURL string, callbacks Callbacks) *GenerationClient {
	return &GenerationClient{
		logger:    logger,
		client:    client,
		callbacks: callbacks,
		baseURL:   jaguar.NormalizeBaseURL(baseURL),
		state:     IdleState(),
	}
}

func (g *GenerationClient) SetBaseURL(base string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.baseURL = jaguar.NormalizeBaseURL(base)
}

func (g *GenerationClient) BaseURL() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.baseURL
}

func (g *GenerationClient) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Reset drops the stored outcome. It does not touch a cycle that is in flight.
func (g *GenerationClient) Reset() {
	g.setState(IdleState())
}

// Generate validates params, calls the remote endpoint and records the outcome.
// Failures are stored, reported to OnError and returned; the loading state is
// always left on return, including when a callback or the transport panics.
func (g *GenerationClient) Generate(ctx context.Context, params models.GenerationParameters) (result *models.GenerationResult, err error) {
	start := time.Now()
	g.begin()
	defer func() {
		if p := recover(); p != nil {
			g.finish(nil, fmt.Errorf("generation aborted: %v", p), start)
			panic(p)
		}
		g.finish(result, err, start)
	}()

	log := g.logger.With().Str("prompt", logger.Truncate(params.Prompt, logPromptLength)).Logger()
	log.Info().Msg("generation requested")

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return g.client.Generate(ctx, g.BaseURL(), params.Effective())
}

func (g *GenerationClient) begin() {
	g.setState(LoadingState())
	metrics.GenerationStarted()
	if g.callbacks.OnLoadingChange != nil {
		g.callbacks.OnLoadingChange(true)
	}
}

func (g *GenerationClient) finish(result *models.GenerationResult, err error, start time.Time) {
	defer func() {
		metrics.GenerationFinished()
		if g.callbacks.OnLoadingChange != nil {
			g.callbacks.OnLoadingChange(false)
		}
	}()

	elapsed := time.Since(start)
	if err == nil && result == nil {
		err = &jaguar.ParseError{Err: errors.New("empty generation result")}
	}
	if err != nil {
		kind := jaguar.Kind(err)
		g.setState(FailureState(err.Error()))
		metrics.GenerationTotal("failure", kind)
		metrics.GenerationDuration("failure", elapsed)
		g.logger.Warn().Err(err).Str("kind", kind).Dur("elapsed", elapsed).Msg("generation failed")

		if g.callbacks.OnError != nil {
			g.callbacks.OnError(err.Error())
		}
		return
	}

	g.setState(SuccessState(*result))
	metrics.GenerationTotal("success", "")
	metrics.GenerationDuration("success", elapsed)
	g.logger.Info().
		Interface("seed", result.Parameters.Seed).
		Float64("generation_time", result.GenerationTime).
		Dur("elapsed", elapsed).
		Msg("image generated")

	if g.callbacks.OnImageGenerated != nil {
		g.callbacks.OnImageGenerated(*result)
	}
}

func (g *GenerationClient) setState(state State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = state
}
