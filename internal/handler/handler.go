package handler

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/kdduha/jaguar-studio/internal/page"
	"github.com/kdduha/jaguar-studio/internal/service"
	"github.com/kdduha/jaguar-studio/internal/session"
	"github.com/rs/zerolog"
)

type studioService interface {
	Configure(base string) error
	Configured() bool
	BaseURL() string
	Reset()
	Generate(ctx context.Context, params models.GenerationParameters) (*models.GenerationResult, error)
	State() service.State
	History() *session.History
	ModelInfo(ctx context.Context) (*models.ModelInfo, error)
	ReloadModel(ctx context.Context) (*models.ReloadResult, error)
}

type StudioHandler struct {
	logger    zerolog.Logger
	service   studioService
	templator *page.Templator
}

func NewStudioHandler(logger zerolog.Logger, service studioService, templator *page.Templator) *StudioHandler {
	return &StudioHandler{
		logger:    logger,
		service:   service,
		templator: templator,
	}
}

// ErrorResponse is the body of every failed JSON API call.
type ErrorResponse struct {
	Error string `json:"error" example:"model busy"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// Register mounts the page routes and the JSON API on r.
func (h *StudioHandler) Register(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/configure", h.Configure)
	r.Post("/reset", h.Reset)
	r.Post("/generate", h.Generate)
	r.Post("/seed", h.RandomSeed)
	r.Get("/healthz", h.Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.GenerateImage)
		r.Get("/state", h.GetState)
		r.Get("/history", h.GetHistory)
		r.Get("/history/{index}/download", h.DownloadImage)
		r.Get("/model", h.GetModelInfo)
		r.Post("/model/reload", h.ReloadModel)
		r.Get("/config", h.GetConfig)
		r.Put("/config", h.PutConfig)
		r.Delete("/config", h.DeleteConfig)
	})
}
