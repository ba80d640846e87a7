package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/kdduha/jaguar-studio/internal/jaguar"
	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/kdduha/jaguar-studio/internal/service"
	"github.com/kdduha/jaguar-studio/internal/session"
	"github.com/samber/lo"
)

// GenerateResponse is a successful generation with a ready-to-display image URL.
type GenerateResponse struct {
	Result   *models.GenerationResult `json:"result"`
	ImageURL string                   `json:"image_url" example:"data:image/png;base64,iVBORw0KGgo="`
}

// StateResponse mirrors the generation state observers see.
type StateResponse struct {
	Status   service.Status           `json:"status" example:"success"`
	Loading  bool                     `json:"loading"`
	Error    string                   `json:"error,omitempty"`
	Result   *models.GenerationResult `json:"result,omitempty"`
	ImageURL string                   `json:"image_url,omitempty"`
}

type HistoryEntry struct {
	Index          int                     `json:"index"`
	Parameters     models.ResultParameters `json:"parameters"`
	GenerationTime float64                 `json:"generation_time" example:"1.8"`
	ImageURL       string                  `json:"image_url"`
}

type HistoryResponse struct {
	Items []HistoryEntry `json:"items"`
	Stats session.Stats  `json:"stats"`
}

type ConfigRequest struct {
	APIURL string `json:"api_url" example:"https://my-workspace"`
}

type ConfigResponse struct {
	Configured bool   `json:"configured"`
	APIURL     string `json:"api_url"`
}

// GenerateImage godoc
// @Summary Generate image
// @Description Validate parameters and run one generation against the configured model endpoint.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.GenerationParameters true "Generation parameters"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/generate [post]
func (h *StudioHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var params models.GenerationParameters
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	result, err := h.service.Generate(r.Context(), params)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Result:   result,
		ImageURL: result.DataURI(),
	})
}

// GetState godoc
// @Summary Generation state
// @Description Current status, last error and last result of the generation client.
// @Tags generation
// @Produce json
// @Success 200 {object} StateResponse
// @Router /api/state [get]
func (h *StudioHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state := h.service.State()
	writeJSON(w, http.StatusOK, StateResponse{
		Status:   state.Status,
		Loading:  state.Loading(),
		Error:    state.Error,
		Result:   state.Result,
		ImageURL: state.ImageURL(),
	})
}

// GetHistory godoc
// @Summary Session history
// @Description Successful generations of this session, newest first, with aggregate stats.
// @Tags history
// @Produce json
// @Success 200 {object} HistoryResponse
// @Router /api/history [get]
func (h *StudioHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history := h.service.History()
	writeJSON(w, http.StatusOK, HistoryResponse{
		Items: lo.Map(history.All(), func(res models.GenerationResult, i int) HistoryEntry {
			return HistoryEntry{
				Index:          i,
				Parameters:     res.Parameters,
				GenerationTime: res.GenerationTime,
				ImageURL:       res.DataURI(),
			}
		}),
		Stats: history.Stats(),
	})
}

// DownloadImage godoc
// @Summary Download image
// @Description Decoded PNG of a history entry, served as an attachment.
// @Tags history
// @Produce png
// @Param index path int true "History index, 0 is the newest"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/history/{index}/download [get]
func (h *StudioHandler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be a whole number")
		return
	}

	result, ok := h.service.History().At(index)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no image at index %d", index))
		return
	}

	data, err := result.PNG()
	if err != nil {
		h.logger.Error().Err(err).Int("index", index).Msg("stored image is not valid base64")
		writeError(w, http.StatusInternalServerError, "stored image is corrupt")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, downloadName(time.Now())))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// GetModelInfo godoc
// @Summary Model info
// @Description Model metadata from the info endpoint, cached when a cache is configured.
// @Tags model
// @Produce json
// @Success 200 {object} models.ModelInfo
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/model [get]
func (h *StudioHandler) GetModelInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.ModelInfo(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// ReloadModel godoc
// @Summary Reload model
// @Description Ask the remote service to reload its model and drop cached model info.
// @Tags model
// @Produce json
// @Success 200 {object} models.ReloadResult
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/model/reload [post]
func (h *StudioHandler) ReloadModel(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ReloadModel(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetConfig godoc
// @Summary Current API URL
// @Tags config
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /api/config [get]
func (h *StudioHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ConfigResponse{
		Configured: h.service.Configured(),
		APIURL:     h.service.BaseURL(),
	})
}

// PutConfig godoc
// @Summary Set API URL
// @Description Store the base URL the endpoint suffixes are appended to.
// @Tags config
// @Accept json
// @Produce json
// @Param request body ConfigRequest true "Base URL"
// @Success 200 {object} ConfigResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/config [put]
func (h *StudioHandler) PutConfig(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	if err := h.service.Configure(req.APIURL); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.GetConfig(w, r)
}

// DeleteConfig godoc
// @Summary Reset API URL
// @Description Forget the base URL, the generation state and the session history.
// @Tags config
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /api/config [delete]
func (h *StudioHandler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	h.service.Reset()
	h.GetConfig(w, r)
}

// Healthz godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (h *StudioHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func statusFor(err error) int {
	var validation *models.ValidationError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, jaguar.ErrNotConfigured):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func downloadName(now time.Time) string {
	return fmt.Sprintf("jaguar-%d.png", now.UnixMilli())
}
