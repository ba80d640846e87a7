package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/kdduha/jaguar-studio/internal/page"
	"github.com/samber/lo"
)

// Index renders the configure form, or the generator with the latest outcome and history.
func (h *StudioHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, page.NewParams(h.service, page.DefaultForm()))
}

// Configure stores the base URL submitted from the configure form.
func (h *StudioHandler) Configure(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("invalid form: %s", err), http.StatusBadRequest)
		return
	}

	if err := h.service.Configure(r.PostFormValue("api_url")); err != nil {
		params := page.NewParams(h.service, page.DefaultForm())
		params.ConfigError = err.Error()
		h.render(w, http.StatusBadRequest, params)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset forgets the base URL and the session history.
func (h *StudioHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.service.Reset()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Generate runs one generation cycle from the generator form and renders its outcome.
func (h *StudioHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("invalid form: %s", err), http.StatusBadRequest)
		return
	}

	form := formFromRequest(r)
	params, err := parseForm(form)
	if err != nil {
		view := page.NewParams(h.service, form)
		view.FormError = err.Error()
		h.render(w, http.StatusBadRequest, view)
		return
	}

	// the outcome is kept in the service state and rendered below
	_, _ = h.service.Generate(r.Context(), params)

	h.render(w, http.StatusOK, page.NewParams(h.service, form))
}

// RandomSeed re-renders the generator form with a freshly drawn seed.
func (h *StudioHandler) RandomSeed(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("invalid form: %s", err), http.StatusBadRequest)
		return
	}

	form := formFromRequest(r)
	form.Seed = strconv.FormatInt(models.RandomSeed(), 10)
	h.render(w, http.StatusOK, page.NewParams(h.service, form))
}

func (h *StudioHandler) render(w http.ResponseWriter, status int, params page.Params) {
	html, err := h.templator.Template(params)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(html)
}

func formFromRequest(r *http.Request) page.Form {
	return page.Form{
		Prompt:        r.PostFormValue("prompt"),
		Height:        strings.TrimSpace(r.PostFormValue("height")),
		Width:         strings.TrimSpace(r.PostFormValue("width")),
		GuidanceScale: strings.TrimSpace(r.PostFormValue("guidance_scale")),
		Steps:         strings.TrimSpace(r.PostFormValue("steps")),
		Seed:          strings.TrimSpace(r.PostFormValue("seed")),
	}
}

// parseForm turns form fields into parameters. Empty numeric fields are left
// unset; max_seq_length is not on the form and always takes its default.
func parseForm(form page.Form) (models.GenerationParameters, error) {
	var problems []string

	parseInt := func(name, raw string) *int {
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a whole number", name))
			return nil
		}
		return &v
	}

	params := models.GenerationParameters{
		Prompt:       form.Prompt,
		Height:       parseInt("Height", form.Height),
		Width:        parseInt("Width", form.Width),
		Steps:        parseInt("Steps", form.Steps),
		MaxSeqLength: lo.ToPtr(models.DefaultMaxSeqLength),
	}

	if form.GuidanceScale != "" {
		v, err := strconv.ParseFloat(form.GuidanceScale, 64)
		if err != nil {
			problems = append(problems, "Guidance scale must be a number")
		} else {
			params.GuidanceScale = &v
		}
	}

	if form.Seed != "" {
		v, err := strconv.ParseInt(form.Seed, 10, 64)
		if err != nil {
			problems = append(problems, "Seed must be a whole number")
		} else {
			params.Seed = &v
		}
	}

	if len(problems) > 0 {
		return params, errors.New(strings.Join(problems, ", "))
	}
	return params, nil
}
