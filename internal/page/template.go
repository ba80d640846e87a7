package page

import (
	"bytes"
	_ "embed"
	"html/template"
	"strconv"
	"sync"

	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/kdduha/jaguar-studio/internal/service"
	"github.com/kdduha/jaguar-studio/internal/session"
	"github.com/samber/lo"
)

//go:embed assets/index.html
var indexTmpl string

// Form holds the generator form fields exactly as the user entered them.
type Form struct {
	Prompt        string
	Height        string
	Width         string
	GuidanceScale string
	Steps         string
	Seed          string
}

// DefaultForm is the form shown before anything was submitted. Seed stays empty ("Random").
func DefaultForm() Form {
	return Form{
		Height:        strconv.Itoa(models.DefaultHeight),
		Width:         strconv.Itoa(models.DefaultWidth),
		GuidanceScale: strconv.FormatFloat(models.DefaultGuidanceScale, 'f', -1, 64),
		Steps:         strconv.Itoa(models.DefaultSteps),
	}
}

type HistoryItem struct {
	Index          int
	ImageURL       string
	Prompt         string
	Width          int
	Height         int
	GenerationTime float64
}

type Params struct {
	Configured  bool
	BaseURL     string
	ConfigError string
	FormError   string
	Form        Form
	State       service.State
	History     []HistoryItem
	Stats       session.Stats
}

// Source is the read side of the page shell.
type Source interface {
	Configured() bool
	BaseURL() string
	State() service.State
	History() *session.History
}

// NewParams collects everything the page shows for the shell's current state.
func NewParams(shell Source, form Form) Params {
	history := shell.History()
	return Params{
		Configured: shell.Configured(),
		BaseURL:    shell.BaseURL(),
		Form:       form,
		State:      shell.State(),
		History: lo.Map(history.All(), func(r models.GenerationResult, i int) HistoryItem {
			return HistoryItem{
				Index:          i,
				ImageURL:       r.DataURI(),
				Prompt:         r.Parameters.Prompt,
				Width:          r.Parameters.Width,
				Height:         r.Parameters.Height,
				GenerationTime: r.GenerationTime,
			}
		}),
		Stats: history.Stats(),
	}
}

type Templator struct {
	tmpl *template.Template
	once sync.Once
}

func NewTemplator() *Templator {
	return &Templator{}
}

func (g *Templator) Template(params Params) ([]byte, error) {
	g.once.Do(func() {
		g.tmpl = template.Must(template.New("index").Funcs(template.FuncMap{
			"seed": formatSeed,
			// html/template refuses data: URIs in src unless they are marked safe.
			"imageSrc": func(uri string) template.URL { return template.URL(uri) },
		}).Parse(indexTmpl))
	})

	var data bytes.Buffer
	if err := g.tmpl.Execute(&data, params); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

func formatSeed(seed *int64) string {
	if seed == nil {
		return "Random"
	}
	return strconv.FormatInt(*seed, 10)
}
