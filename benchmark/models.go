package main

import "time"

type benchConfig struct {
	PromptsFile string   `env:"BENCH_PROMPTS" envDefault:"data/prompts.txt"`
	Sizes       []string `env:"BENCH_SIZES" envDefault:"512x512,1024x1024"`
	Steps       int      `env:"BENCH_STEPS" envDefault:"4"`
}

type size struct {
	Width  int
	Height int
}

func (s size) String() string {
	return fmtSize(s.Width, s.Height)
}

type BenchResult struct {
	Prompt string
	Size   size
	// Duration is wall-clock time of the whole request.
	Duration time.Duration
	// GenerationTime is the time the service reported, in seconds.
	GenerationTime float64
	ImageBytes     int
	Err            error
}

type Agg struct {
	Count          int
	Failures       int
	Total          time.Duration
	GenerationTime float64
	ImageBytes     int64
}
