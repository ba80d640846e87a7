package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/kdduha/jaguar-studio/internal/config"
	"github.com/kdduha/jaguar-studio/internal/jaguar"
	"github.com/kdduha/jaguar-studio/internal/logger"
	"github.com/kdduha/jaguar-studio/internal/models"
	"github.com/kdduha/jaguar-studio/internal/service"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	var bench benchConfig
	if err := env.Parse(&bench); err != nil {
		fmt.Fprintf(os.Stderr, "benchmark config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}

	prompts, err := readPrompts(bench.PromptsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", bench.PromptsFile).Msg("failed to read prompts")
	}
	sizes, err := parseSizes(bench.Sizes)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid sizes")
	}

	client := service.NewGenerationClient(
		zerolog.Nop(),
		jaguar.NewClient(log, cfg.Jaguar),
		cfg.Jaguar.BaseURL,
		service.Callbacks{},
	)

	var results []BenchResult
	for _, s := range sizes {
		for _, prompt := range prompts {
			res := benchmarkPrompt(ctx, client, prompt, s, bench.Steps)

			if res.Err != nil {
				log.Error().Err(res.Err).Str("size", s.String()).Msg("generation failed")
			} else {
				log.Info().
					Str("size", s.String()).
					Dur("duration", res.Duration).
					Float64("generation_time", res.GenerationTime).
					Msg("OK " + logger.Truncate(prompt, 40))
			}

			results = append(results, res)
		}
	}

	printMarkdown(results)
}

func benchmarkPrompt(ctx context.Context, client *service.GenerationClient, prompt string, s size, steps int) BenchResult {
	start := time.Now()

	result, err := client.Generate(ctx, models.GenerationParameters{
		Prompt: prompt,
		Width:  lo.ToPtr(s.Width),
		Height: lo.ToPtr(s.Height),
		Steps:  lo.ToPtr(steps),
	})

	res := BenchResult{
		Prompt:   prompt,
		Size:     s,
		Duration: time.Since(start),
		Err:      err,
	}
	if err == nil {
		res.GenerationTime = result.GenerationTime
		res.ImageBytes = len(result.Image)
	}
	return res
}

func readPrompts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var prompts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			prompts = append(prompts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("no prompts in %s", path)
	}
	return prompts, nil
}

func parseSizes(raw []string) ([]size, error) {
	sizes := make([]size, 0, len(raw))
	for _, r := range raw {
		w, h, ok := strings.Cut(strings.TrimSpace(r), "x")
		if !ok {
			return nil, fmt.Errorf("size %q is not WIDTHxHEIGHT", r)
		}
		width, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", r, err)
		}
		height, err := strconv.Atoi(h)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", r, err)
		}
		sizes = append(sizes, size{Width: width, Height: height})
	}
	return sizes, nil
}

func fmtSize(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

func aggregate(results []BenchResult) map[string]Agg {
	m := map[string]Agg{}
	for _, r := range results {
		key := r.Size.String()
		a := m[key]
		if r.Err != nil {
			a.Failures++
			m[key] = a
			continue
		}
		a.Count++
		a.Total += r.Duration
		a.GenerationTime += r.GenerationTime
		a.ImageBytes += int64(r.ImageBytes)
		m[key] = a
	}
	return m
}

func printMarkdown(results []BenchResult) {
	fmt.Print("\n## Benchmark Results\n\n")
	fmt.Println("| Size | OK | Failed | Avg Wall Time | Avg Generation Time | Total Time | Avg Image Size |")
	fmt.Println("|------|----|--------|---------------|---------------------|------------|----------------|")

	agg := aggregate(results)
	keys := lo.Keys(agg)
	sort.Strings(keys)

	var total Agg
	for _, key := range keys {
		a := agg[key]
		printRow(key, a)
		total.Count += a.Count
		total.Failures += a.Failures
		total.Total += a.Total
		total.GenerationTime += a.GenerationTime
		total.ImageBytes += a.ImageBytes
	}

	if total.Count+total.Failures > 0 {
		printRow("**ALL**", total)
	}
}

func printRow(name string, a Agg) {
	if a.Count == 0 {
		fmt.Printf("| %s | 0 | %d | - | - | - | - |\n", name, a.Failures)
		return
	}
	avg := a.Total / time.Duration(a.Count)
	fmt.Printf("| %s | %d | %d | %v | %.1fs | %v | %s |\n",
		name,
		a.Count,
		a.Failures,
		avg.Round(time.Millisecond),
		a.GenerationTime/float64(a.Count),
		a.Total.Round(time.Millisecond),
		humanBytes(a.ImageBytes/int64(a.Count)),
	)
}

// humanBytes reports the decoded size of a base64 payload of the given length.
func humanBytes(encoded int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	size := encoded * 3 / 4
	switch {
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/MB)
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/KB)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
