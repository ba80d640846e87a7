package service

import (
	"context"
	"errors"

	"github.com/kdduha/jaguar-studio/internal/models"
)

type mockGenerator struct {
	generateFunc func(ctx context.Context, base string, params models.EffectiveParameters) (*models.GenerationResult, error)
	info         *models.ModelInfo
	infoCalls    int
	reloadCalls  int
	err          error
}

func (m *mockGenerator) Generate(ctx context.Context, base string, params models.EffectiveParameters) (*models.GenerationResult, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, base, params)
	}
	return nil, errors.New("not implemented")
}

func (m *mockGenerator) Info(ctx context.Context, base string) (*models.ModelInfo, error) {
	m.infoCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.info, nil
}

func (m *mockGenerator) Reload(ctx context.Context, base string) (*models.ReloadResult, error) {
	m.reloadCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &models.ReloadResult{Status: "reloaded"}, nil
}

type mockCache struct {
	data    map[string]string
	deleted []string
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (m *mockCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value string) error {
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}
