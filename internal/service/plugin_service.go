//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strings"

	"plughub/internal/model"
	"plughub/internal/repository"
)

// PluginService is the thin catalog layer: enough to publish an artifact and
// resolve a download target.
type PluginService interface {
	Register(ctx context.Context, name, version string, description *string, filePath string) (model.Plugin, error)
	Get(ctx context.Context, id int64) (model.Plugin, error)
	List(ctx context.Context) ([]model.Plugin, error)
}

type pluginService struct {
	plugins repository.PluginRepository
}

func NewPluginService(plugins repository.PluginRepository) PluginService {
	return &pluginService{plugins: plugins}
}

func (s *pluginService) Register(ctx context.Context, name, version string, description *string, filePath string) (model.Plugin, error) {
	name = strings.TrimSpace(name)
	version = strings.TrimSpace(version)
	filePath = strings.TrimSpace(filePath)
	if name == "" || version == "" || filePath == "" {
		return model.Plugin{}, ErrInvalid
	}

	plugin, err := s.plugins.Create(ctx, name, version, description, filePath)
	if err != nil {
		return model.Plugin{}, fmt.Errorf("create plugin: %w", err)
	}
	return *plugin, nil
}

func (s *pluginService) Get(ctx context.Context, id int64) (model.Plugin, error) {
	plugin, err := s.plugins.GetByID(ctx, id)
	if err != nil {
		return model.Plugin{}, fmt.Errorf("get plugin %d: %w", id, err)
	}
	if plugin == nil {
		return model.Plugin{}, ErrNotFound
	}
	return *plugin, nil
}

func (s *pluginService) List(ctx context.Context) ([]model.Plugin, error) {
	plugins, err := s.plugins.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plugins: %w", err)
	}
	return plugins, nil
}
