package service

import (
	"context"
	"errors"

	"github.com/kiranj/helloguys/internal/domain"
	"github.com/kiranj/helloguys/internal/repository"
)

type settingsService struct {
	repo repository.SettingsRepo
}

// NewSettingsService creates a SettingsService over the given repository.
func NewSettingsService(repo repository.SettingsRepo) SettingsService {
	return &settingsService{repo: repo}
}

// Get returns the stored preferences, or defaults when nothing has been
// saved yet.
func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings domain.Settings) error {
	return s.repo.Save(ctx, settings)
}
