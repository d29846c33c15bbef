package reel

import (
	"slot_backend/internal/config"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       []config.ReelConfig
	repo      repository.ReelRepository
	userRepo  repository.UserRepository
	statsRepo repository.ReelStatsRepository
	txManager trm.Manager
}

// NewReelService Создать новый трехбарабанный слот
func NewReelService(
	cfg []config.ReelConfig,
	repo repository.ReelRepository,
	userRepo repository.UserRepository,
	statsRepo repository.ReelStatsRepository,
	txManager trm.Manager,
) service.ReelService {
	return &serv{
		cfg:       cfg,
		repo:      repo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}

// currentPreset - активный пресет весов по индексу из статистики.
// Индекс вне списка откатывается на средний пресет
func (s *serv) currentPreset() config.ReelConfig {
	idx := s.statsRepo.State().PresetIndex
	if idx < 0 || idx >= len(s.cfg) {
		idx = len(s.cfg) / 2
	}
	return s.cfg[idx]
}
