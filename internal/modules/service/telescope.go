package service

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/openobs/telescope-queue/internal/config"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/redis/go-redis/v9"
)

type TelescopeService interface {
	Status(ctx context.Context) (*model.TelescopeStatus, error)
}

type telescopeService struct {
	rdb       *redis.Client
	statusKey string
	name      string
}

func NewTelescopeService(rdb *redis.Client, cfg *config.Config) TelescopeService {
	return &telescopeService{
		rdb:       rdb,
		statusKey: cfg.Telescope.StatusKey,
		name:      cfg.Telescope.Name,
	}
}

// Status reads the state document the external status daemon keeps in redis.
// A missing key means the daemon is down or has never reported.
func (s *telescopeService) Status(ctx context.Context) (*model.TelescopeStatus, error) {
	raw, err := s.rdb.Get(ctx, s.statusKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFoundErr("telescope status unavailable")
		}
		return nil, err
	}

	var st model.TelescopeStatus
	if err := sonic.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	if st.Name == "" {
		st.Name = s.name
	}
	return &st, nil
}
