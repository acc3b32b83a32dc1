package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"gorm.io/gorm"
)

type SessionRepo interface {
	Create(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, id uuid.UUID) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProgram(ctx context.Context, programID uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type sessionRepo struct{ db *gorm.DB }

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepo) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	var s model.Session
	if err := r.db.WithContext(ctx).Where(&model.Session{ID: id}).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]model.Session, error) {
	var items []model.Session
	return items, r.db.WithContext(ctx).Order("start ASC").Find(&items).Error
}

func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", id).Error
}

func (r *sessionRepo) DeleteByProgram(ctx context.Context, programID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("program_id = ?", programID).Delete(&model.Session{}).Error
}

func (r *sessionRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.Session{}).Error
}
