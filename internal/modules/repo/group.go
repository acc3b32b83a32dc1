package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"gorm.io/gorm"
)

type GroupRepo interface {
	Create(ctx context.Context, g *model.Group) error
	GetByName(ctx context.Context, name string) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type groupRepo struct{ db *gorm.DB }

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &groupRepo{db: db}
}

func (r *groupRepo) Create(ctx context.Context, g *model.Group) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *groupRepo) GetByName(ctx context.Context, name string) (*model.Group, error) {
	var g model.Group
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepo) List(ctx context.Context) ([]model.Group, error) {
	var items []model.Group
	return items, r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
}

func (r *groupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Group{}, "id = ?", id).Error
}
