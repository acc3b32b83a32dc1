package repo

import (
	"context"

	"github.com/openobs/telescope-queue/internal/modules/model"
	"gorm.io/gorm"
)

// AffiliationRepo backs the legacy affiliation compatibility path.
type AffiliationRepo interface {
	Create(ctx context.Context, a *model.Affiliation) error
	List(ctx context.Context) ([]model.Affiliation, error)
}

type affiliationRepo struct{ db *gorm.DB }

func NewAffiliationRepo(db *gorm.DB) AffiliationRepo {
	return &affiliationRepo{db: db}
}

func (r *affiliationRepo) Create(ctx context.Context, a *model.Affiliation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *affiliationRepo) List(ctx context.Context) ([]model.Affiliation, error) {
	var items []model.Affiliation
	return items, r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
}
