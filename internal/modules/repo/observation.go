package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"gorm.io/gorm"
)

type ObservationRepo interface {
	Create(ctx context.Context, o *model.Observation) error
	Get(ctx context.Context, id uuid.UUID) (*model.Observation, error)
	List(ctx context.Context) ([]model.Observation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Observation, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	MarkOrphaned(ctx context.Context, id uuid.UUID) error
	SumPendingTime(ctx context.Context, ownerID uuid.UUID) (float64, error)

	DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	DeleteByProgram(ctx context.Context, programID uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type observationRepo struct{ db *gorm.DB }

func NewObservationRepo(db *gorm.DB) ObservationRepo {
	return &observationRepo{db: db}
}

func (r *observationRepo) Create(ctx context.Context, o *model.Observation) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *observationRepo) Get(ctx context.Context, id uuid.UUID) (*model.Observation, error) {
	var o model.Observation
	if err := r.db.WithContext(ctx).Where(&model.Observation{ID: id}).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *observationRepo) List(ctx context.Context) ([]model.Observation, error) {
	var items []model.Observation
	return items, r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
}

func (r *observationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Observation, error) {
	var items []model.Observation
	return items, r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&items).Error
}

func (r *observationRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	return r.db.WithContext(ctx).Model(&model.Observation{}).
		Where("id = ?", id).
		Update("completed", completed).Error
}

func (r *observationRepo) MarkOrphaned(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Observation{}).
		Where("id = ?", id).
		Update("orphaned", true).Error
}

// SumPendingTime returns the total committed observing seconds of the user's
// incomplete observations.
func (r *observationRepo) SumPendingTime(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Observation{}).
		Where("owner_id = ? AND completed = false", ownerID).
		Select("COALESCE(SUM(total_time), 0)").
		Scan(&total).Error
	return total, err
}

// DeleteOwned deletes the observation only when ownerID matches; a mismatch
// is a no-op, not an error.
func (r *observationRepo) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Observation{}).Error
}

func (r *observationRepo) DeleteByProgram(ctx context.Context, programID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("program_id = ?", programID).Delete(&model.Observation{}).Error
}

func (r *observationRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.Observation{}).Error
}
