package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"gorm.io/gorm"
)

// Reference-set columns on programs. Updated with single-statement jsonb
// union/difference so each patch is atomic per row (there is no cross-row
// transaction around child insert + parent patch).
const (
	colObservationIDs = "observation_ids"
	colSessionIDs     = "session_ids"
	colSharedWith     = "shared_with"
)

type ProgramRepo interface {
	Create(ctx context.Context, p *model.Program) error
	Get(ctx context.Context, id uuid.UUID) (*model.Program, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Program, error)
	ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Program, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error

	AddObservationRef(ctx context.Context, programID uuid.UUID, ref string) error
	PullObservationRef(ctx context.Context, programID uuid.UUID, ref string) error
	AddSessionRef(ctx context.Context, programID uuid.UUID, ref string) error
	PullSessionRef(ctx context.Context, programID uuid.UUID, ref string) error
	AddSharedWith(ctx context.Context, programID uuid.UUID, ref string) error
}

type programRepo struct{ db *gorm.DB }

func NewProgramRepo(db *gorm.DB) ProgramRepo {
	return &programRepo{db: db}
}

func (r *programRepo) Create(ctx context.Context, p *model.Program) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *programRepo) Get(ctx context.Context, id uuid.UUID) (*model.Program, error) {
	var p model.Program
	if err := r.db.WithContext(ctx).Where(&model.Program{ID: id}).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Program, error) {
	var items []model.Program
	return items, r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&items).Error
}

func (r *programRepo) ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Program, error) {
	var items []model.Program
	err := r.db.WithContext(ctx).
		Where("owner_id = ? OR owner_id IS NULL OR shared_with @> to_jsonb(?::text)", userID, userID.String()).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *programRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	return r.db.WithContext(ctx).Model(&model.Program{}).
		Where("id = ?", id).
		Update("completed", completed).Error
}

func (r *programRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Program{}, "id = ?", id).Error
}

func (r *programRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.Program{}).Error
}

// addRef appends ref to the jsonb array column unless already present
// (idempotent set union, one atomic statement).
func (r *programRepo) addRef(ctx context.Context, column string, programID uuid.UUID, ref string) error {
	return r.db.WithContext(ctx).Exec(
		"UPDATE programs SET "+column+" = "+column+" || to_jsonb(?::text), updated_at = now()"+
			" WHERE id = ? AND NOT "+column+" @> to_jsonb(?::text)",
		ref, programID, ref,
	).Error
}

// pullRef removes every occurrence of ref from the jsonb array column.
func (r *programRepo) pullRef(ctx context.Context, column string, programID uuid.UUID, ref string) error {
	return r.db.WithContext(ctx).Exec(
		"UPDATE programs SET "+column+" = "+column+" - ?::text, updated_at = now() WHERE id = ?",
		ref, programID,
	).Error
}

func (r *programRepo) AddObservationRef(ctx context.Context, programID uuid.UUID, ref string) error {
	return r.addRef(ctx, colObservationIDs, programID, ref)
}

func (r *programRepo) PullObservationRef(ctx context.Context, programID uuid.UUID, ref string) error {
	return r.pullRef(ctx, colObservationIDs, programID, ref)
}

func (r *programRepo) AddSessionRef(ctx context.Context, programID uuid.UUID, ref string) error {
	return r.addRef(ctx, colSessionIDs, programID, ref)
}

func (r *programRepo) PullSessionRef(ctx context.Context, programID uuid.UUID, ref string) error {
	return r.pullRef(ctx, colSessionIDs, programID, ref)
}

func (r *programRepo) AddSharedWith(ctx context.Context, programID uuid.UUID, ref string) error {
	return r.addRef(ctx, colSharedWith, programID, ref)
}
