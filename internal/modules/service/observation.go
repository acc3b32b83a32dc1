package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/openobs/telescope-queue/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InsertObservationInput struct {
	ProgramID     uuid.UUID              `json:"program_id"`
	Target        string                 `json:"target"`
	ExposureTime  float64                `json:"exposure_time"`
	ExposureCount int                    `json:"exposure_count"`
	Binning       int                    `json:"binning"`
	Filters       []string               `json:"filters"`
	Options       map[string]interface{} `json:"options"`
}

type ObservationService interface {
	Insert(ctx context.Context, requester *model.User, in InsertObservationInput) (*model.Observation, error)
	Remove(ctx context.Context, requester *model.User, observationID uuid.UUID) error
	SetCompleted(ctx context.Context, requester *model.User, observationID uuid.UUID, completed bool) error
	List(ctx context.Context, requester *model.User) ([]model.Observation, error)
	AvailableTime(ctx context.Context, userID uuid.UUID) (float64, error)
}

type observationService struct {
	observations repo.ObservationRepo
	programs     repo.ProgramRepo
	users        repo.UserRepo
	log          *zap.Logger
}

func NewObservationService(observations repo.ObservationRepo, programs repo.ProgramRepo, users repo.UserRepo, log *zap.Logger) ObservationService {
	return &observationService{
		observations: observations,
		programs:     programs,
		users:        users,
		log:          log,
	}
}

func (in *InsertObservationInput) validate() error {
	if in.Target == "" {
		return validationErr("target is required")
	}
	if in.ExposureTime <= 0 {
		return validationErr("exposure_time must be positive")
	}
	if in.ExposureCount < 1 {
		return validationErr("exposure_count must be at least 1")
	}
	if in.Binning < 1 {
		return validationErr("binning must be at least 1")
	}
	if len(in.Filters) == 0 {
		return validationErr("at least one filter is required")
	}
	for k := range in.Options {
		if !model.ObservationOptionKeys[k] {
			return validationErr(fmt.Sprintf("unknown option %q", k))
		}
	}
	return nil
}

// Insert validates the request, charges the derived observing time against the
// owner's quota, writes the observation row and then patches the owning
// program's reference set. The two writes are separate statements; when the
// patch fails the row is flagged orphaned instead of being rolled back.
func (s *observationService) Insert(ctx context.Context, requester *model.User, in InsertObservationInput) (*model.Observation, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	requested := in.ExposureTime * float64(in.ExposureCount) * float64(len(in.Filters))

	available, err := s.AvailableTime(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	if requested > available {
		return nil, quotaExceededErr(fmt.Sprintf(
			"requested %.0fs exceeds available queue time %.0fs", requested, available))
	}

	o := &model.Observation{
		ProgramID:     in.ProgramID,
		Target:        in.Target,
		ExposureTime:  in.ExposureTime,
		ExposureCount: in.ExposureCount,
		Binning:       in.Binning,
		Filters:       in.Filters,
		Options:       in.Options,
		OwnerID:       requester.ID,
		Email:         requester.Email,
		TotalTime:     requested,
	}
	if err := s.observations.Create(ctx, o); err != nil {
		return nil, err
	}

	if err := s.programs.AddObservationRef(ctx, in.ProgramID, o.ID.String()); err != nil {
		s.log.Warn("observation reference patch failed, marking orphaned",
			zap.String("observation_id", o.ID.String()),
			zap.String("program_id", in.ProgramID.String()),
			zap.Error(err))
		if markErr := s.observations.MarkOrphaned(ctx, o.ID); markErr != nil {
			s.log.Error("failed to mark observation orphaned",
				zap.String("observation_id", o.ID.String()), zap.Error(markErr))
		}
		return nil, err
	}
	return o, nil
}

// Remove pulls the reference from the owning program and deletes the row with
// an owner-scoped delete. A non-owner request removes nothing and reports no
// error.
func (s *observationService) Remove(ctx context.Context, requester *model.User, observationID uuid.UUID) error {
	if requester == nil {
		return authorizationErr("")
	}

	o, err := s.observations.Get(ctx, observationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("observation not found")
		}
		return err
	}

	if err := s.programs.PullObservationRef(ctx, o.ProgramID, o.ID.String()); err != nil {
		return err
	}
	return s.observations.DeleteOwned(ctx, observationID, requester.ID)
}

// SetCompleted flips the completion flag, which releases or re-charges the
// observation's time against the owner's quota. Any authenticated user may
// call it, so the scheduler account can mark runs complete.
func (s *observationService) SetCompleted(ctx context.Context, requester *model.User, observationID uuid.UUID, completed bool) error {
	if requester == nil {
		return authorizationErr("")
	}
	return s.observations.SetCompleted(ctx, observationID, completed)
}

func (s *observationService) List(ctx context.Context, requester *model.User) ([]model.Observation, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	if requester.IsAdmin() {
		return s.observations.List(ctx)
	}
	return s.observations.ListByOwner(ctx, requester.ID)
}
