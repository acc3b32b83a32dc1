package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/openobs/telescope-queue/internal/modules/repo"
	"gorm.io/gorm"
)

type ProgramService interface {
	Insert(ctx context.Context, requester *model.User, name, executor string) (*model.Program, error)
	Remove(ctx context.Context, requester *model.User, programID uuid.UUID) error
	SetCompleted(ctx context.Context, requester *model.User, programID uuid.UUID, completed bool) error
	ShareWith(ctx context.Context, requester *model.User, programID uuid.UUID, email string) (string, error)
	ListVisible(ctx context.Context, requester *model.User) ([]model.Program, error)
}

type programService struct {
	programs     repo.ProgramRepo
	observations repo.ObservationRepo
	sessions     repo.SessionRepo
	users        repo.UserRepo
}

func NewProgramService(programs repo.ProgramRepo, observations repo.ObservationRepo, sessions repo.SessionRepo, users repo.UserRepo) ProgramService {
	return &programService{
		programs:     programs,
		observations: observations,
		sessions:     sessions,
		users:        users,
	}
}

// Insert creates a program owned by the requester. The per-owner name
// uniqueness check is a read-then-write, consistent with the rest of the
// mutation surface.
func (s *programService) Insert(ctx context.Context, requester *model.User, name, executor string) (*model.Program, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	if name == "" {
		return nil, validationErr("program name is required")
	}
	if !model.ValidExecutor(executor) {
		return nil, validationErr(fmt.Sprintf("unknown executor %q", executor))
	}

	existing, err := s.programs.ListByOwner(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.Name == name {
			return nil, validationErr(fmt.Sprintf("a program named %q already exists", name))
		}
	}

	ownerID := requester.ID
	p := &model.Program{
		Name:           name,
		Executor:       executor,
		OwnerID:        &ownerID,
		Email:          requester.Email,
		ObservationIDs: []string{},
		SessionIDs:     []string{},
		SharedWith:     []string{},
	}
	if err := s.programs.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Remove deletes a program and cascades to its sessions and observations.
// The "General" program is never deleted; that is a silent no-op regardless
// of requester.
func (s *programService) Remove(ctx context.Context, requester *model.User, programID uuid.UUID) error {
	if requester == nil {
		return authorizationErr("")
	}

	p, err := s.programs.Get(ctx, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("program not found")
		}
		return err
	}

	if p.Name == model.GeneralProgramName {
		return nil
	}
	if p.OwnerID == nil || *p.OwnerID != requester.ID {
		return authorizationErr("only the owner can delete a program")
	}

	// Cascade order mirrors the mutation source: sessions, observations,
	// then the program itself. Each step is an independent write.
	if err := s.sessions.DeleteByProgram(ctx, programID); err != nil {
		return err
	}
	if err := s.observations.DeleteByProgram(ctx, programID); err != nil {
		return err
	}
	return s.programs.Delete(ctx, programID)
}

func (s *programService) SetCompleted(ctx context.Context, requester *model.User, programID uuid.UUID, completed bool) error {
	if requester == nil {
		return authorizationErr("")
	}
	return s.programs.SetCompleted(ctx, programID, completed)
}

// ShareWith adds the user holding email to the program's shared set. The add
// is an idempotent set union.
func (s *programService) ShareWith(ctx context.Context, requester *model.User, programID uuid.UUID, email string) (string, error) {
	if requester == nil {
		return "", authorizationErr("")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFoundErr(fmt.Sprintf("unable to find user with email: %s", email))
		}
		return "", err
	}

	if err := s.programs.AddSharedWith(ctx, programID, u.ID.String()); err != nil {
		return "", err
	}
	return "Success", nil
}

// ListVisible returns the programs the requester may read: their own, public
// ones, and programs shared with them.
func (s *programService) ListVisible(ctx context.Context, requester *model.User) ([]model.Program, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	return s.programs.ListVisible(ctx, requester.ID)
}
