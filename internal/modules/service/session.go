package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/openobs/telescope-queue/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SessionService interface {
	Insert(ctx context.Context, requester *model.User, programID uuid.UUID, start, end string) (*model.Session, error)
	Remove(ctx context.Context, requester *model.User, sessionID uuid.UUID) error
	List(ctx context.Context, requester *model.User) ([]model.Session, error)
}

type sessionService struct {
	sessions repo.SessionRepo
	programs repo.ProgramRepo
	log      *zap.Logger
}

func NewSessionService(sessions repo.SessionRepo, programs repo.ProgramRepo, log *zap.Logger) SessionService {
	return &sessionService{sessions: sessions, programs: programs, log: log}
}

// Insert reserves a time window under a program. Timestamps arrive as RFC3339
// strings; the window must have positive length. The session row and the
// parent reference patch are separate writes.
func (s *sessionService) Insert(ctx context.Context, requester *model.User, programID uuid.UUID, start, end string) (*model.Session, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}

	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return nil, validationErr("start must be an RFC3339 timestamp")
	}
	endAt, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return nil, validationErr("end must be an RFC3339 timestamp")
	}
	if !endAt.After(startAt) {
		return nil, validationErr("session end must be after start")
	}

	sess := &model.Session{
		ProgramID: programID,
		Start:     startAt,
		End:       endAt,
		OwnerID:   requester.ID,
		Email:     requester.Email,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	if err := s.programs.AddSessionRef(ctx, programID, sess.ID.String()); err != nil {
		s.log.Warn("session reference patch failed",
			zap.String("session_id", sess.ID.String()),
			zap.String("program_id", programID.String()),
			zap.Error(err))
		return nil, err
	}
	return sess, nil
}

// Remove deletes a session the requester owns and pulls its reference from
// the owning program.
func (s *sessionService) Remove(ctx context.Context, requester *model.User, sessionID uuid.UUID) error {
	if requester == nil {
		return authorizationErr("")
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("session not found")
		}
		return err
	}
	if sess.OwnerID != requester.ID {
		return authorizationErr("only the owner can delete a session")
	}

	if err := s.programs.PullSessionRef(ctx, sess.ProgramID, sess.ID.String()); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *sessionService) List(ctx context.Context, requester *model.User) ([]model.Session, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	return s.sessions.List(ctx)
}
