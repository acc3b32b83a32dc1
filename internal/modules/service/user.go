package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/infra/queue"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/openobs/telescope-queue/internal/modules/repo"
	"github.com/openobs/telescope-queue/internal/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const routingKeyUserEnrolled = "user.enrolled"

type CreateUserInput struct {
	Email   string                 `json:"email"`
	Group   string                 `json:"group"`
	Profile map[string]interface{} `json:"profile"`
}

type UserService interface {
	CreateUser(ctx context.Context, requester *model.User, in CreateUserInput) (*model.User, error)
	RemoveUser(ctx context.Context, requester *model.User, userID uuid.UUID) error
	SetRole(ctx context.Context, requester *model.User, userID uuid.UUID, role string) error
	List(ctx context.Context, requester *model.User) ([]model.User, error)
}

type userService struct {
	users        repo.UserRepo
	groups       repo.GroupRepo
	programs     repo.ProgramRepo
	observations repo.ObservationRepo
	sessions     repo.SessionRepo
	publisher    *queue.Publisher
	log          *zap.Logger
}

func NewUserService(
	users repo.UserRepo,
	groups repo.GroupRepo,
	programs repo.ProgramRepo,
	observations repo.ObservationRepo,
	sessions repo.SessionRepo,
	publisher *queue.Publisher,
	log *zap.Logger,
) UserService {
	return &userService{
		users:        users,
		groups:       groups,
		programs:     programs,
		observations: observations,
		sessions:     sessions,
		publisher:    publisher,
		log:          log,
	}
}

// CreateUser enrolls a new account, copying priority and queue-time quota
// from the named group at creation time. Groups missing either field fall
// back to priority 1 and a 4 hour quota. The issued API token is returned
// once on the created record.
func (s *userService) CreateUser(ctx context.Context, requester *model.User, in CreateUserInput) (*model.User, error) {
	if requester == nil || !requester.IsAdmin() {
		return nil, authorizationErr("only admins can create users")
	}
	if in.Email == "" {
		return nil, validationErr("email is required")
	}

	priority := model.DefaultPriority
	maxQueueTime := float64(model.DefaultMaxQueueTime)
	if in.Group != "" {
		g, err := s.groups.GetByName(ctx, in.Group)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErr(fmt.Sprintf("group %q not found", in.Group))
			}
			return nil, err
		}
		if g.DefaultPriority > 0 {
			priority = g.DefaultPriority
		}
		if g.DefaultMaxQueueTime > 0 {
			maxQueueTime = g.DefaultMaxQueueTime
		}
	}

	token, err := utils.GenerateKey("tq-")
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        in.Email,
		Profile:      in.Profile,
		Role:         model.RoleUser,
		Group:        in.Group,
		MaxQueueTime: maxQueueTime,
		Priority:     priority,
		APIToken:     token,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishJSON(ctx, routingKeyUserEnrolled, map[string]interface{}{
			"user_id": u.ID.String(),
			"email":   u.Email,
			"group":   u.Group,
		}); err != nil {
			s.log.Warn("enrollment event publish failed",
				zap.String("user_id", u.ID.String()), zap.Error(err))
		}
	}
	return u, nil
}

// RemoveUser deletes the account and everything it owns: programs,
// observations and sessions, each with a bulk owner-scoped delete.
// Observations other users filed under the removed user's programs are left
// behind as dangling rows.
func (s *userService) RemoveUser(ctx context.Context, requester *model.User, userID uuid.UUID) error {
	if requester == nil || !requester.IsAdmin() {
		return authorizationErr("only admins can remove users")
	}

	if _, err := s.users.Get(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("user not found")
		}
		return err
	}

	if err := s.programs.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.observations.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.sessions.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

// SetRole assigns the user's single role. Roles are exclusive, so the
// assignment replaces whatever role the user held.
func (s *userService) SetRole(ctx context.Context, requester *model.User, userID uuid.UUID, role string) error {
	if requester == nil || !requester.IsAdmin() {
		return authorizationErr("only admins can change roles")
	}
	if role != model.RoleAdmin && role != model.RoleUser {
		return validationErr(fmt.Sprintf("unknown role %q", role))
	}

	if _, err := s.users.Get(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("user not found")
		}
		return err
	}
	return s.users.SetRole(ctx, userID, role)
}

// List returns all accounts for admins, and only the requester's own account
// otherwise.
func (s *userService) List(ctx context.Context, requester *model.User) ([]model.User, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	if requester.IsAdmin() {
		return s.users.List(ctx)
	}
	return []model.User{*requester}, nil
}
