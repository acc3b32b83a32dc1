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

type InsertGroupInput struct {
	Name                string  `json:"name"`
	Priority            int     `json:"priority"`
	DefaultPriority     int     `json:"default_priority"`
	DefaultMaxQueueTime float64 `json:"default_max_queue_time"`
}

type GroupService interface {
	Insert(ctx context.Context, requester *model.User, in InsertGroupInput) (*model.Group, error)
	Remove(ctx context.Context, requester *model.User, groupID uuid.UUID) error
	List(ctx context.Context, requester *model.User) ([]model.Group, error)

	InsertAffiliation(ctx context.Context, requester *model.User, name string) (*model.Affiliation, error)
	ListAffiliations(ctx context.Context, requester *model.User) ([]model.Affiliation, error)
}

type groupService struct {
	groups       repo.GroupRepo
	affiliations repo.AffiliationRepo
}

func NewGroupService(groups repo.GroupRepo, affiliations repo.AffiliationRepo) GroupService {
	return &groupService{groups: groups, affiliations: affiliations}
}

// Insert creates a group template. Priority must be at least 1; the default
// fields copied onto new users must be non-negative.
func (s *groupService) Insert(ctx context.Context, requester *model.User, in InsertGroupInput) (*model.Group, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	if in.Name == "" {
		return nil, validationErr("group name is required")
	}
	if in.Priority < 1 {
		return nil, validationErr("priority must be at least 1")
	}
	if in.DefaultPriority < 0 {
		return nil, validationErr("default_priority must be non-negative")
	}
	if in.DefaultMaxQueueTime < 0 {
		return nil, validationErr("default_max_queue_time must be non-negative")
	}

	if _, err := s.groups.GetByName(ctx, in.Name); err == nil {
		return nil, validationErr(fmt.Sprintf("a group named %q already exists", in.Name))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	g := &model.Group{
		Name:                in.Name,
		Priority:            in.Priority,
		DefaultPriority:     in.DefaultPriority,
		DefaultMaxQueueTime: in.DefaultMaxQueueTime,
	}
	if err := s.groups.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Remove deletes a group template. Existing users keep the values copied from
// it.
func (s *groupService) Remove(ctx context.Context, requester *model.User, groupID uuid.UUID) error {
	if requester == nil || !requester.IsAdmin() {
		return authorizationErr("only admins can remove groups")
	}
	return s.groups.Delete(ctx, groupID)
}

func (s *groupService) List(ctx context.Context, requester *model.User) ([]model.Group, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	return s.groups.List(ctx)
}

func (s *groupService) InsertAffiliation(ctx context.Context, requester *model.User, name string) (*model.Affiliation, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	if name == "" {
		return nil, validationErr("affiliation name is required")
	}
	a := &model.Affiliation{Name: name}
	if err := s.affiliations.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *groupService) ListAffiliations(ctx context.Context, requester *model.User) ([]model.Affiliation, error) {
	if requester == nil {
		return nil, authorizationErr("")
	}
	return s.affiliations.List(ctx)
}
