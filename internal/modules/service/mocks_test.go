package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/stretchr/testify/mock"
)

// MockProgramRepo is a mock implementation of ProgramRepo
type MockProgramRepo struct {
	mock.Mock
}

func (m *MockProgramRepo) Create(ctx context.Context, p *model.Program) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProgramRepo) Get(ctx context.Context, id uuid.UUID) (*model.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Program), args.Error(1)
}

func (m *MockProgramRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Program, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Program), args.Error(1)
}

func (m *MockProgramRepo) ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Program, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Program), args.Error(1)
}

func (m *MockProgramRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	args := m.Called(ctx, id, completed)
	return args.Error(0)
}

func (m *MockProgramRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProgramRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockProgramRepo) AddObservationRef(ctx context.Context, programID uuid.UUID, ref string) error {
	args := m.Called(ctx, programID, ref)
	return args.Error(0)
}

func (m *MockProgramRepo) PullObservationRef(ctx context.Context, programID uuid.UUID, ref string) error {
	args := m.Called(ctx, programID, ref)
	return args.Error(0)
}

func (m *MockProgramRepo) AddSessionRef(ctx context.Context, programID uuid.UUID, ref string) error {
	args := m.Called(ctx, programID, ref)
	return args.Error(0)
}

func (m *MockProgramRepo) PullSessionRef(ctx context.Context, programID uuid.UUID, ref string) error {
	args := m.Called(ctx, programID, ref)
	return args.Error(0)
}

func (m *MockProgramRepo) AddSharedWith(ctx context.Context, programID uuid.UUID, ref string) error {
	args := m.Called(ctx, programID, ref)
	return args.Error(0)
}

// MockObservationRepo is a mock implementation of ObservationRepo
type MockObservationRepo struct {
	mock.Mock
}

func (m *MockObservationRepo) Create(ctx context.Context, o *model.Observation) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockObservationRepo) Get(ctx context.Context, id uuid.UUID) (*model.Observation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Observation), args.Error(1)
}

func (m *MockObservationRepo) List(ctx context.Context) ([]model.Observation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Observation), args.Error(1)
}

func (m *MockObservationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Observation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Observation), args.Error(1)
}

func (m *MockObservationRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	args := m.Called(ctx, id, completed)
	return args.Error(0)
}

func (m *MockObservationRepo) MarkOrphaned(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockObservationRepo) SumPendingTime(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockObservationRepo) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockObservationRepo) DeleteByProgram(ctx context.Context, programID uuid.UUID) error {
	args := m.Called(ctx, programID)
	return args.Error(0)
}

func (m *MockObservationRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// MockSessionRepo is a mock implementation of SessionRepo
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, s *model.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepo) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepo) List(ctx context.Context) ([]model.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Session), args.Error(1)
}

func (m *MockSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepo) DeleteByProgram(ctx context.Context, programID uuid.UUID) error {
	args := m.Called(ctx, programID)
	return args.Error(0)
}

func (m *MockSessionRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// MockUserRepo is a mock implementation of UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepo) SetRole(ctx context.Context, id uuid.UUID, role string) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGroupRepo is a mock implementation of GroupRepo
type MockGroupRepo struct {
	mock.Mock
}

func (m *MockGroupRepo) Create(ctx context.Context, g *model.Group) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGroupRepo) GetByName(ctx context.Context, name string) (*model.Group, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepo) List(ctx context.Context) ([]model.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Group), args.Error(1)
}

func (m *MockGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAffiliationRepo is a mock implementation of AffiliationRepo
type MockAffiliationRepo struct {
	mock.Mock
}

func (m *MockAffiliationRepo) Create(ctx context.Context, a *model.Affiliation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAffiliationRepo) List(ctx context.Context) ([]model.Affiliation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Affiliation), args.Error(1)
}
