package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func observer(id uuid.UUID, maxQueueTime float64) *model.User {
	return &model.User{
		ID:           id,
		Email:        "observer@example.org",
		Role:         model.RoleUser,
		MaxQueueTime: maxQueueTime,
	}
}

func TestObservationService_AvailableTime(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name  string
		setup func(*MockUserRepo, *MockObservationRepo)
		want  float64
	}{
		{
			name: "quota minus pending time",
			setup: func(users *MockUserRepo, obs *MockObservationRepo) {
				users.On("Get", ctx, userID).Return(observer(userID, 3600), nil)
				obs.On("SumPendingTime", ctx, userID).Return(2400.0, nil)
			},
			want: 1200,
		},
		{
			name: "no pending observations",
			setup: func(users *MockUserRepo, obs *MockObservationRepo) {
				users.On("Get", ctx, userID).Return(observer(userID, 3600), nil)
				obs.On("SumPendingTime", ctx, userID).Return(0.0, nil)
			},
			want: 3600,
		},
		{
			name: "overspent quota goes negative",
			setup: func(users *MockUserRepo, obs *MockObservationRepo) {
				users.On("Get", ctx, userID).Return(observer(userID, 3600), nil)
				obs.On("SumPendingTime", ctx, userID).Return(5000.0, nil)
			},
			want: -1400,
		},
		{
			name: "unknown user yields sentinel",
			setup: func(users *MockUserRepo, obs *MockObservationRepo) {
				users.On("Get", ctx, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			want: AvailableTimeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserRepo{}
			obs := &MockObservationRepo{}
			programs := &MockProgramRepo{}
			tt.setup(users, obs)

			svc := NewObservationService(obs, programs, users, zap.NewNop())

			got, err := svc.AvailableTime(ctx, userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			users.AssertExpectations(t)
			obs.AssertExpectations(t)
		})
	}
}

func TestObservationService_Insert(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	programID := uuid.New()

	valid := InsertObservationInput{
		ProgramID:     programID,
		Target:        "M31",
		ExposureTime:  300,
		ExposureCount: 4,
		Binning:       1,
		Filters:       []string{"ha"},
	}

	tests := []struct {
		name      string
		requester *model.User
		in        InsertObservationInput
		setup     func(*MockUserRepo, *MockObservationRepo, *MockProgramRepo)
		wantKind  ErrorKind
	}{
		{
			name:      "request within quota succeeds",
			requester: observer(userID, 3600),
			in:        valid, // 300 * 4 * 1 = 1200s
			setup: func(users *MockUserRepo, obs *MockObservationRepo, programs *MockProgramRepo) {
				users.On("Get", ctx, userID).Return(observer(userID, 3600), nil)
				obs.On("SumPendingTime", ctx, userID).Return(2400.0, nil)
				obs.On("Create", ctx, mock.AnythingOfType("*model.Observation")).Return(nil)
				programs.On("AddObservationRef", ctx, programID, mock.AnythingOfType("string")).Return(nil)
			},
		},
		{
			name:      "request over quota rejected",
			requester: observer(userID, 3600),
			in: InsertObservationInput{
				ProgramID:     programID,
				Target:        "M31",
				ExposureTime:  500,
				ExposureCount: 4,
				Binning:       1,
				Filters:       []string{"ha"}, // 2000s against 1200s remaining
			},
			setup: func(users *MockUserRepo, obs *MockObservationRepo, programs *MockProgramRepo) {
				users.On("Get", ctx, userID).Return(observer(userID, 3600), nil)
				obs.On("SumPendingTime", ctx, userID).Return(2400.0, nil)
			},
			wantKind: KindQuotaExceeded,
		},
		{
			name:      "each filter multiplies the charge",
			requester: observer(userID, 3600),
			in: InsertObservationInput{
				ProgramID:     programID,
				Target:        "M31",
				ExposureTime:  300,
				ExposureCount: 4,
				Binning:       1,
				Filters:       []string{"ha", "oiii"}, // 2400s against 1200s remaining
			},
			setup: func(users *MockUserRepo, obs *MockObservationRepo, programs *MockProgramRepo) {
				users.On("Get", ctx, userID).Return(observer(userID, 3600), nil)
				obs.On("SumPendingTime", ctx, userID).Return(2400.0, nil)
			},
			wantKind: KindQuotaExceeded,
		},
		{
			name:      "unauthenticated",
			requester: nil,
			in:        valid,
			setup:     func(*MockUserRepo, *MockObservationRepo, *MockProgramRepo) {},
			wantKind:  KindAuthorization,
		},
		{
			name:      "missing filters",
			requester: observer(userID, 3600),
			in: InsertObservationInput{
				ProgramID:     programID,
				Target:        "M31",
				ExposureTime:  300,
				ExposureCount: 4,
				Binning:       1,
			},
			setup:    func(*MockUserRepo, *MockObservationRepo, *MockProgramRepo) {},
			wantKind: KindValidation,
		},
		{
			name:      "unknown option key",
			requester: observer(userID, 3600),
			in: InsertObservationInput{
				ProgramID:     programID,
				Target:        "M31",
				ExposureTime:  300,
				ExposureCount: 4,
				Binning:       1,
				Filters:       []string{"ha"},
				Options:       map[string]interface{}{"telescope": "mine"},
			},
			setup:    func(*MockUserRepo, *MockObservationRepo, *MockProgramRepo) {},
			wantKind: KindValidation,
		},
		{
			name:      "non-positive exposure time",
			requester: observer(userID, 3600),
			in: InsertObservationInput{
				ProgramID:     programID,
				Target:        "M31",
				ExposureTime:  0,
				ExposureCount: 4,
				Binning:       1,
				Filters:       []string{"ha"},
			},
			setup:    func(*MockUserRepo, *MockObservationRepo, *MockProgramRepo) {},
			wantKind: KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserRepo{}
			obs := &MockObservationRepo{}
			programs := &MockProgramRepo{}
			tt.setup(users, obs, programs)

			svc := NewObservationService(obs, programs, users, zap.NewNop())

			o, err := svc.Insert(ctx, tt.requester, tt.in)

			if tt.wantKind != KindUnknown {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1200.0, o.TotalTime)
				assert.Equal(t, userID, o.OwnerID)
			}
			users.AssertExpectations(t)
			obs.AssertExpectations(t)
			programs.AssertExpectations(t)
		})
	}
}

func TestObservationService_Insert_MarksOrphanOnRefFailure(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	programID := uuid.New()

	users := &MockUserRepo{}
	obs := &MockObservationRepo{}
	programs := &MockProgramRepo{}

	users.On("Get", ctx, userID).Return(observer(userID, 14400), nil)
	obs.On("SumPendingTime", ctx, userID).Return(0.0, nil)
	obs.On("Create", ctx, mock.AnythingOfType("*model.Observation")).Return(nil)
	programs.On("AddObservationRef", ctx, programID, mock.AnythingOfType("string")).
		Return(errors.New("connection reset"))
	obs.On("MarkOrphaned", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)

	svc := NewObservationService(obs, programs, users, zap.NewNop())

	_, err := svc.Insert(ctx, observer(userID, 14400), InsertObservationInput{
		ProgramID:     programID,
		Target:        "M31",
		ExposureTime:  60,
		ExposureCount: 1,
		Binning:       2,
		Filters:       []string{"lum"},
	})

	assert.Error(t, err)
	obs.AssertExpectations(t)
	programs.AssertExpectations(t)
}

func TestObservationService_Remove(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	otherID := uuid.New()
	obsID := uuid.New()
	programID := uuid.New()

	existing := &model.Observation{ID: obsID, ProgramID: programID, OwnerID: ownerID}

	tests := []struct {
		name      string
		requester *model.User
		setup     func(*MockObservationRepo, *MockProgramRepo)
		wantKind  ErrorKind
	}{
		{
			name:      "owner removes observation",
			requester: observer(ownerID, 3600),
			setup: func(obs *MockObservationRepo, programs *MockProgramRepo) {
				obs.On("Get", ctx, obsID).Return(existing, nil)
				programs.On("PullObservationRef", ctx, programID, obsID.String()).Return(nil)
				obs.On("DeleteOwned", ctx, obsID, ownerID).Return(nil)
			},
		},
		{
			// The delete is owner-scoped, so a non-owner request deletes
			// nothing but still reports success.
			name:      "non-owner removal is a silent no-op",
			requester: observer(otherID, 3600),
			setup: func(obs *MockObservationRepo, programs *MockProgramRepo) {
				obs.On("Get", ctx, obsID).Return(existing, nil)
				programs.On("PullObservationRef", ctx, programID, obsID.String()).Return(nil)
				obs.On("DeleteOwned", ctx, obsID, otherID).Return(nil)
			},
		},
		{
			name:      "missing observation",
			requester: observer(ownerID, 3600),
			setup: func(obs *MockObservationRepo, programs *MockProgramRepo) {
				obs.On("Get", ctx, obsID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantKind: KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserRepo{}
			obs := &MockObservationRepo{}
			programs := &MockProgramRepo{}
			tt.setup(obs, programs)

			svc := NewObservationService(obs, programs, users, zap.NewNop())

			err := svc.Remove(ctx, tt.requester, obsID)

			if tt.wantKind != KindUnknown {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
			} else {
				assert.NoError(t, err)
			}
			obs.AssertExpectations(t)
			programs.AssertExpectations(t)
		})
	}
}

func TestObservationService_SetCompleted_AnyAuthenticatedUser(t *testing.T) {
	ctx := context.Background()
	obsID := uuid.New()

	users := &MockUserRepo{}
	obs := &MockObservationRepo{}
	programs := &MockProgramRepo{}
	obs.On("SetCompleted", ctx, obsID, true).Return(nil)

	svc := NewObservationService(obs, programs, users, zap.NewNop())

	// Requester is not the owner; completion is still allowed so the
	// scheduler account can mark runs done.
	err := svc.SetCompleted(ctx, observer(uuid.New(), 3600), obsID, true)

	assert.NoError(t, err)
	obs.AssertExpectations(t)
}

func TestObservationService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("admin sees all observations", func(t *testing.T) {
		obs := &MockObservationRepo{}
		obs.On("List", ctx).Return([]model.Observation{{}, {}}, nil)

		svc := NewObservationService(obs, &MockProgramRepo{}, &MockUserRepo{}, zap.NewNop())
		admin := &model.User{ID: userID, Role: model.RoleAdmin}

		items, err := svc.List(ctx, admin)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		obs.AssertExpectations(t)
	})

	t.Run("regular user sees own observations", func(t *testing.T) {
		obs := &MockObservationRepo{}
		obs.On("ListByOwner", ctx, userID).Return([]model.Observation{{OwnerID: userID}}, nil)

		svc := NewObservationService(obs, &MockProgramRepo{}, &MockUserRepo{}, zap.NewNop())

		items, err := svc.List(ctx, observer(userID, 3600))

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		obs.AssertExpectations(t)
	})
}
