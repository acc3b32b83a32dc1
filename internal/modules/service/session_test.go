package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/openobs/telescope-queue/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestSessionService_Insert(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	programID := uuid.New()
	requester := observer(userID, 3600)

	tests := []struct {
		name       string
		start, end string
		setup      func(*MockSessionRepo, *MockProgramRepo)
		wantKind   ErrorKind
	}{
		{
			name:  "valid window",
			start: "2026-03-01T20:00:00Z",
			end:   "2026-03-02T02:00:00Z",
			setup: func(sessions *MockSessionRepo, programs *MockProgramRepo) {
				sessions.On("Create", ctx, mock.AnythingOfType("*model.Session")).Return(nil)
				programs.On("AddSessionRef", ctx, programID, mock.AnythingOfType("string")).Return(nil)
			},
		},
		{
			name:     "end before start",
			start:    "2026-03-02T02:00:00Z",
			end:      "2026-03-01T20:00:00Z",
			setup:    func(*MockSessionRepo, *MockProgramRepo) {},
			wantKind: KindValidation,
		},
		{
			name:     "zero length window",
			start:    "2026-03-01T20:00:00Z",
			end:      "2026-03-01T20:00:00Z",
			setup:    func(*MockSessionRepo, *MockProgramRepo) {},
			wantKind: KindValidation,
		},
		{
			name:     "malformed timestamp",
			start:    "tomorrow night",
			end:      "2026-03-02T02:00:00Z",
			setup:    func(*MockSessionRepo, *MockProgramRepo) {},
			wantKind: KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &MockSessionRepo{}
			programs := &MockProgramRepo{}
			tt.setup(sessions, programs)

			svc := NewSessionService(sessions, programs, zap.NewNop())

			sess, err := svc.Insert(ctx, requester, programID, tt.start, tt.end)

			if tt.wantKind != KindUnknown {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, sess.OwnerID)
				assert.True(t, sess.End.After(sess.Start))
			}
			sessions.AssertExpectations(t)
			programs.AssertExpectations(t)
		})
	}
}

func TestSessionService_Remove(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	otherID := uuid.New()
	sessionID := uuid.New()
	programID := uuid.New()

	existing := &model.Session{ID: sessionID, ProgramID: programID, OwnerID: ownerID}

	tests := []struct {
		name      string
		requester *model.User
		setup     func(*MockSessionRepo, *MockProgramRepo)
		wantKind  ErrorKind
	}{
		{
			name:      "owner releases the window",
			requester: observer(ownerID, 3600),
			setup: func(sessions *MockSessionRepo, programs *MockProgramRepo) {
				sessions.On("Get", ctx, sessionID).Return(existing, nil)
				programs.On("PullSessionRef", ctx, programID, sessionID.String()).Return(nil)
				sessions.On("Delete", ctx, sessionID).Return(nil)
			},
		},
		{
			name:      "non-owner is rejected",
			requester: observer(otherID, 3600),
			setup: func(sessions *MockSessionRepo, programs *MockProgramRepo) {
				sessions.On("Get", ctx, sessionID).Return(existing, nil)
			},
			wantKind: KindAuthorization,
		},
		{
			name:      "missing session",
			requester: observer(ownerID, 3600),
			setup: func(sessions *MockSessionRepo, programs *MockProgramRepo) {
				sessions.On("Get", ctx, sessionID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantKind: KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &MockSessionRepo{}
			programs := &MockProgramRepo{}
			tt.setup(sessions, programs)

			svc := NewSessionService(sessions, programs, zap.NewNop())

			err := svc.Remove(ctx, tt.requester, sessionID)

			if tt.wantKind != KindUnknown {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
			} else {
				assert.NoError(t, err)
			}
			sessions.AssertExpectations(t)
			programs.AssertExpectations(t)
		})
	}
}
