package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailableTimeUnknown is returned when the user's quota cannot be
// determined, e.g. the account no longer exists. Any positive request
// compared against it fails the quota gate.
const AvailableTimeUnknown float64 = -1

// AvailableTime computes the user's remaining queue seconds as the account's
// quota minus the total time of their incomplete observations. The value is a
// point-in-time read; concurrent inserts may both observe the same balance.
func (s *observationService) AvailableTime(ctx context.Context, userID uuid.UUID) (float64, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AvailableTimeUnknown, nil
		}
		return 0, err
	}

	pending, err := s.observations.SumPendingTime(ctx, userID)
	if err != nil {
		return 0, err
	}
	return u.MaxQueueTime - pending, nil
}
