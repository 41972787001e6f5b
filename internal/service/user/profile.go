package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// GetUserProfile returns the profile of userID, or nil with no error when the
// user does not exist.
func (s *Service) GetUserProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("user.GetUserProfile: %w", err)
	}

	return user, nil
}

// UpdateUserProfile applies a partial profile update. Nil fields are kept;
// an empty PhotoURL clears the photo.
func (s *Service) UpdateUserProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	// Step 1: Validate input
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Update profile
	user, err := s.users.Update(ctx, userID, input.DisplayName, input.PhotoURL)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUserProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}
