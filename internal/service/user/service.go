package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, displayName *string, photoURL *string) (*domain.User, error)
}

// avatarStorage issues direct-to-bucket uploads for profile photos.
type avatarStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (url string, expiresAt time.Time, err error)
	PublicURL(key string) string
}

// Service implements user profile operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	avatars avatarStorage
}

// NewService creates a new user service instance. avatars may be nil when
// object storage is not configured; AvatarUploadURL then fails.
func NewService(logger *slog.Logger, users userRepo, avatars avatarStorage) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		avatars: avatars,
	}
}
