package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// ErrAvatarStorageDisabled is returned when no object storage is configured.
var ErrAvatarStorageDisabled = fmt.Errorf("avatar storage is not configured: %w", domain.ErrNotFound)

var avatarExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// AvatarUpload describes a presigned upload slot for a profile photo.
type AvatarUpload struct {
	Key       string
	UploadURL string
	PublicURL string
	ExpiresAt time.Time
}

// AvatarUploadURL reserves a fresh object key under the user's avatar prefix
// and returns a presigned PUT URL for it. The caller stores PublicURL as the
// photo URL once the upload succeeds.
func (s *Service) AvatarUploadURL(ctx context.Context, userID uuid.UUID, contentType string) (*AvatarUpload, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, domain.NewValidationError("content_type", "unsupported image type")
	}
	if s.avatars == nil {
		return nil, ErrAvatarStorageDisabled
	}

	key := fmt.Sprintf("avatars/%s/%s.%s", userID, uuid.New(), ext)

	url, expiresAt, err := s.avatars.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("user.AvatarUploadURL: %w", err)
	}

	s.log.InfoContext(ctx, "avatar upload presigned",
		slog.String("user_id", userID.String()),
		slog.String("key", key))

	return &AvatarUpload{
		Key:       key,
		UploadURL: url,
		PublicURL: s.avatars.PublicURL(key),
		ExpiresAt: expiresAt,
	}, nil
}
