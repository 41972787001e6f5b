package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/apimodel"
	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/service/user"
)

type profileService interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateUserProfile(ctx context.Context, userID uuid.UUID, input user.UpdateProfileInput) (*domain.User, error)
	AvatarUploadURL(ctx context.Context, userID uuid.UUID, contentType string) (*user.AvatarUpload, error)
}

// ProfileHandler serves /api/profile.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Get handles GET /api/profile. An absent profile is encoded as null.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	u, err := h.svc.GetUserProfile(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if u == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, apimodel.FromUser(u))
}

// Update handles PATCH /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req apimodel.ProfilePatch
	if !decode(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateUserProfile(r.Context(), uid, user.UpdateProfileInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apimodel.FromUser(u))
}

// Avatar handles POST /api/profile/avatar.
func (h *ProfileHandler) Avatar(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req apimodel.AvatarRequest
	if !decode(w, r, &req) {
		return
	}

	up, err := h.svc.AvatarUploadURL(r.Context(), uid, req.ContentType)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apimodel.AvatarResponse{
		Key:       up.Key,
		UploadURL: up.UploadURL,
		PublicURL: up.PublicURL,
		ExpiresAt: up.ExpiresAt,
	})
}
