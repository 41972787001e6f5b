package user

import (
	"net/url"

	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	DisplayName *string
	PhotoURL    *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.DisplayName == nil && i.PhotoURL == nil {
		errs = append(errs, domain.FieldError{Field: "profile", Message: "nothing to update"})
	}

	if i.DisplayName != nil && len(*i.DisplayName) > 255 {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	if i.PhotoURL != nil && *i.PhotoURL != "" {
		if len(*i.PhotoURL) > 2048 {
			errs = append(errs, domain.FieldError{Field: "photo_url", Message: "too long"})
		} else if u, err := url.Parse(*i.PhotoURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "photo_url", Message: "must be an http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
